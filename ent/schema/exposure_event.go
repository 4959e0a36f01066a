package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExposureEvent records a prior-exposure observation (e.g. the child has
// seen this task format before). Payload shape is caller-defined.
type ExposureEvent struct {
	ent.Schema
}

func (ExposureEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExposureEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Opaque exposure record"),
	}
}

func (ExposureEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
