package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StressEvent records a stress or frustration indicator observed during
// a session. Payload shape is caller-defined.
type StressEvent struct {
	ent.Schema
}

func (StressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Opaque stress indicator record"),
	}
}

func (StressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
