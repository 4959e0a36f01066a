package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single task attempt within an assessment session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping attempts in a session"),
		field.String("task_type").
			NotEmpty().
			Comment("quantity, comparison, symbol, order, or flash_counting"),
		field.Bool("correct").
			Comment("Whether the attempt was correct"),
		field.String("selected_answer").
			Default("").
			Comment("JSON-encoded answer the child selected"),
		field.String("correct_answer").
			Default("").
			Comment("JSON-encoded expected answer"),
		field.Float("latency").
			Default(0).
			Comment("Seconds from stimulus to answer"),
		field.Int("attempts").
			Default(1).
			Comment("Tries taken on this task"),
		field.Float("client_timestamp").
			Default(0).
			Comment("Client-reported Unix timestamp"),
		field.Int("difficulty").
			Optional().
			Nillable().
			Comment("Difficulty level, when the task was tagged"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("task_type"),
		index.Fields("correct"),
	}
}
