// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "task_type", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "selected_answer", Type: field.TypeString, Default: ""},
		{Name: "correct_answer", Type: field.TypeString, Default: ""},
		{Name: "latency", Type: field.TypeFloat64, Default: 0},
		{Name: "attempts", Type: field.TypeInt, Default: 1},
		{Name: "client_timestamp", Type: field.TypeFloat64, Default: 0},
		{Name: "difficulty", Type: field.TypeInt, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_task_type",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
		},
	}
	// ExposureEventsColumns holds the columns for the "exposure_events" table.
	ExposureEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// ExposureEventsTable holds the schema information for the "exposure_events" table.
	ExposureEventsTable = &schema.Table{
		Name:       "exposure_events",
		Columns:    ExposureEventsColumns,
		PrimaryKey: []*schema.Column{ExposureEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "exposureevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[1]},
			},
			{
				Name:    "exposureevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[2]},
			},
			{
				Name:    "exposureevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ExposureEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StressEventsColumns holds the columns for the "stress_events" table.
	StressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
	}
	// StressEventsTable holds the schema information for the "stress_events" table.
	StressEventsTable = &schema.Table{
		Name:       "stress_events",
		Columns:    StressEventsColumns,
		PrimaryKey: []*schema.Column{StressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stressevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StressEventsColumns[1]},
			},
			{
				Name:    "stressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StressEventsColumns[2]},
			},
			{
				Name:    "stressevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{StressEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		ExposureEventsTable,
		LlmRequestEventsTable,
		SnapshotsTable,
		StressEventsTable,
	}
)

func init() {
}
