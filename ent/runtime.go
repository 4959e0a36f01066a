// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/numsense/ent/attemptevent"
	"github.com/abhisek/numsense/ent/exposureevent"
	"github.com/abhisek/numsense/ent/llmrequestevent"
	"github.com/abhisek/numsense/ent/schema"
	"github.com/abhisek/numsense/ent/snapshot"
	"github.com/abhisek/numsense/ent/stressevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescTaskType is the schema descriptor for task_type field.
	attempteventDescTaskType := attempteventFields[1].Descriptor()
	// attemptevent.TaskTypeValidator is a validator for the "task_type" field. It is called by the builders before save.
	attemptevent.TaskTypeValidator = attempteventDescTaskType.Validators[0].(func(string) error)
	// attempteventDescSelectedAnswer is the schema descriptor for selected_answer field.
	attempteventDescSelectedAnswer := attempteventFields[3].Descriptor()
	// attemptevent.DefaultSelectedAnswer holds the default value on creation for the selected_answer field.
	attemptevent.DefaultSelectedAnswer = attempteventDescSelectedAnswer.Default.(string)
	// attempteventDescCorrectAnswer is the schema descriptor for correct_answer field.
	attempteventDescCorrectAnswer := attempteventFields[4].Descriptor()
	// attemptevent.DefaultCorrectAnswer holds the default value on creation for the correct_answer field.
	attemptevent.DefaultCorrectAnswer = attempteventDescCorrectAnswer.Default.(string)
	// attempteventDescLatency is the schema descriptor for latency field.
	attempteventDescLatency := attempteventFields[5].Descriptor()
	// attemptevent.DefaultLatency holds the default value on creation for the latency field.
	attemptevent.DefaultLatency = attempteventDescLatency.Default.(float64)
	// attempteventDescAttempts is the schema descriptor for attempts field.
	attempteventDescAttempts := attempteventFields[6].Descriptor()
	// attemptevent.DefaultAttempts holds the default value on creation for the attempts field.
	attemptevent.DefaultAttempts = attempteventDescAttempts.Default.(int)
	// attempteventDescClientTimestamp is the schema descriptor for client_timestamp field.
	attempteventDescClientTimestamp := attempteventFields[7].Descriptor()
	// attemptevent.DefaultClientTimestamp holds the default value on creation for the client_timestamp field.
	attemptevent.DefaultClientTimestamp = attempteventDescClientTimestamp.Default.(float64)
	exposureeventMixin := schema.ExposureEvent{}.Mixin()
	exposureeventMixinFields0 := exposureeventMixin[0].Fields()
	_ = exposureeventMixinFields0
	exposureeventFields := schema.ExposureEvent{}.Fields()
	_ = exposureeventFields
	// exposureeventDescTimestamp is the schema descriptor for timestamp field.
	exposureeventDescTimestamp := exposureeventMixinFields0[1].Descriptor()
	// exposureevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	exposureevent.DefaultTimestamp = exposureeventDescTimestamp.Default.(func() time.Time)
	// exposureeventDescSessionID is the schema descriptor for session_id field.
	exposureeventDescSessionID := exposureeventFields[0].Descriptor()
	// exposureevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	exposureevent.SessionIDValidator = exposureeventDescSessionID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	stresseventMixin := schema.StressEvent{}.Mixin()
	stresseventMixinFields0 := stresseventMixin[0].Fields()
	_ = stresseventMixinFields0
	stresseventFields := schema.StressEvent{}.Fields()
	_ = stresseventFields
	// stresseventDescTimestamp is the schema descriptor for timestamp field.
	stresseventDescTimestamp := stresseventMixinFields0[1].Descriptor()
	// stressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stressevent.DefaultTimestamp = stresseventDescTimestamp.Default.(func() time.Time)
	// stresseventDescSessionID is the schema descriptor for session_id field.
	stresseventDescSessionID := stresseventFields[0].Descriptor()
	// stressevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	stressevent.SessionIDValidator = stresseventDescSessionID.Validators[0].(func(string) error)
}
