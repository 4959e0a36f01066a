// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numsense/ent/attemptevent"
	"github.com/abhisek/numsense/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *AttemptEventUpdate) SetTaskType(v string) *AttemptEventUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTaskType(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_u *AttemptEventUpdate) SetSelectedAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetSelectedAnswer(v)
	return _u
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSelectedAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSelectedAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdate) SetCorrectAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLatency sets the "latency" field.
func (_u *AttemptEventUpdate) SetLatency(v float64) *AttemptEventUpdate {
	_u.mutation.ResetLatency()
	_u.mutation.SetLatency(v)
	return _u
}

// SetNillableLatency sets the "latency" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableLatency(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetLatency(*v)
	}
	return _u
}

// AddLatency adds value to the "latency" field.
func (_u *AttemptEventUpdate) AddLatency(v float64) *AttemptEventUpdate {
	_u.mutation.AddLatency(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AttemptEventUpdate) SetAttempts(v int) *AttemptEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttempts(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AttemptEventUpdate) AddAttempts(v int) *AttemptEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClientTimestamp sets the "client_timestamp" field.
func (_u *AttemptEventUpdate) SetClientTimestamp(v float64) *AttemptEventUpdate {
	_u.mutation.ResetClientTimestamp()
	_u.mutation.SetClientTimestamp(v)
	return _u
}

// SetNillableClientTimestamp sets the "client_timestamp" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableClientTimestamp(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetClientTimestamp(*v)
	}
	return _u
}

// AddClientTimestamp adds value to the "client_timestamp" field.
func (_u *AttemptEventUpdate) AddClientTimestamp(v float64) *AttemptEventUpdate {
	_u.mutation.AddClientTimestamp(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdate) SetDifficulty(v int) *AttemptEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDifficulty(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AttemptEventUpdate) AddDifficulty(v int) *AttemptEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *AttemptEventUpdate) ClearDifficulty() *AttemptEventUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := attemptevent.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(attemptevent.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SelectedAnswer(); ok {
		_spec.SetField(attemptevent.FieldSelectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Latency(); ok {
		_spec.SetField(attemptevent.FieldLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatency(); ok {
		_spec.AddField(attemptevent.FieldLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(attemptevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(attemptevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClientTimestamp(); ok {
		_spec.SetField(attemptevent.FieldClientTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClientTimestamp(); ok {
		_spec.AddField(attemptevent.FieldClientTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(attemptevent.FieldDifficulty, field.TypeInt)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *AttemptEventUpdateOne) SetTaskType(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTaskType(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_u *AttemptEventUpdateOne) SetSelectedAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSelectedAnswer(v)
	return _u
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSelectedAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSelectedAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetLatency sets the "latency" field.
func (_u *AttemptEventUpdateOne) SetLatency(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetLatency()
	_u.mutation.SetLatency(v)
	return _u
}

// SetNillableLatency sets the "latency" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableLatency(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetLatency(*v)
	}
	return _u
}

// AddLatency adds value to the "latency" field.
func (_u *AttemptEventUpdateOne) AddLatency(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddLatency(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AttemptEventUpdateOne) SetAttempts(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttempts(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AttemptEventUpdateOne) AddAttempts(v int) *AttemptEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetClientTimestamp sets the "client_timestamp" field.
func (_u *AttemptEventUpdateOne) SetClientTimestamp(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetClientTimestamp()
	_u.mutation.SetClientTimestamp(v)
	return _u
}

// SetNillableClientTimestamp sets the "client_timestamp" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableClientTimestamp(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetClientTimestamp(*v)
	}
	return _u
}

// AddClientTimestamp adds value to the "client_timestamp" field.
func (_u *AttemptEventUpdateOne) AddClientTimestamp(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddClientTimestamp(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AttemptEventUpdateOne) SetDifficulty(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDifficulty(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *AttemptEventUpdateOne) AddDifficulty(v int) *AttemptEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *AttemptEventUpdateOne) ClearDifficulty() *AttemptEventUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskType(); ok {
		if err := attemptevent.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(attemptevent.FieldTaskType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SelectedAnswer(); ok {
		_spec.SetField(attemptevent.FieldSelectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Latency(); ok {
		_spec.SetField(attemptevent.FieldLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatency(); ok {
		_spec.AddField(attemptevent.FieldLatency, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(attemptevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(attemptevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ClientTimestamp(); ok {
		_spec.SetField(attemptevent.FieldClientTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedClientTimestamp(); ok {
		_spec.AddField(attemptevent.FieldClientTimestamp, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(attemptevent.FieldDifficulty, field.TypeInt, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(attemptevent.FieldDifficulty, field.TypeInt)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
