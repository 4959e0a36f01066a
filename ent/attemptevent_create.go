// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numsense/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *AttemptEventCreate) SetTaskType(v string) *AttemptEventCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetSelectedAnswer sets the "selected_answer" field.
func (_c *AttemptEventCreate) SetSelectedAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetSelectedAnswer(v)
	return _c
}

// SetNillableSelectedAnswer sets the "selected_answer" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableSelectedAnswer(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetSelectedAnswer(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *AttemptEventCreate) SetCorrectAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableCorrectAnswer(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetLatency sets the "latency" field.
func (_c *AttemptEventCreate) SetLatency(v float64) *AttemptEventCreate {
	_c.mutation.SetLatency(v)
	return _c
}

// SetNillableLatency sets the "latency" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableLatency(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetLatency(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *AttemptEventCreate) SetAttempts(v int) *AttemptEventCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableAttempts(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetClientTimestamp sets the "client_timestamp" field.
func (_c *AttemptEventCreate) SetClientTimestamp(v float64) *AttemptEventCreate {
	_c.mutation.SetClientTimestamp(v)
	return _c
}

// SetNillableClientTimestamp sets the "client_timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableClientTimestamp(v *float64) *AttemptEventCreate {
	if v != nil {
		_c.SetClientTimestamp(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *AttemptEventCreate) SetDifficulty(v int) *AttemptEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableDifficulty(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SelectedAnswer(); !ok {
		v := attemptevent.DefaultSelectedAnswer
		_c.mutation.SetSelectedAnswer(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := attemptevent.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
	if _, ok := _c.mutation.Latency(); !ok {
		v := attemptevent.DefaultLatency
		_c.mutation.SetLatency(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := attemptevent.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.ClientTimestamp(); !ok {
		v := attemptevent.DefaultClientTimestamp
		_c.mutation.SetClientTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "AttemptEvent.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := attemptevent.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.SelectedAnswer(); !ok {
		return &ValidationError{Name: "selected_answer", err: errors.New(`ent: missing required field "AttemptEvent.selected_answer"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "AttemptEvent.correct_answer"`)}
	}
	if _, ok := _c.mutation.Latency(); !ok {
		return &ValidationError{Name: "latency", err: errors.New(`ent: missing required field "AttemptEvent.latency"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "AttemptEvent.attempts"`)}
	}
	if _, ok := _c.mutation.ClientTimestamp(); !ok {
		return &ValidationError{Name: "client_timestamp", err: errors.New(`ent: missing required field "AttemptEvent.client_timestamp"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(attemptevent.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.SelectedAnswer(); ok {
		_spec.SetField(attemptevent.FieldSelectedAnswer, field.TypeString, value)
		_node.SelectedAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Latency(); ok {
		_spec.SetField(attemptevent.FieldLatency, field.TypeFloat64, value)
		_node.Latency = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(attemptevent.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ClientTimestamp(); ok {
		_spec.SetField(attemptevent.FieldClientTimestamp, field.TypeFloat64, value)
		_node.ClientTimestamp = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = &value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
