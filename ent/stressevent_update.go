// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/numsense/ent/predicate"
	"github.com/abhisek/numsense/ent/stressevent"
)

// StressEventUpdate is the builder for updating StressEvent entities.
type StressEventUpdate struct {
	config
	hooks    []Hook
	mutation *StressEventMutation
}

// Where appends a list predicates to the StressEventUpdate builder.
func (_u *StressEventUpdate) Where(ps ...predicate.StressEvent) *StressEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StressEventUpdate) SetSessionID(v string) *StressEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StressEventUpdate) SetNillableSessionID(v *string) *StressEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StressEventUpdate) SetPayload(v map[string]interface{}) *StressEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *StressEventUpdate) ClearPayload() *StressEventUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the StressEventMutation object of the builder.
func (_u *StressEventUpdate) Mutation() *StressEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StressEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StressEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StressEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StressEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StressEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stressevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StressEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StressEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stressevent.Table, stressevent.Columns, sqlgraph.NewFieldSpec(stressevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(stressevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stressevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(stressevent.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StressEventUpdateOne is the builder for updating a single StressEvent entity.
type StressEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StressEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StressEventUpdateOne) SetSessionID(v string) *StressEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StressEventUpdateOne) SetNillableSessionID(v *string) *StressEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *StressEventUpdateOne) SetPayload(v map[string]interface{}) *StressEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *StressEventUpdateOne) ClearPayload() *StressEventUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the StressEventMutation object of the builder.
func (_u *StressEventUpdateOne) Mutation() *StressEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StressEventUpdate builder.
func (_u *StressEventUpdateOne) Where(ps ...predicate.StressEvent) *StressEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StressEventUpdateOne) Select(field string, fields ...string) *StressEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StressEvent entity.
func (_u *StressEventUpdateOne) Save(ctx context.Context) (*StressEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StressEventUpdateOne) SaveX(ctx context.Context) *StressEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StressEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StressEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StressEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := stressevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StressEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StressEventUpdateOne) sqlSave(ctx context.Context) (_node *StressEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(stressevent.Table, stressevent.Columns, sqlgraph.NewFieldSpec(stressevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StressEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, stressevent.FieldID)
		for _, f := range fields {
			if !stressevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != stressevent.FieldID {
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
		_spec.SetField(stressevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(stressevent.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(stressevent.FieldPayload, field.TypeJSON)
	}
	_node = &StressEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{stressevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
