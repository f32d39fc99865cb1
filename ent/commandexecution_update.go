// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/commandexecution"
	"github.com/infrallm/infrallm/ent/predicate"
)

// CommandExecutionUpdate is the builder for updating CommandExecution entities.
type CommandExecutionUpdate struct {
	config
	hooks    []Hook
	mutation *CommandExecutionMutation
}

// Where appends a list predicates to the CommandExecutionUpdate builder.
func (_u *CommandExecutionUpdate) Where(ps ...predicate.CommandExecution) *CommandExecutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CommandExecutionUpdate) SetSessionID(v string) *CommandExecutionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CommandExecutionUpdate) SetNillableSessionID(v *string) *CommandExecutionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CommandExecutionUpdate) ClearSessionID() *CommandExecutionUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the CommandExecutionMutation object of the builder.
func (_u *CommandExecutionUpdate) Mutation() *CommandExecutionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CommandExecutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandExecutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CommandExecutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandExecutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommandExecutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(commandexecution.Table, commandexecution.Columns, sqlgraph.NewFieldSpec(commandexecution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(commandexecution.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(commandexecution.FieldSessionID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commandexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CommandExecutionUpdateOne is the builder for updating a single CommandExecution entity.
type CommandExecutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CommandExecutionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CommandExecutionUpdateOne) SetSessionID(v string) *CommandExecutionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CommandExecutionUpdateOne) SetNillableSessionID(v *string) *CommandExecutionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *CommandExecutionUpdateOne) ClearSessionID() *CommandExecutionUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// Mutation returns the CommandExecutionMutation object of the builder.
func (_u *CommandExecutionUpdateOne) Mutation() *CommandExecutionMutation {
	return _u.mutation
}

// Where appends a list predicates to the CommandExecutionUpdate builder.
func (_u *CommandExecutionUpdateOne) Where(ps ...predicate.CommandExecution) *CommandExecutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CommandExecutionUpdateOne) Select(field string, fields ...string) *CommandExecutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CommandExecution entity.
func (_u *CommandExecutionUpdateOne) Save(ctx context.Context) (*CommandExecution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CommandExecutionUpdateOne) SaveX(ctx context.Context) *CommandExecution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CommandExecutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CommandExecutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CommandExecutionUpdateOne) sqlSave(ctx context.Context) (_node *CommandExecution, err error) {
	_spec := sqlgraph.NewUpdateSpec(commandexecution.Table, commandexecution.Columns, sqlgraph.NewFieldSpec(commandexecution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CommandExecution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, commandexecution.FieldID)
		for _, f := range fields {
			if !commandexecution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != commandexecution.FieldID {
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
		_spec.SetField(commandexecution.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(commandexecution.FieldSessionID, field.TypeString)
	}
	_node = &CommandExecution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{commandexecution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
