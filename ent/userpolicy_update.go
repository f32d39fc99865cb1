// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/predicate"
	"github.com/infrallm/infrallm/ent/userpolicy"
)

// UserPolicyUpdate is the builder for updating UserPolicy entities.
type UserPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *UserPolicyMutation
}

// Where appends a list predicates to the UserPolicyUpdate builder.
func (_u *UserPolicyUpdate) Where(ps ...predicate.UserPolicy) *UserPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHostID sets the "host_id" field.
func (_u *UserPolicyUpdate) SetHostID(v string) *UserPolicyUpdate {
	_u.mutation.SetHostID(v)
	return _u
}

// SetNillableHostID sets the "host_id" field if the given value is not nil.
func (_u *UserPolicyUpdate) SetNillableHostID(v *string) *UserPolicyUpdate {
	if v != nil {
		_u.SetHostID(*v)
	}
	return _u
}

// ClearHostID clears the value of the "host_id" field.
func (_u *UserPolicyUpdate) ClearHostID() *UserPolicyUpdate {
	_u.mutation.ClearHostID()
	return _u
}

// Mutation returns the UserPolicyMutation object of the builder.
func (_u *UserPolicyUpdate) Mutation() *UserPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserPolicyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userpolicy.Table, userpolicy.Columns, sqlgraph.NewFieldSpec(userpolicy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HostID(); ok {
		_spec.SetField(userpolicy.FieldHostID, field.TypeString, value)
	}
	if _u.mutation.HostIDCleared() {
		_spec.ClearField(userpolicy.FieldHostID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserPolicyUpdateOne is the builder for updating a single UserPolicy entity.
type UserPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserPolicyMutation
}

// SetHostID sets the "host_id" field.
func (_u *UserPolicyUpdateOne) SetHostID(v string) *UserPolicyUpdateOne {
	_u.mutation.SetHostID(v)
	return _u
}

// SetNillableHostID sets the "host_id" field if the given value is not nil.
func (_u *UserPolicyUpdateOne) SetNillableHostID(v *string) *UserPolicyUpdateOne {
	if v != nil {
		_u.SetHostID(*v)
	}
	return _u
}

// ClearHostID clears the value of the "host_id" field.
func (_u *UserPolicyUpdateOne) ClearHostID() *UserPolicyUpdateOne {
	_u.mutation.ClearHostID()
	return _u
}

// Mutation returns the UserPolicyMutation object of the builder.
func (_u *UserPolicyUpdateOne) Mutation() *UserPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserPolicyUpdate builder.
func (_u *UserPolicyUpdateOne) Where(ps ...predicate.UserPolicy) *UserPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserPolicyUpdateOne) Select(field string, fields ...string) *UserPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserPolicy entity.
func (_u *UserPolicyUpdateOne) Save(ctx context.Context) (*UserPolicy, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPolicyUpdateOne) SaveX(ctx context.Context) *UserPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserPolicyUpdateOne) sqlSave(ctx context.Context) (_node *UserPolicy, err error) {
	_spec := sqlgraph.NewUpdateSpec(userpolicy.Table, userpolicy.Columns, sqlgraph.NewFieldSpec(userpolicy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userpolicy.FieldID)
		for _, f := range fields {
			if !userpolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userpolicy.FieldID {
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
	if value, ok := _u.mutation.HostID(); ok {
		_spec.SetField(userpolicy.FieldHostID, field.TypeString, value)
	}
	if _u.mutation.HostIDCleared() {
		_spec.ClearField(userpolicy.FieldHostID, field.TypeString)
	}
	_node = &UserPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
