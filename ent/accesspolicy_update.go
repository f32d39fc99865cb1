// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/accesspolicy"
	"github.com/infrallm/infrallm/ent/predicate"
)

// AccessPolicyUpdate is the builder for updating AccessPolicy entities.
type AccessPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *AccessPolicyMutation
}

// Where appends a list predicates to the AccessPolicyUpdate builder.
func (_u *AccessPolicyUpdate) Where(ps ...predicate.AccessPolicy) *AccessPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AccessPolicyUpdate) SetName(v string) *AccessPolicyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccessPolicyUpdate) SetNillableName(v *string) *AccessPolicyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AccessPolicyUpdate) SetDescription(v string) *AccessPolicyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AccessPolicyUpdate) SetNillableDescription(v *string) *AccessPolicyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AccessPolicyUpdate) ClearDescription() *AccessPolicyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAllowedCommandPatterns sets the "allowed_command_patterns" field.
func (_u *AccessPolicyUpdate) SetAllowedCommandPatterns(v []string) *AccessPolicyUpdate {
	_u.mutation.SetAllowedCommandPatterns(v)
	return _u
}

// AppendAllowedCommandPatterns appends value to the "allowed_command_patterns" field.
func (_u *AccessPolicyUpdate) AppendAllowedCommandPatterns(v []string) *AccessPolicyUpdate {
	_u.mutation.AppendAllowedCommandPatterns(v)
	return _u
}

// ClearAllowedCommandPatterns clears the value of the "allowed_command_patterns" field.
func (_u *AccessPolicyUpdate) ClearAllowedCommandPatterns() *AccessPolicyUpdate {
	_u.mutation.ClearAllowedCommandPatterns()
	return _u
}

// SetDeniedCommandPatterns sets the "denied_command_patterns" field.
func (_u *AccessPolicyUpdate) SetDeniedCommandPatterns(v []string) *AccessPolicyUpdate {
	_u.mutation.SetDeniedCommandPatterns(v)
	return _u
}

// AppendDeniedCommandPatterns appends value to the "denied_command_patterns" field.
func (_u *AccessPolicyUpdate) AppendDeniedCommandPatterns(v []string) *AccessPolicyUpdate {
	_u.mutation.AppendDeniedCommandPatterns(v)
	return _u
}

// ClearDeniedCommandPatterns clears the value of the "denied_command_patterns" field.
func (_u *AccessPolicyUpdate) ClearDeniedCommandPatterns() *AccessPolicyUpdate {
	_u.mutation.ClearDeniedCommandPatterns()
	return _u
}

// SetRequireApproval sets the "require_approval" field.
func (_u *AccessPolicyUpdate) SetRequireApproval(v bool) *AccessPolicyUpdate {
	_u.mutation.SetRequireApproval(v)
	return _u
}

// SetNillableRequireApproval sets the "require_approval" field if the given value is not nil.
func (_u *AccessPolicyUpdate) SetNillableRequireApproval(v *bool) *AccessPolicyUpdate {
	if v != nil {
		_u.SetRequireApproval(*v)
	}
	return _u
}

// SetMaxConcurrentCommands sets the "max_concurrent_commands" field.
func (_u *AccessPolicyUpdate) SetMaxConcurrentCommands(v int) *AccessPolicyUpdate {
	_u.mutation.ResetMaxConcurrentCommands()
	_u.mutation.SetMaxConcurrentCommands(v)
	return _u
}

// SetNillableMaxConcurrentCommands sets the "max_concurrent_commands" field if the given value is not nil.
func (_u *AccessPolicyUpdate) SetNillableMaxConcurrentCommands(v *int) *AccessPolicyUpdate {
	if v != nil {
		_u.SetMaxConcurrentCommands(*v)
	}
	return _u
}

// AddMaxConcurrentCommands adds value to the "max_concurrent_commands" field.
func (_u *AccessPolicyUpdate) AddMaxConcurrentCommands(v int) *AccessPolicyUpdate {
	_u.mutation.AddMaxConcurrentCommands(v)
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *AccessPolicyUpdate) SetIsEnabled(v bool) *AccessPolicyUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *AccessPolicyUpdate) SetNillableIsEnabled(v *bool) *AccessPolicyUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccessPolicyUpdate) SetUpdatedAt(v time.Time) *AccessPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccessPolicyMutation object of the builder.
func (_u *AccessPolicyUpdate) Mutation() *AccessPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccessPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccessPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccessPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := accesspolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccessPolicyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := accesspolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AccessPolicy.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AccessPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accesspolicy.Table, accesspolicy.Columns, sqlgraph.NewFieldSpec(accesspolicy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(accesspolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(accesspolicy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(accesspolicy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AllowedCommandPatterns(); ok {
		_spec.SetField(accesspolicy.FieldAllowedCommandPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedCommandPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, accesspolicy.FieldAllowedCommandPatterns, value)
		})
	}
	if _u.mutation.AllowedCommandPatternsCleared() {
		_spec.ClearField(accesspolicy.FieldAllowedCommandPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeniedCommandPatterns(); ok {
		_spec.SetField(accesspolicy.FieldDeniedCommandPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeniedCommandPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, accesspolicy.FieldDeniedCommandPatterns, value)
		})
	}
	if _u.mutation.DeniedCommandPatternsCleared() {
		_spec.ClearField(accesspolicy.FieldDeniedCommandPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequireApproval(); ok {
		_spec.SetField(accesspolicy.FieldRequireApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxConcurrentCommands(); ok {
		_spec.SetField(accesspolicy.FieldMaxConcurrentCommands, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentCommands(); ok {
		_spec.AddField(accesspolicy.FieldMaxConcurrentCommands, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(accesspolicy.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(accesspolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesspolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccessPolicyUpdateOne is the builder for updating a single AccessPolicy entity.
type AccessPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccessPolicyMutation
}

// SetName sets the "name" field.
func (_u *AccessPolicyUpdateOne) SetName(v string) *AccessPolicyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AccessPolicyUpdateOne) SetNillableName(v *string) *AccessPolicyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AccessPolicyUpdateOne) SetDescription(v string) *AccessPolicyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AccessPolicyUpdateOne) SetNillableDescription(v *string) *AccessPolicyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AccessPolicyUpdateOne) ClearDescription() *AccessPolicyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAllowedCommandPatterns sets the "allowed_command_patterns" field.
func (_u *AccessPolicyUpdateOne) SetAllowedCommandPatterns(v []string) *AccessPolicyUpdateOne {
	_u.mutation.SetAllowedCommandPatterns(v)
	return _u
}

// AppendAllowedCommandPatterns appends value to the "allowed_command_patterns" field.
func (_u *AccessPolicyUpdateOne) AppendAllowedCommandPatterns(v []string) *AccessPolicyUpdateOne {
	_u.mutation.AppendAllowedCommandPatterns(v)
	return _u
}

// ClearAllowedCommandPatterns clears the value of the "allowed_command_patterns" field.
func (_u *AccessPolicyUpdateOne) ClearAllowedCommandPatterns() *AccessPolicyUpdateOne {
	_u.mutation.ClearAllowedCommandPatterns()
	return _u
}

// SetDeniedCommandPatterns sets the "denied_command_patterns" field.
func (_u *AccessPolicyUpdateOne) SetDeniedCommandPatterns(v []string) *AccessPolicyUpdateOne {
	_u.mutation.SetDeniedCommandPatterns(v)
	return _u
}

// AppendDeniedCommandPatterns appends value to the "denied_command_patterns" field.
func (_u *AccessPolicyUpdateOne) AppendDeniedCommandPatterns(v []string) *AccessPolicyUpdateOne {
	_u.mutation.AppendDeniedCommandPatterns(v)
	return _u
}

// ClearDeniedCommandPatterns clears the value of the "denied_command_patterns" field.
func (_u *AccessPolicyUpdateOne) ClearDeniedCommandPatterns() *AccessPolicyUpdateOne {
	_u.mutation.ClearDeniedCommandPatterns()
	return _u
}

// SetRequireApproval sets the "require_approval" field.
func (_u *AccessPolicyUpdateOne) SetRequireApproval(v bool) *AccessPolicyUpdateOne {
	_u.mutation.SetRequireApproval(v)
	return _u
}

// SetNillableRequireApproval sets the "require_approval" field if the given value is not nil.
func (_u *AccessPolicyUpdateOne) SetNillableRequireApproval(v *bool) *AccessPolicyUpdateOne {
	if v != nil {
		_u.SetRequireApproval(*v)
	}
	return _u
}

// SetMaxConcurrentCommands sets the "max_concurrent_commands" field.
func (_u *AccessPolicyUpdateOne) SetMaxConcurrentCommands(v int) *AccessPolicyUpdateOne {
	_u.mutation.ResetMaxConcurrentCommands()
	_u.mutation.SetMaxConcurrentCommands(v)
	return _u
}

// SetNillableMaxConcurrentCommands sets the "max_concurrent_commands" field if the given value is not nil.
func (_u *AccessPolicyUpdateOne) SetNillableMaxConcurrentCommands(v *int) *AccessPolicyUpdateOne {
	if v != nil {
		_u.SetMaxConcurrentCommands(*v)
	}
	return _u
}

// AddMaxConcurrentCommands adds value to the "max_concurrent_commands" field.
func (_u *AccessPolicyUpdateOne) AddMaxConcurrentCommands(v int) *AccessPolicyUpdateOne {
	_u.mutation.AddMaxConcurrentCommands(v)
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *AccessPolicyUpdateOne) SetIsEnabled(v bool) *AccessPolicyUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *AccessPolicyUpdateOne) SetNillableIsEnabled(v *bool) *AccessPolicyUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AccessPolicyUpdateOne) SetUpdatedAt(v time.Time) *AccessPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AccessPolicyMutation object of the builder.
func (_u *AccessPolicyUpdateOne) Mutation() *AccessPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the AccessPolicyUpdate builder.
func (_u *AccessPolicyUpdateOne) Where(ps ...predicate.AccessPolicy) *AccessPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccessPolicyUpdateOne) Select(field string, fields ...string) *AccessPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AccessPolicy entity.
func (_u *AccessPolicyUpdateOne) Save(ctx context.Context) (*AccessPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccessPolicyUpdateOne) SaveX(ctx context.Context) *AccessPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccessPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccessPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AccessPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := accesspolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccessPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := accesspolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AccessPolicy.name": %w`, err)}
		}
	}
	return nil
}

func (_u *AccessPolicyUpdateOne) sqlSave(ctx context.Context) (_node *AccessPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(accesspolicy.Table, accesspolicy.Columns, sqlgraph.NewFieldSpec(accesspolicy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AccessPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, accesspolicy.FieldID)
		for _, f := range fields {
			if !accesspolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != accesspolicy.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(accesspolicy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(accesspolicy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(accesspolicy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.AllowedCommandPatterns(); ok {
		_spec.SetField(accesspolicy.FieldAllowedCommandPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedCommandPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, accesspolicy.FieldAllowedCommandPatterns, value)
		})
	}
	if _u.mutation.AllowedCommandPatternsCleared() {
		_spec.ClearField(accesspolicy.FieldAllowedCommandPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeniedCommandPatterns(); ok {
		_spec.SetField(accesspolicy.FieldDeniedCommandPatterns, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeniedCommandPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, accesspolicy.FieldDeniedCommandPatterns, value)
		})
	}
	if _u.mutation.DeniedCommandPatternsCleared() {
		_spec.ClearField(accesspolicy.FieldDeniedCommandPatterns, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequireApproval(); ok {
		_spec.SetField(accesspolicy.FieldRequireApproval, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxConcurrentCommands(); ok {
		_spec.SetField(accesspolicy.FieldMaxConcurrentCommands, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxConcurrentCommands(); ok {
		_spec.AddField(accesspolicy.FieldMaxConcurrentCommands, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(accesspolicy.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(accesspolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AccessPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{accesspolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
