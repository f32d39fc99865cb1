// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/accesspolicy"
)

// AccessPolicyCreate is the builder for creating a AccessPolicy entity.
type AccessPolicyCreate struct {
	config
	mutation *AccessPolicyMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *AccessPolicyCreate) SetOrganizationID(v string) *AccessPolicyCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AccessPolicyCreate) SetName(v string) *AccessPolicyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AccessPolicyCreate) SetDescription(v string) *AccessPolicyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AccessPolicyCreate) SetNillableDescription(v *string) *AccessPolicyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAllowedCommandPatterns sets the "allowed_command_patterns" field.
func (_c *AccessPolicyCreate) SetAllowedCommandPatterns(v []string) *AccessPolicyCreate {
	_c.mutation.SetAllowedCommandPatterns(v)
	return _c
}

// SetDeniedCommandPatterns sets the "denied_command_patterns" field.
func (_c *AccessPolicyCreate) SetDeniedCommandPatterns(v []string) *AccessPolicyCreate {
	_c.mutation.SetDeniedCommandPatterns(v)
	return _c
}

// SetRequireApproval sets the "require_approval" field.
func (_c *AccessPolicyCreate) SetRequireApproval(v bool) *AccessPolicyCreate {
	_c.mutation.SetRequireApproval(v)
	return _c
}

// SetNillableRequireApproval sets the "require_approval" field if the given value is not nil.
func (_c *AccessPolicyCreate) SetNillableRequireApproval(v *bool) *AccessPolicyCreate {
	if v != nil {
		_c.SetRequireApproval(*v)
	}
	return _c
}

// SetMaxConcurrentCommands sets the "max_concurrent_commands" field.
func (_c *AccessPolicyCreate) SetMaxConcurrentCommands(v int) *AccessPolicyCreate {
	_c.mutation.SetMaxConcurrentCommands(v)
	return _c
}

// SetNillableMaxConcurrentCommands sets the "max_concurrent_commands" field if the given value is not nil.
func (_c *AccessPolicyCreate) SetNillableMaxConcurrentCommands(v *int) *AccessPolicyCreate {
	if v != nil {
		_c.SetMaxConcurrentCommands(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *AccessPolicyCreate) SetIsEnabled(v bool) *AccessPolicyCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *AccessPolicyCreate) SetNillableIsEnabled(v *bool) *AccessPolicyCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccessPolicyCreate) SetCreatedAt(v time.Time) *AccessPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccessPolicyCreate) SetNillableCreatedAt(v *time.Time) *AccessPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AccessPolicyCreate) SetUpdatedAt(v time.Time) *AccessPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AccessPolicyCreate) SetNillableUpdatedAt(v *time.Time) *AccessPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AccessPolicyCreate) SetID(v string) *AccessPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AccessPolicyMutation object of the builder.
func (_c *AccessPolicyCreate) Mutation() *AccessPolicyMutation {
	return _c.mutation
}

// Save creates the AccessPolicy in the database.
func (_c *AccessPolicyCreate) Save(ctx context.Context) (*AccessPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccessPolicyCreate) SaveX(ctx context.Context) *AccessPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccessPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccessPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccessPolicyCreate) defaults() {
	if _, ok := _c.mutation.RequireApproval(); !ok {
		v := accesspolicy.DefaultRequireApproval
		_c.mutation.SetRequireApproval(v)
	}
	if _, ok := _c.mutation.MaxConcurrentCommands(); !ok {
		v := accesspolicy.DefaultMaxConcurrentCommands
		_c.mutation.SetMaxConcurrentCommands(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := accesspolicy.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := accesspolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := accesspolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccessPolicyCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "AccessPolicy.organization_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AccessPolicy.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := accesspolicy.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AccessPolicy.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequireApproval(); !ok {
		return &ValidationError{Name: "require_approval", err: errors.New(`ent: missing required field "AccessPolicy.require_approval"`)}
	}
	if _, ok := _c.mutation.MaxConcurrentCommands(); !ok {
		return &ValidationError{Name: "max_concurrent_commands", err: errors.New(`ent: missing required field "AccessPolicy.max_concurrent_commands"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "AccessPolicy.is_enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AccessPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AccessPolicy.updated_at"`)}
	}
	return nil
}

func (_c *AccessPolicyCreate) sqlSave(ctx context.Context) (*AccessPolicy, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AccessPolicy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AccessPolicyCreate) createSpec() (*AccessPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &AccessPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(accesspolicy.Table, sqlgraph.NewFieldSpec(accesspolicy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(accesspolicy.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(accesspolicy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(accesspolicy.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AllowedCommandPatterns(); ok {
		_spec.SetField(accesspolicy.FieldAllowedCommandPatterns, field.TypeJSON, value)
		_node.AllowedCommandPatterns = value
	}
	if value, ok := _c.mutation.DeniedCommandPatterns(); ok {
		_spec.SetField(accesspolicy.FieldDeniedCommandPatterns, field.TypeJSON, value)
		_node.DeniedCommandPatterns = value
	}
	if value, ok := _c.mutation.RequireApproval(); ok {
		_spec.SetField(accesspolicy.FieldRequireApproval, field.TypeBool, value)
		_node.RequireApproval = value
	}
	if value, ok := _c.mutation.MaxConcurrentCommands(); ok {
		_spec.SetField(accesspolicy.FieldMaxConcurrentCommands, field.TypeInt, value)
		_node.MaxConcurrentCommands = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(accesspolicy.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(accesspolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(accesspolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AccessPolicyCreateBulk is the builder for creating many AccessPolicy entities in bulk.
type AccessPolicyCreateBulk struct {
	config
	err      error
	builders []*AccessPolicyCreate
}

// Save creates the AccessPolicy entities in the database.
func (_c *AccessPolicyCreateBulk) Save(ctx context.Context) ([]*AccessPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AccessPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccessPolicyMutation)
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
func (_c *AccessPolicyCreateBulk) SaveX(ctx context.Context) []*AccessPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccessPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccessPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
