// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/userpolicy"
)

// UserPolicyCreate is the builder for creating a UserPolicy entity.
type UserPolicyCreate struct {
	config
	mutation *UserPolicyMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *UserPolicyCreate) SetOrganizationID(v string) *UserPolicyCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *UserPolicyCreate) SetUserID(v string) *UserPolicyCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetPolicyID sets the "policy_id" field.
func (_c *UserPolicyCreate) SetPolicyID(v string) *UserPolicyCreate {
	_c.mutation.SetPolicyID(v)
	return _c
}

// SetHostID sets the "host_id" field.
func (_c *UserPolicyCreate) SetHostID(v string) *UserPolicyCreate {
	_c.mutation.SetHostID(v)
	return _c
}

// SetNillableHostID sets the "host_id" field if the given value is not nil.
func (_c *UserPolicyCreate) SetNillableHostID(v *string) *UserPolicyCreate {
	if v != nil {
		_c.SetHostID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserPolicyCreate) SetCreatedAt(v time.Time) *UserPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserPolicyCreate) SetNillableCreatedAt(v *time.Time) *UserPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserPolicyCreate) SetID(v string) *UserPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserPolicyMutation object of the builder.
func (_c *UserPolicyCreate) Mutation() *UserPolicyMutation {
	return _c.mutation
}

// Save creates the UserPolicy in the database.
func (_c *UserPolicyCreate) Save(ctx context.Context) (*UserPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserPolicyCreate) SaveX(ctx context.Context) *UserPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserPolicyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := userpolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserPolicyCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "UserPolicy.organization_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UserPolicy.user_id"`)}
	}
	if _, ok := _c.mutation.PolicyID(); !ok {
		return &ValidationError{Name: "policy_id", err: errors.New(`ent: missing required field "UserPolicy.policy_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserPolicy.created_at"`)}
	}
	return nil
}

func (_c *UserPolicyCreate) sqlSave(ctx context.Context) (*UserPolicy, error) {
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
			return nil, fmt.Errorf("unexpected UserPolicy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserPolicyCreate) createSpec() (*UserPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &UserPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userpolicy.Table, sqlgraph.NewFieldSpec(userpolicy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(userpolicy.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(userpolicy.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.PolicyID(); ok {
		_spec.SetField(userpolicy.FieldPolicyID, field.TypeString, value)
		_node.PolicyID = value
	}
	if value, ok := _c.mutation.HostID(); ok {
		_spec.SetField(userpolicy.FieldHostID, field.TypeString, value)
		_node.HostID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(userpolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UserPolicyCreateBulk is the builder for creating many UserPolicy entities in bulk.
type UserPolicyCreateBulk struct {
	config
	err      error
	builders []*UserPolicyCreate
}

// Save creates the UserPolicy entities in the database.
func (_c *UserPolicyCreateBulk) Save(ctx context.Context) ([]*UserPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserPolicyMutation)
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
func (_c *UserPolicyCreateBulk) SaveX(ctx context.Context) []*UserPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
