// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/host"
)

// HostCreate is the builder for creating a Host entity.
type HostCreate struct {
	config
	mutation *HostMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *HostCreate) SetOrganizationID(v string) *HostCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *HostCreate) SetName(v string) *HostCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetHostname sets the "hostname" field.
func (_c *HostCreate) SetHostname(v string) *HostCreate {
	_c.mutation.SetHostname(v)
	return _c
}

// SetPort sets the "port" field.
func (_c *HostCreate) SetPort(v int) *HostCreate {
	_c.mutation.SetPort(v)
	return _c
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_c *HostCreate) SetNillablePort(v *int) *HostCreate {
	if v != nil {
		_c.SetPort(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *HostCreate) SetUsername(v string) *HostCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *HostCreate) SetNillableUsername(v *string) *HostCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetCredentialID sets the "credential_id" field.
func (_c *HostCreate) SetCredentialID(v string) *HostCreate {
	_c.mutation.SetCredentialID(v)
	return _c
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_c *HostCreate) SetNillableCredentialID(v *string) *HostCreate {
	if v != nil {
		_c.SetCredentialID(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *HostCreate) SetTags(v []string) *HostCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetEnvironment sets the "environment" field.
func (_c *HostCreate) SetEnvironment(v string) *HostCreate {
	_c.mutation.SetEnvironment(v)
	return _c
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_c *HostCreate) SetNillableEnvironment(v *string) *HostCreate {
	if v != nil {
		_c.SetEnvironment(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *HostCreate) SetStatus(v host.Status) *HostCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HostCreate) SetNillableStatus(v *host.Status) *HostCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAllowInsecureSsl sets the "allow_insecure_ssl" field.
func (_c *HostCreate) SetAllowInsecureSsl(v bool) *HostCreate {
	_c.mutation.SetAllowInsecureSsl(v)
	return _c
}

// SetNillableAllowInsecureSsl sets the "allow_insecure_ssl" field if the given value is not nil.
func (_c *HostCreate) SetNillableAllowInsecureSsl(v *bool) *HostCreate {
	if v != nil {
		_c.SetAllowInsecureSsl(*v)
	}
	return _c
}

// SetLastHealthCheck sets the "last_health_check" field.
func (_c *HostCreate) SetLastHealthCheck(v time.Time) *HostCreate {
	_c.mutation.SetLastHealthCheck(v)
	return _c
}

// SetNillableLastHealthCheck sets the "last_health_check" field if the given value is not nil.
func (_c *HostCreate) SetNillableLastHealthCheck(v *time.Time) *HostCreate {
	if v != nil {
		_c.SetLastHealthCheck(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HostCreate) SetCreatedAt(v time.Time) *HostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HostCreate) SetNillableCreatedAt(v *time.Time) *HostCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HostCreate) SetUpdatedAt(v time.Time) *HostCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HostCreate) SetNillableUpdatedAt(v *time.Time) *HostCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HostCreate) SetID(v string) *HostCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HostMutation object of the builder.
func (_c *HostCreate) Mutation() *HostMutation {
	return _c.mutation
}

// Save creates the Host in the database.
func (_c *HostCreate) Save(ctx context.Context) (*Host, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HostCreate) SaveX(ctx context.Context) *Host {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HostCreate) defaults() {
	if _, ok := _c.mutation.Port(); !ok {
		v := host.DefaultPort
		_c.mutation.SetPort(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := host.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AllowInsecureSsl(); !ok {
		v := host.DefaultAllowInsecureSsl
		_c.mutation.SetAllowInsecureSsl(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := host.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := host.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HostCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Host.organization_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Host.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := host.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Host.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hostname(); !ok {
		return &ValidationError{Name: "hostname", err: errors.New(`ent: missing required field "Host.hostname"`)}
	}
	if v, ok := _c.mutation.Hostname(); ok {
		if err := host.HostnameValidator(v); err != nil {
			return &ValidationError{Name: "hostname", err: fmt.Errorf(`ent: validator failed for field "Host.hostname": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Port(); !ok {
		return &ValidationError{Name: "port", err: errors.New(`ent: missing required field "Host.port"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Host.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := host.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Host.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AllowInsecureSsl(); !ok {
		return &ValidationError{Name: "allow_insecure_ssl", err: errors.New(`ent: missing required field "Host.allow_insecure_ssl"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Host.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Host.updated_at"`)}
	}
	return nil
}

func (_c *HostCreate) sqlSave(ctx context.Context) (*Host, error) {
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
			return nil, fmt.Errorf("unexpected Host.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HostCreate) createSpec() (*Host, *sqlgraph.CreateSpec) {
	var (
		_node = &Host{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(host.Table, sqlgraph.NewFieldSpec(host.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(host.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(host.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Hostname(); ok {
		_spec.SetField(host.FieldHostname, field.TypeString, value)
		_node.Hostname = value
	}
	if value, ok := _c.mutation.Port(); ok {
		_spec.SetField(host.FieldPort, field.TypeInt, value)
		_node.Port = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(host.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := _c.mutation.CredentialID(); ok {
		_spec.SetField(host.FieldCredentialID, field.TypeString, value)
		_node.CredentialID = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(host.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Environment(); ok {
		_spec.SetField(host.FieldEnvironment, field.TypeString, value)
		_node.Environment = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(host.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AllowInsecureSsl(); ok {
		_spec.SetField(host.FieldAllowInsecureSsl, field.TypeBool, value)
		_node.AllowInsecureSsl = value
	}
	if value, ok := _c.mutation.LastHealthCheck(); ok {
		_spec.SetField(host.FieldLastHealthCheck, field.TypeTime, value)
		_node.LastHealthCheck = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(host.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(host.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// HostCreateBulk is the builder for creating many Host entities in bulk.
type HostCreateBulk struct {
	config
	err      error
	builders []*HostCreate
}

// Save creates the Host entities in the database.
func (_c *HostCreateBulk) Save(ctx context.Context) ([]*Host, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Host, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HostMutation)
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
func (_c *HostCreateBulk) SaveX(ctx context.Context) []*Host {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
