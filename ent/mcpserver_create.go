// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/mcpserver"
)

// McpServerCreate is the builder for creating a McpServer entity.
type McpServerCreate struct {
	config
	mutation *McpServerMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *McpServerCreate) SetOrganizationID(v string) *McpServerCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *McpServerCreate) SetName(v string) *McpServerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTransportType sets the "transport_type" field.
func (_c *McpServerCreate) SetTransportType(v mcpserver.TransportType) *McpServerCreate {
	_c.mutation.SetTransportType(v)
	return _c
}

// SetBaseURL sets the "base_url" field.
func (_c *McpServerCreate) SetBaseURL(v string) *McpServerCreate {
	_c.mutation.SetBaseURL(v)
	return _c
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableBaseURL(v *string) *McpServerCreate {
	if v != nil {
		_c.SetBaseURL(*v)
	}
	return _c
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (_c *McpServerCreate) SetAPIKeyEncrypted(v string) *McpServerCreate {
	_c.mutation.SetAPIKeyEncrypted(v)
	return _c
}

// SetNillableAPIKeyEncrypted sets the "api_key_encrypted" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableAPIKeyEncrypted(v *string) *McpServerCreate {
	if v != nil {
		_c.SetAPIKeyEncrypted(*v)
	}
	return _c
}

// SetVerifySsl sets the "verify_ssl" field.
func (_c *McpServerCreate) SetVerifySsl(v bool) *McpServerCreate {
	_c.mutation.SetVerifySsl(v)
	return _c
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableVerifySsl(v *bool) *McpServerCreate {
	if v != nil {
		_c.SetVerifySsl(*v)
	}
	return _c
}

// SetCommand sets the "command" field.
func (_c *McpServerCreate) SetCommand(v string) *McpServerCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableCommand(v *string) *McpServerCreate {
	if v != nil {
		_c.SetCommand(*v)
	}
	return _c
}

// SetArguments sets the "arguments" field.
func (_c *McpServerCreate) SetArguments(v []string) *McpServerCreate {
	_c.mutation.SetArguments(v)
	return _c
}

// SetWorkingDirectory sets the "working_directory" field.
func (_c *McpServerCreate) SetWorkingDirectory(v string) *McpServerCreate {
	_c.mutation.SetWorkingDirectory(v)
	return _c
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableWorkingDirectory(v *string) *McpServerCreate {
	if v != nil {
		_c.SetWorkingDirectory(*v)
	}
	return _c
}

// SetEnvironmentVariables sets the "environment_variables" field.
func (_c *McpServerCreate) SetEnvironmentVariables(v map[string]string) *McpServerCreate {
	_c.mutation.SetEnvironmentVariables(v)
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *McpServerCreate) SetIsEnabled(v bool) *McpServerCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableIsEnabled(v *bool) *McpServerCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *McpServerCreate) SetCreatedAt(v time.Time) *McpServerCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableCreatedAt(v *time.Time) *McpServerCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *McpServerCreate) SetUpdatedAt(v time.Time) *McpServerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *McpServerCreate) SetNillableUpdatedAt(v *time.Time) *McpServerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *McpServerCreate) SetID(v string) *McpServerCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the McpServerMutation object of the builder.
func (_c *McpServerCreate) Mutation() *McpServerMutation {
	return _c.mutation
}

// Save creates the McpServer in the database.
func (_c *McpServerCreate) Save(ctx context.Context) (*McpServer, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *McpServerCreate) SaveX(ctx context.Context) *McpServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *McpServerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *McpServerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *McpServerCreate) defaults() {
	if _, ok := _c.mutation.VerifySsl(); !ok {
		v := mcpserver.DefaultVerifySsl
		_c.mutation.SetVerifySsl(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := mcpserver.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mcpserver.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mcpserver.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *McpServerCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "McpServer.organization_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "McpServer.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := mcpserver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "McpServer.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TransportType(); !ok {
		return &ValidationError{Name: "transport_type", err: errors.New(`ent: missing required field "McpServer.transport_type"`)}
	}
	if v, ok := _c.mutation.TransportType(); ok {
		if err := mcpserver.TransportTypeValidator(v); err != nil {
			return &ValidationError{Name: "transport_type", err: fmt.Errorf(`ent: validator failed for field "McpServer.transport_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VerifySsl(); !ok {
		return &ValidationError{Name: "verify_ssl", err: errors.New(`ent: missing required field "McpServer.verify_ssl"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "McpServer.is_enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "McpServer.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "McpServer.updated_at"`)}
	}
	return nil
}

func (_c *McpServerCreate) sqlSave(ctx context.Context) (*McpServer, error) {
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
			return nil, fmt.Errorf("unexpected McpServer.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *McpServerCreate) createSpec() (*McpServer, *sqlgraph.CreateSpec) {
	var (
		_node = &McpServer{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mcpserver.Table, sqlgraph.NewFieldSpec(mcpserver.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(mcpserver.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mcpserver.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TransportType(); ok {
		_spec.SetField(mcpserver.FieldTransportType, field.TypeEnum, value)
		_node.TransportType = value
	}
	if value, ok := _c.mutation.BaseURL(); ok {
		_spec.SetField(mcpserver.FieldBaseURL, field.TypeString, value)
		_node.BaseURL = value
	}
	if value, ok := _c.mutation.APIKeyEncrypted(); ok {
		_spec.SetField(mcpserver.FieldAPIKeyEncrypted, field.TypeString, value)
		_node.APIKeyEncrypted = value
	}
	if value, ok := _c.mutation.VerifySsl(); ok {
		_spec.SetField(mcpserver.FieldVerifySsl, field.TypeBool, value)
		_node.VerifySsl = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(mcpserver.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Arguments(); ok {
		_spec.SetField(mcpserver.FieldArguments, field.TypeJSON, value)
		_node.Arguments = value
	}
	if value, ok := _c.mutation.WorkingDirectory(); ok {
		_spec.SetField(mcpserver.FieldWorkingDirectory, field.TypeString, value)
		_node.WorkingDirectory = value
	}
	if value, ok := _c.mutation.EnvironmentVariables(); ok {
		_spec.SetField(mcpserver.FieldEnvironmentVariables, field.TypeJSON, value)
		_node.EnvironmentVariables = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(mcpserver.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mcpserver.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mcpserver.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// McpServerCreateBulk is the builder for creating many McpServer entities in bulk.
type McpServerCreateBulk struct {
	config
	err      error
	builders []*McpServerCreate
}

// Save creates the McpServer entities in the database.
func (_c *McpServerCreateBulk) Save(ctx context.Context) ([]*McpServer, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*McpServer, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*McpServerMutation)
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
func (_c *McpServerCreateBulk) SaveX(ctx context.Context) []*McpServer {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *McpServerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *McpServerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
