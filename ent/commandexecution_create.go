// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/commandexecution"
)

// CommandExecutionCreate is the builder for creating a CommandExecution entity.
type CommandExecutionCreate struct {
	config
	mutation *CommandExecutionMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *CommandExecutionCreate) SetOrganizationID(v string) *CommandExecutionCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CommandExecutionCreate) SetUserID(v string) *CommandExecutionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetHostID sets the "host_id" field.
func (_c *CommandExecutionCreate) SetHostID(v string) *CommandExecutionCreate {
	_c.mutation.SetHostID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CommandExecutionCreate) SetSessionID(v string) *CommandExecutionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *CommandExecutionCreate) SetNillableSessionID(v *string) *CommandExecutionCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetCommand sets the "command" field.
func (_c *CommandExecutionCreate) SetCommand(v string) *CommandExecutionCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *CommandExecutionCreate) SetExitCode(v int) *CommandExecutionCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetStdout sets the "stdout" field.
func (_c *CommandExecutionCreate) SetStdout(v string) *CommandExecutionCreate {
	_c.mutation.SetStdout(v)
	return _c
}

// SetStderr sets the "stderr" field.
func (_c *CommandExecutionCreate) SetStderr(v string) *CommandExecutionCreate {
	_c.mutation.SetStderr(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *CommandExecutionCreate) SetDurationMs(v int64) *CommandExecutionCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetWasDryRun sets the "was_dry_run" field.
func (_c *CommandExecutionCreate) SetWasDryRun(v bool) *CommandExecutionCreate {
	_c.mutation.SetWasDryRun(v)
	return _c
}

// SetNillableWasDryRun sets the "was_dry_run" field if the given value is not nil.
func (_c *CommandExecutionCreate) SetNillableWasDryRun(v *bool) *CommandExecutionCreate {
	if v != nil {
		_c.SetWasDryRun(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CommandExecutionCreate) SetCreatedAt(v time.Time) *CommandExecutionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CommandExecutionCreate) SetNillableCreatedAt(v *time.Time) *CommandExecutionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CommandExecutionCreate) SetID(v string) *CommandExecutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CommandExecutionMutation object of the builder.
func (_c *CommandExecutionCreate) Mutation() *CommandExecutionMutation {
	return _c.mutation
}

// Save creates the CommandExecution in the database.
func (_c *CommandExecutionCreate) Save(ctx context.Context) (*CommandExecution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CommandExecutionCreate) SaveX(ctx context.Context) *CommandExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandExecutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandExecutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CommandExecutionCreate) defaults() {
	if _, ok := _c.mutation.WasDryRun(); !ok {
		v := commandexecution.DefaultWasDryRun
		_c.mutation.SetWasDryRun(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := commandexecution.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CommandExecutionCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "CommandExecution.organization_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CommandExecution.user_id"`)}
	}
	if _, ok := _c.mutation.HostID(); !ok {
		return &ValidationError{Name: "host_id", err: errors.New(`ent: missing required field "CommandExecution.host_id"`)}
	}
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "CommandExecution.command"`)}
	}
	if _, ok := _c.mutation.ExitCode(); !ok {
		return &ValidationError{Name: "exit_code", err: errors.New(`ent: missing required field "CommandExecution.exit_code"`)}
	}
	if _, ok := _c.mutation.Stdout(); !ok {
		return &ValidationError{Name: "stdout", err: errors.New(`ent: missing required field "CommandExecution.stdout"`)}
	}
	if _, ok := _c.mutation.Stderr(); !ok {
		return &ValidationError{Name: "stderr", err: errors.New(`ent: missing required field "CommandExecution.stderr"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "CommandExecution.duration_ms"`)}
	}
	if _, ok := _c.mutation.WasDryRun(); !ok {
		return &ValidationError{Name: "was_dry_run", err: errors.New(`ent: missing required field "CommandExecution.was_dry_run"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CommandExecution.created_at"`)}
	}
	return nil
}

func (_c *CommandExecutionCreate) sqlSave(ctx context.Context) (*CommandExecution, error) {
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
			return nil, fmt.Errorf("unexpected CommandExecution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CommandExecutionCreate) createSpec() (*CommandExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &CommandExecution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(commandexecution.Table, sqlgraph.NewFieldSpec(commandexecution.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(commandexecution.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(commandexecution.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.HostID(); ok {
		_spec.SetField(commandexecution.FieldHostID, field.TypeString, value)
		_node.HostID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(commandexecution.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(commandexecution.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(commandexecution.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = value
	}
	if value, ok := _c.mutation.Stdout(); ok {
		_spec.SetField(commandexecution.FieldStdout, field.TypeString, value)
		_node.Stdout = value
	}
	if value, ok := _c.mutation.Stderr(); ok {
		_spec.SetField(commandexecution.FieldStderr, field.TypeString, value)
		_node.Stderr = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(commandexecution.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.WasDryRun(); ok {
		_spec.SetField(commandexecution.FieldWasDryRun, field.TypeBool, value)
		_node.WasDryRun = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(commandexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CommandExecutionCreateBulk is the builder for creating many CommandExecution entities in bulk.
type CommandExecutionCreateBulk struct {
	config
	err      error
	builders []*CommandExecutionCreate
}

// Save creates the CommandExecution entities in the database.
func (_c *CommandExecutionCreateBulk) Save(ctx context.Context) ([]*CommandExecution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CommandExecution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CommandExecutionMutation)
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
func (_c *CommandExecutionCreateBulk) SaveX(ctx context.Context) []*CommandExecution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CommandExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CommandExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
