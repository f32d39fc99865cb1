// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/auditlog"
)

// AuditLogCreate is the builder for creating a AuditLog entity.
type AuditLogCreate struct {
	config
	mutation *AuditLogMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *AuditLogCreate) SetOrganizationID(v string) *AuditLogCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *AuditLogCreate) SetEventType(v auditlog.EventType) *AuditLogCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AuditLogCreate) SetUserID(v string) *AuditLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableUserID(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetHostID sets the "host_id" field.
func (_c *AuditLogCreate) SetHostID(v string) *AuditLogCreate {
	_c.mutation.SetHostID(v)
	return _c
}

// SetNillableHostID sets the "host_id" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableHostID(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetHostID(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *AuditLogCreate) SetExecutionID(v string) *AuditLogCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableExecutionID(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetWasAllowed sets the "was_allowed" field.
func (_c *AuditLogCreate) SetWasAllowed(v bool) *AuditLogCreate {
	_c.mutation.SetWasAllowed(v)
	return _c
}

// SetNillableWasAllowed sets the "was_allowed" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableWasAllowed(v *bool) *AuditLogCreate {
	if v != nil {
		_c.SetWasAllowed(*v)
	}
	return _c
}

// SetDenialReason sets the "denial_reason" field.
func (_c *AuditLogCreate) SetDenialReason(v string) *AuditLogCreate {
	_c.mutation.SetDenialReason(v)
	return _c
}

// SetNillableDenialReason sets the "denial_reason" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableDenialReason(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetDenialReason(*v)
	}
	return _c
}

// SetLlmReasoning sets the "llm_reasoning" field.
func (_c *AuditLogCreate) SetLlmReasoning(v string) *AuditLogCreate {
	_c.mutation.SetLlmReasoning(v)
	return _c
}

// SetNillableLlmReasoning sets the "llm_reasoning" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableLlmReasoning(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetLlmReasoning(*v)
	}
	return _c
}

// SetMetadataJSON sets the "metadata_json" field.
func (_c *AuditLogCreate) SetMetadataJSON(v string) *AuditLogCreate {
	_c.mutation.SetMetadataJSON(v)
	return _c
}

// SetNillableMetadataJSON sets the "metadata_json" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableMetadataJSON(v *string) *AuditLogCreate {
	if v != nil {
		_c.SetMetadataJSON(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditLogCreate) SetCreatedAt(v time.Time) *AuditLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditLogCreate) SetNillableCreatedAt(v *time.Time) *AuditLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditLogCreate) SetID(v string) *AuditLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AuditLogMutation object of the builder.
func (_c *AuditLogCreate) Mutation() *AuditLogMutation {
	return _c.mutation
}

// Save creates the AuditLog in the database.
func (_c *AuditLogCreate) Save(ctx context.Context) (*AuditLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditLogCreate) SaveX(ctx context.Context) *AuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditLogCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "AuditLog.organization_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "AuditLog.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := auditlog.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "AuditLog.event_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditLog.created_at"`)}
	}
	return nil
}

func (_c *AuditLogCreate) sqlSave(ctx context.Context) (*AuditLog, error) {
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
			return nil, fmt.Errorf("unexpected AuditLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditLogCreate) createSpec() (*AuditLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditlog.Table, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(auditlog.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(auditlog.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(auditlog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.HostID(); ok {
		_spec.SetField(auditlog.FieldHostID, field.TypeString, value)
		_node.HostID = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(auditlog.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.WasAllowed(); ok {
		_spec.SetField(auditlog.FieldWasAllowed, field.TypeBool, value)
		_node.WasAllowed = &value
	}
	if value, ok := _c.mutation.DenialReason(); ok {
		_spec.SetField(auditlog.FieldDenialReason, field.TypeString, value)
		_node.DenialReason = value
	}
	if value, ok := _c.mutation.LlmReasoning(); ok {
		_spec.SetField(auditlog.FieldLlmReasoning, field.TypeString, value)
		_node.LlmReasoning = value
	}
	if value, ok := _c.mutation.MetadataJSON(); ok {
		_spec.SetField(auditlog.FieldMetadataJSON, field.TypeString, value)
		_node.MetadataJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AuditLogCreateBulk is the builder for creating many AuditLog entities in bulk.
type AuditLogCreateBulk struct {
	config
	err      error
	builders []*AuditLogCreate
}

// Save creates the AuditLog entities in the database.
func (_c *AuditLogCreateBulk) Save(ctx context.Context) ([]*AuditLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditLogMutation)
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
func (_c *AuditLogCreateBulk) SaveX(ctx context.Context) []*AuditLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
