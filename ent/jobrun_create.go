// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/jobrun"
)

// JobRunCreate is the builder for creating a JobRun entity.
type JobRunCreate struct {
	config
	mutation *JobRunMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *JobRunCreate) SetOrganizationID(v string) *JobRunCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *JobRunCreate) SetJobID(v string) *JobRunCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *JobRunCreate) SetTriggeredBy(v jobrun.TriggeredBy) *JobRunCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobRunCreate) SetStatus(v jobrun.Status) *JobRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableStatus(v *jobrun.Status) *JobRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *JobRunCreate) SetPayload(v string) *JobRunCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_c *JobRunCreate) SetNillablePayload(v *string) *JobRunCreate {
	if v != nil {
		_c.SetPayload(*v)
	}
	return _c
}

// SetResponse sets the "response" field.
func (_c *JobRunCreate) SetResponse(v string) *JobRunCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableResponse(v *string) *JobRunCreate {
	if v != nil {
		_c.SetResponse(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *JobRunCreate) SetError(v string) *JobRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableError(v *string) *JobRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *JobRunCreate) SetSessionID(v string) *JobRunCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableSessionID(v *string) *JobRunCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobRunCreate) SetCreatedAt(v time.Time) *JobRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableCreatedAt(v *time.Time) *JobRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *JobRunCreate) SetFinishedAt(v time.Time) *JobRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *JobRunCreate) SetNillableFinishedAt(v *time.Time) *JobRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobRunCreate) SetID(v string) *JobRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobRunMutation object of the builder.
func (_c *JobRunCreate) Mutation() *JobRunMutation {
	return _c.mutation
}

// Save creates the JobRun in the database.
func (_c *JobRunCreate) Save(ctx context.Context) (*JobRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobRunCreate) SaveX(ctx context.Context) *JobRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobRunCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "JobRun.organization_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobRun.job_id"`)}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "JobRun.triggered_by"`)}
	}
	if v, ok := _c.mutation.TriggeredBy(); ok {
		if err := jobrun.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "JobRun.triggered_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobRun.created_at"`)}
	}
	return nil
}

func (_c *JobRunCreate) sqlSave(ctx context.Context) (*JobRun, error) {
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
			return nil, fmt.Errorf("unexpected JobRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobRunCreate) createSpec() (*JobRun, *sqlgraph.CreateSpec) {
	var (
		_node = &JobRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobrun.Table, sqlgraph.NewFieldSpec(jobrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(jobrun.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(jobrun.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(jobrun.FieldTriggeredBy, field.TypeEnum, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(jobrun.FieldPayload, field.TypeString, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(jobrun.FieldResponse, field.TypeString, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(jobrun.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(jobrun.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(jobrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// JobRunCreateBulk is the builder for creating many JobRun entities in bulk.
type JobRunCreateBulk struct {
	config
	err      error
	builders []*JobRunCreate
}

// Save creates the JobRun entities in the database.
func (_c *JobRunCreateBulk) Save(ctx context.Context) ([]*JobRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobRunMutation)
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
func (_c *JobRunCreateBulk) SaveX(ctx context.Context) []*JobRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
