// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/job"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *JobCreate) SetOrganizationID(v string) *JobCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *JobCreate) SetUserID(v string) *JobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *JobCreate) SetName(v string) *JobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *JobCreate) SetTriggerType(v job.TriggerType) *JobCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetCronSchedule sets the "cron_schedule" field.
func (_c *JobCreate) SetCronSchedule(v string) *JobCreate {
	_c.mutation.SetCronSchedule(v)
	return _c
}

// SetNillableCronSchedule sets the "cron_schedule" field if the given value is not nil.
func (_c *JobCreate) SetNillableCronSchedule(v *string) *JobCreate {
	if v != nil {
		_c.SetCronSchedule(*v)
	}
	return _c
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_c *JobCreate) SetWebhookSecret(v string) *JobCreate {
	_c.mutation.SetWebhookSecret(v)
	return _c
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_c *JobCreate) SetNillableWebhookSecret(v *string) *JobCreate {
	if v != nil {
		_c.SetWebhookSecret(*v)
	}
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *JobCreate) SetPrompt(v string) *JobCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_c *JobCreate) SetNillablePrompt(v *string) *JobCreate {
	if v != nil {
		_c.SetPrompt(*v)
	}
	return _c
}

// SetHostIds sets the "host_ids" field.
func (_c *JobCreate) SetHostIds(v []string) *JobCreate {
	_c.mutation.SetHostIds(v)
	return _c
}

// SetAutoRunLlm sets the "auto_run_llm" field.
func (_c *JobCreate) SetAutoRunLlm(v bool) *JobCreate {
	_c.mutation.SetAutoRunLlm(v)
	return _c
}

// SetNillableAutoRunLlm sets the "auto_run_llm" field if the given value is not nil.
func (_c *JobCreate) SetNillableAutoRunLlm(v *bool) *JobCreate {
	if v != nil {
		_c.SetAutoRunLlm(*v)
	}
	return _c
}

// SetIsEnabled sets the "is_enabled" field.
func (_c *JobCreate) SetIsEnabled(v bool) *JobCreate {
	_c.mutation.SetIsEnabled(v)
	return _c
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_c *JobCreate) SetNillableIsEnabled(v *bool) *JobCreate {
	if v != nil {
		_c.SetIsEnabled(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *JobCreate) SetLastRunAt(v time.Time) *JobCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLastRunAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.AutoRunLlm(); !ok {
		v := job.DefaultAutoRunLlm
		_c.mutation.SetAutoRunLlm(v)
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		v := job.DefaultIsEnabled
		_c.mutation.SetIsEnabled(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Job.organization_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Job.user_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Job.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "Job.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := job.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Job.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutoRunLlm(); !ok {
		return &ValidationError{Name: "auto_run_llm", err: errors.New(`ent: missing required field "Job.auto_run_llm"`)}
	}
	if _, ok := _c.mutation.IsEnabled(); !ok {
		return &ValidationError{Name: "is_enabled", err: errors.New(`ent: missing required field "Job.is_enabled"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(job.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(job.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(job.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.CronSchedule(); ok {
		_spec.SetField(job.FieldCronSchedule, field.TypeString, value)
		_node.CronSchedule = value
	}
	if value, ok := _c.mutation.WebhookSecret(); ok {
		_spec.SetField(job.FieldWebhookSecret, field.TypeString, value)
		_node.WebhookSecret = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(job.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.HostIds(); ok {
		_spec.SetField(job.FieldHostIds, field.TypeJSON, value)
		_node.HostIds = value
	}
	if value, ok := _c.mutation.AutoRunLlm(); ok {
		_spec.SetField(job.FieldAutoRunLlm, field.TypeBool, value)
		_node.AutoRunLlm = value
	}
	if value, ok := _c.mutation.IsEnabled(); ok {
		_spec.SetField(job.FieldIsEnabled, field.TypeBool, value)
		_node.IsEnabled = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(job.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
