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
	"github.com/infrallm/infrallm/ent/job"
	"github.com/infrallm/infrallm/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *JobUpdate) SetName(v string) *JobUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableName(v *string) *JobUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *JobUpdate) SetTriggerType(v job.TriggerType) *JobUpdate {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTriggerType(v *job.TriggerType) *JobUpdate {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCronSchedule sets the "cron_schedule" field.
func (_u *JobUpdate) SetCronSchedule(v string) *JobUpdate {
	_u.mutation.SetCronSchedule(v)
	return _u
}

// SetNillableCronSchedule sets the "cron_schedule" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCronSchedule(v *string) *JobUpdate {
	if v != nil {
		_u.SetCronSchedule(*v)
	}
	return _u
}

// ClearCronSchedule clears the value of the "cron_schedule" field.
func (_u *JobUpdate) ClearCronSchedule() *JobUpdate {
	_u.mutation.ClearCronSchedule()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *JobUpdate) SetWebhookSecret(v string) *JobUpdate {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *JobUpdate) SetNillableWebhookSecret(v *string) *JobUpdate {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *JobUpdate) ClearWebhookSecret() *JobUpdate {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *JobUpdate) SetPrompt(v string) *JobUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePrompt(v *string) *JobUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *JobUpdate) ClearPrompt() *JobUpdate {
	_u.mutation.ClearPrompt()
	return _u
}

// SetHostIds sets the "host_ids" field.
func (_u *JobUpdate) SetHostIds(v []string) *JobUpdate {
	_u.mutation.SetHostIds(v)
	return _u
}

// AppendHostIds appends value to the "host_ids" field.
func (_u *JobUpdate) AppendHostIds(v []string) *JobUpdate {
	_u.mutation.AppendHostIds(v)
	return _u
}

// ClearHostIds clears the value of the "host_ids" field.
func (_u *JobUpdate) ClearHostIds() *JobUpdate {
	_u.mutation.ClearHostIds()
	return _u
}

// SetAutoRunLlm sets the "auto_run_llm" field.
func (_u *JobUpdate) SetAutoRunLlm(v bool) *JobUpdate {
	_u.mutation.SetAutoRunLlm(v)
	return _u
}

// SetNillableAutoRunLlm sets the "auto_run_llm" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAutoRunLlm(v *bool) *JobUpdate {
	if v != nil {
		_u.SetAutoRunLlm(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *JobUpdate) SetIsEnabled(v bool) *JobUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *JobUpdate) SetNillableIsEnabled(v *bool) *JobUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *JobUpdate) SetLastRunAt(v time.Time) *JobUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLastRunAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *JobUpdate) ClearLastRunAt() *JobUpdate {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := job.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Job.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(job.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(job.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronSchedule(); ok {
		_spec.SetField(job.FieldCronSchedule, field.TypeString, value)
	}
	if _u.mutation.CronScheduleCleared() {
		_spec.ClearField(job.FieldCronSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(job.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(job.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(job.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(job.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.HostIds(); ok {
		_spec.SetField(job.FieldHostIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHostIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldHostIds, value)
		})
	}
	if _u.mutation.HostIdsCleared() {
		_spec.ClearField(job.FieldHostIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoRunLlm(); ok {
		_spec.SetField(job.FieldAutoRunLlm, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(job.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(job.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(job.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetName sets the "name" field.
func (_u *JobUpdateOne) SetName(v string) *JobUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTriggerType sets the "trigger_type" field.
func (_u *JobUpdateOne) SetTriggerType(v job.TriggerType) *JobUpdateOne {
	_u.mutation.SetTriggerType(v)
	return _u
}

// SetNillableTriggerType sets the "trigger_type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTriggerType(v *job.TriggerType) *JobUpdateOne {
	if v != nil {
		_u.SetTriggerType(*v)
	}
	return _u
}

// SetCronSchedule sets the "cron_schedule" field.
func (_u *JobUpdateOne) SetCronSchedule(v string) *JobUpdateOne {
	_u.mutation.SetCronSchedule(v)
	return _u
}

// SetNillableCronSchedule sets the "cron_schedule" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCronSchedule(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCronSchedule(*v)
	}
	return _u
}

// ClearCronSchedule clears the value of the "cron_schedule" field.
func (_u *JobUpdateOne) ClearCronSchedule() *JobUpdateOne {
	_u.mutation.ClearCronSchedule()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *JobUpdateOne) SetWebhookSecret(v string) *JobUpdateOne {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableWebhookSecret(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *JobUpdateOne) ClearWebhookSecret() *JobUpdateOne {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *JobUpdateOne) SetPrompt(v string) *JobUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePrompt(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// ClearPrompt clears the value of the "prompt" field.
func (_u *JobUpdateOne) ClearPrompt() *JobUpdateOne {
	_u.mutation.ClearPrompt()
	return _u
}

// SetHostIds sets the "host_ids" field.
func (_u *JobUpdateOne) SetHostIds(v []string) *JobUpdateOne {
	_u.mutation.SetHostIds(v)
	return _u
}

// AppendHostIds appends value to the "host_ids" field.
func (_u *JobUpdateOne) AppendHostIds(v []string) *JobUpdateOne {
	_u.mutation.AppendHostIds(v)
	return _u
}

// ClearHostIds clears the value of the "host_ids" field.
func (_u *JobUpdateOne) ClearHostIds() *JobUpdateOne {
	_u.mutation.ClearHostIds()
	return _u
}

// SetAutoRunLlm sets the "auto_run_llm" field.
func (_u *JobUpdateOne) SetAutoRunLlm(v bool) *JobUpdateOne {
	_u.mutation.SetAutoRunLlm(v)
	return _u
}

// SetNillableAutoRunLlm sets the "auto_run_llm" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAutoRunLlm(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetAutoRunLlm(*v)
	}
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *JobUpdateOne) SetIsEnabled(v bool) *JobUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableIsEnabled(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *JobUpdateOne) SetLastRunAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLastRunAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (_u *JobUpdateOne) ClearLastRunAt() *JobUpdateOne {
	_u.mutation.ClearLastRunAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := job.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := job.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Job.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggerType(); ok {
		if err := job.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "Job.trigger_type": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
		_spec.SetField(job.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggerType(); ok {
		_spec.SetField(job.FieldTriggerType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CronSchedule(); ok {
		_spec.SetField(job.FieldCronSchedule, field.TypeString, value)
	}
	if _u.mutation.CronScheduleCleared() {
		_spec.ClearField(job.FieldCronSchedule, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(job.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(job.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(job.FieldPrompt, field.TypeString, value)
	}
	if _u.mutation.PromptCleared() {
		_spec.ClearField(job.FieldPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.HostIds(); ok {
		_spec.SetField(job.FieldHostIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHostIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldHostIds, value)
		})
	}
	if _u.mutation.HostIdsCleared() {
		_spec.ClearField(job.FieldHostIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.AutoRunLlm(); ok {
		_spec.SetField(job.FieldAutoRunLlm, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(job.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(job.FieldLastRunAt, field.TypeTime, value)
	}
	if _u.mutation.LastRunAtCleared() {
		_spec.ClearField(job.FieldLastRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
