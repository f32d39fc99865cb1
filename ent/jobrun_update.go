// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/jobrun"
	"github.com/infrallm/infrallm/ent/predicate"
)

// JobRunUpdate is the builder for updating JobRun entities.
type JobRunUpdate struct {
	config
	hooks    []Hook
	mutation *JobRunMutation
}

// Where appends a list predicates to the JobRunUpdate builder.
func (_u *JobRunUpdate) Where(ps ...predicate.JobRun) *JobRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobRunUpdate) SetStatus(v jobrun.Status) *JobRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableStatus(v *jobrun.Status) *JobRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobRunUpdate) SetPayload(v string) *JobRunUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillablePayload(v *string) *JobRunUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobRunUpdate) ClearPayload() *JobRunUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetResponse sets the "response" field.
func (_u *JobRunUpdate) SetResponse(v string) *JobRunUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableResponse(v *string) *JobRunUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *JobRunUpdate) ClearResponse() *JobRunUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetError sets the "error" field.
func (_u *JobRunUpdate) SetError(v string) *JobRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableError(v *string) *JobRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobRunUpdate) ClearError() *JobRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JobRunUpdate) SetSessionID(v string) *JobRunUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableSessionID(v *string) *JobRunUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobRunUpdate) ClearSessionID() *JobRunUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobRunUpdate) SetFinishedAt(v time.Time) *JobRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobRunUpdate) SetNillableFinishedAt(v *time.Time) *JobRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobRunUpdate) ClearFinishedAt() *JobRunUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the JobRunMutation object of the builder.
func (_u *JobRunUpdate) Mutation() *JobRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrun.Table, jobrun.Columns, sqlgraph.NewFieldSpec(jobrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(jobrun.FieldPayload, field.TypeString, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(jobrun.FieldPayload, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(jobrun.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(jobrun.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(jobrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(jobrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(jobrun.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(jobrun.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(jobrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(jobrun.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobRunUpdateOne is the builder for updating a single JobRun entity.
type JobRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobRunMutation
}

// SetStatus sets the "status" field.
func (_u *JobRunUpdateOne) SetStatus(v jobrun.Status) *JobRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableStatus(v *jobrun.Status) *JobRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobRunUpdateOne) SetPayload(v string) *JobRunUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillablePayload(v *string) *JobRunUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *JobRunUpdateOne) ClearPayload() *JobRunUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetResponse sets the "response" field.
func (_u *JobRunUpdateOne) SetResponse(v string) *JobRunUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableResponse(v *string) *JobRunUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *JobRunUpdateOne) ClearResponse() *JobRunUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetError sets the "error" field.
func (_u *JobRunUpdateOne) SetError(v string) *JobRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableError(v *string) *JobRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobRunUpdateOne) ClearError() *JobRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *JobRunUpdateOne) SetSessionID(v string) *JobRunUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableSessionID(v *string) *JobRunUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *JobRunUpdateOne) ClearSessionID() *JobRunUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobRunUpdateOne) SetFinishedAt(v time.Time) *JobRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobRunUpdateOne) SetNillableFinishedAt(v *time.Time) *JobRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobRunUpdateOne) ClearFinishedAt() *JobRunUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the JobRunMutation object of the builder.
func (_u *JobRunUpdateOne) Mutation() *JobRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobRunUpdate builder.
func (_u *JobRunUpdateOne) Where(ps ...predicate.JobRun) *JobRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobRunUpdateOne) Select(field string, fields ...string) *JobRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobRun entity.
func (_u *JobRunUpdateOne) Save(ctx context.Context) (*JobRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRunUpdateOne) SaveX(ctx context.Context) *JobRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *JobRunUpdateOne) sqlSave(ctx context.Context) (_node *JobRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrun.Table, jobrun.Columns, sqlgraph.NewFieldSpec(jobrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobrun.FieldID)
		for _, f := range fields {
			if !jobrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(jobrun.FieldPayload, field.TypeString, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(jobrun.FieldPayload, field.TypeString)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(jobrun.FieldResponse, field.TypeString, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(jobrun.FieldResponse, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(jobrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(jobrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(jobrun.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(jobrun.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(jobrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(jobrun.FieldFinishedAt, field.TypeTime)
	}
	_node = &JobRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
