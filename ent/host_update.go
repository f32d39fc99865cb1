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
	"github.com/infrallm/infrallm/ent/host"
	"github.com/infrallm/infrallm/ent/predicate"
)

// HostUpdate is the builder for updating Host entities.
type HostUpdate struct {
	config
	hooks    []Hook
	mutation *HostMutation
}

// Where appends a list predicates to the HostUpdate builder.
func (_u *HostUpdate) Where(ps ...predicate.Host) *HostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *HostUpdate) SetName(v string) *HostUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HostUpdate) SetNillableName(v *string) *HostUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *HostUpdate) SetHostname(v string) *HostUpdate {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *HostUpdate) SetNillableHostname(v *string) *HostUpdate {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *HostUpdate) SetPort(v int) *HostUpdate {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *HostUpdate) SetNillablePort(v *int) *HostUpdate {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *HostUpdate) AddPort(v int) *HostUpdate {
	_u.mutation.AddPort(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *HostUpdate) SetUsername(v string) *HostUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *HostUpdate) SetNillableUsername(v *string) *HostUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *HostUpdate) ClearUsername() *HostUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *HostUpdate) SetCredentialID(v string) *HostUpdate {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *HostUpdate) SetNillableCredentialID(v *string) *HostUpdate {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *HostUpdate) ClearCredentialID() *HostUpdate {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *HostUpdate) SetTags(v []string) *HostUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *HostUpdate) AppendTags(v []string) *HostUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *HostUpdate) ClearTags() *HostUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *HostUpdate) SetEnvironment(v string) *HostUpdate {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *HostUpdate) SetNillableEnvironment(v *string) *HostUpdate {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// ClearEnvironment clears the value of the "environment" field.
func (_u *HostUpdate) ClearEnvironment() *HostUpdate {
	_u.mutation.ClearEnvironment()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HostUpdate) SetStatus(v host.Status) *HostUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HostUpdate) SetNillableStatus(v *host.Status) *HostUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAllowInsecureSsl sets the "allow_insecure_ssl" field.
func (_u *HostUpdate) SetAllowInsecureSsl(v bool) *HostUpdate {
	_u.mutation.SetAllowInsecureSsl(v)
	return _u
}

// SetNillableAllowInsecureSsl sets the "allow_insecure_ssl" field if the given value is not nil.
func (_u *HostUpdate) SetNillableAllowInsecureSsl(v *bool) *HostUpdate {
	if v != nil {
		_u.SetAllowInsecureSsl(*v)
	}
	return _u
}

// SetLastHealthCheck sets the "last_health_check" field.
func (_u *HostUpdate) SetLastHealthCheck(v time.Time) *HostUpdate {
	_u.mutation.SetLastHealthCheck(v)
	return _u
}

// SetNillableLastHealthCheck sets the "last_health_check" field if the given value is not nil.
func (_u *HostUpdate) SetNillableLastHealthCheck(v *time.Time) *HostUpdate {
	if v != nil {
		_u.SetLastHealthCheck(*v)
	}
	return _u
}

// ClearLastHealthCheck clears the value of the "last_health_check" field.
func (_u *HostUpdate) ClearLastHealthCheck() *HostUpdate {
	_u.mutation.ClearLastHealthCheck()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HostUpdate) SetUpdatedAt(v time.Time) *HostUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the HostMutation object of the builder.
func (_u *HostUpdate) Mutation() *HostMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HostUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HostUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := host.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HostUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := host.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Host.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hostname(); ok {
		if err := host.HostnameValidator(v); err != nil {
			return &ValidationError{Name: "hostname", err: fmt.Errorf(`ent: validator failed for field "Host.hostname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := host.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Host.status": %w`, err)}
		}
	}
	return nil
}

func (_u *HostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(host.Table, host.Columns, sqlgraph.NewFieldSpec(host.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(host.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(host.FieldHostname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(host.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(host.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(host.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(host.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(host.FieldCredentialID, field.TypeString, value)
	}
	if _u.mutation.CredentialIDCleared() {
		_spec.ClearField(host.FieldCredentialID, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(host.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, host.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(host.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(host.FieldEnvironment, field.TypeString, value)
	}
	if _u.mutation.EnvironmentCleared() {
		_spec.ClearField(host.FieldEnvironment, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(host.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllowInsecureSsl(); ok {
		_spec.SetField(host.FieldAllowInsecureSsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastHealthCheck(); ok {
		_spec.SetField(host.FieldLastHealthCheck, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckCleared() {
		_spec.ClearField(host.FieldLastHealthCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(host.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{host.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HostUpdateOne is the builder for updating a single Host entity.
type HostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HostMutation
}

// SetName sets the "name" field.
func (_u *HostUpdateOne) SetName(v string) *HostUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableName(v *string) *HostUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHostname sets the "hostname" field.
func (_u *HostUpdateOne) SetHostname(v string) *HostUpdateOne {
	_u.mutation.SetHostname(v)
	return _u
}

// SetNillableHostname sets the "hostname" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableHostname(v *string) *HostUpdateOne {
	if v != nil {
		_u.SetHostname(*v)
	}
	return _u
}

// SetPort sets the "port" field.
func (_u *HostUpdateOne) SetPort(v int) *HostUpdateOne {
	_u.mutation.ResetPort()
	_u.mutation.SetPort(v)
	return _u
}

// SetNillablePort sets the "port" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillablePort(v *int) *HostUpdateOne {
	if v != nil {
		_u.SetPort(*v)
	}
	return _u
}

// AddPort adds value to the "port" field.
func (_u *HostUpdateOne) AddPort(v int) *HostUpdateOne {
	_u.mutation.AddPort(v)
	return _u
}

// SetUsername sets the "username" field.
func (_u *HostUpdateOne) SetUsername(v string) *HostUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableUsername(v *string) *HostUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *HostUpdateOne) ClearUsername() *HostUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetCredentialID sets the "credential_id" field.
func (_u *HostUpdateOne) SetCredentialID(v string) *HostUpdateOne {
	_u.mutation.SetCredentialID(v)
	return _u
}

// SetNillableCredentialID sets the "credential_id" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableCredentialID(v *string) *HostUpdateOne {
	if v != nil {
		_u.SetCredentialID(*v)
	}
	return _u
}

// ClearCredentialID clears the value of the "credential_id" field.
func (_u *HostUpdateOne) ClearCredentialID() *HostUpdateOne {
	_u.mutation.ClearCredentialID()
	return _u
}

// SetTags sets the "tags" field.
func (_u *HostUpdateOne) SetTags(v []string) *HostUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *HostUpdateOne) AppendTags(v []string) *HostUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *HostUpdateOne) ClearTags() *HostUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetEnvironment sets the "environment" field.
func (_u *HostUpdateOne) SetEnvironment(v string) *HostUpdateOne {
	_u.mutation.SetEnvironment(v)
	return _u
}

// SetNillableEnvironment sets the "environment" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableEnvironment(v *string) *HostUpdateOne {
	if v != nil {
		_u.SetEnvironment(*v)
	}
	return _u
}

// ClearEnvironment clears the value of the "environment" field.
func (_u *HostUpdateOne) ClearEnvironment() *HostUpdateOne {
	_u.mutation.ClearEnvironment()
	return _u
}

// SetStatus sets the "status" field.
func (_u *HostUpdateOne) SetStatus(v host.Status) *HostUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableStatus(v *host.Status) *HostUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAllowInsecureSsl sets the "allow_insecure_ssl" field.
func (_u *HostUpdateOne) SetAllowInsecureSsl(v bool) *HostUpdateOne {
	_u.mutation.SetAllowInsecureSsl(v)
	return _u
}

// SetNillableAllowInsecureSsl sets the "allow_insecure_ssl" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableAllowInsecureSsl(v *bool) *HostUpdateOne {
	if v != nil {
		_u.SetAllowInsecureSsl(*v)
	}
	return _u
}

// SetLastHealthCheck sets the "last_health_check" field.
func (_u *HostUpdateOne) SetLastHealthCheck(v time.Time) *HostUpdateOne {
	_u.mutation.SetLastHealthCheck(v)
	return _u
}

// SetNillableLastHealthCheck sets the "last_health_check" field if the given value is not nil.
func (_u *HostUpdateOne) SetNillableLastHealthCheck(v *time.Time) *HostUpdateOne {
	if v != nil {
		_u.SetLastHealthCheck(*v)
	}
	return _u
}

// ClearLastHealthCheck clears the value of the "last_health_check" field.
func (_u *HostUpdateOne) ClearLastHealthCheck() *HostUpdateOne {
	_u.mutation.ClearLastHealthCheck()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HostUpdateOne) SetUpdatedAt(v time.Time) *HostUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the HostMutation object of the builder.
func (_u *HostUpdateOne) Mutation() *HostMutation {
	return _u.mutation
}

// Where appends a list predicates to the HostUpdate builder.
func (_u *HostUpdateOne) Where(ps ...predicate.Host) *HostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HostUpdateOne) Select(field string, fields ...string) *HostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Host entity.
func (_u *HostUpdateOne) Save(ctx context.Context) (*Host, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HostUpdateOne) SaveX(ctx context.Context) *Host {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HostUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := host.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HostUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := host.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Host.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hostname(); ok {
		if err := host.HostnameValidator(v); err != nil {
			return &ValidationError{Name: "hostname", err: fmt.Errorf(`ent: validator failed for field "Host.hostname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := host.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Host.status": %w`, err)}
		}
	}
	return nil
}

func (_u *HostUpdateOne) sqlSave(ctx context.Context) (_node *Host, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(host.Table, host.Columns, sqlgraph.NewFieldSpec(host.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Host.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, host.FieldID)
		for _, f := range fields {
			if !host.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != host.FieldID {
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
		_spec.SetField(host.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hostname(); ok {
		_spec.SetField(host.FieldHostname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Port(); ok {
		_spec.SetField(host.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPort(); ok {
		_spec.AddField(host.FieldPort, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(host.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(host.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.CredentialID(); ok {
		_spec.SetField(host.FieldCredentialID, field.TypeString, value)
	}
	if _u.mutation.CredentialIDCleared() {
		_spec.ClearField(host.FieldCredentialID, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(host.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, host.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(host.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Environment(); ok {
		_spec.SetField(host.FieldEnvironment, field.TypeString, value)
	}
	if _u.mutation.EnvironmentCleared() {
		_spec.ClearField(host.FieldEnvironment, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(host.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AllowInsecureSsl(); ok {
		_spec.SetField(host.FieldAllowInsecureSsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastHealthCheck(); ok {
		_spec.SetField(host.FieldLastHealthCheck, field.TypeTime, value)
	}
	if _u.mutation.LastHealthCheckCleared() {
		_spec.ClearField(host.FieldLastHealthCheck, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(host.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Host{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{host.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
