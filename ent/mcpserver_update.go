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
	"github.com/infrallm/infrallm/ent/mcpserver"
	"github.com/infrallm/infrallm/ent/predicate"
)

// McpServerUpdate is the builder for updating McpServer entities.
type McpServerUpdate struct {
	config
	hooks    []Hook
	mutation *McpServerMutation
}

// Where appends a list predicates to the McpServerUpdate builder.
func (_u *McpServerUpdate) Where(ps ...predicate.McpServer) *McpServerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *McpServerUpdate) SetName(v string) *McpServerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableName(v *string) *McpServerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTransportType sets the "transport_type" field.
func (_u *McpServerUpdate) SetTransportType(v mcpserver.TransportType) *McpServerUpdate {
	_u.mutation.SetTransportType(v)
	return _u
}

// SetNillableTransportType sets the "transport_type" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableTransportType(v *mcpserver.TransportType) *McpServerUpdate {
	if v != nil {
		_u.SetTransportType(*v)
	}
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *McpServerUpdate) SetBaseURL(v string) *McpServerUpdate {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableBaseURL(v *string) *McpServerUpdate {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *McpServerUpdate) ClearBaseURL() *McpServerUpdate {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (_u *McpServerUpdate) SetAPIKeyEncrypted(v string) *McpServerUpdate {
	_u.mutation.SetAPIKeyEncrypted(v)
	return _u
}

// SetNillableAPIKeyEncrypted sets the "api_key_encrypted" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableAPIKeyEncrypted(v *string) *McpServerUpdate {
	if v != nil {
		_u.SetAPIKeyEncrypted(*v)
	}
	return _u
}

// ClearAPIKeyEncrypted clears the value of the "api_key_encrypted" field.
func (_u *McpServerUpdate) ClearAPIKeyEncrypted() *McpServerUpdate {
	_u.mutation.ClearAPIKeyEncrypted()
	return _u
}

// SetVerifySsl sets the "verify_ssl" field.
func (_u *McpServerUpdate) SetVerifySsl(v bool) *McpServerUpdate {
	_u.mutation.SetVerifySsl(v)
	return _u
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableVerifySsl(v *bool) *McpServerUpdate {
	if v != nil {
		_u.SetVerifySsl(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *McpServerUpdate) SetCommand(v string) *McpServerUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableCommand(v *string) *McpServerUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *McpServerUpdate) ClearCommand() *McpServerUpdate {
	_u.mutation.ClearCommand()
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *McpServerUpdate) SetArguments(v []string) *McpServerUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// AppendArguments appends value to the "arguments" field.
func (_u *McpServerUpdate) AppendArguments(v []string) *McpServerUpdate {
	_u.mutation.AppendArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *McpServerUpdate) ClearArguments() *McpServerUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetWorkingDirectory sets the "working_directory" field.
func (_u *McpServerUpdate) SetWorkingDirectory(v string) *McpServerUpdate {
	_u.mutation.SetWorkingDirectory(v)
	return _u
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableWorkingDirectory(v *string) *McpServerUpdate {
	if v != nil {
		_u.SetWorkingDirectory(*v)
	}
	return _u
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (_u *McpServerUpdate) ClearWorkingDirectory() *McpServerUpdate {
	_u.mutation.ClearWorkingDirectory()
	return _u
}

// SetEnvironmentVariables sets the "environment_variables" field.
func (_u *McpServerUpdate) SetEnvironmentVariables(v map[string]string) *McpServerUpdate {
	_u.mutation.SetEnvironmentVariables(v)
	return _u
}

// ClearEnvironmentVariables clears the value of the "environment_variables" field.
func (_u *McpServerUpdate) ClearEnvironmentVariables() *McpServerUpdate {
	_u.mutation.ClearEnvironmentVariables()
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *McpServerUpdate) SetIsEnabled(v bool) *McpServerUpdate {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *McpServerUpdate) SetNillableIsEnabled(v *bool) *McpServerUpdate {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *McpServerUpdate) SetUpdatedAt(v time.Time) *McpServerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the McpServerMutation object of the builder.
func (_u *McpServerUpdate) Mutation() *McpServerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *McpServerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *McpServerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *McpServerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *McpServerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *McpServerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mcpserver.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *McpServerUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mcpserver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "McpServer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransportType(); ok {
		if err := mcpserver.TransportTypeValidator(v); err != nil {
			return &ValidationError{Name: "transport_type", err: fmt.Errorf(`ent: validator failed for field "McpServer.transport_type": %w`, err)}
		}
	}
	return nil
}

func (_u *McpServerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mcpserver.Table, mcpserver.Columns, sqlgraph.NewFieldSpec(mcpserver.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mcpserver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransportType(); ok {
		_spec.SetField(mcpserver.FieldTransportType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(mcpserver.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(mcpserver.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyEncrypted(); ok {
		_spec.SetField(mcpserver.FieldAPIKeyEncrypted, field.TypeString, value)
	}
	if _u.mutation.APIKeyEncryptedCleared() {
		_spec.ClearField(mcpserver.FieldAPIKeyEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.VerifySsl(); ok {
		_spec.SetField(mcpserver.FieldVerifySsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(mcpserver.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(mcpserver.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(mcpserver.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArguments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mcpserver.FieldArguments, value)
		})
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(mcpserver.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkingDirectory(); ok {
		_spec.SetField(mcpserver.FieldWorkingDirectory, field.TypeString, value)
	}
	if _u.mutation.WorkingDirectoryCleared() {
		_spec.ClearField(mcpserver.FieldWorkingDirectory, field.TypeString)
	}
	if value, ok := _u.mutation.EnvironmentVariables(); ok {
		_spec.SetField(mcpserver.FieldEnvironmentVariables, field.TypeJSON, value)
	}
	if _u.mutation.EnvironmentVariablesCleared() {
		_spec.ClearField(mcpserver.FieldEnvironmentVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(mcpserver.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mcpserver.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcpserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// McpServerUpdateOne is the builder for updating a single McpServer entity.
type McpServerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *McpServerMutation
}

// SetName sets the "name" field.
func (_u *McpServerUpdateOne) SetName(v string) *McpServerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableName(v *string) *McpServerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTransportType sets the "transport_type" field.
func (_u *McpServerUpdateOne) SetTransportType(v mcpserver.TransportType) *McpServerUpdateOne {
	_u.mutation.SetTransportType(v)
	return _u
}

// SetNillableTransportType sets the "transport_type" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableTransportType(v *mcpserver.TransportType) *McpServerUpdateOne {
	if v != nil {
		_u.SetTransportType(*v)
	}
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *McpServerUpdateOne) SetBaseURL(v string) *McpServerUpdateOne {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableBaseURL(v *string) *McpServerUpdateOne {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// ClearBaseURL clears the value of the "base_url" field.
func (_u *McpServerUpdateOne) ClearBaseURL() *McpServerUpdateOne {
	_u.mutation.ClearBaseURL()
	return _u
}

// SetAPIKeyEncrypted sets the "api_key_encrypted" field.
func (_u *McpServerUpdateOne) SetAPIKeyEncrypted(v string) *McpServerUpdateOne {
	_u.mutation.SetAPIKeyEncrypted(v)
	return _u
}

// SetNillableAPIKeyEncrypted sets the "api_key_encrypted" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableAPIKeyEncrypted(v *string) *McpServerUpdateOne {
	if v != nil {
		_u.SetAPIKeyEncrypted(*v)
	}
	return _u
}

// ClearAPIKeyEncrypted clears the value of the "api_key_encrypted" field.
func (_u *McpServerUpdateOne) ClearAPIKeyEncrypted() *McpServerUpdateOne {
	_u.mutation.ClearAPIKeyEncrypted()
	return _u
}

// SetVerifySsl sets the "verify_ssl" field.
func (_u *McpServerUpdateOne) SetVerifySsl(v bool) *McpServerUpdateOne {
	_u.mutation.SetVerifySsl(v)
	return _u
}

// SetNillableVerifySsl sets the "verify_ssl" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableVerifySsl(v *bool) *McpServerUpdateOne {
	if v != nil {
		_u.SetVerifySsl(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *McpServerUpdateOne) SetCommand(v string) *McpServerUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableCommand(v *string) *McpServerUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// ClearCommand clears the value of the "command" field.
func (_u *McpServerUpdateOne) ClearCommand() *McpServerUpdateOne {
	_u.mutation.ClearCommand()
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *McpServerUpdateOne) SetArguments(v []string) *McpServerUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// AppendArguments appends value to the "arguments" field.
func (_u *McpServerUpdateOne) AppendArguments(v []string) *McpServerUpdateOne {
	_u.mutation.AppendArguments(v)
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *McpServerUpdateOne) ClearArguments() *McpServerUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetWorkingDirectory sets the "working_directory" field.
func (_u *McpServerUpdateOne) SetWorkingDirectory(v string) *McpServerUpdateOne {
	_u.mutation.SetWorkingDirectory(v)
	return _u
}

// SetNillableWorkingDirectory sets the "working_directory" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableWorkingDirectory(v *string) *McpServerUpdateOne {
	if v != nil {
		_u.SetWorkingDirectory(*v)
	}
	return _u
}

// ClearWorkingDirectory clears the value of the "working_directory" field.
func (_u *McpServerUpdateOne) ClearWorkingDirectory() *McpServerUpdateOne {
	_u.mutation.ClearWorkingDirectory()
	return _u
}

// SetEnvironmentVariables sets the "environment_variables" field.
func (_u *McpServerUpdateOne) SetEnvironmentVariables(v map[string]string) *McpServerUpdateOne {
	_u.mutation.SetEnvironmentVariables(v)
	return _u
}

// ClearEnvironmentVariables clears the value of the "environment_variables" field.
func (_u *McpServerUpdateOne) ClearEnvironmentVariables() *McpServerUpdateOne {
	_u.mutation.ClearEnvironmentVariables()
	return _u
}

// SetIsEnabled sets the "is_enabled" field.
func (_u *McpServerUpdateOne) SetIsEnabled(v bool) *McpServerUpdateOne {
	_u.mutation.SetIsEnabled(v)
	return _u
}

// SetNillableIsEnabled sets the "is_enabled" field if the given value is not nil.
func (_u *McpServerUpdateOne) SetNillableIsEnabled(v *bool) *McpServerUpdateOne {
	if v != nil {
		_u.SetIsEnabled(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *McpServerUpdateOne) SetUpdatedAt(v time.Time) *McpServerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the McpServerMutation object of the builder.
func (_u *McpServerUpdateOne) Mutation() *McpServerMutation {
	return _u.mutation
}

// Where appends a list predicates to the McpServerUpdate builder.
func (_u *McpServerUpdateOne) Where(ps ...predicate.McpServer) *McpServerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *McpServerUpdateOne) Select(field string, fields ...string) *McpServerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated McpServer entity.
func (_u *McpServerUpdateOne) Save(ctx context.Context) (*McpServer, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *McpServerUpdateOne) SaveX(ctx context.Context) *McpServer {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *McpServerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *McpServerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *McpServerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mcpserver.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *McpServerUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mcpserver.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "McpServer.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TransportType(); ok {
		if err := mcpserver.TransportTypeValidator(v); err != nil {
			return &ValidationError{Name: "transport_type", err: fmt.Errorf(`ent: validator failed for field "McpServer.transport_type": %w`, err)}
		}
	}
	return nil
}

func (_u *McpServerUpdateOne) sqlSave(ctx context.Context) (_node *McpServer, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mcpserver.Table, mcpserver.Columns, sqlgraph.NewFieldSpec(mcpserver.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "McpServer.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mcpserver.FieldID)
		for _, f := range fields {
			if !mcpserver.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mcpserver.FieldID {
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
		_spec.SetField(mcpserver.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransportType(); ok {
		_spec.SetField(mcpserver.FieldTransportType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(mcpserver.FieldBaseURL, field.TypeString, value)
	}
	if _u.mutation.BaseURLCleared() {
		_spec.ClearField(mcpserver.FieldBaseURL, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyEncrypted(); ok {
		_spec.SetField(mcpserver.FieldAPIKeyEncrypted, field.TypeString, value)
	}
	if _u.mutation.APIKeyEncryptedCleared() {
		_spec.ClearField(mcpserver.FieldAPIKeyEncrypted, field.TypeString)
	}
	if value, ok := _u.mutation.VerifySsl(); ok {
		_spec.SetField(mcpserver.FieldVerifySsl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(mcpserver.FieldCommand, field.TypeString, value)
	}
	if _u.mutation.CommandCleared() {
		_spec.ClearField(mcpserver.FieldCommand, field.TypeString)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(mcpserver.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedArguments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mcpserver.FieldArguments, value)
		})
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(mcpserver.FieldArguments, field.TypeJSON)
	}
	if value, ok := _u.mutation.WorkingDirectory(); ok {
		_spec.SetField(mcpserver.FieldWorkingDirectory, field.TypeString, value)
	}
	if _u.mutation.WorkingDirectoryCleared() {
		_spec.ClearField(mcpserver.FieldWorkingDirectory, field.TypeString)
	}
	if value, ok := _u.mutation.EnvironmentVariables(); ok {
		_spec.SetField(mcpserver.FieldEnvironmentVariables, field.TypeJSON, value)
	}
	if _u.mutation.EnvironmentVariablesCleared() {
		_spec.ClearField(mcpserver.FieldEnvironmentVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsEnabled(); ok {
		_spec.SetField(mcpserver.FieldIsEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mcpserver.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &McpServer{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mcpserver.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
