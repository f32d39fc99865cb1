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
	"github.com/infrallm/infrallm/ent/predicate"
	"github.com/infrallm/infrallm/ent/promptsettings"
)

// PromptSettingsUpdate is the builder for updating PromptSettings entities.
type PromptSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *PromptSettingsMutation
}

// Where appends a list predicates to the PromptSettingsUpdate builder.
func (_u *PromptSettingsUpdate) Where(ps ...predicate.PromptSettings) *PromptSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptSettingsUpdate) SetSystemPrompt(v string) *PromptSettingsUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptSettingsUpdate) SetNillableSystemPrompt(v *string) *PromptSettingsUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *PromptSettingsUpdate) ClearSystemPrompt() *PromptSettingsUpdate {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetPersonalizationPrompt sets the "personalization_prompt" field.
func (_u *PromptSettingsUpdate) SetPersonalizationPrompt(v string) *PromptSettingsUpdate {
	_u.mutation.SetPersonalizationPrompt(v)
	return _u
}

// SetNillablePersonalizationPrompt sets the "personalization_prompt" field if the given value is not nil.
func (_u *PromptSettingsUpdate) SetNillablePersonalizationPrompt(v *string) *PromptSettingsUpdate {
	if v != nil {
		_u.SetPersonalizationPrompt(*v)
	}
	return _u
}

// ClearPersonalizationPrompt clears the value of the "personalization_prompt" field.
func (_u *PromptSettingsUpdate) ClearPersonalizationPrompt() *PromptSettingsUpdate {
	_u.mutation.ClearPersonalizationPrompt()
	return _u
}

// SetDefaultModel sets the "default_model" field.
func (_u *PromptSettingsUpdate) SetDefaultModel(v string) *PromptSettingsUpdate {
	_u.mutation.SetDefaultModel(v)
	return _u
}

// SetNillableDefaultModel sets the "default_model" field if the given value is not nil.
func (_u *PromptSettingsUpdate) SetNillableDefaultModel(v *string) *PromptSettingsUpdate {
	if v != nil {
		_u.SetDefaultModel(*v)
	}
	return _u
}

// ClearDefaultModel clears the value of the "default_model" field.
func (_u *PromptSettingsUpdate) ClearDefaultModel() *PromptSettingsUpdate {
	_u.mutation.ClearDefaultModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptSettingsUpdate) SetUpdatedAt(v time.Time) *PromptSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptSettingsMutation object of the builder.
func (_u *PromptSettingsUpdate) Mutation() *PromptSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptSettingsUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptSettingsUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PromptSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(promptsettings.Table, promptsettings.Columns, sqlgraph.NewFieldSpec(promptsettings.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(promptsettings.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(promptsettings.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.PersonalizationPrompt(); ok {
		_spec.SetField(promptsettings.FieldPersonalizationPrompt, field.TypeString, value)
	}
	if _u.mutation.PersonalizationPromptCleared() {
		_spec.ClearField(promptsettings.FieldPersonalizationPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultModel(); ok {
		_spec.SetField(promptsettings.FieldDefaultModel, field.TypeString, value)
	}
	if _u.mutation.DefaultModelCleared() {
		_spec.ClearField(promptsettings.FieldDefaultModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptSettingsUpdateOne is the builder for updating a single PromptSettings entity.
type PromptSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptSettingsMutation
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptSettingsUpdateOne) SetSystemPrompt(v string) *PromptSettingsUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptSettingsUpdateOne) SetNillableSystemPrompt(v *string) *PromptSettingsUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// ClearSystemPrompt clears the value of the "system_prompt" field.
func (_u *PromptSettingsUpdateOne) ClearSystemPrompt() *PromptSettingsUpdateOne {
	_u.mutation.ClearSystemPrompt()
	return _u
}

// SetPersonalizationPrompt sets the "personalization_prompt" field.
func (_u *PromptSettingsUpdateOne) SetPersonalizationPrompt(v string) *PromptSettingsUpdateOne {
	_u.mutation.SetPersonalizationPrompt(v)
	return _u
}

// SetNillablePersonalizationPrompt sets the "personalization_prompt" field if the given value is not nil.
func (_u *PromptSettingsUpdateOne) SetNillablePersonalizationPrompt(v *string) *PromptSettingsUpdateOne {
	if v != nil {
		_u.SetPersonalizationPrompt(*v)
	}
	return _u
}

// ClearPersonalizationPrompt clears the value of the "personalization_prompt" field.
func (_u *PromptSettingsUpdateOne) ClearPersonalizationPrompt() *PromptSettingsUpdateOne {
	_u.mutation.ClearPersonalizationPrompt()
	return _u
}

// SetDefaultModel sets the "default_model" field.
func (_u *PromptSettingsUpdateOne) SetDefaultModel(v string) *PromptSettingsUpdateOne {
	_u.mutation.SetDefaultModel(v)
	return _u
}

// SetNillableDefaultModel sets the "default_model" field if the given value is not nil.
func (_u *PromptSettingsUpdateOne) SetNillableDefaultModel(v *string) *PromptSettingsUpdateOne {
	if v != nil {
		_u.SetDefaultModel(*v)
	}
	return _u
}

// ClearDefaultModel clears the value of the "default_model" field.
func (_u *PromptSettingsUpdateOne) ClearDefaultModel() *PromptSettingsUpdateOne {
	_u.mutation.ClearDefaultModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromptSettingsUpdateOne) SetUpdatedAt(v time.Time) *PromptSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PromptSettingsMutation object of the builder.
func (_u *PromptSettingsUpdateOne) Mutation() *PromptSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptSettingsUpdate builder.
func (_u *PromptSettingsUpdateOne) Where(ps ...predicate.PromptSettings) *PromptSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptSettingsUpdateOne) Select(field string, fields ...string) *PromptSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptSettings entity.
func (_u *PromptSettingsUpdateOne) Save(ctx context.Context) (*PromptSettings, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptSettingsUpdateOne) SaveX(ctx context.Context) *PromptSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromptSettingsUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promptsettings.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PromptSettingsUpdateOne) sqlSave(ctx context.Context) (_node *PromptSettings, err error) {
	_spec := sqlgraph.NewUpdateSpec(promptsettings.Table, promptsettings.Columns, sqlgraph.NewFieldSpec(promptsettings.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promptsettings.FieldID)
		for _, f := range fields {
			if !promptsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != promptsettings.FieldID {
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
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(promptsettings.FieldSystemPrompt, field.TypeString, value)
	}
	if _u.mutation.SystemPromptCleared() {
		_spec.ClearField(promptsettings.FieldSystemPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.PersonalizationPrompt(); ok {
		_spec.SetField(promptsettings.FieldPersonalizationPrompt, field.TypeString, value)
	}
	if _u.mutation.PersonalizationPromptCleared() {
		_spec.ClearField(promptsettings.FieldPersonalizationPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.DefaultModel(); ok {
		_spec.SetField(promptsettings.FieldDefaultModel, field.TypeString, value)
	}
	if _u.mutation.DefaultModelCleared() {
		_spec.ClearField(promptsettings.FieldDefaultModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promptsettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PromptSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promptsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
