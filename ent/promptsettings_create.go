// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/promptsettings"
)

// PromptSettingsCreate is the builder for creating a PromptSettings entity.
type PromptSettingsCreate struct {
	config
	mutation *PromptSettingsMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *PromptSettingsCreate) SetOrganizationID(v string) *PromptSettingsCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PromptSettingsCreate) SetUserID(v string) *PromptSettingsCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *PromptSettingsCreate) SetSystemPrompt(v string) *PromptSettingsCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_c *PromptSettingsCreate) SetNillableSystemPrompt(v *string) *PromptSettingsCreate {
	if v != nil {
		_c.SetSystemPrompt(*v)
	}
	return _c
}

// SetPersonalizationPrompt sets the "personalization_prompt" field.
func (_c *PromptSettingsCreate) SetPersonalizationPrompt(v string) *PromptSettingsCreate {
	_c.mutation.SetPersonalizationPrompt(v)
	return _c
}

// SetNillablePersonalizationPrompt sets the "personalization_prompt" field if the given value is not nil.
func (_c *PromptSettingsCreate) SetNillablePersonalizationPrompt(v *string) *PromptSettingsCreate {
	if v != nil {
		_c.SetPersonalizationPrompt(*v)
	}
	return _c
}

// SetDefaultModel sets the "default_model" field.
func (_c *PromptSettingsCreate) SetDefaultModel(v string) *PromptSettingsCreate {
	_c.mutation.SetDefaultModel(v)
	return _c
}

// SetNillableDefaultModel sets the "default_model" field if the given value is not nil.
func (_c *PromptSettingsCreate) SetNillableDefaultModel(v *string) *PromptSettingsCreate {
	if v != nil {
		_c.SetDefaultModel(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromptSettingsCreate) SetUpdatedAt(v time.Time) *PromptSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromptSettingsCreate) SetNillableUpdatedAt(v *time.Time) *PromptSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptSettingsCreate) SetID(v string) *PromptSettingsCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PromptSettingsMutation object of the builder.
func (_c *PromptSettingsCreate) Mutation() *PromptSettingsMutation {
	return _c.mutation
}

// Save creates the PromptSettings in the database.
func (_c *PromptSettingsCreate) Save(ctx context.Context) (*PromptSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptSettingsCreate) SaveX(ctx context.Context) *PromptSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptSettingsCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := promptsettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptSettingsCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "PromptSettings.organization_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PromptSettings.user_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PromptSettings.updated_at"`)}
	}
	return nil
}

func (_c *PromptSettingsCreate) sqlSave(ctx context.Context) (*PromptSettings, error) {
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
			return nil, fmt.Errorf("unexpected PromptSettings.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PromptSettingsCreate) createSpec() (*PromptSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promptsettings.Table, sqlgraph.NewFieldSpec(promptsettings.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(promptsettings.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(promptsettings.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(promptsettings.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.PersonalizationPrompt(); ok {
		_spec.SetField(promptsettings.FieldPersonalizationPrompt, field.TypeString, value)
		_node.PersonalizationPrompt = value
	}
	if value, ok := _c.mutation.DefaultModel(); ok {
		_spec.SetField(promptsettings.FieldDefaultModel, field.TypeString, value)
		_node.DefaultModel = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(promptsettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PromptSettingsCreateBulk is the builder for creating many PromptSettings entities in bulk.
type PromptSettingsCreateBulk struct {
	config
	err      error
	builders []*PromptSettingsCreate
}

// Save creates the PromptSettings entities in the database.
func (_c *PromptSettingsCreateBulk) Save(ctx context.Context) ([]*PromptSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptSettingsMutation)
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
func (_c *PromptSettingsCreateBulk) SaveX(ctx context.Context) []*PromptSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
