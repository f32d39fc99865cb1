// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/infrallm/infrallm/ent/hostnote"
)

// HostNoteCreate is the builder for creating a HostNote entity.
type HostNoteCreate struct {
	config
	mutation *HostNoteMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *HostNoteCreate) SetOrganizationID(v string) *HostNoteCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetHostID sets the "host_id" field.
func (_c *HostNoteCreate) SetHostID(v string) *HostNoteCreate {
	_c.mutation.SetHostID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *HostNoteCreate) SetContent(v string) *HostNoteCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HostNoteCreate) SetUpdatedAt(v time.Time) *HostNoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HostNoteCreate) SetNillableUpdatedAt(v *time.Time) *HostNoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HostNoteCreate) SetID(v string) *HostNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the HostNoteMutation object of the builder.
func (_c *HostNoteCreate) Mutation() *HostNoteMutation {
	return _c.mutation
}

// Save creates the HostNote in the database.
func (_c *HostNoteCreate) Save(ctx context.Context) (*HostNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HostNoteCreate) SaveX(ctx context.Context) *HostNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HostNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HostNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HostNoteCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hostnote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HostNoteCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "HostNote.organization_id"`)}
	}
	if _, ok := _c.mutation.HostID(); !ok {
		return &ValidationError{Name: "host_id", err: errors.New(`ent: missing required field "HostNote.host_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "HostNote.content"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HostNote.updated_at"`)}
	}
	return nil
}

func (_c *HostNoteCreate) sqlSave(ctx context.Context) (*HostNote, error) {
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
			return nil, fmt.Errorf("unexpected HostNote.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HostNoteCreate) createSpec() (*HostNote, *sqlgraph.CreateSpec) {
	var (
		_node = &HostNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hostnote.Table, sqlgraph.NewFieldSpec(hostnote.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(hostnote.FieldOrganizationID, field.TypeString, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.HostID(); ok {
		_spec.SetField(hostnote.FieldHostID, field.TypeString, value)
		_node.HostID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(hostnote.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hostnote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// HostNoteCreateBulk is the builder for creating many HostNote entities in bulk.
type HostNoteCreateBulk struct {
	config
	err      error
	builders []*HostNoteCreate
}

// Save creates the HostNote entities in the database.
func (_c *HostNoteCreateBulk) Save(ctx context.Context) ([]*HostNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HostNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HostNoteMutation)
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
func (_c *HostNoteCreateBulk) SaveX(ctx context.Context) []*HostNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HostNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HostNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
