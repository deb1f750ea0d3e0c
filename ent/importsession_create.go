// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
)

// ImportSessionCreate is the builder for creating a ImportSession entity.
type ImportSessionCreate struct {
	config
	mutation *ImportSessionMutation
	hooks    []Hook
}

// SetAutoPublish sets the "auto_publish" field.
func (_c *ImportSessionCreate) SetAutoPublish(v bool) *ImportSessionCreate {
	_c.mutation.SetAutoPublish(v)
	return _c
}

// SetNillableAutoPublish sets the "auto_publish" field if the given value is not nil.
func (_c *ImportSessionCreate) SetNillableAutoPublish(v *bool) *ImportSessionCreate {
	if v != nil {
		_c.SetAutoPublish(*v)
	}
	return _c
}

// SetTotalFiles sets the "total_files" field.
func (_c *ImportSessionCreate) SetTotalFiles(v int) *ImportSessionCreate {
	_c.mutation.SetTotalFiles(v)
	return _c
}

// SetCompletedFiles sets the "completed_files" field.
func (_c *ImportSessionCreate) SetCompletedFiles(v int) *ImportSessionCreate {
	_c.mutation.SetCompletedFiles(v)
	return _c
}

// SetNillableCompletedFiles sets the "completed_files" field if the given value is not nil.
func (_c *ImportSessionCreate) SetNillableCompletedFiles(v *int) *ImportSessionCreate {
	if v != nil {
		_c.SetCompletedFiles(*v)
	}
	return _c
}

// SetFailedFiles sets the "failed_files" field.
func (_c *ImportSessionCreate) SetFailedFiles(v int) *ImportSessionCreate {
	_c.mutation.SetFailedFiles(v)
	return _c
}

// SetNillableFailedFiles sets the "failed_files" field if the given value is not nil.
func (_c *ImportSessionCreate) SetNillableFailedFiles(v *int) *ImportSessionCreate {
	if v != nil {
		_c.SetFailedFiles(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImportSessionCreate) SetCreatedAt(v time.Time) *ImportSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImportSessionCreate) SetNillableCreatedAt(v *time.Time) *ImportSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ImportSessionCreate) SetUpdatedAt(v time.Time) *ImportSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ImportSessionCreate) SetNillableUpdatedAt(v *time.Time) *ImportSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportSessionCreate) SetID(v string) *ImportSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddItemIDs adds the "items" edge to the ImportItem entity by IDs.
func (_c *ImportSessionCreate) AddItemIDs(ids ...string) *ImportSessionCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ImportItem entity.
func (_c *ImportSessionCreate) AddItems(v ...*ImportItem) *ImportSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the ImportSessionMutation object of the builder.
func (_c *ImportSessionCreate) Mutation() *ImportSessionMutation {
	return _c.mutation
}

// Save creates the ImportSession in the database.
func (_c *ImportSessionCreate) Save(ctx context.Context) (*ImportSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportSessionCreate) SaveX(ctx context.Context) *ImportSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportSessionCreate) defaults() {
	if _, ok := _c.mutation.AutoPublish(); !ok {
		v := importsession.DefaultAutoPublish
		_c.mutation.SetAutoPublish(v)
	}
	if _, ok := _c.mutation.CompletedFiles(); !ok {
		v := importsession.DefaultCompletedFiles
		_c.mutation.SetCompletedFiles(v)
	}
	if _, ok := _c.mutation.FailedFiles(); !ok {
		v := importsession.DefaultFailedFiles
		_c.mutation.SetFailedFiles(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := importsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := importsession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportSessionCreate) check() error {
	if _, ok := _c.mutation.AutoPublish(); !ok {
		return &ValidationError{Name: "auto_publish", err: errors.New(`ent: missing required field "ImportSession.auto_publish"`)}
	}
	if _, ok := _c.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "ImportSession.total_files"`)}
	}
	if _, ok := _c.mutation.CompletedFiles(); !ok {
		return &ValidationError{Name: "completed_files", err: errors.New(`ent: missing required field "ImportSession.completed_files"`)}
	}
	if _, ok := _c.mutation.FailedFiles(); !ok {
		return &ValidationError{Name: "failed_files", err: errors.New(`ent: missing required field "ImportSession.failed_files"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImportSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImportSession.updated_at"`)}
	}
	return nil
}

func (_c *ImportSessionCreate) sqlSave(ctx context.Context) (*ImportSession, error) {
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
			return nil, fmt.Errorf("unexpected ImportSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportSessionCreate) createSpec() (*ImportSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importsession.Table, sqlgraph.NewFieldSpec(importsession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AutoPublish(); ok {
		_spec.SetField(importsession.FieldAutoPublish, field.TypeBool, value)
		_node.AutoPublish = value
	}
	if value, ok := _c.mutation.TotalFiles(); ok {
		_spec.SetField(importsession.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := _c.mutation.CompletedFiles(); ok {
		_spec.SetField(importsession.FieldCompletedFiles, field.TypeInt, value)
		_node.CompletedFiles = value
	}
	if value, ok := _c.mutation.FailedFiles(); ok {
		_spec.SetField(importsession.FieldFailedFiles, field.TypeInt, value)
		_node.FailedFiles = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(importsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(importsession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importsession.ItemsTable,
			Columns: []string{importsession.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImportSessionCreateBulk is the builder for creating many ImportSession entities in bulk.
type ImportSessionCreateBulk struct {
	config
	err      error
	builders []*ImportSessionCreate
}

// Save creates the ImportSession entities in the database.
func (_c *ImportSessionCreateBulk) Save(ctx context.Context) ([]*ImportSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportSessionMutation)
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
func (_c *ImportSessionCreateBulk) SaveX(ctx context.Context) []*ImportSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
