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
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/ent/predicate"
)

// ImportSessionUpdate is the builder for updating ImportSession entities.
type ImportSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ImportSessionMutation
}

// Where appends a list predicates to the ImportSessionUpdate builder.
func (_u *ImportSessionUpdate) Where(ps ...predicate.ImportSession) *ImportSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAutoPublish sets the "auto_publish" field.
func (_u *ImportSessionUpdate) SetAutoPublish(v bool) *ImportSessionUpdate {
	_u.mutation.SetAutoPublish(v)
	return _u
}

// SetNillableAutoPublish sets the "auto_publish" field if the given value is not nil.
func (_u *ImportSessionUpdate) SetNillableAutoPublish(v *bool) *ImportSessionUpdate {
	if v != nil {
		_u.SetAutoPublish(*v)
	}
	return _u
}

// SetCompletedFiles sets the "completed_files" field.
func (_u *ImportSessionUpdate) SetCompletedFiles(v int) *ImportSessionUpdate {
	_u.mutation.ResetCompletedFiles()
	_u.mutation.SetCompletedFiles(v)
	return _u
}

// SetNillableCompletedFiles sets the "completed_files" field if the given value is not nil.
func (_u *ImportSessionUpdate) SetNillableCompletedFiles(v *int) *ImportSessionUpdate {
	if v != nil {
		_u.SetCompletedFiles(*v)
	}
	return _u
}

// AddCompletedFiles adds value to the "completed_files" field.
func (_u *ImportSessionUpdate) AddCompletedFiles(v int) *ImportSessionUpdate {
	_u.mutation.AddCompletedFiles(v)
	return _u
}

// SetFailedFiles sets the "failed_files" field.
func (_u *ImportSessionUpdate) SetFailedFiles(v int) *ImportSessionUpdate {
	_u.mutation.ResetFailedFiles()
	_u.mutation.SetFailedFiles(v)
	return _u
}

// SetNillableFailedFiles sets the "failed_files" field if the given value is not nil.
func (_u *ImportSessionUpdate) SetNillableFailedFiles(v *int) *ImportSessionUpdate {
	if v != nil {
		_u.SetFailedFiles(*v)
	}
	return _u
}

// AddFailedFiles adds value to the "failed_files" field.
func (_u *ImportSessionUpdate) AddFailedFiles(v int) *ImportSessionUpdate {
	_u.mutation.AddFailedFiles(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportSessionUpdate) SetUpdatedAt(v time.Time) *ImportSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the ImportItem entity by IDs.
func (_u *ImportSessionUpdate) AddItemIDs(ids ...string) *ImportSessionUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ImportItem entity.
func (_u *ImportSessionUpdate) AddItems(v ...*ImportItem) *ImportSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ImportSessionMutation object of the builder.
func (_u *ImportSessionUpdate) Mutation() *ImportSessionMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the ImportItem entity.
func (_u *ImportSessionUpdate) ClearItems() *ImportSessionUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ImportItem entities by IDs.
func (_u *ImportSessionUpdate) RemoveItemIDs(ids ...string) *ImportSessionUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ImportItem entities.
func (_u *ImportSessionUpdate) RemoveItems(v ...*ImportItem) *ImportSessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ImportSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(importsession.Table, importsession.Columns, sqlgraph.NewFieldSpec(importsession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AutoPublish(); ok {
		_spec.SetField(importsession.FieldAutoPublish, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedFiles(); ok {
		_spec.SetField(importsession.FieldCompletedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedFiles(); ok {
		_spec.AddField(importsession.FieldCompletedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedFiles(); ok {
		_spec.SetField(importsession.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedFiles(); ok {
		_spec.AddField(importsession.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportSessionUpdateOne is the builder for updating a single ImportSession entity.
type ImportSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportSessionMutation
}

// SetAutoPublish sets the "auto_publish" field.
func (_u *ImportSessionUpdateOne) SetAutoPublish(v bool) *ImportSessionUpdateOne {
	_u.mutation.SetAutoPublish(v)
	return _u
}

// SetNillableAutoPublish sets the "auto_publish" field if the given value is not nil.
func (_u *ImportSessionUpdateOne) SetNillableAutoPublish(v *bool) *ImportSessionUpdateOne {
	if v != nil {
		_u.SetAutoPublish(*v)
	}
	return _u
}

// SetCompletedFiles sets the "completed_files" field.
func (_u *ImportSessionUpdateOne) SetCompletedFiles(v int) *ImportSessionUpdateOne {
	_u.mutation.ResetCompletedFiles()
	_u.mutation.SetCompletedFiles(v)
	return _u
}

// SetNillableCompletedFiles sets the "completed_files" field if the given value is not nil.
func (_u *ImportSessionUpdateOne) SetNillableCompletedFiles(v *int) *ImportSessionUpdateOne {
	if v != nil {
		_u.SetCompletedFiles(*v)
	}
	return _u
}

// AddCompletedFiles adds value to the "completed_files" field.
func (_u *ImportSessionUpdateOne) AddCompletedFiles(v int) *ImportSessionUpdateOne {
	_u.mutation.AddCompletedFiles(v)
	return _u
}

// SetFailedFiles sets the "failed_files" field.
func (_u *ImportSessionUpdateOne) SetFailedFiles(v int) *ImportSessionUpdateOne {
	_u.mutation.ResetFailedFiles()
	_u.mutation.SetFailedFiles(v)
	return _u
}

// SetNillableFailedFiles sets the "failed_files" field if the given value is not nil.
func (_u *ImportSessionUpdateOne) SetNillableFailedFiles(v *int) *ImportSessionUpdateOne {
	if v != nil {
		_u.SetFailedFiles(*v)
	}
	return _u
}

// AddFailedFiles adds value to the "failed_files" field.
func (_u *ImportSessionUpdateOne) AddFailedFiles(v int) *ImportSessionUpdateOne {
	_u.mutation.AddFailedFiles(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportSessionUpdateOne) SetUpdatedAt(v time.Time) *ImportSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the ImportItem entity by IDs.
func (_u *ImportSessionUpdateOne) AddItemIDs(ids ...string) *ImportSessionUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ImportItem entity.
func (_u *ImportSessionUpdateOne) AddItems(v ...*ImportItem) *ImportSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the ImportSessionMutation object of the builder.
func (_u *ImportSessionUpdateOne) Mutation() *ImportSessionMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the ImportItem entity.
func (_u *ImportSessionUpdateOne) ClearItems() *ImportSessionUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ImportItem entities by IDs.
func (_u *ImportSessionUpdateOne) RemoveItemIDs(ids ...string) *ImportSessionUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ImportItem entities.
func (_u *ImportSessionUpdateOne) RemoveItems(v ...*ImportItem) *ImportSessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the ImportSessionUpdate builder.
func (_u *ImportSessionUpdateOne) Where(ps ...predicate.ImportSession) *ImportSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportSessionUpdateOne) Select(field string, fields ...string) *ImportSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportSession entity.
func (_u *ImportSessionUpdateOne) Save(ctx context.Context) (*ImportSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportSessionUpdateOne) SaveX(ctx context.Context) *ImportSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importsession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ImportSessionUpdateOne) sqlSave(ctx context.Context) (_node *ImportSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(importsession.Table, importsession.Columns, sqlgraph.NewFieldSpec(importsession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importsession.FieldID)
		for _, f := range fields {
			if !importsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importsession.FieldID {
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
	if value, ok := _u.mutation.AutoPublish(); ok {
		_spec.SetField(importsession.FieldAutoPublish, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedFiles(); ok {
		_spec.SetField(importsession.FieldCompletedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedFiles(); ok {
		_spec.AddField(importsession.FieldCompletedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedFiles(); ok {
		_spec.SetField(importsession.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedFiles(); ok {
		_spec.AddField(importsession.FieldFailedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importsession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImportSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
