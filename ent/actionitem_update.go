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
	"github.com/codeready-toolchain/recap/ent/actionitem"
	"github.com/codeready-toolchain/recap/ent/predicate"
)

// ActionItemUpdate is the builder for updating ActionItem entities.
type ActionItemUpdate struct {
	config
	hooks    []Hook
	mutation *ActionItemMutation
}

// Where appends a list predicates to the ActionItemUpdate builder.
func (_u *ActionItemUpdate) Where(ps ...predicate.ActionItem) *ActionItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActionItemUpdate) SetDescription(v string) *ActionItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableDescription(v *string) *ActionItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *ActionItemUpdate) SetOwner(v string) *ActionItemUpdate {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableOwner(v *string) *ActionItemUpdate {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *ActionItemUpdate) ClearOwner() *ActionItemUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionItemUpdate) SetStatus(v actionitem.Status) *ActionItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionItemUpdate) SetNillableStatus(v *actionitem.Status) *ActionItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionItemUpdate) SetUpdatedAt(v time.Time) *ActionItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActionItemMutation object of the builder.
func (_u *ActionItemUpdate) Mutation() *ActionItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := actionitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := actionitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionItem.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActionItem.incident"`)
	}
	return nil
}

func (_u *ActionItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionitem.Table, actionitem.Columns, sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(actionitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(actionitem.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(actionitem.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(actionitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionItemUpdateOne is the builder for updating a single ActionItem entity.
type ActionItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionItemMutation
}

// SetDescription sets the "description" field.
func (_u *ActionItemUpdateOne) SetDescription(v string) *ActionItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableDescription(v *string) *ActionItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetOwner sets the "owner" field.
func (_u *ActionItemUpdateOne) SetOwner(v string) *ActionItemUpdateOne {
	_u.mutation.SetOwner(v)
	return _u
}

// SetNillableOwner sets the "owner" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableOwner(v *string) *ActionItemUpdateOne {
	if v != nil {
		_u.SetOwner(*v)
	}
	return _u
}

// ClearOwner clears the value of the "owner" field.
func (_u *ActionItemUpdateOne) ClearOwner() *ActionItemUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionItemUpdateOne) SetStatus(v actionitem.Status) *ActionItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionItemUpdateOne) SetNillableStatus(v *actionitem.Status) *ActionItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActionItemUpdateOne) SetUpdatedAt(v time.Time) *ActionItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActionItemMutation object of the builder.
func (_u *ActionItemUpdateOne) Mutation() *ActionItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionItemUpdate builder.
func (_u *ActionItemUpdateOne) Where(ps ...predicate.ActionItem) *ActionItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionItemUpdateOne) Select(field string, fields ...string) *ActionItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionItem entity.
func (_u *ActionItemUpdateOne) Save(ctx context.Context) (*ActionItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionItemUpdateOne) SaveX(ctx context.Context) *ActionItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActionItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := actionitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := actionitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionItem.status": %w`, err)}
		}
	}
	if _u.mutation.IncidentCleared() && len(_u.mutation.IncidentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActionItem.incident"`)
	}
	return nil
}

func (_u *ActionItemUpdateOne) sqlSave(ctx context.Context) (_node *ActionItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionitem.Table, actionitem.Columns, sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionitem.FieldID)
		for _, f := range fields {
			if !actionitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionitem.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(actionitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Owner(); ok {
		_spec.SetField(actionitem.FieldOwner, field.TypeString, value)
	}
	if _u.mutation.OwnerCleared() {
		_spec.ClearField(actionitem.FieldOwner, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(actionitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ActionItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
