// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/predicate"
)

// AIQuestionUpdate is the builder for updating AIQuestion entities.
type AIQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *AIQuestionMutation
}

// Where appends a list predicates to the AIQuestionUpdate builder.
func (_u *AIQuestionUpdate) Where(ps ...predicate.AIQuestion) *AIQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *AIQuestionUpdate) SetAnswered(v bool) *AIQuestionUpdate {
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AIQuestionUpdate) SetNillableAnswered(v *bool) *AIQuestionUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AIQuestionUpdate) SetAnswer(v string) *AIQuestionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AIQuestionUpdate) SetNillableAnswer(v *string) *AIQuestionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *AIQuestionUpdate) ClearAnswer() *AIQuestionUpdate {
	_u.mutation.ClearAnswer()
	return _u
}

// Mutation returns the AIQuestionMutation object of the builder.
func (_u *AIQuestionUpdate) Mutation() *AIQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AIQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AIQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIQuestionUpdate) check() error {
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AIQuestion.item"`)
	}
	return nil
}

func (_u *AIQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiquestion.Table, aiquestion.Columns, sqlgraph.NewFieldSpec(aiquestion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(aiquestion.FieldAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(aiquestion.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(aiquestion.FieldAnswer, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AIQuestionUpdateOne is the builder for updating a single AIQuestion entity.
type AIQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AIQuestionMutation
}

// SetAnswered sets the "answered" field.
func (_u *AIQuestionUpdateOne) SetAnswered(v bool) *AIQuestionUpdateOne {
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *AIQuestionUpdateOne) SetNillableAnswered(v *bool) *AIQuestionUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AIQuestionUpdateOne) SetAnswer(v string) *AIQuestionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AIQuestionUpdateOne) SetNillableAnswer(v *string) *AIQuestionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// ClearAnswer clears the value of the "answer" field.
func (_u *AIQuestionUpdateOne) ClearAnswer() *AIQuestionUpdateOne {
	_u.mutation.ClearAnswer()
	return _u
}

// Mutation returns the AIQuestionMutation object of the builder.
func (_u *AIQuestionUpdateOne) Mutation() *AIQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AIQuestionUpdate builder.
func (_u *AIQuestionUpdateOne) Where(ps ...predicate.AIQuestion) *AIQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AIQuestionUpdateOne) Select(field string, fields ...string) *AIQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AIQuestion entity.
func (_u *AIQuestionUpdateOne) Save(ctx context.Context) (*AIQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AIQuestionUpdateOne) SaveX(ctx context.Context) *AIQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AIQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AIQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AIQuestionUpdateOne) check() error {
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AIQuestion.item"`)
	}
	return nil
}

func (_u *AIQuestionUpdateOne) sqlSave(ctx context.Context) (_node *AIQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aiquestion.Table, aiquestion.Columns, sqlgraph.NewFieldSpec(aiquestion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AIQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aiquestion.FieldID)
		for _, f := range fields {
			if !aiquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aiquestion.FieldID {
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
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(aiquestion.FieldAnswered, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(aiquestion.FieldAnswer, field.TypeString, value)
	}
	if _u.mutation.AnswerCleared() {
		_spec.ClearField(aiquestion.FieldAnswer, field.TypeString)
	}
	_node = &AIQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aiquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
