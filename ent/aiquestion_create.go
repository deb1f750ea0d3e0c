// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/importitem"
)

// AIQuestionCreate is the builder for creating a AIQuestion entity.
type AIQuestionCreate struct {
	config
	mutation *AIQuestionMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *AIQuestionCreate) SetItemID(v string) *AIQuestionCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetField sets the "field" field.
func (_c *AIQuestionCreate) SetField(v string) *AIQuestionCreate {
	_c.mutation.SetFieldField(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *AIQuestionCreate) SetQuestion(v string) *AIQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *AIQuestionCreate) SetAnswered(v bool) *AIQuestionCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_c *AIQuestionCreate) SetNillableAnswered(v *bool) *AIQuestionCreate {
	if v != nil {
		_c.SetAnswered(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *AIQuestionCreate) SetAnswer(v string) *AIQuestionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *AIQuestionCreate) SetNillableAnswer(v *string) *AIQuestionCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AIQuestionCreate) SetCreatedAt(v time.Time) *AIQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AIQuestionCreate) SetNillableCreatedAt(v *time.Time) *AIQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AIQuestionCreate) SetID(v string) *AIQuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetItem sets the "item" edge to the ImportItem entity.
func (_c *AIQuestionCreate) SetItem(v *ImportItem) *AIQuestionCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the AIQuestionMutation object of the builder.
func (_c *AIQuestionCreate) Mutation() *AIQuestionMutation {
	return _c.mutation
}

// Save creates the AIQuestion in the database.
func (_c *AIQuestionCreate) Save(ctx context.Context) (*AIQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AIQuestionCreate) SaveX(ctx context.Context) *AIQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AIQuestionCreate) defaults() {
	if _, ok := _c.mutation.Answered(); !ok {
		v := aiquestion.DefaultAnswered
		_c.mutation.SetAnswered(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := aiquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AIQuestionCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "AIQuestion.item_id"`)}
	}
	if _, ok := _c.mutation.GetField(); !ok {
		return &ValidationError{Name: "field", err: errors.New(`ent: missing required field "AIQuestion.field"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "AIQuestion.question"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "AIQuestion.answered"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AIQuestion.created_at"`)}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "AIQuestion.item"`)}
	}
	return nil
}

func (_c *AIQuestionCreate) sqlSave(ctx context.Context) (*AIQuestion, error) {
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
			return nil, fmt.Errorf("unexpected AIQuestion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AIQuestionCreate) createSpec() (*AIQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &AIQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aiquestion.Table, sqlgraph.NewFieldSpec(aiquestion.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetField(); ok {
		_spec.SetField(aiquestion.FieldField, field.TypeString, value)
		_node.Field = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(aiquestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(aiquestion.FieldAnswered, field.TypeBool, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(aiquestion.FieldAnswer, field.TypeString, value)
		_node.Answer = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(aiquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   aiquestion.ItemTable,
			Columns: []string{aiquestion.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AIQuestionCreateBulk is the builder for creating many AIQuestion entities in bulk.
type AIQuestionCreateBulk struct {
	config
	err      error
	builders []*AIQuestionCreate
}

// Save creates the AIQuestion entities in the database.
func (_c *AIQuestionCreateBulk) Save(ctx context.Context) ([]*AIQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AIQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AIQuestionMutation)
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
func (_c *AIQuestionCreateBulk) SaveX(ctx context.Context) []*AIQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AIQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AIQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
