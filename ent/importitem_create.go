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
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/pkg/models"
)

// ImportItemCreate is the builder for creating a ImportItem entity.
type ImportItemCreate struct {
	config
	mutation *ImportItemMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ImportItemCreate) SetSessionID(v string) *ImportItemCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ImportItemCreate) SetFileName(v string) *ImportItemCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ImportItemCreate) SetFileSize(v int64) *ImportItemCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *ImportItemCreate) SetFileType(v string) *ImportItemCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *ImportItemCreate) SetStorageKey(v string) *ImportItemCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportItemCreate) SetStatus(v importitem.Status) *ImportItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableStatus(v *importitem.Status) *ImportItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *ImportItemCreate) SetCurrentStep(v importitem.CurrentStep) *ImportItemCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableCurrentStep(v *importitem.CurrentStep) *ImportItemCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetStatusMessage sets the "status_message" field.
func (_c *ImportItemCreate) SetStatusMessage(v string) *ImportItemCreate {
	_c.mutation.SetStatusMessage(v)
	return _c
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableStatusMessage(v *string) *ImportItemCreate {
	if v != nil {
		_c.SetStatusMessage(*v)
	}
	return _c
}

// SetExtractedText sets the "extracted_text" field.
func (_c *ImportItemCreate) SetExtractedText(v string) *ImportItemCreate {
	_c.mutation.SetExtractedText(v)
	return _c
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableExtractedText(v *string) *ImportItemCreate {
	if v != nil {
		_c.SetExtractedText(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ImportItemCreate) SetMetadata(v *models.ExtractedMetadata) *ImportItemCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIncidentID sets the "incident_id" field.
func (_c *ImportItemCreate) SetIncidentID(v string) *ImportItemCreate {
	_c.mutation.SetIncidentID(v)
	return _c
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableIncidentID(v *string) *ImportItemCreate {
	if v != nil {
		_c.SetIncidentID(*v)
	}
	return _c
}

// SetPostmortemID sets the "postmortem_id" field.
func (_c *ImportItemCreate) SetPostmortemID(v string) *ImportItemCreate {
	_c.mutation.SetPostmortemID(v)
	return _c
}

// SetNillablePostmortemID sets the "postmortem_id" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillablePostmortemID(v *string) *ImportItemCreate {
	if v != nil {
		_c.SetPostmortemID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ImportItemCreate) SetErrorMessage(v string) *ImportItemCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableErrorMessage(v *string) *ImportItemCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetFailedStep sets the "failed_step" field.
func (_c *ImportItemCreate) SetFailedStep(v importitem.FailedStep) *ImportItemCreate {
	_c.mutation.SetFailedStep(v)
	return _c
}

// SetNillableFailedStep sets the "failed_step" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableFailedStep(v *importitem.FailedStep) *ImportItemCreate {
	if v != nil {
		_c.SetFailedStep(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImportItemCreate) SetCreatedAt(v time.Time) *ImportItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableCreatedAt(v *time.Time) *ImportItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ImportItemCreate) SetUpdatedAt(v time.Time) *ImportItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ImportItemCreate) SetNillableUpdatedAt(v *time.Time) *ImportItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportItemCreate) SetID(v string) *ImportItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ImportSession entity.
func (_c *ImportItemCreate) SetSession(v *ImportSession) *ImportItemCreate {
	return _c.SetSessionID(v.ID)
}

// AddQuestionIDs adds the "questions" edge to the AIQuestion entity by IDs.
func (_c *ImportItemCreate) AddQuestionIDs(ids ...string) *ImportItemCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the AIQuestion entity.
func (_c *ImportItemCreate) AddQuestions(v ...*AIQuestion) *ImportItemCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// Mutation returns the ImportItemMutation object of the builder.
func (_c *ImportItemCreate) Mutation() *ImportItemMutation {
	return _c.mutation
}

// Save creates the ImportItem in the database.
func (_c *ImportItemCreate) Save(ctx context.Context) (*ImportItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportItemCreate) SaveX(ctx context.Context) *ImportItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := importitem.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := importitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := importitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportItemCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ImportItem.session_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ImportItem.file_name"`)}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "ImportItem.file_size"`)}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "ImportItem.file_type"`)}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`ent: missing required field "ImportItem.storage_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "ImportItem.current_step"`)}
	}
	if v, ok := _c.mutation.CurrentStep(); ok {
		if err := importitem.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "ImportItem.current_step": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FailedStep(); ok {
		if err := importitem.FailedStepValidator(v); err != nil {
			return &ValidationError{Name: "failed_step", err: fmt.Errorf(`ent: validator failed for field "ImportItem.failed_step": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImportItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImportItem.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ImportItem.session"`)}
	}
	return nil
}

func (_c *ImportItemCreate) sqlSave(ctx context.Context) (*ImportItem, error) {
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
			return nil, fmt.Errorf("unexpected ImportItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImportItemCreate) createSpec() (*ImportItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importitem.Table, sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(importitem.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(importitem.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(importitem.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(importitem.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(importitem.FieldCurrentStep, field.TypeEnum, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.StatusMessage(); ok {
		_spec.SetField(importitem.FieldStatusMessage, field.TypeString, value)
		_node.StatusMessage = value
	}
	if value, ok := _c.mutation.ExtractedText(); ok {
		_spec.SetField(importitem.FieldExtractedText, field.TypeString, value)
		_node.ExtractedText = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(importitem.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IncidentID(); ok {
		_spec.SetField(importitem.FieldIncidentID, field.TypeString, value)
		_node.IncidentID = &value
	}
	if value, ok := _c.mutation.PostmortemID(); ok {
		_spec.SetField(importitem.FieldPostmortemID, field.TypeString, value)
		_node.PostmortemID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(importitem.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.FailedStep(); ok {
		_spec.SetField(importitem.FieldFailedStep, field.TypeEnum, value)
		_node.FailedStep = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(importitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(importitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   importitem.SessionTable,
			Columns: []string{importitem.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(importsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   importitem.QuestionsTable,
			Columns: []string{importitem.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(aiquestion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImportItemCreateBulk is the builder for creating many ImportItem entities in bulk.
type ImportItemCreateBulk struct {
	config
	err      error
	builders []*ImportItemCreate
}

// Save creates the ImportItem entities in the database.
func (_c *ImportItemCreateBulk) Save(ctx context.Context) ([]*ImportItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportItemMutation)
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
func (_c *ImportItemCreateBulk) SaveX(ctx context.Context) []*ImportItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
