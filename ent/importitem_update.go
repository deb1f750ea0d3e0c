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
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/predicate"
	"github.com/codeready-toolchain/recap/pkg/models"
)

// ImportItemUpdate is the builder for updating ImportItem entities.
type ImportItemUpdate struct {
	config
	hooks    []Hook
	mutation *ImportItemMutation
}

// Where appends a list predicates to the ImportItemUpdate builder.
func (_u *ImportItemUpdate) Where(ps ...predicate.ImportItem) *ImportItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportItemUpdate) SetStatus(v importitem.Status) *ImportItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableStatus(v *importitem.Status) *ImportItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *ImportItemUpdate) SetCurrentStep(v importitem.CurrentStep) *ImportItemUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableCurrentStep(v *importitem.CurrentStep) *ImportItemUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *ImportItemUpdate) SetStatusMessage(v string) *ImportItemUpdate {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableStatusMessage(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *ImportItemUpdate) ClearStatusMessage() *ImportItemUpdate {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ImportItemUpdate) SetExtractedText(v string) *ImportItemUpdate {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableExtractedText(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ImportItemUpdate) ClearExtractedText() *ImportItemUpdate {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ImportItemUpdate) SetMetadata(v *models.ExtractedMetadata) *ImportItemUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ImportItemUpdate) ClearMetadata() *ImportItemUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *ImportItemUpdate) SetIncidentID(v string) *ImportItemUpdate {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableIncidentID(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *ImportItemUpdate) ClearIncidentID() *ImportItemUpdate {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetPostmortemID sets the "postmortem_id" field.
func (_u *ImportItemUpdate) SetPostmortemID(v string) *ImportItemUpdate {
	_u.mutation.SetPostmortemID(v)
	return _u
}

// SetNillablePostmortemID sets the "postmortem_id" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillablePostmortemID(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetPostmortemID(*v)
	}
	return _u
}

// ClearPostmortemID clears the value of the "postmortem_id" field.
func (_u *ImportItemUpdate) ClearPostmortemID() *ImportItemUpdate {
	_u.mutation.ClearPostmortemID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportItemUpdate) SetErrorMessage(v string) *ImportItemUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableErrorMessage(v *string) *ImportItemUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportItemUpdate) ClearErrorMessage() *ImportItemUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFailedStep sets the "failed_step" field.
func (_u *ImportItemUpdate) SetFailedStep(v importitem.FailedStep) *ImportItemUpdate {
	_u.mutation.SetFailedStep(v)
	return _u
}

// SetNillableFailedStep sets the "failed_step" field if the given value is not nil.
func (_u *ImportItemUpdate) SetNillableFailedStep(v *importitem.FailedStep) *ImportItemUpdate {
	if v != nil {
		_u.SetFailedStep(*v)
	}
	return _u
}

// ClearFailedStep clears the value of the "failed_step" field.
func (_u *ImportItemUpdate) ClearFailedStep() *ImportItemUpdate {
	_u.mutation.ClearFailedStep()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportItemUpdate) SetUpdatedAt(v time.Time) *ImportItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the AIQuestion entity by IDs.
func (_u *ImportItemUpdate) AddQuestionIDs(ids ...string) *ImportItemUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the AIQuestion entity.
func (_u *ImportItemUpdate) AddQuestions(v ...*AIQuestion) *ImportItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ImportItemMutation object of the builder.
func (_u *ImportItemUpdate) Mutation() *ImportItemMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the AIQuestion entity.
func (_u *ImportItemUpdate) ClearQuestions() *ImportItemUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to AIQuestion entities by IDs.
func (_u *ImportItemUpdate) RemoveQuestionIDs(ids ...string) *ImportItemUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to AIQuestion entities.
func (_u *ImportItemUpdate) RemoveQuestions(v ...*AIQuestion) *ImportItemUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := importitem.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "ImportItem.current_step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedStep(); ok {
		if err := importitem.FailedStepValidator(v); err != nil {
			return &ValidationError{Name: "failed_step", err: fmt.Errorf(`ent: validator failed for field "ImportItem.failed_step": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportItem.session"`)
	}
	return nil
}

func (_u *ImportItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importitem.Table, importitem.Columns, sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(importitem.FieldCurrentStep, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(importitem.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(importitem.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(importitem.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(importitem.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(importitem.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(importitem.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(importitem.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(importitem.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.PostmortemID(); ok {
		_spec.SetField(importitem.FieldPostmortemID, field.TypeString, value)
	}
	if _u.mutation.PostmortemIDCleared() {
		_spec.ClearField(importitem.FieldPostmortemID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FailedStep(); ok {
		_spec.SetField(importitem.FieldFailedStep, field.TypeEnum, value)
	}
	if _u.mutation.FailedStepCleared() {
		_spec.ClearField(importitem.FieldFailedStep, field.TypeEnum)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportItemUpdateOne is the builder for updating a single ImportItem entity.
type ImportItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportItemMutation
}

// SetStatus sets the "status" field.
func (_u *ImportItemUpdateOne) SetStatus(v importitem.Status) *ImportItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableStatus(v *importitem.Status) *ImportItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *ImportItemUpdateOne) SetCurrentStep(v importitem.CurrentStep) *ImportItemUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableCurrentStep(v *importitem.CurrentStep) *ImportItemUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// SetStatusMessage sets the "status_message" field.
func (_u *ImportItemUpdateOne) SetStatusMessage(v string) *ImportItemUpdateOne {
	_u.mutation.SetStatusMessage(v)
	return _u
}

// SetNillableStatusMessage sets the "status_message" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableStatusMessage(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetStatusMessage(*v)
	}
	return _u
}

// ClearStatusMessage clears the value of the "status_message" field.
func (_u *ImportItemUpdateOne) ClearStatusMessage() *ImportItemUpdateOne {
	_u.mutation.ClearStatusMessage()
	return _u
}

// SetExtractedText sets the "extracted_text" field.
func (_u *ImportItemUpdateOne) SetExtractedText(v string) *ImportItemUpdateOne {
	_u.mutation.SetExtractedText(v)
	return _u
}

// SetNillableExtractedText sets the "extracted_text" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableExtractedText(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetExtractedText(*v)
	}
	return _u
}

// ClearExtractedText clears the value of the "extracted_text" field.
func (_u *ImportItemUpdateOne) ClearExtractedText() *ImportItemUpdateOne {
	_u.mutation.ClearExtractedText()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ImportItemUpdateOne) SetMetadata(v *models.ExtractedMetadata) *ImportItemUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ImportItemUpdateOne) ClearMetadata() *ImportItemUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIncidentID sets the "incident_id" field.
func (_u *ImportItemUpdateOne) SetIncidentID(v string) *ImportItemUpdateOne {
	_u.mutation.SetIncidentID(v)
	return _u
}

// SetNillableIncidentID sets the "incident_id" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableIncidentID(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetIncidentID(*v)
	}
	return _u
}

// ClearIncidentID clears the value of the "incident_id" field.
func (_u *ImportItemUpdateOne) ClearIncidentID() *ImportItemUpdateOne {
	_u.mutation.ClearIncidentID()
	return _u
}

// SetPostmortemID sets the "postmortem_id" field.
func (_u *ImportItemUpdateOne) SetPostmortemID(v string) *ImportItemUpdateOne {
	_u.mutation.SetPostmortemID(v)
	return _u
}

// SetNillablePostmortemID sets the "postmortem_id" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillablePostmortemID(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetPostmortemID(*v)
	}
	return _u
}

// ClearPostmortemID clears the value of the "postmortem_id" field.
func (_u *ImportItemUpdateOne) ClearPostmortemID() *ImportItemUpdateOne {
	_u.mutation.ClearPostmortemID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ImportItemUpdateOne) SetErrorMessage(v string) *ImportItemUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableErrorMessage(v *string) *ImportItemUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ImportItemUpdateOne) ClearErrorMessage() *ImportItemUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetFailedStep sets the "failed_step" field.
func (_u *ImportItemUpdateOne) SetFailedStep(v importitem.FailedStep) *ImportItemUpdateOne {
	_u.mutation.SetFailedStep(v)
	return _u
}

// SetNillableFailedStep sets the "failed_step" field if the given value is not nil.
func (_u *ImportItemUpdateOne) SetNillableFailedStep(v *importitem.FailedStep) *ImportItemUpdateOne {
	if v != nil {
		_u.SetFailedStep(*v)
	}
	return _u
}

// ClearFailedStep clears the value of the "failed_step" field.
func (_u *ImportItemUpdateOne) ClearFailedStep() *ImportItemUpdateOne {
	_u.mutation.ClearFailedStep()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportItemUpdateOne) SetUpdatedAt(v time.Time) *ImportItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddQuestionIDs adds the "questions" edge to the AIQuestion entity by IDs.
func (_u *ImportItemUpdateOne) AddQuestionIDs(ids ...string) *ImportItemUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the AIQuestion entity.
func (_u *ImportItemUpdateOne) AddQuestions(v ...*AIQuestion) *ImportItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the ImportItemMutation object of the builder.
func (_u *ImportItemUpdateOne) Mutation() *ImportItemMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the AIQuestion entity.
func (_u *ImportItemUpdateOne) ClearQuestions() *ImportItemUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to AIQuestion entities by IDs.
func (_u *ImportItemUpdateOne) RemoveQuestionIDs(ids ...string) *ImportItemUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to AIQuestion entities.
func (_u *ImportItemUpdateOne) RemoveQuestions(v ...*AIQuestion) *ImportItemUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the ImportItemUpdate builder.
func (_u *ImportItemUpdateOne) Where(ps ...predicate.ImportItem) *ImportItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportItemUpdateOne) Select(field string, fields ...string) *ImportItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportItem entity.
func (_u *ImportItemUpdateOne) Save(ctx context.Context) (*ImportItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportItemUpdateOne) SaveX(ctx context.Context) *ImportItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentStep(); ok {
		if err := importitem.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "ImportItem.current_step": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedStep(); ok {
		if err := importitem.FailedStepValidator(v); err != nil {
			return &ValidationError{Name: "failed_step", err: fmt.Errorf(`ent: validator failed for field "ImportItem.failed_step": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ImportItem.session"`)
	}
	return nil
}

func (_u *ImportItemUpdateOne) sqlSave(ctx context.Context) (_node *ImportItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importitem.Table, importitem.Columns, sqlgraph.NewFieldSpec(importitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importitem.FieldID)
		for _, f := range fields {
			if !importitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importitem.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(importitem.FieldCurrentStep, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StatusMessage(); ok {
		_spec.SetField(importitem.FieldStatusMessage, field.TypeString, value)
	}
	if _u.mutation.StatusMessageCleared() {
		_spec.ClearField(importitem.FieldStatusMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedText(); ok {
		_spec.SetField(importitem.FieldExtractedText, field.TypeString, value)
	}
	if _u.mutation.ExtractedTextCleared() {
		_spec.ClearField(importitem.FieldExtractedText, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(importitem.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(importitem.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IncidentID(); ok {
		_spec.SetField(importitem.FieldIncidentID, field.TypeString, value)
	}
	if _u.mutation.IncidentIDCleared() {
		_spec.ClearField(importitem.FieldIncidentID, field.TypeString)
	}
	if value, ok := _u.mutation.PostmortemID(); ok {
		_spec.SetField(importitem.FieldPostmortemID, field.TypeString, value)
	}
	if _u.mutation.PostmortemIDCleared() {
		_spec.ClearField(importitem.FieldPostmortemID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(importitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(importitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.FailedStep(); ok {
		_spec.SetField(importitem.FieldFailedStep, field.TypeEnum, value)
	}
	if _u.mutation.FailedStepCleared() {
		_spec.ClearField(importitem.FieldFailedStep, field.TypeEnum)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ImportItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
