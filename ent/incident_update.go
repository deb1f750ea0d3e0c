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
	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/ent/postmortem"
	"github.com/codeready-toolchain/recap/ent/predicate"
	"github.com/codeready-toolchain/recap/ent/timelineevent"
)

// IncidentUpdate is the builder for updating Incident entities.
type IncidentUpdate struct {
	config
	hooks    []Hook
	mutation *IncidentMutation
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdate) Where(ps ...predicate.Incident) *IncidentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIncidentNumber sets the "incident_number" field.
func (_u *IncidentUpdate) SetIncidentNumber(v string) *IncidentUpdate {
	_u.mutation.SetIncidentNumber(v)
	return _u
}

// SetNillableIncidentNumber sets the "incident_number" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableIncidentNumber(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetIncidentNumber(*v)
	}
	return _u
}

// ClearIncidentNumber clears the value of the "incident_number" field.
func (_u *IncidentUpdate) ClearIncidentNumber() *IncidentUpdate {
	_u.mutation.ClearIncidentNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdate) SetTitle(v string) *IncidentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableTitle(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentUpdate) SetDescription(v string) *IncidentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableDescription(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentUpdate) ClearDescription() *IncidentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdate) SetSeverity(v incident.Severity) *IncidentUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSeverity(v *incident.Severity) *IncidentUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdate) SetStatus(v incident.Status) *IncidentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableStatus(v *incident.Status) *IncidentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffectedService sets the "affected_service" field.
func (_u *IncidentUpdate) SetAffectedService(v string) *IncidentUpdate {
	_u.mutation.SetAffectedService(v)
	return _u
}

// SetNillableAffectedService sets the "affected_service" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableAffectedService(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetAffectedService(*v)
	}
	return _u
}

// ClearAffectedService clears the value of the "affected_service" field.
func (_u *IncidentUpdate) ClearAffectedService() *IncidentUpdate {
	_u.mutation.ClearAffectedService()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IncidentUpdate) SetSummary(v string) *IncidentUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSummary(v *string) *IncidentUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *IncidentUpdate) ClearSummary() *IncidentUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSource sets the "source" field.
func (_u *IncidentUpdate) SetSource(v incident.Source) *IncidentUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableSource(v *incident.Source) *IncidentUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *IncidentUpdate) SetDetectedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableDetectedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// ClearDetectedAt clears the value of the "detected_at" field.
func (_u *IncidentUpdate) ClearDetectedAt() *IncidentUpdate {
	_u.mutation.ClearDetectedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IncidentUpdate) SetResolvedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IncidentUpdate) SetNillableResolvedAt(v *time.Time) *IncidentUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IncidentUpdate) ClearResolvedAt() *IncidentUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdate) SetUpdatedAt(v time.Time) *IncidentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPostmortemIDs adds the "postmortems" edge to the Postmortem entity by IDs.
func (_u *IncidentUpdate) AddPostmortemIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddPostmortemIDs(ids...)
	return _u
}

// AddPostmortems adds the "postmortems" edges to the Postmortem entity.
func (_u *IncidentUpdate) AddPostmortems(v ...*Postmortem) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostmortemIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *IncidentUpdate) AddTimelineEventIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *IncidentUpdate) AddTimelineEvents(v ...*TimelineEvent) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddActionItemIDs adds the "action_items" edge to the ActionItem entity by IDs.
func (_u *IncidentUpdate) AddActionItemIDs(ids ...string) *IncidentUpdate {
	_u.mutation.AddActionItemIDs(ids...)
	return _u
}

// AddActionItems adds the "action_items" edges to the ActionItem entity.
func (_u *IncidentUpdate) AddActionItems(v ...*ActionItem) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionItemIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdate) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearPostmortems clears all "postmortems" edges to the Postmortem entity.
func (_u *IncidentUpdate) ClearPostmortems() *IncidentUpdate {
	_u.mutation.ClearPostmortems()
	return _u
}

// RemovePostmortemIDs removes the "postmortems" edge to Postmortem entities by IDs.
func (_u *IncidentUpdate) RemovePostmortemIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemovePostmortemIDs(ids...)
	return _u
}

// RemovePostmortems removes "postmortems" edges to Postmortem entities.
func (_u *IncidentUpdate) RemovePostmortems(v ...*Postmortem) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostmortemIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *IncidentUpdate) ClearTimelineEvents() *IncidentUpdate {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *IncidentUpdate) RemoveTimelineEventIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *IncidentUpdate) RemoveTimelineEvents(v ...*TimelineEvent) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearActionItems clears all "action_items" edges to the ActionItem entity.
func (_u *IncidentUpdate) ClearActionItems() *IncidentUpdate {
	_u.mutation.ClearActionItems()
	return _u
}

// RemoveActionItemIDs removes the "action_items" edge to ActionItem entities by IDs.
func (_u *IncidentUpdate) RemoveActionItemIDs(ids ...string) *IncidentUpdate {
	_u.mutation.RemoveActionItemIDs(ids...)
	return _u
}

// RemoveActionItems removes "action_items" edges to ActionItem entities.
func (_u *IncidentUpdate) RemoveActionItems(v ...*ActionItem) *IncidentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IncidentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IncidentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := incident.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Incident.source": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IncidentNumber(); ok {
		_spec.SetField(incident.FieldIncidentNumber, field.TypeString, value)
	}
	if _u.mutation.IncidentNumberCleared() {
		_spec.ClearField(incident.FieldIncidentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incident.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffectedService(); ok {
		_spec.SetField(incident.FieldAffectedService, field.TypeString, value)
	}
	if _u.mutation.AffectedServiceCleared() {
		_spec.ClearField(incident.FieldAffectedService, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(incident.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(incident.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(incident.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(incident.FieldDetectedAt, field.TypeTime, value)
	}
	if _u.mutation.DetectedAtCleared() {
		_spec.ClearField(incident.FieldDetectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(incident.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(incident.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PostmortemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.PostmortemsTable,
			Columns: []string{incident.PostmortemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postmortem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostmortemsIDs(); len(nodes) > 0 && !_u.mutation.PostmortemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.PostmortemsTable,
			Columns: []string{incident.PostmortemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postmortem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostmortemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.PostmortemsTable,
			Columns: []string{incident.PostmortemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postmortem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.TimelineEventsTable,
			Columns: []string{incident.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.TimelineEventsTable,
			Columns: []string{incident.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.TimelineEventsTable,
			Columns: []string{incident.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ActionItemsTable,
			Columns: []string{incident.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionItemsIDs(); len(nodes) > 0 && !_u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ActionItemsTable,
			Columns: []string{incident.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ActionItemsTable,
			Columns: []string{incident.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IncidentUpdateOne is the builder for updating a single Incident entity.
type IncidentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IncidentMutation
}

// SetIncidentNumber sets the "incident_number" field.
func (_u *IncidentUpdateOne) SetIncidentNumber(v string) *IncidentUpdateOne {
	_u.mutation.SetIncidentNumber(v)
	return _u
}

// SetNillableIncidentNumber sets the "incident_number" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableIncidentNumber(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetIncidentNumber(*v)
	}
	return _u
}

// ClearIncidentNumber clears the value of the "incident_number" field.
func (_u *IncidentUpdateOne) ClearIncidentNumber() *IncidentUpdateOne {
	_u.mutation.ClearIncidentNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *IncidentUpdateOne) SetTitle(v string) *IncidentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableTitle(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *IncidentUpdateOne) SetDescription(v string) *IncidentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableDescription(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *IncidentUpdateOne) ClearDescription() *IncidentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IncidentUpdateOne) SetSeverity(v incident.Severity) *IncidentUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSeverity(v *incident.Severity) *IncidentUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *IncidentUpdateOne) SetStatus(v incident.Status) *IncidentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableStatus(v *incident.Status) *IncidentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAffectedService sets the "affected_service" field.
func (_u *IncidentUpdateOne) SetAffectedService(v string) *IncidentUpdateOne {
	_u.mutation.SetAffectedService(v)
	return _u
}

// SetNillableAffectedService sets the "affected_service" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableAffectedService(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetAffectedService(*v)
	}
	return _u
}

// ClearAffectedService clears the value of the "affected_service" field.
func (_u *IncidentUpdateOne) ClearAffectedService() *IncidentUpdateOne {
	_u.mutation.ClearAffectedService()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *IncidentUpdateOne) SetSummary(v string) *IncidentUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSummary(v *string) *IncidentUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *IncidentUpdateOne) ClearSummary() *IncidentUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSource sets the "source" field.
func (_u *IncidentUpdateOne) SetSource(v incident.Source) *IncidentUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableSource(v *incident.Source) *IncidentUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *IncidentUpdateOne) SetDetectedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableDetectedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// ClearDetectedAt clears the value of the "detected_at" field.
func (_u *IncidentUpdateOne) ClearDetectedAt() *IncidentUpdateOne {
	_u.mutation.ClearDetectedAt()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *IncidentUpdateOne) SetResolvedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *IncidentUpdateOne) SetNillableResolvedAt(v *time.Time) *IncidentUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *IncidentUpdateOne) ClearResolvedAt() *IncidentUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *IncidentUpdateOne) SetUpdatedAt(v time.Time) *IncidentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPostmortemIDs adds the "postmortems" edge to the Postmortem entity by IDs.
func (_u *IncidentUpdateOne) AddPostmortemIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddPostmortemIDs(ids...)
	return _u
}

// AddPostmortems adds the "postmortems" edges to the Postmortem entity.
func (_u *IncidentUpdateOne) AddPostmortems(v ...*Postmortem) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPostmortemIDs(ids...)
}

// AddTimelineEventIDs adds the "timeline_events" edge to the TimelineEvent entity by IDs.
func (_u *IncidentUpdateOne) AddTimelineEventIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddTimelineEventIDs(ids...)
	return _u
}

// AddTimelineEvents adds the "timeline_events" edges to the TimelineEvent entity.
func (_u *IncidentUpdateOne) AddTimelineEvents(v ...*TimelineEvent) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTimelineEventIDs(ids...)
}

// AddActionItemIDs adds the "action_items" edge to the ActionItem entity by IDs.
func (_u *IncidentUpdateOne) AddActionItemIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.AddActionItemIDs(ids...)
	return _u
}

// AddActionItems adds the "action_items" edges to the ActionItem entity.
func (_u *IncidentUpdateOne) AddActionItems(v ...*ActionItem) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActionItemIDs(ids...)
}

// Mutation returns the IncidentMutation object of the builder.
func (_u *IncidentUpdateOne) Mutation() *IncidentMutation {
	return _u.mutation
}

// ClearPostmortems clears all "postmortems" edges to the Postmortem entity.
func (_u *IncidentUpdateOne) ClearPostmortems() *IncidentUpdateOne {
	_u.mutation.ClearPostmortems()
	return _u
}

// RemovePostmortemIDs removes the "postmortems" edge to Postmortem entities by IDs.
func (_u *IncidentUpdateOne) RemovePostmortemIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemovePostmortemIDs(ids...)
	return _u
}

// RemovePostmortems removes "postmortems" edges to Postmortem entities.
func (_u *IncidentUpdateOne) RemovePostmortems(v ...*Postmortem) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePostmortemIDs(ids...)
}

// ClearTimelineEvents clears all "timeline_events" edges to the TimelineEvent entity.
func (_u *IncidentUpdateOne) ClearTimelineEvents() *IncidentUpdateOne {
	_u.mutation.ClearTimelineEvents()
	return _u
}

// RemoveTimelineEventIDs removes the "timeline_events" edge to TimelineEvent entities by IDs.
func (_u *IncidentUpdateOne) RemoveTimelineEventIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveTimelineEventIDs(ids...)
	return _u
}

// RemoveTimelineEvents removes "timeline_events" edges to TimelineEvent entities.
func (_u *IncidentUpdateOne) RemoveTimelineEvents(v ...*TimelineEvent) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTimelineEventIDs(ids...)
}

// ClearActionItems clears all "action_items" edges to the ActionItem entity.
func (_u *IncidentUpdateOne) ClearActionItems() *IncidentUpdateOne {
	_u.mutation.ClearActionItems()
	return _u
}

// RemoveActionItemIDs removes the "action_items" edge to ActionItem entities by IDs.
func (_u *IncidentUpdateOne) RemoveActionItemIDs(ids ...string) *IncidentUpdateOne {
	_u.mutation.RemoveActionItemIDs(ids...)
	return _u
}

// RemoveActionItems removes "action_items" edges to ActionItem entities.
func (_u *IncidentUpdateOne) RemoveActionItems(v ...*ActionItem) *IncidentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActionItemIDs(ids...)
}

// Where appends a list predicates to the IncidentUpdate builder.
func (_u *IncidentUpdateOne) Where(ps ...predicate.Incident) *IncidentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IncidentUpdateOne) Select(field string, fields ...string) *IncidentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Incident entity.
func (_u *IncidentUpdateOne) Save(ctx context.Context) (*Incident, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IncidentUpdateOne) SaveX(ctx context.Context) *Incident {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IncidentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IncidentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *IncidentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := incident.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IncidentUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := incident.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Incident.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := incident.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Incident.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := incident.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Incident.source": %w`, err)}
		}
	}
	return nil
}

func (_u *IncidentUpdateOne) sqlSave(ctx context.Context) (_node *Incident, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(incident.Table, incident.Columns, sqlgraph.NewFieldSpec(incident.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Incident.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, incident.FieldID)
		for _, f := range fields {
			if !incident.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != incident.FieldID {
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
	if value, ok := _u.mutation.IncidentNumber(); ok {
		_spec.SetField(incident.FieldIncidentNumber, field.TypeString, value)
	}
	if _u.mutation.IncidentNumberCleared() {
		_spec.ClearField(incident.FieldIncidentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(incident.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(incident.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(incident.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(incident.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(incident.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AffectedService(); ok {
		_spec.SetField(incident.FieldAffectedService, field.TypeString, value)
	}
	if _u.mutation.AffectedServiceCleared() {
		_spec.ClearField(incident.FieldAffectedService, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(incident.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(incident.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(incident.FieldSource, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(incident.FieldDetectedAt, field.TypeTime, value)
	}
	if _u.mutation.DetectedAtCleared() {
		_spec.ClearField(incident.FieldDetectedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(incident.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(incident.FieldResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(incident.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PostmortemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.PostmortemsTable,
			Columns: []string{incident.PostmortemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postmortem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPostmortemsIDs(); len(nodes) > 0 && !_u.mutation.PostmortemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.PostmortemsTable,
			Columns: []string{incident.PostmortemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postmortem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PostmortemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.PostmortemsTable,
			Columns: []string{incident.PostmortemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postmortem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.TimelineEventsTable,
			Columns: []string{incident.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTimelineEventsIDs(); len(nodes) > 0 && !_u.mutation.TimelineEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.TimelineEventsTable,
			Columns: []string{incident.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TimelineEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.TimelineEventsTable,
			Columns: []string{incident.TimelineEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ActionItemsTable,
			Columns: []string{incident.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActionItemsIDs(); len(nodes) > 0 && !_u.mutation.ActionItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ActionItemsTable,
			Columns: []string{incident.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActionItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   incident.ActionItemsTable,
			Columns: []string{incident.ActionItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(actionitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Incident{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{incident.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
