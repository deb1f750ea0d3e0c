// Code generated by ent, DO NOT EDIT.

package importsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codeready-toolchain/recap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldContainsFold(FieldID, id))
}

// AutoPublish applies equality check predicate on the "auto_publish" field. It's identical to AutoPublishEQ.
func AutoPublish(v bool) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldAutoPublish, v))
}

// TotalFiles applies equality check predicate on the "total_files" field. It's identical to TotalFilesEQ.
func TotalFiles(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldTotalFiles, v))
}

// CompletedFiles applies equality check predicate on the "completed_files" field. It's identical to CompletedFilesEQ.
func CompletedFiles(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldCompletedFiles, v))
}

// FailedFiles applies equality check predicate on the "failed_files" field. It's identical to FailedFilesEQ.
func FailedFiles(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldFailedFiles, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// AutoPublishEQ applies the EQ predicate on the "auto_publish" field.
func AutoPublishEQ(v bool) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldAutoPublish, v))
}

// AutoPublishNEQ applies the NEQ predicate on the "auto_publish" field.
func AutoPublishNEQ(v bool) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNEQ(FieldAutoPublish, v))
}

// TotalFilesEQ applies the EQ predicate on the "total_files" field.
func TotalFilesEQ(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldTotalFiles, v))
}

// TotalFilesNEQ applies the NEQ predicate on the "total_files" field.
func TotalFilesNEQ(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNEQ(FieldTotalFiles, v))
}

// TotalFilesIn applies the In predicate on the "total_files" field.
func TotalFilesIn(vs ...int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldIn(FieldTotalFiles, vs...))
}

// TotalFilesNotIn applies the NotIn predicate on the "total_files" field.
func TotalFilesNotIn(vs ...int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNotIn(FieldTotalFiles, vs...))
}

// TotalFilesGT applies the GT predicate on the "total_files" field.
func TotalFilesGT(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGT(FieldTotalFiles, v))
}

// TotalFilesGTE applies the GTE predicate on the "total_files" field.
func TotalFilesGTE(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGTE(FieldTotalFiles, v))
}

// TotalFilesLT applies the LT predicate on the "total_files" field.
func TotalFilesLT(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLT(FieldTotalFiles, v))
}

// TotalFilesLTE applies the LTE predicate on the "total_files" field.
func TotalFilesLTE(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLTE(FieldTotalFiles, v))
}

// CompletedFilesEQ applies the EQ predicate on the "completed_files" field.
func CompletedFilesEQ(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldCompletedFiles, v))
}

// CompletedFilesNEQ applies the NEQ predicate on the "completed_files" field.
func CompletedFilesNEQ(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNEQ(FieldCompletedFiles, v))
}

// CompletedFilesIn applies the In predicate on the "completed_files" field.
func CompletedFilesIn(vs ...int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldIn(FieldCompletedFiles, vs...))
}

// CompletedFilesNotIn applies the NotIn predicate on the "completed_files" field.
func CompletedFilesNotIn(vs ...int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNotIn(FieldCompletedFiles, vs...))
}

// CompletedFilesGT applies the GT predicate on the "completed_files" field.
func CompletedFilesGT(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGT(FieldCompletedFiles, v))
}

// CompletedFilesGTE applies the GTE predicate on the "completed_files" field.
func CompletedFilesGTE(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGTE(FieldCompletedFiles, v))
}

// CompletedFilesLT applies the LT predicate on the "completed_files" field.
func CompletedFilesLT(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLT(FieldCompletedFiles, v))
}

// CompletedFilesLTE applies the LTE predicate on the "completed_files" field.
func CompletedFilesLTE(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLTE(FieldCompletedFiles, v))
}

// FailedFilesEQ applies the EQ predicate on the "failed_files" field.
func FailedFilesEQ(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldFailedFiles, v))
}

// FailedFilesNEQ applies the NEQ predicate on the "failed_files" field.
func FailedFilesNEQ(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNEQ(FieldFailedFiles, v))
}

// FailedFilesIn applies the In predicate on the "failed_files" field.
func FailedFilesIn(vs ...int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldIn(FieldFailedFiles, vs...))
}

// FailedFilesNotIn applies the NotIn predicate on the "failed_files" field.
func FailedFilesNotIn(vs ...int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNotIn(FieldFailedFiles, vs...))
}

// FailedFilesGT applies the GT predicate on the "failed_files" field.
func FailedFilesGT(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGT(FieldFailedFiles, v))
}

// FailedFilesGTE applies the GTE predicate on the "failed_files" field.
func FailedFilesGTE(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGTE(FieldFailedFiles, v))
}

// FailedFilesLT applies the LT predicate on the "failed_files" field.
func FailedFilesLT(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLT(FieldFailedFiles, v))
}

// FailedFilesLTE applies the LTE predicate on the "failed_files" field.
func FailedFilesLTE(v int) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLTE(FieldFailedFiles, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ImportSession {
	return predicate.ImportSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.ImportSession {
	return predicate.ImportSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ImportItem) predicate.ImportSession {
	return predicate.ImportSession(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportSession) predicate.ImportSession {
	return predicate.ImportSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportSession) predicate.ImportSession {
	return predicate.ImportSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportSession) predicate.ImportSession {
	return predicate.ImportSession(sql.NotPredicates(p))
}
