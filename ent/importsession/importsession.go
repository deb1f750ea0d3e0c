// Code generated by ent, DO NOT EDIT.

package importsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the importsession type in the database.
	Label = "import_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldAutoPublish holds the string denoting the auto_publish field in the database.
	FieldAutoPublish = "auto_publish"
	// FieldTotalFiles holds the string denoting the total_files field in the database.
	FieldTotalFiles = "total_files"
	// FieldCompletedFiles holds the string denoting the completed_files field in the database.
	FieldCompletedFiles = "completed_files"
	// FieldFailedFiles holds the string denoting the failed_files field in the database.
	FieldFailedFiles = "failed_files"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// ImportItemFieldID holds the string denoting the ID field of the ImportItem.
	ImportItemFieldID = "item_id"
	// Table holds the table name of the importsession in the database.
	Table = "import_sessions"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "import_items"
	// ItemsInverseTable is the table name for the ImportItem entity.
	// It exists in this package in order to avoid circular dependency with the "importitem" package.
	ItemsInverseTable = "import_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "session_id"
)

// Columns holds all SQL columns for importsession fields.
var Columns = []string{
	FieldID,
	FieldAutoPublish,
	FieldTotalFiles,
	FieldCompletedFiles,
	FieldFailedFiles,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAutoPublish holds the default value on creation for the "auto_publish" field.
	DefaultAutoPublish bool
	// DefaultCompletedFiles holds the default value on creation for the "completed_files" field.
	DefaultCompletedFiles int
	// DefaultFailedFiles holds the default value on creation for the "failed_files" field.
	DefaultFailedFiles int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ImportSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAutoPublish orders the results by the auto_publish field.
func ByAutoPublish(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAutoPublish, opts...).ToFunc()
}

// ByTotalFiles orders the results by the total_files field.
func ByTotalFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFiles, opts...).ToFunc()
}

// ByCompletedFiles orders the results by the completed_files field.
func ByCompletedFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedFiles, opts...).ToFunc()
}

// ByFailedFiles orders the results by the failed_files field.
func ByFailedFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedFiles, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, ImportItemFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
