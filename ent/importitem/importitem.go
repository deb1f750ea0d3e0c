// Code generated by ent, DO NOT EDIT.

package importitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the importitem type in the database.
	Label = "import_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "item_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldFileType holds the string denoting the file_type field in the database.
	FieldFileType = "file_type"
	// FieldStorageKey holds the string denoting the storage_key field in the database.
	FieldStorageKey = "storage_key"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentStep holds the string denoting the current_step field in the database.
	FieldCurrentStep = "current_step"
	// FieldStatusMessage holds the string denoting the status_message field in the database.
	FieldStatusMessage = "status_message"
	// FieldExtractedText holds the string denoting the extracted_text field in the database.
	FieldExtractedText = "extracted_text"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldIncidentID holds the string denoting the incident_id field in the database.
	FieldIncidentID = "incident_id"
	// FieldPostmortemID holds the string denoting the postmortem_id field in the database.
	FieldPostmortemID = "postmortem_id"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldFailedStep holds the string denoting the failed_step field in the database.
	FieldFailedStep = "failed_step"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// ImportSessionFieldID holds the string denoting the ID field of the ImportSession.
	ImportSessionFieldID = "session_id"
	// AIQuestionFieldID holds the string denoting the ID field of the AIQuestion.
	AIQuestionFieldID = "question_id"
	// Table holds the table name of the importitem in the database.
	Table = "import_items"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "import_items"
	// SessionInverseTable is the table name for the ImportSession entity.
	// It exists in this package in order to avoid circular dependency with the "importsession" package.
	SessionInverseTable = "import_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "ai_questions"
	// QuestionsInverseTable is the table name for the AIQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "aiquestion" package.
	QuestionsInverseTable = "ai_questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "item_id"
)

// Columns holds all SQL columns for importitem fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldFileName,
	FieldFileSize,
	FieldFileType,
	FieldStorageKey,
	FieldStatus,
	FieldCurrentStep,
	FieldStatusMessage,
	FieldExtractedText,
	FieldMetadata,
	FieldIncidentID,
	FieldPostmortemID,
	FieldErrorMessage,
	FieldFailedStep,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending       Status = "pending"
	StatusProcessing    Status = "processing"
	StatusAwaitingInput Status = "awaiting_input"
	StatusCompleted     Status = "completed"
	StatusFailed        Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusAwaitingInput, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("importitem: invalid enum value for status field: %q", s)
	}
}

// CurrentStep defines the type for the "current_step" enum field.
type CurrentStep string

// CurrentStepUploading is the default value of the CurrentStep enum.
const DefaultCurrentStep = CurrentStepUploading

// CurrentStep values.
const (
	CurrentStepUploading               CurrentStep = "uploading"
	CurrentStepExtractingText          CurrentStep = "extracting_text"
	CurrentStepExtractingMetadata      CurrentStep = "extracting_metadata"
	CurrentStepLookingUpExternalRecord CurrentStep = "looking_up_external_record"
	CurrentStepGeneratingIncident      CurrentStep = "generating_incident"
	CurrentStepGeneratingPostmortem    CurrentStep = "generating_postmortem"
	CurrentStepCompleted               CurrentStep = "completed"
)

func (cs CurrentStep) String() string {
	return string(cs)
}

// CurrentStepValidator is a validator for the "current_step" field enum values. It is called by the builders before save.
func CurrentStepValidator(cs CurrentStep) error {
	switch cs {
	case CurrentStepUploading, CurrentStepExtractingText, CurrentStepExtractingMetadata, CurrentStepLookingUpExternalRecord, CurrentStepGeneratingIncident, CurrentStepGeneratingPostmortem, CurrentStepCompleted:
		return nil
	default:
		return fmt.Errorf("importitem: invalid enum value for current_step field: %q", cs)
	}
}

// FailedStep defines the type for the "failed_step" enum field.
type FailedStep string

// FailedStep values.
const (
	FailedStepUploading               FailedStep = "uploading"
	FailedStepExtractingText          FailedStep = "extracting_text"
	FailedStepExtractingMetadata      FailedStep = "extracting_metadata"
	FailedStepLookingUpExternalRecord FailedStep = "looking_up_external_record"
	FailedStepGeneratingIncident      FailedStep = "generating_incident"
	FailedStepGeneratingPostmortem    FailedStep = "generating_postmortem"
	FailedStepCompleted               FailedStep = "completed"
)

func (fs FailedStep) String() string {
	return string(fs)
}

// FailedStepValidator is a validator for the "failed_step" field enum values. It is called by the builders before save.
func FailedStepValidator(fs FailedStep) error {
	switch fs {
	case FailedStepUploading, FailedStepExtractingText, FailedStepExtractingMetadata, FailedStepLookingUpExternalRecord, FailedStepGeneratingIncident, FailedStepGeneratingPostmortem, FailedStepCompleted:
		return nil
	default:
		return fmt.Errorf("importitem: invalid enum value for failed_step field: %q", fs)
	}
}

// OrderOption defines the ordering options for the ImportItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByFileType orders the results by the file_type field.
func ByFileType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileType, opts...).ToFunc()
}

// ByStorageKey orders the results by the storage_key field.
func ByStorageKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStorageKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentStep orders the results by the current_step field.
func ByCurrentStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStep, opts...).ToFunc()
}

// ByStatusMessage orders the results by the status_message field.
func ByStatusMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusMessage, opts...).ToFunc()
}

// ByExtractedText orders the results by the extracted_text field.
func ByExtractedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedText, opts...).ToFunc()
}

// ByIncidentID orders the results by the incident_id field.
func ByIncidentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncidentID, opts...).ToFunc()
}

// ByPostmortemID orders the results by the postmortem_id field.
func ByPostmortemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostmortemID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByFailedStep orders the results by the failed_step field.
func ByFailedStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedStep, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, ImportSessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, AIQuestionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
