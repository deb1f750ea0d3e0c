// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/pkg/models"
)

// ImportItem is the model entity for the ImportItem schema.
type ImportItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// Declared type at upload: pdf, docx, html, txt, md
	FileType string `json:"file_type,omitempty"`
	// Object store key of the raw uploaded bytes
	StorageKey string `json:"storage_key,omitempty"`
	// Status holds the value of the "status" field.
	Status importitem.Status `json:"status,omitempty"`
	// CurrentStep holds the value of the "current_step" field.
	CurrentStep importitem.CurrentStep `json:"current_step,omitempty"`
	// StatusMessage holds the value of the "status_message" field.
	StatusMessage string `json:"status_message,omitempty"`
	// ExtractedText holds the value of the "extracted_text" field.
	ExtractedText *string `json:"extracted_text,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata *models.ExtractedMetadata `json:"metadata,omitempty"`
	// Non-owning reference; may dangle if the incident is deleted later
	IncidentID *string `json:"incident_id,omitempty"`
	// PostmortemID holds the value of the "postmortem_id" field.
	PostmortemID *string `json:"postmortem_id,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Step recorded at failure time; retry re-enters here
	FailedStep *importitem.FailedStep `json:"failed_step,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImportItemQuery when eager-loading is set.
	Edges        ImportItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImportItemEdges holds the relations/edges for other nodes in the graph.
type ImportItemEdges struct {
	// Session holds the value of the session edge.
	Session *ImportSession `json:"session,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*AIQuestion `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ImportItemEdges) SessionOrErr() (*ImportSession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: importsession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e ImportItemEdges) QuestionsOrErr() ([]*AIQuestion, error) {
	if e.loadedTypes[1] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importitem.FieldMetadata:
			values[i] = new([]byte)
		case importitem.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case importitem.FieldID, importitem.FieldSessionID, importitem.FieldFileName, importitem.FieldFileType, importitem.FieldStorageKey, importitem.FieldStatus, importitem.FieldCurrentStep, importitem.FieldStatusMessage, importitem.FieldExtractedText, importitem.FieldIncidentID, importitem.FieldPostmortemID, importitem.FieldErrorMessage, importitem.FieldFailedStep:
			values[i] = new(sql.NullString)
		case importitem.FieldCreatedAt, importitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportItem fields.
func (_m *ImportItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case importitem.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case importitem.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case importitem.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case importitem.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = value.String
			}
		case importitem.FieldStorageKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_key", values[i])
			} else if value.Valid {
				_m.StorageKey = value.String
			}
		case importitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = importitem.Status(value.String)
			}
		case importitem.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = importitem.CurrentStep(value.String)
			}
		case importitem.FieldStatusMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status_message", values[i])
			} else if value.Valid {
				_m.StatusMessage = value.String
			}
		case importitem.FieldExtractedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_text", values[i])
			} else if value.Valid {
				_m.ExtractedText = new(string)
				*_m.ExtractedText = value.String
			}
		case importitem.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case importitem.FieldIncidentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field incident_id", values[i])
			} else if value.Valid {
				_m.IncidentID = new(string)
				*_m.IncidentID = value.String
			}
		case importitem.FieldPostmortemID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postmortem_id", values[i])
			} else if value.Valid {
				_m.PostmortemID = new(string)
				*_m.PostmortemID = value.String
			}
		case importitem.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case importitem.FieldFailedStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failed_step", values[i])
			} else if value.Valid {
				_m.FailedStep = new(importitem.FailedStep)
				*_m.FailedStep = importitem.FailedStep(value.String)
			}
		case importitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case importitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ImportItem.
// This includes values selected through modifiers, order, etc.
func (_m *ImportItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ImportItem entity.
func (_m *ImportItem) QuerySession() *ImportSessionQuery {
	return NewImportItemClient(_m.config).QuerySession(_m)
}

// QueryQuestions queries the "questions" edge of the ImportItem entity.
func (_m *ImportItem) QueryQuestions() *AIQuestionQuery {
	return NewImportItemClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this ImportItem.
// Note that you need to call ImportItem.Unwrap() before calling this method if this ImportItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportItem) Update() *ImportItemUpdateOne {
	return NewImportItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportItem) Unwrap() *ImportItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportItem) String() string {
	var builder strings.Builder
	builder.WriteString("ImportItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(_m.FileType)
	builder.WriteString(", ")
	builder.WriteString("storage_key=")
	builder.WriteString(_m.StorageKey)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStep))
	builder.WriteString(", ")
	builder.WriteString("status_message=")
	builder.WriteString(_m.StatusMessage)
	builder.WriteString(", ")
	if v := _m.ExtractedText; v != nil {
		builder.WriteString("extracted_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.IncidentID; v != nil {
		builder.WriteString("incident_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PostmortemID; v != nil {
		builder.WriteString("postmortem_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailedStep; v != nil {
		builder.WriteString("failed_step=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImportItems is a parsable slice of ImportItem.
type ImportItems []*ImportItem
