// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/recap/ent/importsession"
)

// ImportSession is the model entity for the ImportSession schema.
type ImportSession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Persist generated postmortems as published instead of draft
	AutoPublish bool `json:"auto_publish,omitempty"`
	// Fixed at session creation
	TotalFiles int `json:"total_files,omitempty"`
	// CompletedFiles holds the value of the "completed_files" field.
	CompletedFiles int `json:"completed_files,omitempty"`
	// FailedFiles holds the value of the "failed_files" field.
	FailedFiles int `json:"failed_files,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImportSessionQuery when eager-loading is set.
	Edges        ImportSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImportSessionEdges holds the relations/edges for other nodes in the graph.
type ImportSessionEdges struct {
	// Items holds the value of the items edge.
	Items []*ImportItem `json:"items,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ImportSessionEdges) ItemsOrErr() ([]*ImportItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ImportSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case importsession.FieldAutoPublish:
			values[i] = new(sql.NullBool)
		case importsession.FieldTotalFiles, importsession.FieldCompletedFiles, importsession.FieldFailedFiles:
			values[i] = new(sql.NullInt64)
		case importsession.FieldID:
			values[i] = new(sql.NullString)
		case importsession.FieldCreatedAt, importsession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ImportSession fields.
func (_m *ImportSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case importsession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case importsession.FieldAutoPublish:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field auto_publish", values[i])
			} else if value.Valid {
				_m.AutoPublish = value.Bool
			}
		case importsession.FieldTotalFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_files", values[i])
			} else if value.Valid {
				_m.TotalFiles = int(value.Int64)
			}
		case importsession.FieldCompletedFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_files", values[i])
			} else if value.Valid {
				_m.CompletedFiles = int(value.Int64)
			}
		case importsession.FieldFailedFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_files", values[i])
			} else if value.Valid {
				_m.FailedFiles = int(value.Int64)
			}
		case importsession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case importsession.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ImportSession.
// This includes values selected through modifiers, order, etc.
func (_m *ImportSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the ImportSession entity.
func (_m *ImportSession) QueryItems() *ImportItemQuery {
	return NewImportSessionClient(_m.config).QueryItems(_m)
}

// Update returns a builder for updating this ImportSession.
// Note that you need to call ImportSession.Unwrap() before calling this method if this ImportSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ImportSession) Update() *ImportSessionUpdateOne {
	return NewImportSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ImportSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ImportSession) Unwrap() *ImportSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ImportSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ImportSession) String() string {
	var builder strings.Builder
	builder.WriteString("ImportSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("auto_publish=")
	builder.WriteString(fmt.Sprintf("%v", _m.AutoPublish))
	builder.WriteString(", ")
	builder.WriteString("total_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFiles))
	builder.WriteString(", ")
	builder.WriteString("completed_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedFiles))
	builder.WriteString(", ")
	builder.WriteString("failed_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedFiles))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ImportSessions is a parsable slice of ImportSession.
type ImportSessions []*ImportSession
