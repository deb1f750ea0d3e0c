// Package models contains plain domain types shared between the pipeline,
// services, and API layers. Types here must not depend on generated ent code:
// ExtractedMetadata is embedded in the ImportItem schema as a JSON column.
package models

import (
	"strings"
	"time"
)

// Metadata field names used for clarifying questions. A question's Field
// always holds one of these values.
const (
	FieldIncidentNumber  = "incident_number"
	FieldTitle           = "title"
	FieldSeverity        = "severity"
	FieldAffectedService = "affected_service"
	FieldDetectedAt      = "detected_at"
	FieldActionItems     = "action_items"
)

// RequiredMetadataFields are the fields the pipeline never guesses: a missing
// or ambiguous value for any of them raises a clarifying question and parks
// the item in awaiting_input.
var RequiredMetadataFields = []string{
	FieldIncidentNumber,
	FieldTitle,
	FieldSeverity,
	FieldAffectedService,
	FieldDetectedAt,
}

// ExtractedMetadata is the structured record pulled out of a document by the
// metadata extraction stage, possibly corrected by human answers and
// corroborated by the external ticketing system.
type ExtractedMetadata struct {
	IncidentNumber  string     `json:"incident_number,omitempty"`
	Title           string     `json:"title,omitempty"`
	Description     string     `json:"description,omitempty"`
	Severity        string     `json:"severity,omitempty"`
	AffectedService string     `json:"affected_service,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	DetectedAt      *time.Time `json:"detected_at,omitempty"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`

	HasActionItems   bool `json:"has_action_items"`
	ActionItemsCount int  `json:"action_items_count"`
	HasMitigation    bool `json:"has_mitigation"`
	HasImpact        bool `json:"has_impact"`
	HasTimeline      bool `json:"has_timeline"`

	// ExtractionError marks a document the model classified as not being a
	// postmortem at all; it is informational and does not fail the item.
	ExtractionError string `json:"extraction_error,omitempty"`

	// CorroboratedBy records the ticketing system lookup outcome, e.g.
	// "ticketing" after a successful cross-reference, empty otherwise.
	CorroboratedBy string `json:"corroborated_by,omitempty"`
}

// MissingRequiredFields returns the required fields that have no value yet.
func (m *ExtractedMetadata) MissingRequiredFields() []string {
	var missing []string
	for _, f := range RequiredMetadataFields {
		if m.FieldValue(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// FieldValue returns the current value of a named metadata field.
// Unknown field names return "".
func (m *ExtractedMetadata) FieldValue(field string) string {
	switch field {
	case FieldIncidentNumber:
		return m.IncidentNumber
	case FieldTitle:
		return m.Title
	case FieldSeverity:
		return m.Severity
	case FieldAffectedService:
		return m.AffectedService
	case FieldDetectedAt:
		if m.DetectedAt == nil {
			return ""
		}
		return m.DetectedAt.Format(time.RFC3339)
	default:
		return ""
	}
}

// ApplyAnswer sets a named field from a human answer. Answers for fields that
// cannot be applied directly (free-form context like action item details) are
// ignored here and instead carried into the next extraction prompt.
func (m *ExtractedMetadata) ApplyAnswer(field, answer string) {
	switch field {
	case FieldIncidentNumber:
		m.IncidentNumber = answer
	case FieldTitle:
		m.Title = answer
	case FieldSeverity:
		m.Severity = NormalizeSeverity(answer)
	case FieldAffectedService:
		m.AffectedService = answer
	case FieldDetectedAt:
		if t, err := time.Parse(time.RFC3339, answer); err == nil {
			m.DetectedAt = &t
		}
	}
}

// NormalizeSeverity maps free-form severity strings onto the incident
// severity enum. Unrecognized values return "" so the caller can ask.
func NormalizeSeverity(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "minor", "p4", "sev4":
		return "low"
	case "medium", "moderate", "p3", "sev3":
		return "medium"
	case "high", "major", "p2", "sev2":
		return "high"
	case "critical", "p1", "sev1", "sev0":
		return "critical"
	default:
		return ""
	}
}
