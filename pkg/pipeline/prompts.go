package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/codeready-toolchain/recap/pkg/models"
)

// maxPromptChars bounds how much document text goes into a prompt. Long
// documents are truncated from the end; postmortem structure front-loads
// the fields we extract.
const maxPromptChars = 16000

const metadataPromptTemplate = `You are analyzing an incident postmortem document. Extract the following fields and respond with ONLY a JSON object, no prose, no code fences.

Fields:
- incident_number: the incident ticket identifier (e.g. "INC-1234"), or "" if not present
- title: a short incident title, or "" if none can be determined
- description: one paragraph describing what happened, or ""
- severity: one of "low", "medium", "high", "critical", or "" if not stated and not clearly implied
- affected_service: the primary affected service or system, or ""
- summary: a 2-3 sentence executive summary, or ""
- detected_at: RFC3339 timestamp when the incident was detected, or null
- resolved_at: RFC3339 timestamp when the incident was resolved, or null
- has_action_items: true if the document mentions follow-up action items
- action_items_count: how many distinct action items are listed, 0 if none could be parsed
- has_mitigation: true if the document describes mitigation steps
- has_impact: true if the document describes user or business impact
- has_timeline: true if the document contains an event timeline
- extraction_error: "" normally; a short explanation if this document does not appear to be an incident postmortem at all

Do not guess: leave a field empty rather than inventing a value.

Document:
---
%s
---`

const postmortemPromptTemplate = `You are drafting a structured incident postmortem in Markdown. Use the metadata and the source document below. Respond with ONLY the Markdown document, no code fences.

Required sections, in order:
# <title>
## Summary
## Impact
## Timeline
## Root Cause
## Mitigation
## Action Items

Rules:
- Base every statement on the source document; do not invent facts.
- If a section has no information in the source, write "Not documented."
- Keep the Summary to at most four sentences.

Metadata:
%s

Source document:
---
%s
---`

func metadataPrompt(text string) string {
	return fmt.Sprintf(metadataPromptTemplate, truncate(text, maxPromptChars))
}

func postmortemPrompt(text string, md *models.ExtractedMetadata) string {
	var meta strings.Builder
	writeMeta := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&meta, "- %s: %s\n", label, value)
		}
	}
	writeMeta("Incident number", md.IncidentNumber)
	writeMeta("Title", md.Title)
	writeMeta("Severity", md.Severity)
	writeMeta("Affected service", md.AffectedService)
	writeMeta("Summary", md.Summary)
	if md.DetectedAt != nil {
		writeMeta("Detected at", md.DetectedAt.Format(time.RFC3339))
	}
	if md.ResolvedAt != nil {
		writeMeta("Resolved at", md.ResolvedAt.Format(time.RFC3339))
	}

	return fmt.Sprintf(postmortemPromptTemplate, meta.String(), truncate(text, maxPromptChars))
}

// parseMetadataResponse decodes the model's JSON answer, tolerating the
// code fences some models add despite instructions.
func parseMetadataResponse(raw string) (*models.ExtractedMetadata, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	// Some models wrap the object in leading prose; cut to the outermost
	// braces.
	if start := strings.Index(cleaned, "{"); start > 0 {
		cleaned = cleaned[start:]
	}
	if end := strings.LastIndex(cleaned, "}"); end >= 0 && end < len(cleaned)-1 {
		cleaned = cleaned[:end+1]
	}

	var md models.ExtractedMetadata
	if err := json.Unmarshal([]byte(cleaned), &md); err != nil {
		return nil, fmt.Errorf("metadata response is not valid JSON: %w", err)
	}

	md.Severity = models.NormalizeSeverity(md.Severity)
	return &md, nil
}

// questionText returns the clarifying question asked when a required field
// could not be determined from the document.
func questionText(field string) string {
	switch field {
	case models.FieldIncidentNumber:
		return "No incident number could be found in this document. What is the incident ticket identifier (e.g. INC-1234)?"
	case models.FieldTitle:
		return "No incident title could be determined. What short title should this incident have?"
	case models.FieldSeverity:
		return "The document does not state a severity. What was the severity of this incident (low, medium, high, or critical)?"
	case models.FieldAffectedService:
		return "The affected service could not be determined. Which service or system was primarily affected?"
	case models.FieldDetectedAt:
		return "The document does not state when the incident was detected. When was it detected (RFC3339 timestamp, e.g. 2026-01-02T15:04:05Z)?"
	case models.FieldActionItems:
		return "The document mentions action items but they could not be parsed. Please list them, one per line."
	default:
		return fmt.Sprintf("The value for %q could not be determined from the document. What should it be?", field)
	}
}

// retryQuestionText is asked when a previous answer for the field could not
// be used as given.
func retryQuestionText(field, previousAnswer string) string {
	switch field {
	case models.FieldSeverity:
		return fmt.Sprintf("The severity %q was not recognized. Please answer with one of: low, medium, high, critical.", previousAnswer)
	case models.FieldDetectedAt:
		return fmt.Sprintf("The timestamp %q could not be parsed. Please answer with an RFC3339 timestamp, e.g. 2026-01-02T15:04:05Z.", previousAnswer)
	default:
		return fmt.Sprintf("The previous answer %q for %q could not be used. Please provide a different value.", previousAnswer, field)
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Back off to a rune boundary so the prompt stays valid UTF-8.
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
