package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codeready-toolchain/recap/ent"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/pkg/docstore"
	"github.com/codeready-toolchain/recap/pkg/extract"
	"github.com/codeready-toolchain/recap/pkg/llm"
	"github.com/codeready-toolchain/recap/pkg/models"
	"github.com/codeready-toolchain/recap/pkg/services"
	"github.com/codeready-toolchain/recap/pkg/ticket"
)

// Executor runs the stage matching an item's current step. Each stage is a
// pure function of the item's persisted state plus external calls; the
// returned StageResult carries both the transition and any produced data.
type Executor struct {
	imports     *services.ImportService
	incidents   *services.IncidentService
	postmortems *services.PostmortemService
	store       docstore.DocumentStore
	extractor   *extract.Service
	completions llm.Client
	tickets     *ticket.Client
}

// NewExecutor creates a stage executor.
func NewExecutor(
	imports *services.ImportService,
	incidents *services.IncidentService,
	postmortems *services.PostmortemService,
	store docstore.DocumentStore,
	extractor *extract.Service,
	completions llm.Client,
	tickets *ticket.Client,
) *Executor {
	return &Executor{
		imports:     imports,
		incidents:   incidents,
		postmortems: postmortems,
		store:       store,
		extractor:   extractor,
		completions: completions,
		tickets:     tickets,
	}
}

// ExecuteStage implements ItemExecutor.
func (e *Executor) ExecuteStage(ctx context.Context, item *ent.ImportItem) services.StageResult {
	switch item.CurrentStep {
	case importitem.CurrentStepUploading:
		return e.stageVerifyUpload(ctx, item)
	case importitem.CurrentStepExtractingText:
		return e.stageExtractText(ctx, item)
	case importitem.CurrentStepExtractingMetadata:
		return e.stageExtractMetadata(ctx, item)
	case importitem.CurrentStepLookingUpExternalRecord:
		return e.stageLookupExternalRecord(ctx, item)
	case importitem.CurrentStepGeneratingIncident:
		return e.stageGenerateIncident(ctx, item)
	case importitem.CurrentStepGeneratingPostmortem:
		return e.stageGeneratePostmortem(ctx, item)
	case importitem.CurrentStepCompleted:
		// Shouldn't be claimable; finish idempotently.
		return services.StageResult{
			Outcome:  services.StageAdvanced,
			NextStep: importitem.CurrentStepCompleted,
		}
	default:
		return failure(fmt.Errorf("unknown step %q", item.CurrentStep))
	}
}

// stageVerifyUpload confirms the uploaded payload is readable in storage
// before any processing is spent on it.
func (e *Executor) stageVerifyUpload(ctx context.Context, item *ent.ImportItem) services.StageResult {
	if _, err := e.store.Get(ctx, item.StorageKey); err != nil {
		return failure(fmt.Errorf("uploaded document is not readable: %w", err))
	}
	return services.StageResult{
		Outcome:       services.StageAdvanced,
		NextStep:      importitem.CurrentStepExtractingText,
		StatusMessage: "document verified, extracting text",
	}
}

// stageExtractText turns the stored document bytes into plain text.
func (e *Executor) stageExtractText(ctx context.Context, item *ent.ImportItem) services.StageResult {
	data, err := e.store.Get(ctx, item.StorageKey)
	if err != nil {
		return failure(fmt.Errorf("fetch document: %w", err))
	}

	text, err := e.extractor.Extract(item.FileName, item.FileType, data)
	if err != nil {
		return failure(fmt.Errorf("extract text from %s: %w", item.FileName, err))
	}

	return services.StageResult{
		Outcome:       services.StageAdvanced,
		NextStep:      importitem.CurrentStepExtractingMetadata,
		StatusMessage: "text extracted, analyzing document",
		ExtractedText: &text,
	}
}

// stageExtractMetadata prompts the completion model for structured fields
// and raises clarifying questions for required fields it cannot determine.
// Previously answered questions are honored, never re-asked; an unusable
// answer gets a follow-up question instead of a silent guess.
func (e *Executor) stageExtractMetadata(ctx context.Context, item *ent.ImportItem) services.StageResult {
	if item.ExtractedText == nil || *item.ExtractedText == "" {
		return failure(fmt.Errorf("no extracted text to analyze"))
	}

	answered := answeredByField(item)

	// Re-running after answers arrived: reuse the stored metadata rather
	// than paying for another model call.
	md := item.Metadata
	if md == nil {
		raw, err := e.completions.Complete(ctx, metadataPrompt(*item.ExtractedText), 0)
		if err != nil {
			return failure(fmt.Errorf("metadata extraction: %w", err))
		}
		md, err = parseMetadataResponse(raw)
		if err != nil {
			return failure(err)
		}
	}

	for field, answer := range answered {
		md.ApplyAnswer(field, answer)
	}

	var questions []models.QuestionDraft
	for _, field := range md.MissingRequiredFields() {
		if prev, ok := answered[field]; ok {
			// The human already answered and the answer was unusable;
			// ask a sharper follow-up rather than looping on it.
			questions = append(questions, models.QuestionDraft{
				Field:    field,
				Question: retryQuestionText(field, prev),
			})
			continue
		}
		questions = append(questions, models.QuestionDraft{
			Field:    field,
			Question: questionText(field),
		})
	}

	// Unparseable action items are a data gap a human can fill, but only
	// ask once.
	if md.HasActionItems && md.ActionItemsCount == 0 {
		if _, asked := questionFields(item)[models.FieldActionItems]; !asked {
			questions = append(questions, models.QuestionDraft{
				Field:    models.FieldActionItems,
				Question: questionText(models.FieldActionItems),
			})
		}
	}

	if len(questions) > 0 {
		return services.StageResult{
			Outcome:       services.StageNeedsInput,
			StatusMessage: fmt.Sprintf("waiting for %d clarification(s)", len(questions)),
			Metadata:      md,
			Questions:     questions,
		}
	}

	return services.StageResult{
		Outcome:       services.StageAdvanced,
		NextStep:      importitem.CurrentStepLookingUpExternalRecord,
		StatusMessage: "metadata extracted, cross-referencing ticket",
		Metadata:      md,
	}
}

// stageLookupExternalRecord cross-references the extracted incident number
// against the ticketing system. Failure here is absorbed: the item proceeds
// with extracted-only data.
func (e *Executor) stageLookupExternalRecord(ctx context.Context, item *ent.ImportItem) services.StageResult {
	md := item.Metadata
	if md == nil {
		return failure(fmt.Errorf("no metadata to cross-reference"))
	}

	advance := services.StageResult{
		Outcome:  services.StageAdvanced,
		NextStep: importitem.CurrentStepGeneratingIncident,
		Metadata: md,
	}

	record, err := e.tickets.Lookup(ctx, md.IncidentNumber)
	if err != nil {
		slog.Info("Ticket lookup yielded no corroborating data",
			"item_id", item.ID,
			"incident_number", md.IncidentNumber,
			"reason", err)
		advance.StatusMessage = "no corroborating ticket found, generating incident"
		return advance
	}

	md.CorroboratedBy = record.Key
	if md.Title == "" && record.Summary != "" {
		md.Title = record.Summary
	}
	if md.Severity == "" {
		md.Severity = models.NormalizeSeverity(record.Severity)
	}
	advance.StatusMessage = fmt.Sprintf("corroborated by ticket %s, generating incident", record.Key)
	return advance
}

// stageGenerateIncident creates the incident record from resolved metadata.
// A retry that already created the incident treats the step as satisfied.
func (e *Executor) stageGenerateIncident(ctx context.Context, item *ent.ImportItem) services.StageResult {
	md := item.Metadata
	if md == nil {
		return failure(fmt.Errorf("no metadata to generate an incident from"))
	}

	advance := services.StageResult{
		Outcome:       services.StageAdvanced,
		NextStep:      importitem.CurrentStepGeneratingPostmortem,
		StatusMessage: "incident created, drafting postmortem",
	}

	if item.IncidentID != nil {
		exists, err := e.incidents.IncidentExists(ctx, *item.IncidentID)
		if err != nil {
			return failure(fmt.Errorf("check existing incident: %w", err))
		}
		if exists {
			advance.StatusMessage = "incident already created, drafting postmortem"
			return advance
		}
	}

	req := models.CreateIncidentRequest{
		IncidentNumber:  md.IncidentNumber,
		Title:           md.Title,
		Description:     md.Description,
		Severity:        md.Severity,
		AffectedService: md.AffectedService,
		Summary:         md.Summary,
		Source:          string(incident.SourceImport),
	}
	if md.DetectedAt != nil {
		req.DetectedAt = md.DetectedAt.Format(time.RFC3339)
	}
	if md.ResolvedAt != nil {
		req.ResolvedAt = md.ResolvedAt.Format(time.RFC3339)
	}

	created, err := e.incidents.CreateIncident(ctx, req)
	if err != nil {
		return failure(fmt.Errorf("create incident: %w", err))
	}

	e.attachImportContext(ctx, created.ID, item, answeredByField(item))

	advance.IncidentID = &created.ID
	return advance
}

// attachImportContext adds the import timeline event and any human-supplied
// action items to a freshly created incident. Best effort: these enrich the
// record but never fail the stage.
func (e *Executor) attachImportContext(ctx context.Context, incidentID string, item *ent.ImportItem, answered map[string]string) {
	_, err := e.incidents.AddTimelineEvent(ctx, incidentID, models.CreateTimelineEventRequest{
		EventType:   "imported",
		Description: fmt.Sprintf("Imported from document %q", item.FileName),
	})
	if err != nil {
		slog.Warn("Failed to record import timeline event", "incident_id", incidentID, "error", err)
	}

	if md := item.Metadata; md != nil && md.DetectedAt != nil {
		_, err := e.incidents.AddTimelineEvent(ctx, incidentID, models.CreateTimelineEventRequest{
			EventType:   "detected",
			Description: "Incident detected (from imported document)",
			OccurredAt:  md.DetectedAt.Format(time.RFC3339),
		})
		if err != nil {
			slog.Warn("Failed to record detection timeline event", "incident_id", incidentID, "error", err)
		}
	}

	if listing, ok := answered[models.FieldActionItems]; ok {
		for _, line := range strings.Split(listing, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• \t"))
			if line == "" {
				continue
			}
			if _, err := e.incidents.AddActionItem(ctx, incidentID, line, ""); err != nil {
				slog.Warn("Failed to record action item", "incident_id", incidentID, "error", err)
			}
		}
	}
}

// stageGeneratePostmortem drafts the postmortem document and persists it in
// draft or published state per the session's auto-publish flag. A retry
// that already created the postmortem treats the step as satisfied.
func (e *Executor) stageGeneratePostmortem(ctx context.Context, item *ent.ImportItem) services.StageResult {
	done := services.StageResult{
		Outcome:       services.StageAdvanced,
		NextStep:      importitem.CurrentStepCompleted,
		StatusMessage: "import complete",
	}

	if item.PostmortemID != nil {
		exists, err := e.postmortems.PostmortemExists(ctx, *item.PostmortemID)
		if err != nil {
			return failure(fmt.Errorf("check existing postmortem: %w", err))
		}
		if exists {
			return done
		}
	}

	if item.IncidentID == nil {
		return failure(fmt.Errorf("no incident to attach the postmortem to"))
	}
	if item.ExtractedText == nil || item.Metadata == nil {
		return failure(fmt.Errorf("missing extracted text or metadata"))
	}

	session, err := e.imports.GetSession(ctx, item.SessionID, false)
	if err != nil {
		return failure(fmt.Errorf("load session: %w", err))
	}

	content, err := e.completions.Complete(ctx, postmortemPrompt(*item.ExtractedText, item.Metadata), 0)
	if err != nil {
		return failure(fmt.Errorf("postmortem generation: %w", err))
	}

	created, err := e.postmortems.CreatePostmortem(ctx, *item.IncidentID, content, session.AutoPublish)
	if err != nil {
		return failure(fmt.Errorf("persist postmortem: %w", err))
	}

	done.PostmortemID = &created.ID
	return done
}

// answeredByField collects the item's answered questions, keyed by field.
// Later answers win when a field was asked more than once.
func answeredByField(item *ent.ImportItem) map[string]string {
	answered := make(map[string]string)
	for _, q := range item.Edges.Questions {
		if q.Answered && q.Answer != nil {
			answered[q.Field] = *q.Answer
		}
	}
	return answered
}

// questionFields collects every field the item has ever been asked about.
func questionFields(item *ent.ImportItem) map[string]struct{} {
	fields := make(map[string]struct{})
	for _, q := range item.Edges.Questions {
		fields[q.Field] = struct{}{}
	}
	return fields
}

func failure(err error) services.StageResult {
	return services.StageResult{
		Outcome:      services.StageFailed,
		FailureCause: err,
	}
}
