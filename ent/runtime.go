// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/recap/ent/actionitem"
	"github.com/codeready-toolchain/recap/ent/aiquestion"
	"github.com/codeready-toolchain/recap/ent/importitem"
	"github.com/codeready-toolchain/recap/ent/importsession"
	"github.com/codeready-toolchain/recap/ent/incident"
	"github.com/codeready-toolchain/recap/ent/postmortem"
	"github.com/codeready-toolchain/recap/ent/schema"
	"github.com/codeready-toolchain/recap/ent/timelineevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aiquestionFields := schema.AIQuestion{}.Fields()
	_ = aiquestionFields
	// aiquestionDescAnswered is the schema descriptor for answered field.
	aiquestionDescAnswered := aiquestionFields[4].Descriptor()
	// aiquestion.DefaultAnswered holds the default value on creation for the answered field.
	aiquestion.DefaultAnswered = aiquestionDescAnswered.Default.(bool)
	// aiquestionDescCreatedAt is the schema descriptor for created_at field.
	aiquestionDescCreatedAt := aiquestionFields[6].Descriptor()
	// aiquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	aiquestion.DefaultCreatedAt = aiquestionDescCreatedAt.Default.(func() time.Time)
	actionitemFields := schema.ActionItem{}.Fields()
	_ = actionitemFields
	// actionitemDescCreatedAt is the schema descriptor for created_at field.
	actionitemDescCreatedAt := actionitemFields[5].Descriptor()
	// actionitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	actionitem.DefaultCreatedAt = actionitemDescCreatedAt.Default.(func() time.Time)
	// actionitemDescUpdatedAt is the schema descriptor for updated_at field.
	actionitemDescUpdatedAt := actionitemFields[6].Descriptor()
	// actionitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	actionitem.DefaultUpdatedAt = actionitemDescUpdatedAt.Default.(func() time.Time)
	// actionitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	actionitem.UpdateDefaultUpdatedAt = actionitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	importitemFields := schema.ImportItem{}.Fields()
	_ = importitemFields
	// importitemDescCreatedAt is the schema descriptor for created_at field.
	importitemDescCreatedAt := importitemFields[15].Descriptor()
	// importitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	importitem.DefaultCreatedAt = importitemDescCreatedAt.Default.(func() time.Time)
	// importitemDescUpdatedAt is the schema descriptor for updated_at field.
	importitemDescUpdatedAt := importitemFields[16].Descriptor()
	// importitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	importitem.DefaultUpdatedAt = importitemDescUpdatedAt.Default.(func() time.Time)
	// importitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	importitem.UpdateDefaultUpdatedAt = importitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	importsessionFields := schema.ImportSession{}.Fields()
	_ = importsessionFields
	// importsessionDescAutoPublish is the schema descriptor for auto_publish field.
	importsessionDescAutoPublish := importsessionFields[1].Descriptor()
	// importsession.DefaultAutoPublish holds the default value on creation for the auto_publish field.
	importsession.DefaultAutoPublish = importsessionDescAutoPublish.Default.(bool)
	// importsessionDescCompletedFiles is the schema descriptor for completed_files field.
	importsessionDescCompletedFiles := importsessionFields[3].Descriptor()
	// importsession.DefaultCompletedFiles holds the default value on creation for the completed_files field.
	importsession.DefaultCompletedFiles = importsessionDescCompletedFiles.Default.(int)
	// importsessionDescFailedFiles is the schema descriptor for failed_files field.
	importsessionDescFailedFiles := importsessionFields[4].Descriptor()
	// importsession.DefaultFailedFiles holds the default value on creation for the failed_files field.
	importsession.DefaultFailedFiles = importsessionDescFailedFiles.Default.(int)
	// importsessionDescCreatedAt is the schema descriptor for created_at field.
	importsessionDescCreatedAt := importsessionFields[5].Descriptor()
	// importsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	importsession.DefaultCreatedAt = importsessionDescCreatedAt.Default.(func() time.Time)
	// importsessionDescUpdatedAt is the schema descriptor for updated_at field.
	importsessionDescUpdatedAt := importsessionFields[6].Descriptor()
	// importsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	importsession.DefaultUpdatedAt = importsessionDescUpdatedAt.Default.(func() time.Time)
	// importsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	importsession.UpdateDefaultUpdatedAt = importsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	incidentFields := schema.Incident{}.Fields()
	_ = incidentFields
	// incidentDescCreatedAt is the schema descriptor for created_at field.
	incidentDescCreatedAt := incidentFields[11].Descriptor()
	// incident.DefaultCreatedAt holds the default value on creation for the created_at field.
	incident.DefaultCreatedAt = incidentDescCreatedAt.Default.(func() time.Time)
	// incidentDescUpdatedAt is the schema descriptor for updated_at field.
	incidentDescUpdatedAt := incidentFields[12].Descriptor()
	// incident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	incident.DefaultUpdatedAt = incidentDescUpdatedAt.Default.(func() time.Time)
	// incident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	incident.UpdateDefaultUpdatedAt = incidentDescUpdatedAt.UpdateDefault.(func() time.Time)
	postmortemFields := schema.Postmortem{}.Fields()
	_ = postmortemFields
	// postmortemDescCreatedAt is the schema descriptor for created_at field.
	postmortemDescCreatedAt := postmortemFields[5].Descriptor()
	// postmortem.DefaultCreatedAt holds the default value on creation for the created_at field.
	postmortem.DefaultCreatedAt = postmortemDescCreatedAt.Default.(func() time.Time)
	// postmortemDescUpdatedAt is the schema descriptor for updated_at field.
	postmortemDescUpdatedAt := postmortemFields[6].Descriptor()
	// postmortem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	postmortem.DefaultUpdatedAt = postmortemDescUpdatedAt.Default.(func() time.Time)
	// postmortem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	postmortem.UpdateDefaultUpdatedAt = postmortemDescUpdatedAt.UpdateDefault.(func() time.Time)
	timelineeventFields := schema.TimelineEvent{}.Fields()
	_ = timelineeventFields
	// timelineeventDescCreatedAt is the schema descriptor for created_at field.
	timelineeventDescCreatedAt := timelineeventFields[5].Descriptor()
	// timelineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	timelineevent.DefaultCreatedAt = timelineeventDescCreatedAt.Default.(func() time.Time)
}
