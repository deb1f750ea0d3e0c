// Package ticket provides lookup of incident tickets in the external
// ticketing system, with caching. The pipeline uses it to cross-reference
// incident numbers extracted from imported documents; lookup failures are
// informational and never fail an import item.
package ticket

import "errors"

// ErrTicketNotFound indicates the ticketing system has no record for the
// requested incident number. This is a definitive answer, not a transient
// failure.
var ErrTicketNotFound = errors.New("ticket not found")

// Record is the subset of an external ticket the pipeline cares about.
type Record struct {
	Key      string `json:"key"`
	Summary  string `json:"summary"`
	Status   string `json:"status"`
	Severity string `json:"severity"`
	Assignee string `json:"assignee"`
	URL      string `json:"url"`
}
