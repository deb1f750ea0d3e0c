// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AIQuestion is the predicate function for aiquestion builders.
type AIQuestion func(*sql.Selector)

// ActionItem is the predicate function for actionitem builders.
type ActionItem func(*sql.Selector)

// ImportItem is the predicate function for importitem builders.
type ImportItem func(*sql.Selector)

// ImportSession is the predicate function for importsession builders.
type ImportSession func(*sql.Selector)

// Incident is the predicate function for incident builders.
type Incident func(*sql.Selector)

// Postmortem is the predicate function for postmortem builders.
type Postmortem func(*sql.Selector)

// TimelineEvent is the predicate function for timelineevent builders.
type TimelineEvent func(*sql.Selector)
