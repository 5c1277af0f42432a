// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClassifierRequestEvent is the predicate function for classifierrequestevent builders.
type ClassifierRequestEvent func(*sql.Selector)

// MergeEvent is the predicate function for mergeevent builders.
type MergeEvent func(*sql.Selector)

// ProbeEvent is the predicate function for probeevent builders.
type ProbeEvent func(*sql.Selector)

// ProfileVersion is the predicate function for profileversion builders.
type ProfileVersion func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)
