// Code generated by ent, DO NOT EDIT.

package profileversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profileversion type in the database.
	Label = "profile_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldTested holds the string denoting the tested field in the database.
	FieldTested = "tested"
	// FieldGap holds the string denoting the gap field in the database.
	FieldGap = "gap"
	// FieldMastered holds the string denoting the mastered field in the database.
	FieldMastered = "mastered"
	// FieldPrimaryGap holds the string denoting the primary_gap field in the database.
	FieldPrimaryGap = "primary_gap"
	// FieldCascadeLabel holds the string denoting the cascade_label field in the database.
	FieldCascadeLabel = "cascade_label"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profileversion in the database.
	Table = "profile_versions"
)

// Columns holds all SQL columns for profileversion fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldVersion,
	FieldTested,
	FieldGap,
	FieldMastered,
	FieldPrimaryGap,
	FieldCascadeLabel,
	FieldConfidence,
	FieldSource,
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
	// DefaultPrimaryGap holds the default value on creation for the "primary_gap" field.
	DefaultPrimaryGap string
	// DefaultCascadeLabel holds the default value on creation for the "cascade_label" field.
	DefaultCascadeLabel string
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProfileVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPrimaryGap orders the results by the primary_gap field.
func ByPrimaryGap(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryGap, opts...).ToFunc()
}

// ByCascadeLabel orders the results by the cascade_label field.
func ByCascadeLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCascadeLabel, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
