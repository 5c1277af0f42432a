// Code generated by ent, DO NOT EDIT.

package mergeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSource, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldVersion, v))
}

// GapCount applies equality check predicate on the "gap_count" field. It's identical to GapCountEQ.
func GapCount(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldGapCount, v))
}

// MasteredCount applies equality check predicate on the "mastered_count" field. It's identical to MasteredCountEQ.
func MasteredCount(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldMasteredCount, v))
}

// PrimaryGap applies equality check predicate on the "primary_gap" field. It's identical to PrimaryGapEQ.
func PrimaryGap(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldPrimaryGap, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContainsFold(FieldSource, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldVersion, v))
}

// GapCountEQ applies the EQ predicate on the "gap_count" field.
func GapCountEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldGapCount, v))
}

// GapCountNEQ applies the NEQ predicate on the "gap_count" field.
func GapCountNEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldGapCount, v))
}

// GapCountIn applies the In predicate on the "gap_count" field.
func GapCountIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldGapCount, vs...))
}

// GapCountNotIn applies the NotIn predicate on the "gap_count" field.
func GapCountNotIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldGapCount, vs...))
}

// GapCountGT applies the GT predicate on the "gap_count" field.
func GapCountGT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldGapCount, v))
}

// GapCountGTE applies the GTE predicate on the "gap_count" field.
func GapCountGTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldGapCount, v))
}

// GapCountLT applies the LT predicate on the "gap_count" field.
func GapCountLT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldGapCount, v))
}

// GapCountLTE applies the LTE predicate on the "gap_count" field.
func GapCountLTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldGapCount, v))
}

// MasteredCountEQ applies the EQ predicate on the "mastered_count" field.
func MasteredCountEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldMasteredCount, v))
}

// MasteredCountNEQ applies the NEQ predicate on the "mastered_count" field.
func MasteredCountNEQ(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldMasteredCount, v))
}

// MasteredCountIn applies the In predicate on the "mastered_count" field.
func MasteredCountIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldMasteredCount, vs...))
}

// MasteredCountNotIn applies the NotIn predicate on the "mastered_count" field.
func MasteredCountNotIn(vs ...int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldMasteredCount, vs...))
}

// MasteredCountGT applies the GT predicate on the "mastered_count" field.
func MasteredCountGT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldMasteredCount, v))
}

// MasteredCountGTE applies the GTE predicate on the "mastered_count" field.
func MasteredCountGTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldMasteredCount, v))
}

// MasteredCountLT applies the LT predicate on the "mastered_count" field.
func MasteredCountLT(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldMasteredCount, v))
}

// MasteredCountLTE applies the LTE predicate on the "mastered_count" field.
func MasteredCountLTE(v int) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldMasteredCount, v))
}

// PrimaryGapEQ applies the EQ predicate on the "primary_gap" field.
func PrimaryGapEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldPrimaryGap, v))
}

// PrimaryGapNEQ applies the NEQ predicate on the "primary_gap" field.
func PrimaryGapNEQ(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldPrimaryGap, v))
}

// PrimaryGapIn applies the In predicate on the "primary_gap" field.
func PrimaryGapIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldPrimaryGap, vs...))
}

// PrimaryGapNotIn applies the NotIn predicate on the "primary_gap" field.
func PrimaryGapNotIn(vs ...string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldPrimaryGap, vs...))
}

// PrimaryGapGT applies the GT predicate on the "primary_gap" field.
func PrimaryGapGT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldPrimaryGap, v))
}

// PrimaryGapGTE applies the GTE predicate on the "primary_gap" field.
func PrimaryGapGTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldPrimaryGap, v))
}

// PrimaryGapLT applies the LT predicate on the "primary_gap" field.
func PrimaryGapLT(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldPrimaryGap, v))
}

// PrimaryGapLTE applies the LTE predicate on the "primary_gap" field.
func PrimaryGapLTE(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldPrimaryGap, v))
}

// PrimaryGapContains applies the Contains predicate on the "primary_gap" field.
func PrimaryGapContains(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContains(FieldPrimaryGap, v))
}

// PrimaryGapHasPrefix applies the HasPrefix predicate on the "primary_gap" field.
func PrimaryGapHasPrefix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasPrefix(FieldPrimaryGap, v))
}

// PrimaryGapHasSuffix applies the HasSuffix predicate on the "primary_gap" field.
func PrimaryGapHasSuffix(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldHasSuffix(FieldPrimaryGap, v))
}

// PrimaryGapEqualFold applies the EqualFold predicate on the "primary_gap" field.
func PrimaryGapEqualFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEqualFold(FieldPrimaryGap, v))
}

// PrimaryGapContainsFold applies the ContainsFold predicate on the "primary_gap" field.
func PrimaryGapContainsFold(v string) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldContainsFold(FieldPrimaryGap, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.MergeEvent {
	return predicate.MergeEvent(sql.FieldLTE(FieldConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergeEvent) predicate.MergeEvent {
	return predicate.MergeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergeEvent) predicate.MergeEvent {
	return predicate.MergeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergeEvent) predicate.MergeEvent {
	return predicate.MergeEvent(sql.NotPredicates(p))
}
