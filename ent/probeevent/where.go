// Code generated by ent, DO NOT EDIT.

package probeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// NodeCode applies equality check predicate on the "node_code" field. It's identical to NodeCodeEQ.
func NodeCode(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldNodeCode, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldPhase, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldOutcome, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldConfidence, v))
}

// Misconception applies equality check predicate on the "misconception" field. It's identical to MisconceptionEQ.
func Misconception(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldMisconception, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// NodeCodeEQ applies the EQ predicate on the "node_code" field.
func NodeCodeEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldNodeCode, v))
}

// NodeCodeNEQ applies the NEQ predicate on the "node_code" field.
func NodeCodeNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldNodeCode, v))
}

// NodeCodeIn applies the In predicate on the "node_code" field.
func NodeCodeIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldNodeCode, vs...))
}

// NodeCodeNotIn applies the NotIn predicate on the "node_code" field.
func NodeCodeNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldNodeCode, vs...))
}

// NodeCodeGT applies the GT predicate on the "node_code" field.
func NodeCodeGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldNodeCode, v))
}

// NodeCodeGTE applies the GTE predicate on the "node_code" field.
func NodeCodeGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldNodeCode, v))
}

// NodeCodeLT applies the LT predicate on the "node_code" field.
func NodeCodeLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldNodeCode, v))
}

// NodeCodeLTE applies the LTE predicate on the "node_code" field.
func NodeCodeLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldNodeCode, v))
}

// NodeCodeContains applies the Contains predicate on the "node_code" field.
func NodeCodeContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldNodeCode, v))
}

// NodeCodeHasPrefix applies the HasPrefix predicate on the "node_code" field.
func NodeCodeHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldNodeCode, v))
}

// NodeCodeHasSuffix applies the HasSuffix predicate on the "node_code" field.
func NodeCodeHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldNodeCode, v))
}

// NodeCodeEqualFold applies the EqualFold predicate on the "node_code" field.
func NodeCodeEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldNodeCode, v))
}

// NodeCodeContainsFold applies the ContainsFold predicate on the "node_code" field.
func NodeCodeContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldNodeCode, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldPhase, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldConfidence, v))
}

// MisconceptionEQ applies the EQ predicate on the "misconception" field.
func MisconceptionEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEQ(FieldMisconception, v))
}

// MisconceptionNEQ applies the NEQ predicate on the "misconception" field.
func MisconceptionNEQ(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNEQ(FieldMisconception, v))
}

// MisconceptionIn applies the In predicate on the "misconception" field.
func MisconceptionIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldIn(FieldMisconception, vs...))
}

// MisconceptionNotIn applies the NotIn predicate on the "misconception" field.
func MisconceptionNotIn(vs ...string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldNotIn(FieldMisconception, vs...))
}

// MisconceptionGT applies the GT predicate on the "misconception" field.
func MisconceptionGT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGT(FieldMisconception, v))
}

// MisconceptionGTE applies the GTE predicate on the "misconception" field.
func MisconceptionGTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldGTE(FieldMisconception, v))
}

// MisconceptionLT applies the LT predicate on the "misconception" field.
func MisconceptionLT(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLT(FieldMisconception, v))
}

// MisconceptionLTE applies the LTE predicate on the "misconception" field.
func MisconceptionLTE(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldLTE(FieldMisconception, v))
}

// MisconceptionContains applies the Contains predicate on the "misconception" field.
func MisconceptionContains(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContains(FieldMisconception, v))
}

// MisconceptionHasPrefix applies the HasPrefix predicate on the "misconception" field.
func MisconceptionHasPrefix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasPrefix(FieldMisconception, v))
}

// MisconceptionHasSuffix applies the HasSuffix predicate on the "misconception" field.
func MisconceptionHasSuffix(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldHasSuffix(FieldMisconception, v))
}

// MisconceptionEqualFold applies the EqualFold predicate on the "misconception" field.
func MisconceptionEqualFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldEqualFold(FieldMisconception, v))
}

// MisconceptionContainsFold applies the ContainsFold predicate on the "misconception" field.
func MisconceptionContainsFold(v string) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.FieldContainsFold(FieldMisconception, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProbeEvent) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProbeEvent) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProbeEvent) predicate.ProbeEvent {
	return predicate.ProbeEvent(sql.NotPredicates(p))
}
