// Code generated by ent, DO NOT EDIT.

package classifierrequestevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldModel, v))
}

// NodeCode applies equality check predicate on the "node_code" field. It's identical to NodeCodeEQ.
func NodeCode(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldNodeCode, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldContainsFold(FieldModel, v))
}

// NodeCodeEQ applies the EQ predicate on the "node_code" field.
func NodeCodeEQ(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldNodeCode, v))
}

// NodeCodeNEQ applies the NEQ predicate on the "node_code" field.
func NodeCodeNEQ(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldNodeCode, v))
}

// NodeCodeIn applies the In predicate on the "node_code" field.
func NodeCodeIn(vs ...string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldIn(FieldNodeCode, vs...))
}

// NodeCodeNotIn applies the NotIn predicate on the "node_code" field.
func NodeCodeNotIn(vs ...string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNotIn(FieldNodeCode, vs...))
}

// NodeCodeGT applies the GT predicate on the "node_code" field.
func NodeCodeGT(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGT(FieldNodeCode, v))
}

// NodeCodeGTE applies the GTE predicate on the "node_code" field.
func NodeCodeGTE(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGTE(FieldNodeCode, v))
}

// NodeCodeLT applies the LT predicate on the "node_code" field.
func NodeCodeLT(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLT(FieldNodeCode, v))
}

// NodeCodeLTE applies the LTE predicate on the "node_code" field.
func NodeCodeLTE(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLTE(FieldNodeCode, v))
}

// NodeCodeContains applies the Contains predicate on the "node_code" field.
func NodeCodeContains(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldContains(FieldNodeCode, v))
}

// NodeCodeHasPrefix applies the HasPrefix predicate on the "node_code" field.
func NodeCodeHasPrefix(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldHasPrefix(FieldNodeCode, v))
}

// NodeCodeHasSuffix applies the HasSuffix predicate on the "node_code" field.
func NodeCodeHasSuffix(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldHasSuffix(FieldNodeCode, v))
}

// NodeCodeEqualFold applies the EqualFold predicate on the "node_code" field.
func NodeCodeEqualFold(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEqualFold(FieldNodeCode, v))
}

// NodeCodeContainsFold applies the ContainsFold predicate on the "node_code" field.
func NodeCodeContainsFold(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldContainsFold(FieldNodeCode, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ClassifierRequestEvent) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ClassifierRequestEvent) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ClassifierRequestEvent) predicate.ClassifierRequestEvent {
	return predicate.ClassifierRequestEvent(sql.NotPredicates(p))
}
