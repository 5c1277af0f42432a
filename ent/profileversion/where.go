// Code generated by ent, DO NOT EDIT.

package profileversion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldLearnerID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldVersion, v))
}

// PrimaryGap applies equality check predicate on the "primary_gap" field. It's identical to PrimaryGapEQ.
func PrimaryGap(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldPrimaryGap, v))
}

// CascadeLabel applies equality check predicate on the "cascade_label" field. It's identical to CascadeLabelEQ.
func CascadeLabel(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldCascadeLabel, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldConfidence, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldSource, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContainsFold(FieldLearnerID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldVersion, v))
}

// PrimaryGapEQ applies the EQ predicate on the "primary_gap" field.
func PrimaryGapEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldPrimaryGap, v))
}

// PrimaryGapNEQ applies the NEQ predicate on the "primary_gap" field.
func PrimaryGapNEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldPrimaryGap, v))
}

// PrimaryGapIn applies the In predicate on the "primary_gap" field.
func PrimaryGapIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldPrimaryGap, vs...))
}

// PrimaryGapNotIn applies the NotIn predicate on the "primary_gap" field.
func PrimaryGapNotIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldPrimaryGap, vs...))
}

// PrimaryGapGT applies the GT predicate on the "primary_gap" field.
func PrimaryGapGT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldPrimaryGap, v))
}

// PrimaryGapGTE applies the GTE predicate on the "primary_gap" field.
func PrimaryGapGTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldPrimaryGap, v))
}

// PrimaryGapLT applies the LT predicate on the "primary_gap" field.
func PrimaryGapLT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldPrimaryGap, v))
}

// PrimaryGapLTE applies the LTE predicate on the "primary_gap" field.
func PrimaryGapLTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldPrimaryGap, v))
}

// PrimaryGapContains applies the Contains predicate on the "primary_gap" field.
func PrimaryGapContains(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContains(FieldPrimaryGap, v))
}

// PrimaryGapHasPrefix applies the HasPrefix predicate on the "primary_gap" field.
func PrimaryGapHasPrefix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasPrefix(FieldPrimaryGap, v))
}

// PrimaryGapHasSuffix applies the HasSuffix predicate on the "primary_gap" field.
func PrimaryGapHasSuffix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasSuffix(FieldPrimaryGap, v))
}

// PrimaryGapEqualFold applies the EqualFold predicate on the "primary_gap" field.
func PrimaryGapEqualFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEqualFold(FieldPrimaryGap, v))
}

// PrimaryGapContainsFold applies the ContainsFold predicate on the "primary_gap" field.
func PrimaryGapContainsFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContainsFold(FieldPrimaryGap, v))
}

// CascadeLabelEQ applies the EQ predicate on the "cascade_label" field.
func CascadeLabelEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldCascadeLabel, v))
}

// CascadeLabelNEQ applies the NEQ predicate on the "cascade_label" field.
func CascadeLabelNEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldCascadeLabel, v))
}

// CascadeLabelIn applies the In predicate on the "cascade_label" field.
func CascadeLabelIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldCascadeLabel, vs...))
}

// CascadeLabelNotIn applies the NotIn predicate on the "cascade_label" field.
func CascadeLabelNotIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldCascadeLabel, vs...))
}

// CascadeLabelGT applies the GT predicate on the "cascade_label" field.
func CascadeLabelGT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldCascadeLabel, v))
}

// CascadeLabelGTE applies the GTE predicate on the "cascade_label" field.
func CascadeLabelGTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldCascadeLabel, v))
}

// CascadeLabelLT applies the LT predicate on the "cascade_label" field.
func CascadeLabelLT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldCascadeLabel, v))
}

// CascadeLabelLTE applies the LTE predicate on the "cascade_label" field.
func CascadeLabelLTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldCascadeLabel, v))
}

// CascadeLabelContains applies the Contains predicate on the "cascade_label" field.
func CascadeLabelContains(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContains(FieldCascadeLabel, v))
}

// CascadeLabelHasPrefix applies the HasPrefix predicate on the "cascade_label" field.
func CascadeLabelHasPrefix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasPrefix(FieldCascadeLabel, v))
}

// CascadeLabelHasSuffix applies the HasSuffix predicate on the "cascade_label" field.
func CascadeLabelHasSuffix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasSuffix(FieldCascadeLabel, v))
}

// CascadeLabelEqualFold applies the EqualFold predicate on the "cascade_label" field.
func CascadeLabelEqualFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEqualFold(FieldCascadeLabel, v))
}

// CascadeLabelContainsFold applies the ContainsFold predicate on the "cascade_label" field.
func CascadeLabelContainsFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContainsFold(FieldCascadeLabel, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldConfidence, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldContainsFold(FieldSource, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProfileVersion) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProfileVersion) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProfileVersion) predicate.ProfileVersion {
	return predicate.ProfileVersion(sql.NotPredicates(p))
}
