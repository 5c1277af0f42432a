// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/gapmapdev/gapmap/ent/classifierrequestevent"
	"github.com/gapmapdev/gapmap/ent/mergeevent"
	"github.com/gapmapdev/gapmap/ent/probeevent"
	"github.com/gapmapdev/gapmap/ent/profileversion"
	"github.com/gapmapdev/gapmap/ent/schema"
	"github.com/gapmapdev/gapmap/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	classifierrequesteventMixin := schema.ClassifierRequestEvent{}.Mixin()
	classifierrequesteventMixinFields0 := classifierrequesteventMixin[0].Fields()
	_ = classifierrequesteventMixinFields0
	classifierrequesteventFields := schema.ClassifierRequestEvent{}.Fields()
	_ = classifierrequesteventFields
	// classifierrequesteventDescTimestamp is the schema descriptor for timestamp field.
	classifierrequesteventDescTimestamp := classifierrequesteventMixinFields0[1].Descriptor()
	// classifierrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	classifierrequestevent.DefaultTimestamp = classifierrequesteventDescTimestamp.Default.(func() time.Time)
	// classifierrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	classifierrequesteventDescLatencyMs := classifierrequesteventFields[2].Descriptor()
	// classifierrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	classifierrequestevent.DefaultLatencyMs = classifierrequesteventDescLatencyMs.Default.(int64)
	// classifierrequesteventDescErrorMessage is the schema descriptor for error_message field.
	classifierrequesteventDescErrorMessage := classifierrequesteventFields[4].Descriptor()
	// classifierrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	classifierrequestevent.DefaultErrorMessage = classifierrequesteventDescErrorMessage.Default.(string)
	mergeeventMixin := schema.MergeEvent{}.Mixin()
	mergeeventMixinFields0 := mergeeventMixin[0].Fields()
	_ = mergeeventMixinFields0
	mergeeventFields := schema.MergeEvent{}.Fields()
	_ = mergeeventFields
	// mergeeventDescTimestamp is the schema descriptor for timestamp field.
	mergeeventDescTimestamp := mergeeventMixinFields0[1].Descriptor()
	// mergeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	mergeevent.DefaultTimestamp = mergeeventDescTimestamp.Default.(func() time.Time)
	// mergeeventDescGapCount is the schema descriptor for gap_count field.
	mergeeventDescGapCount := mergeeventFields[3].Descriptor()
	// mergeevent.DefaultGapCount holds the default value on creation for the gap_count field.
	mergeevent.DefaultGapCount = mergeeventDescGapCount.Default.(int)
	// mergeeventDescMasteredCount is the schema descriptor for mastered_count field.
	mergeeventDescMasteredCount := mergeeventFields[4].Descriptor()
	// mergeevent.DefaultMasteredCount holds the default value on creation for the mastered_count field.
	mergeevent.DefaultMasteredCount = mergeeventDescMasteredCount.Default.(int)
	// mergeeventDescPrimaryGap is the schema descriptor for primary_gap field.
	mergeeventDescPrimaryGap := mergeeventFields[5].Descriptor()
	// mergeevent.DefaultPrimaryGap holds the default value on creation for the primary_gap field.
	mergeevent.DefaultPrimaryGap = mergeeventDescPrimaryGap.Default.(string)
	// mergeeventDescConfidence is the schema descriptor for confidence field.
	mergeeventDescConfidence := mergeeventFields[6].Descriptor()
	// mergeevent.DefaultConfidence holds the default value on creation for the confidence field.
	mergeevent.DefaultConfidence = mergeeventDescConfidence.Default.(float64)
	probeeventMixin := schema.ProbeEvent{}.Mixin()
	probeeventMixinFields0 := probeeventMixin[0].Fields()
	_ = probeeventMixinFields0
	probeeventFields := schema.ProbeEvent{}.Fields()
	_ = probeeventFields
	// probeeventDescTimestamp is the schema descriptor for timestamp field.
	probeeventDescTimestamp := probeeventMixinFields0[1].Descriptor()
	// probeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	probeevent.DefaultTimestamp = probeeventDescTimestamp.Default.(func() time.Time)
	// probeeventDescConfidence is the schema descriptor for confidence field.
	probeeventDescConfidence := probeeventFields[5].Descriptor()
	// probeevent.DefaultConfidence holds the default value on creation for the confidence field.
	probeevent.DefaultConfidence = probeeventDescConfidence.Default.(float64)
	// probeeventDescMisconception is the schema descriptor for misconception field.
	probeeventDescMisconception := probeeventFields[6].Descriptor()
	// probeevent.DefaultMisconception holds the default value on creation for the misconception field.
	probeevent.DefaultMisconception = probeeventDescMisconception.Default.(string)
	profileversionFields := schema.ProfileVersion{}.Fields()
	_ = profileversionFields
	// profileversionDescPrimaryGap is the schema descriptor for primary_gap field.
	profileversionDescPrimaryGap := profileversionFields[5].Descriptor()
	// profileversion.DefaultPrimaryGap holds the default value on creation for the primary_gap field.
	profileversion.DefaultPrimaryGap = profileversionDescPrimaryGap.Default.(string)
	// profileversionDescCascadeLabel is the schema descriptor for cascade_label field.
	profileversionDescCascadeLabel := profileversionFields[6].Descriptor()
	// profileversion.DefaultCascadeLabel holds the default value on creation for the cascade_label field.
	profileversion.DefaultCascadeLabel = profileversionDescCascadeLabel.Default.(string)
	// profileversionDescConfidence is the schema descriptor for confidence field.
	profileversionDescConfidence := profileversionFields[7].Descriptor()
	// profileversion.DefaultConfidence holds the default value on creation for the confidence field.
	profileversion.DefaultConfidence = profileversionDescConfidence.Default.(float64)
	// profileversionDescUpdatedAt is the schema descriptor for updated_at field.
	profileversionDescUpdatedAt := profileversionFields[9].Descriptor()
	// profileversion.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profileversion.DefaultUpdatedAt = profileversionDescUpdatedAt.Default.(func() time.Time)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrecordDescUpdatedAt := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrecord.DefaultUpdatedAt = sessionrecordDescUpdatedAt.Default.(func() time.Time)
	// sessionrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionrecord.UpdateDefaultUpdatedAt = sessionrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
