package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MergeEvent records every profile merge, so the evolution of a
// learner's profile can be replayed source by source.
type MergeEvent struct {
	ent.Schema
}

func (MergeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MergeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Comment("Learner whose profile was merged"),
		field.String("source").
			Comment("Contributing observation channel"),
		field.Int("version").
			Comment("Profile version this merge produced"),
		field.Int("gap_count").
			Default(0).
			Comment("Gap set size after the merge"),
		field.Int("mastered_count").
			Default(0).
			Comment("Mastered set size after the merge"),
		field.String("primary_gap").
			Default("").
			Comment("Primary gap after the merge"),
		field.Float("confidence").
			Default(0).
			Comment("Aggregate confidence after the merge"),
	}
}

func (MergeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("source"),
	}
}
