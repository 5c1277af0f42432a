package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileVersion is one immutable version of a learner's gap profile.
// The current profile is the row with the highest version per learner;
// superseded versions are retained for audit, never deleted. The unique
// (learner_id, version) index is what turns a stale read-modify-write
// into a detectable conflict.
type ProfileVersion struct {
	ent.Schema
}

func (ProfileVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Comment("Learner this profile belongs to"),
		field.Int("version").
			Comment("Monotonic per-learner version, 1 for the first merge"),
		field.JSON("tested", []string{}).
			Comment("Sorted node codes with any evidence"),
		field.JSON("gap", []string{}).
			Comment("Sorted node codes judged as gaps"),
		field.JSON("mastered", []string{}).
			Comment("Sorted node codes judged as mastered"),
		field.String("primary_gap").
			Default("").
			Comment("Most foundational unresolved gap node"),
		field.String("cascade_label").
			Default("").
			Comment("Matched systemic failure pattern, if any"),
		field.Float("confidence").
			Default(0).
			Comment("Aggregate confidence in [0, 1]"),
		field.String("source").
			Comment("Observation channel of the most recent contribution"),
		field.Time("updated_at").
			Default(time.Now).
			Comment("When this version was written"),
	}
}

func (ProfileVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "version").Unique(),
		index.Fields("learner_id"),
	}
}
