package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord persists the full state of one diagnostic session after
// every step, making the state machine resumable across process
// restarts. A session is never held only in volatile memory between
// steps.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			Comment("UUID of the session"),
		field.String("learner_id").
			Immutable().
			Comment("Learner the session diagnoses"),
		field.String("phase").
			Comment("Current phase, kept queryable outside the state blob"),
		field.JSON("state", map[string]any{}).
			Comment("Full serialized session state"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the session was last stepped"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("phase"),
	}
}
