package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProbeEvent records every probe submitted to a diagnostic session,
// forming the audit trail of how evidence was gathered.
type ProbeEvent struct {
	ent.Schema
}

func (ProbeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProbeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Comment("Session the probe belongs to"),
		field.String("learner_id").
			Comment("Learner being diagnosed"),
		field.String("node_code").
			Comment("Curriculum node probed"),
		field.String("phase").
			Comment("Session phase at probe time: screening, backward_trace, cross_check"),
		field.String("outcome").
			Comment("Classification outcome: correct, incorrect, inconclusive"),
		field.Float("confidence").
			Default(0).
			Comment("Classifier confidence, 0 for inconclusive probes"),
		field.String("misconception").
			Default("").
			Comment("Matched misconception code, if any"),
	}
}

func (ProbeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id"),
		index.Fields("node_code"),
	}
}
