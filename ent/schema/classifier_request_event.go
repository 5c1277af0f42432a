package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClassifierRequestEvent records every response-classifier call for
// cost tracking and debugging.
type ClassifierRequestEvent struct {
	ent.Schema
}

func (ClassifierRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ClassifierRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("model").
			Comment("Model ID that served the classification"),
		field.String("node_code").
			Comment("Curriculum node the probe targeted"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Comment("Whether the request succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (ClassifierRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("model"),
		index.Fields("success"),
	}
}
