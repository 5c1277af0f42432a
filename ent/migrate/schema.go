// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClassifierRequestEventsColumns holds the columns for the "classifier_request_events" table.
	ClassifierRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "model", Type: field.TypeString},
		{Name: "node_code", Type: field.TypeString},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// ClassifierRequestEventsTable holds the schema information for the "classifier_request_events" table.
	ClassifierRequestEventsTable = &schema.Table{
		Name:       "classifier_request_events",
		Columns:    ClassifierRequestEventsColumns,
		PrimaryKey: []*schema.Column{ClassifierRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "classifierrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ClassifierRequestEventsColumns[1]},
			},
			{
				Name:    "classifierrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ClassifierRequestEventsColumns[2]},
			},
			{
				Name:    "classifierrequestevent_model",
				Unique:  false,
				Columns: []*schema.Column{ClassifierRequestEventsColumns[3]},
			},
			{
				Name:    "classifierrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{ClassifierRequestEventsColumns[6]},
			},
		},
	}
	// MergeEventsColumns holds the columns for the "merge_events" table.
	MergeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "gap_count", Type: field.TypeInt, Default: 0},
		{Name: "mastered_count", Type: field.TypeInt, Default: 0},
		{Name: "primary_gap", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
	}
	// MergeEventsTable holds the schema information for the "merge_events" table.
	MergeEventsTable = &schema.Table{
		Name:       "merge_events",
		Columns:    MergeEventsColumns,
		PrimaryKey: []*schema.Column{MergeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mergeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MergeEventsColumns[1]},
			},
			{
				Name:    "mergeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MergeEventsColumns[2]},
			},
			{
				Name:    "mergeevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{MergeEventsColumns[3]},
			},
			{
				Name:    "mergeevent_source",
				Unique:  false,
				Columns: []*schema.Column{MergeEventsColumns[4]},
			},
		},
	}
	// ProbeEventsColumns holds the columns for the "probe_events" table.
	ProbeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "node_code", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "misconception", Type: field.TypeString, Default: ""},
	}
	// ProbeEventsTable holds the schema information for the "probe_events" table.
	ProbeEventsTable = &schema.Table{
		Name:       "probe_events",
		Columns:    ProbeEventsColumns,
		PrimaryKey: []*schema.Column{ProbeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "probeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[1]},
			},
			{
				Name:    "probeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[2]},
			},
			{
				Name:    "probeevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[3]},
			},
			{
				Name:    "probeevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[4]},
			},
			{
				Name:    "probeevent_node_code",
				Unique:  false,
				Columns: []*schema.Column{ProbeEventsColumns[5]},
			},
		},
	}
	// ProfileVersionsColumns holds the columns for the "profile_versions" table.
	ProfileVersionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "tested", Type: field.TypeJSON},
		{Name: "gap", Type: field.TypeJSON},
		{Name: "mastered", Type: field.TypeJSON},
		{Name: "primary_gap", Type: field.TypeString, Default: ""},
		{Name: "cascade_label", Type: field.TypeString, Default: ""},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "source", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfileVersionsTable holds the schema information for the "profile_versions" table.
	ProfileVersionsTable = &schema.Table{
		Name:       "profile_versions",
		Columns:    ProfileVersionsColumns,
		PrimaryKey: []*schema.Column{ProfileVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "profileversion_learner_id_version",
				Unique:  true,
				Columns: []*schema.Column{ProfileVersionsColumns[1], ProfileVersionsColumns[2]},
			},
			{
				Name:    "profileversion_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ProfileVersionsColumns[1]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "phase", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_learner_id",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2]},
			},
			{
				Name:    "sessionrecord_phase",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClassifierRequestEventsTable,
		MergeEventsTable,
		ProbeEventsTable,
		ProfileVersionsTable,
		SessionRecordsTable,
	}
)

func init() {
}
