// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/mergeevent"
)

// MergeEvent is the model entity for the MergeEvent schema.
type MergeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner whose profile was merged
	LearnerID string `json:"learner_id,omitempty"`
	// Contributing observation channel
	Source string `json:"source,omitempty"`
	// Profile version this merge produced
	Version int `json:"version,omitempty"`
	// Gap set size after the merge
	GapCount int `json:"gap_count,omitempty"`
	// Mastered set size after the merge
	MasteredCount int `json:"mastered_count,omitempty"`
	// Primary gap after the merge
	PrimaryGap string `json:"primary_gap,omitempty"`
	// Aggregate confidence after the merge
	Confidence   float64 `json:"confidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MergeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mergeevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case mergeevent.FieldID, mergeevent.FieldSequence, mergeevent.FieldVersion, mergeevent.FieldGapCount, mergeevent.FieldMasteredCount:
			values[i] = new(sql.NullInt64)
		case mergeevent.FieldLearnerID, mergeevent.FieldSource, mergeevent.FieldPrimaryGap:
			values[i] = new(sql.NullString)
		case mergeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MergeEvent fields.
func (_m *MergeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mergeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mergeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case mergeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case mergeevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case mergeevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case mergeevent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case mergeevent.FieldGapCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gap_count", values[i])
			} else if value.Valid {
				_m.GapCount = int(value.Int64)
			}
		case mergeevent.FieldMasteredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_count", values[i])
			} else if value.Valid {
				_m.MasteredCount = int(value.Int64)
			}
		case mergeevent.FieldPrimaryGap:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_gap", values[i])
			} else if value.Valid {
				_m.PrimaryGap = value.String
			}
		case mergeevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MergeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MergeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MergeEvent.
// Note that you need to call MergeEvent.Unwrap() before calling this method if this MergeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MergeEvent) Update() *MergeEventUpdateOne {
	return NewMergeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MergeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MergeEvent) Unwrap() *MergeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MergeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MergeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MergeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("gap_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapCount))
	builder.WriteString(", ")
	builder.WriteString("mastered_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteredCount))
	builder.WriteString(", ")
	builder.WriteString("primary_gap=")
	builder.WriteString(_m.PrimaryGap)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// MergeEvents is a parsable slice of MergeEvent.
type MergeEvents []*MergeEvent
