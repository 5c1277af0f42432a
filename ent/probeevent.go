// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/probeevent"
)

// ProbeEvent is the model entity for the ProbeEvent schema.
type ProbeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session the probe belongs to
	SessionID string `json:"session_id,omitempty"`
	// Learner being diagnosed
	LearnerID string `json:"learner_id,omitempty"`
	// Curriculum node probed
	NodeCode string `json:"node_code,omitempty"`
	// Session phase at probe time: screening, backward_trace, cross_check
	Phase string `json:"phase,omitempty"`
	// Classification outcome: correct, incorrect, inconclusive
	Outcome string `json:"outcome,omitempty"`
	// Classifier confidence, 0 for inconclusive probes
	Confidence float64 `json:"confidence,omitempty"`
	// Matched misconception code, if any
	Misconception string `json:"misconception,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProbeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case probeevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case probeevent.FieldID, probeevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case probeevent.FieldSessionID, probeevent.FieldLearnerID, probeevent.FieldNodeCode, probeevent.FieldPhase, probeevent.FieldOutcome, probeevent.FieldMisconception:
			values[i] = new(sql.NullString)
		case probeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProbeEvent fields.
func (_m *ProbeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case probeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case probeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case probeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case probeevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case probeevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case probeevent.FieldNodeCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field node_code", values[i])
			} else if value.Valid {
				_m.NodeCode = value.String
			}
		case probeevent.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case probeevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case probeevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case probeevent.FieldMisconception:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field misconception", values[i])
			} else if value.Valid {
				_m.Misconception = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProbeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ProbeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProbeEvent.
// Note that you need to call ProbeEvent.Unwrap() before calling this method if this ProbeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProbeEvent) Update() *ProbeEventUpdateOne {
	return NewProbeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProbeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProbeEvent) Unwrap() *ProbeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProbeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProbeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ProbeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("node_code=")
	builder.WriteString(_m.NodeCode)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("misconception=")
	builder.WriteString(_m.Misconception)
	builder.WriteByte(')')
	return builder.String()
}

// ProbeEvents is a parsable slice of ProbeEvent.
type ProbeEvents []*ProbeEvent
