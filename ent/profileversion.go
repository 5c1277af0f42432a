// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/gapmapdev/gapmap/ent/profileversion"
)

// ProfileVersion is the model entity for the ProfileVersion schema.
type ProfileVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner this profile belongs to
	LearnerID string `json:"learner_id,omitempty"`
	// Monotonic per-learner version, 1 for the first merge
	Version int `json:"version,omitempty"`
	// Sorted node codes with any evidence
	Tested []string `json:"tested,omitempty"`
	// Sorted node codes judged as gaps
	Gap []string `json:"gap,omitempty"`
	// Sorted node codes judged as mastered
	Mastered []string `json:"mastered,omitempty"`
	// Most foundational unresolved gap node
	PrimaryGap string `json:"primary_gap,omitempty"`
	// Matched systemic failure pattern, if any
	CascadeLabel string `json:"cascade_label,omitempty"`
	// Aggregate confidence in [0, 1]
	Confidence float64 `json:"confidence,omitempty"`
	// Observation channel of the most recent contribution
	Source string `json:"source,omitempty"`
	// When this version was written
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProfileVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profileversion.FieldTested, profileversion.FieldGap, profileversion.FieldMastered:
			values[i] = new([]byte)
		case profileversion.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case profileversion.FieldID, profileversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case profileversion.FieldLearnerID, profileversion.FieldPrimaryGap, profileversion.FieldCascadeLabel, profileversion.FieldSource:
			values[i] = new(sql.NullString)
		case profileversion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProfileVersion fields.
func (_m *ProfileVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profileversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profileversion.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case profileversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case profileversion.FieldTested:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tested", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tested); err != nil {
					return fmt.Errorf("unmarshal field tested: %w", err)
				}
			}
		case profileversion.FieldGap:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gap", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gap); err != nil {
					return fmt.Errorf("unmarshal field gap: %w", err)
				}
			}
		case profileversion.FieldMastered:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mastered", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Mastered); err != nil {
					return fmt.Errorf("unmarshal field mastered: %w", err)
				}
			}
		case profileversion.FieldPrimaryGap:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_gap", values[i])
			} else if value.Valid {
				_m.PrimaryGap = value.String
			}
		case profileversion.FieldCascadeLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cascade_label", values[i])
			} else if value.Valid {
				_m.CascadeLabel = value.String
			}
		case profileversion.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case profileversion.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case profileversion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProfileVersion.
// This includes values selected through modifiers, order, etc.
func (_m *ProfileVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProfileVersion.
// Note that you need to call ProfileVersion.Unwrap() before calling this method if this ProfileVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProfileVersion) Update() *ProfileVersionUpdateOne {
	return NewProfileVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProfileVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProfileVersion) Unwrap() *ProfileVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProfileVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProfileVersion) String() string {
	var builder strings.Builder
	builder.WriteString("ProfileVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("tested=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tested))
	builder.WriteString(", ")
	builder.WriteString("gap=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gap))
	builder.WriteString(", ")
	builder.WriteString("mastered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastered))
	builder.WriteString(", ")
	builder.WriteString("primary_gap=")
	builder.WriteString(_m.PrimaryGap)
	builder.WriteString(", ")
	builder.WriteString("cascade_label=")
	builder.WriteString(_m.CascadeLabel)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProfileVersions is a parsable slice of ProfileVersion.
type ProfileVersions []*ProfileVersion
