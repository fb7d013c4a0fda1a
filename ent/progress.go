// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mathpal/ent/progress"
	"github.com/abhisek/mathpal/ent/schema"
)

// Progress is the model entity for the Progress schema.
type Progress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner this record belongs to
	UserID string `json:"user_id,omitempty"`
	// Learning module, e.g. addition or fractions
	ModuleName string `json:"module_name,omitempty"`
	// UTC wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Cumulative accuracy over all sessions
	AccuracyPct int `json:"accuracy_pct,omitempty"`
	// beginner, developing, proficient, or mastered
	MasteryLevel string `json:"mastery_level,omitempty"`
	// CompletedSessions holds the value of the "completed_sessions" field.
	CompletedSessions int `json:"completed_sessions,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// CurrentDifficulty holds the value of the "current_difficulty" field.
	CurrentDifficulty string `json:"current_difficulty,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []schema.ConceptStat `json:"strengths,omitempty"`
	// Kept sorted weakest first
	WeakAreas []schema.ConceptStat `json:"weak_areas,omitempty"`
	// Rolling average across sessions
	AverageResponseMs float64 `json:"average_response_ms,omitempty"`
	// TotalTimeSecs holds the value of the "total_time_secs" field.
	TotalTimeSecs int `json:"total_time_secs,omitempty"`
	// LastSessionAt holds the value of the "last_session_at" field.
	LastSessionAt *time.Time `json:"last_session_at,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Progress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progress.FieldStrengths, progress.FieldWeakAreas:
			values[i] = new([]byte)
		case progress.FieldAverageResponseMs:
			values[i] = new(sql.NullFloat64)
		case progress.FieldID, progress.FieldAccuracyPct, progress.FieldCompletedSessions, progress.FieldTotalQuestions, progress.FieldCorrectAnswers, progress.FieldTotalTimeSecs:
			values[i] = new(sql.NullInt64)
		case progress.FieldUserID, progress.FieldModuleName, progress.FieldMasteryLevel, progress.FieldCurrentDifficulty:
			values[i] = new(sql.NullString)
		case progress.FieldTimestamp, progress.FieldLastSessionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Progress fields.
func (_m *Progress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progress.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case progress.FieldModuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_name", values[i])
			} else if value.Valid {
				_m.ModuleName = value.String
			}
		case progress.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case progress.FieldAccuracyPct:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_pct", values[i])
			} else if value.Valid {
				_m.AccuracyPct = int(value.Int64)
			}
		case progress.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = value.String
			}
		case progress.FieldCompletedSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_sessions", values[i])
			} else if value.Valid {
				_m.CompletedSessions = int(value.Int64)
			}
		case progress.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case progress.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case progress.FieldCurrentDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_difficulty", values[i])
			} else if value.Valid {
				_m.CurrentDifficulty = value.String
			}
		case progress.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case progress.FieldWeakAreas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weak_areas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WeakAreas); err != nil {
					return fmt.Errorf("unmarshal field weak_areas: %w", err)
				}
			}
		case progress.FieldAverageResponseMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_response_ms", values[i])
			} else if value.Valid {
				_m.AverageResponseMs = value.Float64
			}
		case progress.FieldTotalTimeSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_secs", values[i])
			} else if value.Valid {
				_m.TotalTimeSecs = int(value.Int64)
			}
		case progress.FieldLastSessionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_session_at", values[i])
			} else if value.Valid {
				_m.LastSessionAt = new(time.Time)
				*_m.LastSessionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Progress.
// This includes values selected through modifiers, order, etc.
func (_m *Progress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Progress.
// Note that you need to call Progress.Unwrap() before calling this method if this Progress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Progress) Update() *ProgressUpdateOne {
	return NewProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Progress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Progress) Unwrap() *Progress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Progress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Progress) String() string {
	var builder strings.Builder
	builder.WriteString("Progress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("module_name=")
	builder.WriteString(_m.ModuleName)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("accuracy_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyPct))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(_m.MasteryLevel)
	builder.WriteString(", ")
	builder.WriteString("completed_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedSessions))
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("current_difficulty=")
	builder.WriteString(_m.CurrentDifficulty)
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("weak_areas=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeakAreas))
	builder.WriteString(", ")
	builder.WriteString("average_response_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageResponseMs))
	builder.WriteString(", ")
	builder.WriteString("total_time_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeSecs))
	builder.WriteString(", ")
	if v := _m.LastSessionAt; v != nil {
		builder.WriteString("last_session_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Progresses is a parsable slice of Progress.
type Progresses []*Progress
