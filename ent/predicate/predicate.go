// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// InteractionEvent is the predicate function for interactionevent builders.
type InteractionEvent func(*sql.Selector)

// PerformanceLog is the predicate function for performancelog builders.
type PerformanceLog func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)
