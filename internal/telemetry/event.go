package telemetry

import "time"

// EventType identifies the kind of interaction a learner produced.
// The set is closed: events with any other type are skipped by the
// aggregation pipeline and reported in the skipped count.
type EventType string

const (
	TypeQuestionDisplayed EventType = "question_displayed"
	TypeMouseMove         EventType = "mouse_move"
	TypeMouseHover        EventType = "mouse_hover"
	TypeMouseClick        EventType = "mouse_click"
	TypeKeyDown           EventType = "key_down"
	TypeKeyUp             EventType = "key_up"
	TypeChoiceHoverStart  EventType = "choice_hover_start"
	TypeChoiceHoverEnd    EventType = "choice_hover_end"
	TypeAnswerSelected    EventType = "answer_selected"
	TypeHintRequested     EventType = "hint_requested"
	TypeVisualFocus       EventType = "visual_focus"
	TypeIdleDetected      EventType = "idle_detected"
	TypeInputStart        EventType = "input_start"
	TypeInputEnd          EventType = "input_end"
)

// AllEventTypes lists every valid event type.
var AllEventTypes = []EventType{
	TypeQuestionDisplayed,
	TypeMouseMove,
	TypeMouseHover,
	TypeMouseClick,
	TypeKeyDown,
	TypeKeyUp,
	TypeChoiceHoverStart,
	TypeChoiceHoverEnd,
	TypeAnswerSelected,
	TypeHintRequested,
	TypeVisualFocus,
	TypeIdleDetected,
	TypeInputStart,
	TypeInputEnd,
}

// Valid reports whether t is part of the closed event type enumeration.
func (t EventType) Valid() bool {
	switch t {
	case TypeQuestionDisplayed, TypeMouseMove, TypeMouseHover, TypeMouseClick,
		TypeKeyDown, TypeKeyUp, TypeChoiceHoverStart, TypeChoiceHoverEnd,
		TypeAnswerSelected, TypeHintRequested, TypeVisualFocus,
		TypeIdleDetected, TypeInputStart, TypeInputEnd:
		return true
	}
	return false
}

// IsMouse reports whether t is a mouse-class event (used for learning
// mode detection).
func (t EventType) IsMouse() bool {
	return t == TypeMouseMove || t == TypeMouseHover || t == TypeMouseClick
}

// IsKeyboard reports whether t is a keyboard-class event.
func (t EventType) IsKeyboard() bool {
	return t == TypeKeyDown || t == TypeKeyUp
}

// Event is a single immutable interaction record. Timestamps within one
// session are expected to be non-decreasing; out-of-order events are
// tolerated but never reordered here; ordering is the producer's job.
type Event struct {
	UserID     string    `json:"userId"`
	SessionID  string    `json:"sessionId"`
	ModuleName string    `json:"moduleName"`
	QuestionID string    `json:"questionId"`
	Type       EventType `json:"eventType"`
	Payload    Payload   `json:"eventData"`
	Timestamp  time.Time `json:"timestamp"`
}

// Payload carries the event-type-specific fields as they arrive on the
// wire. Which fields are meaningful depends on the event type; use the
// typed accessors (Answer, Hover, Idle, DisplayedAt) instead of
// reading optional fields directly.
type Payload struct {
	TargetElement string   `json:"targetElement,omitempty"`
	KeyCode       string   `json:"keyCode,omitempty"`
	ChoiceIndex   *int     `json:"choiceIndex,omitempty"`
	HoverDuration *int64   `json:"hoverDuration,omitempty"` // ms
	ReactionTime  *int64   `json:"reactionTime,omitempty"`  // ms since question display
	Duration      *int64   `json:"duration,omitempty"`      // ms, idle periods
	IsCorrect     *bool    `json:"isCorrect,omitempty"`
	Timestamp     *int64   `json:"timestamp,omitempty"` // epoch ms, set by the client
	MouseX        *float64 `json:"x,omitempty"`
	MouseY        *float64 `json:"y,omitempty"`
}

// AnswerPayload is the typed payload of an answer_selected event.
type AnswerPayload struct {
	ReactionTimeMs int64
	Correct        bool
}

// HoverPayload is the typed payload of a choice_hover_start or
// choice_hover_end event.
type HoverPayload struct {
	ChoiceIndex     int
	HoverDurationMs int64 // only meaningful on hover start; 0 when absent
}

// IdlePayload is the typed payload of an idle_detected event.
type IdlePayload struct {
	DurationMs int64
}

// Answer extracts the answer payload. Returns false when the event is
// not answer_selected or a required field is missing (malformed input,
// skipped per the error handling policy).
func (e *Event) Answer() (AnswerPayload, bool) {
	if e.Type != TypeAnswerSelected || e.Payload.ReactionTime == nil || e.Payload.IsCorrect == nil {
		return AnswerPayload{}, false
	}
	return AnswerPayload{
		ReactionTimeMs: *e.Payload.ReactionTime,
		Correct:        *e.Payload.IsCorrect,
	}, true
}

// Hover extracts the hover payload from a choice_hover_start or
// choice_hover_end event. Returns false when the choice index is missing.
func (e *Event) Hover() (HoverPayload, bool) {
	if e.Type != TypeChoiceHoverStart && e.Type != TypeChoiceHoverEnd {
		return HoverPayload{}, false
	}
	if e.Payload.ChoiceIndex == nil {
		return HoverPayload{}, false
	}
	p := HoverPayload{ChoiceIndex: *e.Payload.ChoiceIndex}
	if e.Payload.HoverDuration != nil {
		p.HoverDurationMs = *e.Payload.HoverDuration
	}
	return p, true
}

// Idle extracts the idle payload. Returns false when the event is not
// idle_detected or the duration is missing.
func (e *Event) Idle() (IdlePayload, bool) {
	if e.Type != TypeIdleDetected || e.Payload.Duration == nil {
		return IdlePayload{}, false
	}
	return IdlePayload{DurationMs: *e.Payload.Duration}, true
}

// WellFormed reports whether the event has a known type and carries
// every payload field that type requires. Malformed events are skipped
// by aggregate computations, never fatal.
func (e *Event) WellFormed() bool {
	if !e.Type.Valid() {
		return false
	}
	switch e.Type {
	case TypeAnswerSelected:
		_, ok := e.Answer()
		return ok
	case TypeChoiceHoverStart, TypeChoiceHoverEnd:
		_, ok := e.Hover()
		return ok
	case TypeIdleDetected:
		_, ok := e.Idle()
		return ok
	}
	return true
}

// DisplayedAt returns the client-side display time of a
// question_displayed event, falling back to the server timestamp when
// the payload doesn't carry one.
func (e *Event) DisplayedAt() time.Time {
	if e.Type == TypeQuestionDisplayed && e.Payload.Timestamp != nil {
		return time.UnixMilli(*e.Payload.Timestamp)
	}
	return e.Timestamp
}
