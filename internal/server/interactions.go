package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/telemetry"
)

// defaultPatternsLimit caps the patterns query when the client doesn't.
const defaultPatternsLimit = 100

// InteractionsHandler serves the raw telemetry routes.
type InteractionsHandler struct {
	log    *zap.Logger
	engine *engine.Service
}

func NewInteractionsHandler(log *zap.Logger, svc *engine.Service) *InteractionsHandler {
	return &InteractionsHandler{log: log, engine: svc}
}

// LogEvent stores a single interaction event.
func (h *InteractionsHandler) LogEvent(c *gin.Context) {
	var raw json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	if err := validateEvent(raw); err != nil {
		badRequest(c, fmt.Sprintf("invalid event: %v", err))
		return
	}

	var event telemetry.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		badRequest(c, "invalid event shape")
		return
	}

	stored, _, err := h.engine.IngestEvents(c.Request.Context(), []telemetry.Event{event})
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if stored == 0 {
		badRequest(c, "event payload is incomplete for its type")
		return
	}
	respondData(c, http.StatusCreated, event)
}

// LogEventsBatch stores a batch of interaction events. The whole batch
// is rejected when any element fails schema validation; events that
// pass the schema but carry an incomplete payload for their type are
// skipped and counted.
func (h *InteractionsHandler) LogEventsBatch(c *gin.Context) {
	var body struct {
		Events []json.RawMessage `json:"events"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	if len(body.Events) == 0 {
		badRequest(c, "events array is required")
		return
	}

	events := make([]telemetry.Event, len(body.Events))
	for i, raw := range body.Events {
		if err := validateEvent(raw); err != nil {
			badRequest(c, fmt.Sprintf("invalid event at index %d: %v", i, err))
			return
		}
		if err := json.Unmarshal(raw, &events[i]); err != nil {
			badRequest(c, fmt.Sprintf("invalid event shape at index %d", i))
			return
		}
	}

	stored, skipped, err := h.engine.IngestEvents(c.Request.Context(), events)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"count":   stored,
		"skipped": skipped,
	})
}

// SessionEvents returns one session's events, oldest first.
func (h *InteractionsHandler) SessionEvents(c *gin.Context) {
	events, err := h.engine.SessionEvents(c.Request.Context(), c.Param("userId"), c.Param("sessionId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, http.StatusOK, len(events), events)
}

// SessionMetrics returns the aggregated engagement metrics of one
// session. A session with no interaction data is a 404.
func (h *InteractionsHandler) SessionMetrics(c *gin.Context) {
	metrics, _, err := h.engine.SessionMetrics(c.Request.Context(), c.Param("userId"), c.Param("sessionId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if metrics == nil {
		notFound(c, "no interaction data found for this session")
		return
	}
	respondData(c, http.StatusOK, metrics)
}

// Patterns returns a learner's recent events with a coarse pattern
// summary.
func (h *InteractionsHandler) Patterns(c *gin.Context) {
	limit := defaultPatternsLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, analysis, err := h.engine.Patterns(c.Request.Context(), c.Param("userId"), c.Query("moduleName"), limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, http.StatusOK, len(events), gin.H{
		"events":   events,
		"analysis": analysis,
	})
}

// AdaptiveFeedback decides the realtime nudge from the events the
// client sent along. Storeless; a store outage never blocks it.
func (h *InteractionsHandler) AdaptiveFeedback(c *gin.Context) {
	var body struct {
		SessionID         string            `json:"sessionId"`
		CurrentQuestionID string            `json:"currentQuestionId"`
		RecentEvents      []telemetry.Event `json:"recentEvents"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	respondData(c, http.StatusOK, h.engine.Nudge(body.RecentEvents))
}
