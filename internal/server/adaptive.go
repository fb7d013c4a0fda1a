package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
)

// AdaptiveHandler serves the derived-signal routes: recommendations,
// session parameters, trends, concept mastery and the combined
// feedback fan-out.
type AdaptiveHandler struct {
	log    *zap.Logger
	engine *engine.Service
}

func NewAdaptiveHandler(log *zap.Logger, svc *engine.Service) *AdaptiveHandler {
	return &AdaptiveHandler{log: log, engine: svc}
}

// Recommendation returns the baseline recommendations for a learner on
// a module. A learner with no history gets the new-learner defaults.
func (h *AdaptiveHandler) Recommendation(c *gin.Context) {
	rec, err := h.engine.Recommendations(c.Request.Context(), c.Param("userId"), c.Param("moduleName"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, rec)
}

// Parameters returns the next session's parameters.
func (h *AdaptiveHandler) Parameters(c *gin.Context) {
	params, err := h.engine.SessionParameters(c.Request.Context(), c.Param("userId"), c.Param("moduleName"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, params)
}

// Trends returns the performance trend over the trailing window. The
// days query overrides the default window.
func (h *AdaptiveHandler) Trends(c *gin.Context) {
	days := 0
	if s := c.Query("days"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			badRequest(c, "days must be a positive integer")
			return
		}
		days = n
	}

	res, err := h.engine.PerformanceTrend(c.Request.Context(), c.Param("userId"), c.Param("moduleName"), days)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, res)
}

// Mastery reports mastery of one concept from the recent answer log.
func (h *AdaptiveHandler) Mastery(c *gin.Context) {
	assessment, err := h.engine.AssessConcept(c.Request.Context(), c.Param("userId"), c.Param("moduleName"), c.Param("concept"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, assessment)
}

// Feedback runs the comprehensive feedback fan-out. The sessionId query
// selects which session feeds the behavioral branch; absent, the branch
// sees no events and falls back to the neutral profile.
func (h *AdaptiveHandler) Feedback(c *gin.Context) {
	fb, err := h.engine.ComprehensiveFeedback(c.Request.Context(), c.Param("userId"), c.Param("moduleName"), c.Query("sessionId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, fb)
}
