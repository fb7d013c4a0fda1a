package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/mastery"
)

// ProgressHandler serves the cumulative progress routes.
type ProgressHandler struct {
	log    *zap.Logger
	engine *engine.Service
}

func NewProgressHandler(log *zap.Logger, svc *engine.Service) *ProgressHandler {
	return &ProgressHandler{log: log, engine: svc}
}

// User returns all of a learner's progress records with overall
// statistics across modules.
func (h *ProgressHandler) User(c *gin.Context) {
	records, err := h.engine.OverallProgress(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	totalSessions, totalTime, mastered := 0, 0, 0
	accSum := 0
	for _, r := range records {
		totalSessions += r.CompletedSessions
		totalTime += r.TotalTimeSpentSecs
		accSum += r.AccuracyPct
		if r.MasteryLevel == mastery.Mastered {
			mastered++
		}
	}
	avgAccuracy := 0
	if len(records) > 0 {
		avgAccuracy = accSum / len(records)
	}

	respondData(c, http.StatusOK, gin.H{
		"progress": records,
		"overallStats": gin.H{
			"totalSessions":   totalSessions,
			"averageAccuracy": avgAccuracy,
			"masteredModules": mastered,
			"totalTimeSpent":  totalTime,
		},
	})
}

// Module returns a learner's progress on one module, creating the
// default record on first access.
func (h *ProgressHandler) Module(c *gin.Context) {
	rec, err := h.engine.EnsureProgress(c.Request.Context(), c.Param("userId"), c.Param("moduleName"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"progress": rec})
}

// Update folds a completed session into the learner's progress record.
func (h *ProgressHandler) Update(c *gin.Context) {
	var body struct {
		UserID      string                  `json:"userId"`
		ModuleName  string                  `json:"moduleName"`
		SessionData *mastery.SessionSummary `json:"sessionData"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	if body.UserID == "" || body.ModuleName == "" || body.SessionData == nil {
		badRequest(c, "userId, moduleName and sessionData are required")
		return
	}

	rec, err := h.engine.RecordSession(c.Request.Context(), body.UserID, body.ModuleName, *body.SessionData, nil)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"progress": rec})
}
