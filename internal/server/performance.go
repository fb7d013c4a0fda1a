package server

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
	"github.com/abhisek/mathpal/internal/trend"
)

const defaultHistoryLimit = 50

// PerformanceHandler serves the per-answer log routes.
type PerformanceHandler struct {
	log    *zap.Logger
	engine *engine.Service
}

func NewPerformanceHandler(log *zap.Logger, svc *engine.Service) *PerformanceHandler {
	return &PerformanceHandler{log: log, engine: svc}
}

// Log appends one answer outcome. A missing sessionId gets a generated
// one so stray entries stay groupable.
func (h *PerformanceHandler) Log(c *gin.Context) {
	var entry trend.LogEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	if entry.UserID == "" || entry.ModuleName == "" {
		badRequest(c, "userId and moduleName are required")
		return
	}
	if entry.SessionID == "" {
		entry.SessionID = uuid.NewString()
	}

	if err := h.engine.LogPerformance(c.Request.Context(), entry); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Performance logged successfully",
		"data":    gin.H{"log": entry},
	})
}

// History returns a learner's recent answer log, newest first.
func (h *PerformanceHandler) History(c *gin.Context) {
	limit := defaultHistoryLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := h.engine.PerformanceHistory(c.Request.Context(), c.Param("userId"), c.Query("moduleName"), limit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondList(c, http.StatusOK, len(logs), gin.H{"logs": logs})
}

// Session returns one session's answer log with a summary. An unknown
// session is a 404.
func (h *PerformanceHandler) Session(c *gin.Context) {
	sessionID := c.Param("sessionId")
	logs, err := h.engine.SessionPerformance(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	if len(logs) == 0 {
		notFound(c, "Session not found")
		return
	}

	correct := 0
	var totalResponse int64
	for _, l := range logs {
		if l.IsCorrect {
			correct++
		}
		totalResponse += l.ResponseTimeMs
	}

	summary := gin.H{
		"sessionId":           sessionID,
		"moduleName":          logs[0].ModuleName,
		"totalQuestions":      len(logs),
		"correctAnswers":      correct,
		"accuracy":            int(math.Round(float64(correct) / float64(len(logs)) * 100)),
		"averageResponseTime": totalResponse / int64(len(logs)),
		"difficultyLevel":     logs[0].DifficultyLevel,
		"completedAt":         logs[len(logs)-1].Timestamp,
	}
	respondData(c, http.StatusOK, gin.H{
		"summary": summary,
		"logs":    logs,
	})
}
