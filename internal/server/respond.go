package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathpal/internal/engine"
)

// respondData writes the success envelope.
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondList writes the success envelope with an element count.
func respondList(c *gin.Context, status, count int, data any) {
	c.JSON(status, gin.H{"success": true, "count": count, "data": data})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": msg})
}

// respondError maps a storage failure to 500 and anything else to 400.
// A learner with no data never reaches here; the engine reports that
// through sentinel values, not errors.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	var se *engine.StoreError
	if errors.As(err, &se) {
		log.Error("store failure", zap.String("op", se.Op), zap.Error(se.Err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "storage failure"})
		return
	}
	badRequest(c, err.Error())
}
