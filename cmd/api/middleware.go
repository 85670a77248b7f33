package api

import (
	"io"
	"net/http"
	"time"

	"todo-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorResponder is the single terminal error responder. Handlers and
// middleware attach typed errors with c.Error and abort; this renders the
// last one after the chain finishes. Field-level validation errors become an
// "errors" array, everything else a single "error" message. Unknown error
// types are logged and surface only as a generic 500.
func ErrorResponder(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		if appErr.Status >= http.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}).WithError(appErr).Error("request failed")
		}

		if len(appErr.Fields) > 0 {
			c.JSON(appErr.Status, gin.H{"errors": appErr.Fields})
			return
		}
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
	}
}

// Recovery converts panics into the same generic 500 shape as any other
// internal failure, with the panic value logged server-side.
func Recovery(log *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"panic":  recovered,
		}).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	})
}

// RequestLogger logs one line per completed request.
func RequestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
