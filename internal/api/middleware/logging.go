package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDKey = "request_id"

// RequestLogger logs every request and its response with a shared request
// id and the time the handler took. Request bodies are logged for non-GET
// calls with the password field masked.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})

		entry.WithField("ip", c.ClientIP()).Info("request")

		if c.Request.Method != http.MethodGet && c.Request.Body != nil {
			if body, err := io.ReadAll(c.Request.Body); err == nil {
				c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
				if masked := maskPassword(body); masked != "" {
					entry.WithField("body", masked).Info("request body")
				}
			}
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		resEntry := entry.WithFields(logrus.Fields{
			"status":  status,
			"latency": time.Since(start).String(),
		})
		for _, ginErr := range c.Errors {
			resEntry = resEntry.WithField("error", ginErr.Err.Error())
		}

		switch {
		case status >= http.StatusInternalServerError:
			resEntry.Error("response")
		case status >= http.StatusBadRequest:
			resEntry.Warn("response")
		default:
			resEntry.Info("response")
		}
	}
}

// maskPassword replaces a top-level password field with asterisks.
// Returns "" when the body is empty or not a JSON object.
func maskPassword(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return ""
	}
	if _, ok := fields["password"]; ok {
		fields["password"] = "********"
	}

	masked, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(masked)
}
