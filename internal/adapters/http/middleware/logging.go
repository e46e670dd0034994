package middleware

import (
	"bytes"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/core/logger"
)

// failed responses are small envelopes, anything past this is cut
const maxLoggedBodySize = 16 * 1024

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseBodyWriter) capture(n int, write func()) {
	if w.body.Len()+n <= maxLoggedBodySize {
		write()
	}
}

func (w *responseBodyWriter) Write(b []byte) (int, error) {
	w.capture(len(b), func() { w.body.Write(b) })
	return w.ResponseWriter.Write(b)
}

func (w *responseBodyWriter) WriteString(s string) (int, error) {
	w.capture(len(s), func() { w.body.WriteString(s) })
	return w.ResponseWriter.WriteString(s)
}

func levelFor(status int) logger.LogLevel {
	switch {
	case status >= 500:
		return logger.LogLevelError
	case status >= 400:
		return logger.LogLevelWarn
	default:
		return logger.LogLevelInfo
	}
}

// LogRequest writes one access log entry per request. The response envelope is attached
// only when the request failed.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		buf := bufferPool.Get().(*bytes.Buffer)
		defer bufferPool.Put(buf)
		buf.Reset()

		writer := &responseBodyWriter{ResponseWriter: c.Writer, body: buf}
		c.Writer = writer

		c.Next()

		status := c.Writer.Status()
		attrs := map[string]any{
			"http.method":        c.Request.Method,
			"http.path":          c.Request.URL.Path,
			"http.route":         c.FullPath(),
			"http.status_code":   status,
			"http.duration_ms":   time.Since(start).Milliseconds(),
			"http.response_size": c.Writer.Size(),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			attrs["http.query"] = query
		}
		if c.Request.ContentLength > 0 {
			attrs["http.request_size"] = c.Request.ContentLength
		}
		if status >= 400 && writer.body.Len() > 0 {
			attrs["http.response_body"] = writer.body.String()
		}
		if len(c.Errors) > 0 {
			attrs["gin.errors"] = c.Errors.String()
		}

		logger.Log(c.Request.Context(), logger.LogEntry{
			Level:      levelFor(status),
			Message:    "HTTP Request",
			Attributes: attrs,
		})
	}
}
