package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

// HandleError writes the failure envelope for err. Classified errors carry their own
// message; anything else is a 500 reported under fallbackMessage with the error text
// as diagnostic.
func HandleError(c *gin.Context, err error, fallbackMessage string) {
	var svcErr *serviceerrors.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(mapKindToHTTP(svcErr.Kind), Envelope{
			Success: false,
			Message: svcErr.Message,
			Errors:  svcErr.Fields,
		})
		return
	}

	logger.Error(c.Request.Context(), "request failed", err, map[string]any{
		"http.path": c.Request.URL.Path,
	})
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: fallbackMessage,
		Error:   err.Error(),
	})
}

// Recovery turns a panic into the same 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "panic recovered", nil, map[string]any{
			"panic":     recovered,
			"http.path": c.Request.URL.Path,
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, Envelope{
			Success: false,
			Message: "Internal server error",
			Error:   "unexpected failure",
		})
	})
}

func mapKindToHTTP(kind serviceerrors.ErrorKind) int {
	switch kind {
	case serviceerrors.KindNotFound:
		return http.StatusNotFound
	case serviceerrors.KindConflict:
		return http.StatusConflict
	case serviceerrors.KindInvalidRequest, serviceerrors.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
