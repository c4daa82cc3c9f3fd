package middleware

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/repository"
)

// ErrorHandler is the single place that turns errors attached with c.Error
// into HTTP responses. Server side failures are logged, client errors are not.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		err := last.Err
		var apiErr *apierrors.APIError
		if last.IsType(gin.ErrorTypeBind) {
			apiErr = apierrors.Validation(err)
		} else {
			apiErr = Translate(err)
		}

		if apiErr.Status >= 500 {
			logger.ErrorContext(c.Request.Context(), "Request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"status", apiErr.Status,
				"error", err,
			)
		}

		// Someone already answered; never write a second response.
		if c.Writer.Written() {
			return
		}
		apierrors.RespondWithError(c, apiErr)
	}
}

// Translate maps any error onto the public error envelope.
func Translate(err error) *apierrors.APIError {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apierrors.Validation(err)
	}

	if errors.Is(err, repository.ErrDatabase) {
		return apierrors.Database(err)
	}

	return apierrors.Internal("").WithCause(err)
}

// Recovery converts a panic into an error for ErrorHandler. It must be
// registered after ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic recovered: %v\n%s", recovered, debug.Stack()))
		c.Abort()
	})
}
