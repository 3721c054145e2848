package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ErrorHandler writes the last error pushed with c.Error as
// {"status":"error","message":...}. Unknown errors become 500.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := translate(err)

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.Error(err),
				zap.String("request_id", c.GetString(ContextRequestID)),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
		}

		httperr.Write(c, status, message)
	}
}

func translate(err error) (int, string) {
	if be, ok := httperr.As(err); ok {
		return be.StatusCode(), be.Error()
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, validators.Message(verrs)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return http.StatusBadRequest, "invalid request body"
	}

	return http.StatusInternalServerError, "internal server error"
}

// Recovery answers panics with the error envelope.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.Any("error", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("request_id", c.GetString(ContextRequestID)),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				)
				httperr.Write(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}
