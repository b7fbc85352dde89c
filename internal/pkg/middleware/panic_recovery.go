package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/catatan/internal/pkg/apperrors"
	"github.com/prasetya/catatan/internal/pkg/logger"
	"github.com/prasetya/catatan/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace and responds with a 500 instead of dropping the connection.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	userID := "anonymous"
	if uid := c.Get(UserIDKey); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	zapLogger.Error("Panic recovered",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		utils.ErrorResponseHandler(c, http.StatusInternalServerError, apperrors.CodeInternal, "Internal Server Error")
	}
}
