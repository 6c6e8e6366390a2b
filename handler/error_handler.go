package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/facile/pkg/form"
	"github.com/dmitrymomot/facile/pkg/logger"
	"github.com/dmitrymomot/facile/pkg/requestid"
	"github.com/dmitrymomot/facile/pkg/validator"
)

// DefaultToastTarget is the element error toasts are prepended to.
const DefaultToastTarget = "#toast-container"

// ErrorInfo is the classification of an error.
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Type       string // "error", "warning" or "info"
	LogLevel   slog.Level
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Code:       ErrInternalServerError.Key,
		Message:    "An error occurred processing your request",
	}

	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
	case errors.Is(err, form.ErrFormNotFound):
		info.StatusCode = ErrFormNotFound.Code
		info.Code = ErrFormNotFound.Key
		info.Message = err.Error()
	case validator.IsConfigError(err):
		info.StatusCode = ErrRuleConfiguration.Code
		info.Code = ErrRuleConfiguration.Key
		info.Message = err.Error()
	}

	switch {
	case info.StatusCode >= http.StatusInternalServerError:
		info.Type = "error"
		info.LogLevel = slog.LevelError
	case info.StatusCode >= http.StatusBadRequest:
		info.Type = "warning"
		info.LogLevel = slog.LevelWarn
	default:
		info.Type = "info"
		info.LogLevel = slog.LevelInfo
	}
	return info
}

// NewErrorHandler returns an error handler that logs err and answers with
// a toast patch for DataStar requests or a JSON error body otherwise.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		id := requestid.FromContext(r.Context())
		info := classifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(id),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		var resp Response
		if IsDataStar(r) {
			// SSE responses are always 200; the toast carries the failure.
			resp = Templ(ErrorToast(info, id),
				WithTarget(DefaultToastTarget),
				WithPatchMode(PatchPrepend),
			)
		} else {
			resp = JSON(JSONResponse{Error: &ErrorDetail{Code: info.Code, Message: info.Message}},
				WithJSONStatus(info.StatusCode),
			)
		}
		if rerr := resp.Render(ctx.ResponseWriter(), r); rerr != nil {
			log.ErrorContext(r.Context(), "failed to render error",
				logger.RequestID(id),
				logger.Error(rerr),
				logger.Component("error_handler"),
			)
		}
	}
}
