package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/api/metrics"
	"github.com/aijobhub/dashboard/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps classified action failures to HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	if errors.Is(err, domain.ErrSuperseded) {
		metrics.SupersededFetchesTotal.Inc()
		return http.StatusConflict, errorResponse{Error: domain.ErrSuperseded.Error()}
	}

	kind := domain.Classify(err)
	metrics.ActionFailuresTotal.WithLabelValues(kind.String()).Inc()

	var ae *domain.ActionError
	if errors.As(err, &ae) {
		return statusFor(err, kind), errorResponse{Error: ae.Message, Kind: kind.String()}
	}

	switch kind {
	case domain.KindInvalid, domain.KindRejected, domain.KindTimeout, domain.KindUnreachable:
		return statusFor(err, kind), errorResponse{Error: err.Error(), Kind: kind.String()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}

// statusFor maps an outcome to a status. Upstream 4xx replies pass through so
// the client sees the same rejection; anything else from upstream is a bad
// gateway.
func statusFor(err error, kind domain.OutcomeKind) int {
	switch kind {
	case domain.KindInvalid:
		return http.StatusUnprocessableEntity
	case domain.KindRejected:
		var re *domain.RejectedError
		if errors.As(err, &re) && re.StatusCode >= 400 && re.StatusCode < 500 {
			return re.StatusCode
		}
		return http.StatusBadGateway
	case domain.KindTimeout:
		return http.StatusGatewayTimeout
	case domain.KindUnreachable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
