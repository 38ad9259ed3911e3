package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// classifyTransport maps a failure that produced no HTTP response.
func classifyTransport(err error) error {
	var netErr net.Error
	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", domain.ErrTimeout, err)
	case errors.Is(err, context.Canceled):
		return &domain.UnexpectedError{Raw: "request canceled"}
	case errors.As(err, &dnsErr):
		return fmt.Errorf("%w: %v", domain.ErrNetworkUnreachable, err)
	case errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.ENETUNREACH):
		return fmt.Errorf("%w: %v", domain.ErrNetworkUnreachable, err)
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return fmt.Errorf("%w: %v", domain.ErrNetworkUnreachable, err)
	default:
		return &domain.UnexpectedError{Raw: err.Error()}
	}
}

// serverMessage extracts the reason from an error body. It understands a
// string "detail", a validation list "detail":[{"msg":...}], "message" and
// "error", in that order.
func serverMessage(body []byte) string {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	switch d := fields["detail"].(type) {
	case string:
		if d != "" {
			return d
		}
	case []any:
		if len(d) > 0 {
			if first, ok := d[0].(map[string]any); ok {
				if msg, ok := first["msg"].(string); ok && msg != "" {
					return msg
				}
			}
		}
	}
	for _, key := range []string{"message", "error"} {
		if msg, ok := fields[key].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	return ""
}
