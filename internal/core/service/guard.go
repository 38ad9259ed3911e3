package service

import "github.com/aijobhub/dashboard/internal/core/domain"

// Gate is the guard's decision for a protected screen.
type Gate int

const (
	// GatePending renders neither the screen nor the redirect.
	GatePending Gate = iota
	GateOpen
	GateClosed
)

func (g Gate) String() string {
	switch g {
	case GatePending:
		return "pending"
	case GateOpen:
		return "open"
	default:
		return "closed"
	}
}

// Decide maps a session snapshot to a gate. It holds no state, so the
// decision always reflects the snapshot it is given.
func Decide(s domain.Session) Gate {
	switch {
	case s.Verifying():
		return GatePending
	case s.IsAuthenticated():
		return GateOpen
	default:
		return GateClosed
	}
}
