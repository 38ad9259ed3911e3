package domain

// Phase is the lifecycle position of the dashboard session.
type Phase int

const (
	// PhaseVerifying is the initial phase, held until the startup
	// verification round trip settles.
	PhaseVerifying Phase = iota
	PhaseAuthenticated
	PhaseUnauthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseVerifying:
		return "verifying"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Identity is the user the remote API vouches for.
type Identity struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// Session is a read-only copy of the session state. Identity is nil unless
// the user is authenticated; Verified is true only after a successful
// verification round trip.
type Session struct {
	Phase    Phase     `json:"-"`
	Identity *Identity `json:"identity,omitempty"`
	Verified bool      `json:"verified"`
}

// Verifying reports whether the startup verification is still in flight.
func (s Session) Verifying() bool {
	return s.Phase == PhaseVerifying
}

// IsAuthenticated reports whether an identity is present.
func (s Session) IsAuthenticated() bool {
	return s.Identity != nil
}
