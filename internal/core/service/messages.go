package service

import (
	"errors"
	"fmt"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// messages is how one call site words each failure outcome. Every outcome
// kind has an entry, so no failure reaches the user unexplained.
type messages struct {
	// rejected words a server rejection; it gets the server's own reason,
	// which may be empty.
	rejected    func(status int, serverMsg string) string
	timeout     string
	unreachable string
}

// explain turns a gateway error into an ActionError carrying the message
// this call site shows. nil stays nil.
func (m messages) explain(err error) error {
	if err == nil {
		return nil
	}
	var ae *domain.ActionError
	if errors.As(err, &ae) {
		return err
	}

	kind := domain.Classify(err)
	var msg string
	switch kind {
	case domain.KindInvalid:
		var ve *domain.ValidationError
		errors.As(err, &ve)
		msg = ve.Message
	case domain.KindRejected:
		var re *domain.RejectedError
		errors.As(err, &re)
		msg = m.rejected(re.StatusCode, re.Message)
	case domain.KindTimeout:
		msg = m.timeout
	case domain.KindUnreachable:
		msg = m.unreachable
	default:
		msg = unexpectedMessage(err)
	}
	return &domain.ActionError{Kind: kind, Message: msg, Err: err}
}

func unexpectedMessage(err error) string {
	var ue *domain.UnexpectedError
	if errors.As(err, &ue) {
		return "Unexpected error: " + ue.Raw
	}
	return "Unexpected error: " + err.Error()
}

// orDefault prefers the server's reason and falls back to a fixed message.
func orDefault(fallback string) func(int, string) string {
	return func(_ int, serverMsg string) string {
		if serverMsg != "" {
			return serverMsg
		}
		return fallback
	}
}

var (
	loginMessages = messages{
		rejected:    func(int, string) string { return "Login failed. Please check your credentials." },
		timeout:     "Login timed out. Please try again.",
		unreachable: "Network error. Unable to reach the login service.",
	}

	registerMessages = messages{
		rejected:    orDefault("Registration failed"),
		timeout:     "Request timeout. Please try again.",
		unreachable: "Network error. Please check: \n1. Backend server is running\n2. No CORS issues\n3. Correct API URL",
	}

	jobSearchMessages = messages{
		rejected:    orDefault("Job not found"),
		timeout:     "Job search timed out. Please try again.",
		unreachable: "An error occurred while fetching job details",
	}

	jobListMessages = messages{
		rejected:    orDefault("No jobs found"),
		timeout:     "Loading job listings timed out.",
		unreachable: "Unable to reach the job listings service.",
	}

	statsMessages = messages{
		rejected: func(status int, serverMsg string) string {
			if serverMsg != "" {
				return serverMsg
			}
			return fmt.Sprintf("Server error: %d", status)
		},
		timeout:     "Loading statistics timed out.",
		unreachable: "Unable to reach the statistics service.",
	}

	eligibilityMessages = messages{
		rejected:    orDefault("There was an error checking eligibility."),
		timeout:     "Eligibility check timed out.",
		unreachable: "Unable to reach the eligibility service.",
	}
)
