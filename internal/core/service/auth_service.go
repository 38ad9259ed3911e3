package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

const minPasswordLength = 8

// AuthPaths are the remote endpoints behind the login and registration screens.
type AuthPaths struct {
	Login    string
	Logout   string
	Register string
}

// AuthService runs the login, registration and logout flows.
type AuthService struct {
	gw              ports.Gateway
	verifier        ports.IdentityVerifier
	sessions        ports.SessionWriter
	credential      ports.CredentialKeeper
	paths           AuthPaths
	registerTimeout time.Duration
	log             zerolog.Logger
}

func NewAuthService(
	gw ports.Gateway,
	verifier ports.IdentityVerifier,
	sessions ports.SessionWriter,
	credential ports.CredentialKeeper,
	paths AuthPaths,
	registerTimeout time.Duration,
	log zerolog.Logger,
) *AuthService {
	if registerTimeout <= 0 {
		registerTimeout = 5 * time.Second
	}
	return &AuthService{
		gw:              gw,
		verifier:        verifier,
		sessions:        sessions,
		credential:      credential,
		paths:           paths,
		registerTimeout: registerTimeout,
		log:             log,
	}
}

// Login posts the credentials, confirms the new session with one verify
// call, and only then marks the session authenticated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("Email and password are required.")
	}

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	_, err := s.gw.Do(ctx, ports.Request{
		Method:      http.MethodPost,
		Path:        s.paths.Login,
		Body:        strings.NewReader(form.Encode()),
		ContentType: "application/x-www-form-urlencoded",
	})
	if err != nil {
		s.log.Info().Err(err).Str("email", email).Msg("login rejected")
		return nil, loginMessages.explain(err)
	}

	confirmed, err := s.verifier.VerifyIdentity(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login not confirmed by verify")
		if errors.Is(err, domain.ErrNotAuthenticated) {
			// The API answered but did not vouch for the new session.
			err = &domain.RejectedError{StatusCode: http.StatusUnauthorized}
		}
		return nil, loginMessages.explain(err)
	}

	identity := domain.Identity{Email: email, DisplayName: confirmed.DisplayName}
	s.sessions.Login(identity)
	s.log.Info().Str("email", email).Msg("logged in")
	return &identity, nil
}

type registerBody struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. Only a 201 reply counts as success.
func (s *AuthService) Register(ctx context.Context, reg ports.Registration) error {
	if reg.Password != reg.ConfirmPassword {
		return domain.NewValidationError("Passwords don't match!")
	}
	if len(reg.Password) < minPasswordLength {
		return domain.NewValidationError("Password must be at least 8 characters long.")
	}

	payload, err := json.Marshal(registerBody{
		FullName: strings.TrimSpace(reg.FullName),
		Email:    strings.TrimSpace(reg.Email),
		Password: reg.Password,
	})
	if err != nil {
		return registerMessages.explain(&domain.UnexpectedError{Raw: err.Error()})
	}

	resp, err := s.gw.Do(ctx, ports.Request{
		Method:      http.MethodPost,
		Path:        s.paths.Register,
		Body:        bytes.NewReader(payload),
		ContentType: "application/json",
		Timeout:     s.registerTimeout,
	})
	if err != nil {
		return registerMessages.explain(err)
	}
	if resp.StatusCode != http.StatusCreated {
		return registerMessages.explain(&domain.RejectedError{
			StatusCode: resp.StatusCode,
			Message:    bodyMessage(resp.Body),
		})
	}

	s.log.Info().Str("email", reg.Email).Msg("account registered")
	return nil
}

// Logout ends the local session at once, then tells the remote API and drops
// the stored credential. Remote failures are logged, never surfaced.
func (s *AuthService) Logout(ctx context.Context) {
	s.sessions.Logout()

	if s.paths.Logout != "" {
		if _, err := s.gw.Do(ctx, ports.Request{Method: http.MethodPost, Path: s.paths.Logout}); err != nil {
			s.log.Warn().Err(err).Msg("remote logout failed")
		}
	}
	if s.credential != nil {
		if err := s.credential.ForgetCredential(ctx); err != nil {
			s.log.Warn().Err(err).Msg("forget credential failed")
		}
	}
}

// bodyMessage pulls a "message" or "detail" string out of a JSON body.
func bodyMessage(body []byte) string {
	var fields struct {
		Message string `json:"message"`
		Detail  any    `json:"detail"`
	}
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	if fields.Message != "" {
		return fields.Message
	}
	if d, ok := fields.Detail.(string); ok {
		return d
	}
	return ""
}

var _ ports.AuthService = (*AuthService)(nil)
