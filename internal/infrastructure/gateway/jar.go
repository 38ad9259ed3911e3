package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

const storeTimeout = 3 * time.Second

// credentialJar is a cookie jar that mirrors the session cookie into a
// CredentialStore whenever the remote API sets or deletes it.
type credentialJar struct {
	inner *cookiejar.Jar
	base  *url.URL
	name  string
	store ports.CredentialStore
	now   func() time.Time
	log   zerolog.Logger
}

func (j *credentialJar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

func (j *credentialJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)
	if j.store == nil {
		return
	}

	for _, c := range cookies {
		if c.Name != j.name {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		var err error
		if j.deleted(c) {
			err = j.store.Clear(ctx)
		} else {
			err = j.store.Save(ctx, j.credential(c))
		}
		cancel()
		if err != nil {
			j.log.Warn().Err(err).Str("cookie", c.Name).Msg("persist session credential failed")
		}
	}
}

func (j *credentialJar) deleted(c *http.Cookie) bool {
	if c.Value == "" || c.MaxAge < 0 {
		return true
	}
	return !c.Expires.IsZero() && !c.Expires.After(j.now())
}

// credential picks the expiry from Max-Age, then Expires, then the token's
// own exp claim.
func (j *credentialJar) credential(c *http.Cookie) domain.Credential {
	cred := domain.Credential{Name: c.Name, Value: c.Value}
	switch {
	case c.MaxAge > 0:
		cred.ExpiresAt = j.now().Add(time.Duration(c.MaxAge) * time.Second)
	case !c.Expires.IsZero():
		cred.ExpiresAt = c.Expires
	default:
		if claims, ok := tokenClaims(c.Value); ok && claims.ExpiresAt != nil {
			cred.ExpiresAt = claims.ExpiresAt.Time
		}
	}
	return cred
}

func (j *credentialJar) restore(ctx context.Context) error {
	if j.store == nil {
		return nil
	}
	cred, err := j.store.Load(ctx)
	if errors.Is(err, domain.ErrNoCredential) {
		return nil
	}
	if err != nil {
		return err
	}
	if cred.Expired(j.now()) {
		j.log.Info().Msg("stored session credential expired")
		return j.store.Clear(ctx)
	}

	j.inner.SetCookies(j.base, []*http.Cookie{{
		Name:    cred.Name,
		Value:   cred.Value,
		Path:    "/",
		Expires: cred.ExpiresAt,
	}})
	j.log.Info().Msg("session credential restored")
	return nil
}

func (j *credentialJar) forget(ctx context.Context) error {
	j.inner.SetCookies(j.base, []*http.Cookie{{Name: j.name, Path: "/", MaxAge: -1}})
	if j.store == nil {
		return nil
	}
	return j.store.Clear(ctx)
}

func (j *credentialJar) claims() (*jwt.RegisteredClaims, bool) {
	for _, c := range j.inner.Cookies(j.base) {
		if c.Name == j.name {
			return tokenClaims(c.Value)
		}
	}
	return nil, false
}

// tokenClaims reads the claims of a JWT without checking its signature. The
// dashboard never trusts them for access decisions; they only label the
// session and bound how long its cookie is kept.
func tokenClaims(value string) (*jwt.RegisteredClaims, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(value, claims); err != nil {
		return nil, false
	}
	return claims, true
}
