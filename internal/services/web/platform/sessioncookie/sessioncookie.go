// Package sessioncookie centralizes the signed form session cookie.
//
// The cookie carries an HS256 JWT whose subject is the form session id, so a
// client cannot address another client's form by guessing ids.
package sessioncookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/accountform/internal/platform/errors"
	"github.com/louisbranch/accountform/internal/services/web/platform/requestmeta"
)

// Name is the canonical form session cookie name.
const Name = "accountform_session"

const issuer = "accountform-web"

// Codec signs and verifies form session cookies.
type Codec struct {
	secret []byte
	ttl    time.Duration
	policy requestmeta.SchemePolicy
	now    func() time.Time
}

// NewCodec builds a codec signing with secret. Tokens expire after ttl.
func NewCodec(secret []byte, ttl time.Duration, policy requestmeta.SchemePolicy) (*Codec, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 bytes")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	return &Codec{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		policy: policy,
		now:    time.Now,
	}, nil
}

// Encode returns a signed token for sessionID.
func (c *Codec) Encode(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", errors.New("session id is required")
	}
	now := c.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies token and returns the session id it carries.
func (c *Codec) Decode(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", apperrors.New(apperrors.CodeSessionNotFound, "session token is required")
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", mapJWTError(err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", apperrors.New(apperrors.CodeSessionNotFound, "session token subject is required")
	}
	return claims.Subject, nil
}

// Read returns the verified session id from the request cookie.
func (c *Codec) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	sessionID, err := c.Decode(cookie.Value)
	if err != nil {
		return "", false
	}
	return sessionID, true
}

// Write sets the signed session cookie for sessionID.
func (c *Codec) Write(w http.ResponseWriter, r *http.Request, sessionID string) error {
	if w == nil {
		return nil
	}
	token, err := c.Encode(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.ttl / time.Second),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (c *Codec) Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, c.policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return apperrors.Wrap(apperrors.CodeSessionNotFound, "session token is expired", err)
	}
	if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		return apperrors.Wrap(apperrors.CodeSessionNotFound, "session token signature is invalid", err)
	}
	return apperrors.Wrap(apperrors.CodeSessionNotFound, "session token is invalid", err)
}
