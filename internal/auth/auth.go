// Package auth authenticates requests with bearer tokens issued by the
// identity provider. The subject of a token is the ID of the user.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const userIDKey = "moneta-user-id"

var (
	ErrTokenMissing  = errors.New("the request needs an Authorization header with a bearer token")
	ErrTokenInvalid  = errors.New("the bearer token is invalid or expired")
	ErrSubjectFormat = errors.New("the subject of the token must be a user UUID")
)

type httpError struct {
	Error string `json:"error" example:"the bearer token is invalid or expired"`
}

// Parse verifies the token with the secret and returns the user ID
// from its subject.
func Parse(secret []byte, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	id, err := uuid.Parse(subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrSubjectFormat
	}

	return id, nil
}

// NewToken returns a signed token for the user that is valid for ttl.
func NewToken(secret []byte, userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})

	return token.SignedString(secret)
}

// Middleware rejects requests without a valid bearer token and stores
// the user ID in the context.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenMissing.Error()})
			return
		}

		id, err := Parse(secret, strings.TrimSpace(tokenString))
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("Token rejected")

			msg := ErrTokenInvalid.Error()
			if errors.Is(err, ErrSubjectFormat) {
				msg = ErrSubjectFormat.Error()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: msg})
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user. It panics when
// called on a route without the middleware.
func UserID(c *gin.Context) uuid.UUID {
	return c.MustGet(userIDKey).(uuid.UUID)
}
