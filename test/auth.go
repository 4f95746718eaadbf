package test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moneta-finance/backend/internal/auth"
	"github.com/stretchr/testify/require"
)

// Secret is the key used to sign tokens in tests.
var Secret = []byte("moneta-test-secret")

// UserID is the user all requests are made as by default.
var UserID = uuid.MustParse("8d9f3a3e-0b6c-4b8e-9f55-1f9d2c8a4e01")

// OtherUserID is a second user to verify that data is isolated between users.
var OtherUserID = uuid.MustParse("b7d1e4c2-53a0-4f6d-8e2b-6a0c9d3f7e12")

// AuthHeader returns the Authorization header for a valid token of the user.
func AuthHeader(t *testing.T, userID uuid.UUID) map[string]string {
	token, err := auth.NewToken(Secret, userID, time.Hour)
	require.Nil(t, err, "Token could not be created")

	return map[string]string{"Authorization": fmt.Sprintf("Bearer %s", token)}
}
