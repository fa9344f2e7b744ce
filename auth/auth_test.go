package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("alice", time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("alice", claims.UserID)
	req.Equal("chatgram", claims.Issuer)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("alice", -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestValidateToken_RejectsGarbageAndForeignKey(t *testing.T) {
	req := require.New(t)

	_, err := ValidateToken("not-a-jwt")
	req.Error(err)

	// A token minted under another key must not validate
	original := signingKey
	defer func() { signingKey = original }()

	SetSigningKey("some_other_service_key_material")
	foreign, err := GenerateToken("alice", time.Hour)
	req.NoError(err)

	signingKey = original
	_, err = ValidateToken(foreign)
	req.Error(err)
}
