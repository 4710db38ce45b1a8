package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	verifier := NewTokenVerifier("test-secret")

	token, err := verifier.IssueToken("ingest-job", time.Hour)
	require.NoError(t, err)

	subject, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ingest-job", subject)

	// Bearer prefix is stripped
	subject, err = verifier.Verify("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "ingest-job", subject)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewTokenVerifier("secret-a").IssueToken("ingest-job", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenVerifier("secret-b").Verify(token)
	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	verifier := NewTokenVerifier("test-secret")

	token, err := verifier.IssueToken("ingest-job", -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	verifier := NewTokenVerifier("test-secret")

	_, err := verifier.Verify("not-a-token")
	assert.Error(t, err)
}
