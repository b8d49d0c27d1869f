package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignedURLSignerGenerateAndParse(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, expiresAt, err := signer.Generate("job-1", "id-cards/job-1.pdf")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	jobID, path, parsedExpiry, err := signer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "job-1", jobID)
	require.Equal(t, "id-cards/job-1.pdf", path)
	require.WithinDuration(t, expiresAt, parsedExpiry, time.Second)
}

func TestSignedURLSignerExpired(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Minute)
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return now }

	token, _, err := signer.Generate("job-1", "id-cards/job-1.pdf")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	jobID, _, _, err := signer.Parse(token)
	require.ErrorIs(t, err, ErrTokenExpired)
	require.Equal(t, "job-1", jobID)
}

func TestSignedURLSignerRejectsTampering(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Generate("job-1", "id-cards/job-1.pdf")
	require.NoError(t, err)

	_, _, _, err = NewSignedURLSigner("other", time.Hour).Parse(token)
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, _, _, err = signer.Parse("not-a-token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
