package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
)

func TestSignInSucceedsWithNonEmptyCredentials(t *testing.T) {
	s := NewStore(mirror.NewMemory(), nil)

	user, err := s.SignIn("shopper@example.com", "whatever", "")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "shopper@example.com", user.Email)
	assert.True(t, s.IsAuthenticated())
}

func TestSignInDerivesNameFromEmail(t *testing.T) {
	s := NewStore(mirror.NewMemory(), nil)

	user, err := s.SignIn("shopper@example.com", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, "shopper", user.Name)
}

func TestSignInValidatesRequiredFields(t *testing.T) {
	s := NewStore(mirror.NewMemory(), nil)

	_, err := s.SignIn("", "pw", "")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = s.SignIn("a@b.com", "", "")
	assert.ErrorIs(t, err, ErrPasswordRequired)

	assert.False(t, s.IsAuthenticated())
}

func TestSignUpRequiresName(t *testing.T) {
	s := NewStore(mirror.NewMemory(), nil)

	_, err := s.SignUp("a@b.com", "pw", "")
	assert.ErrorIs(t, err, ErrNameRequired)

	user, err := s.SignUp("a@b.com", "pw", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
}

func TestSignOutClearsUserAndMirror(t *testing.T) {
	m := mirror.NewMemory()
	s := NewStore(m, nil)

	_, err := s.SignIn("a@b.com", "pw", "")
	require.NoError(t, err)

	s.SignOut()
	assert.Nil(t, s.Current())

	var saved models.User
	assert.False(t, m.Load(mirror.KeyUser, &saved))
}

func TestHydratesFromMirror(t *testing.T) {
	m := mirror.NewMemory()
	require.NoError(t, m.Store(mirror.KeyUser, models.User{ID: "user_1", Email: "a@b.com", Name: "Ada"}))

	s := NewStore(m, nil)
	require.True(t, s.IsAuthenticated())
	assert.Equal(t, "user_1", s.Current().ID)
}

func TestCorruptStoredUserIsDiscarded(t *testing.T) {
	m := mirror.NewMemory()
	require.NoError(t, m.Store(mirror.KeyUser, json.RawMessage(`"not a user"`)))

	s := NewStore(m, nil)
	assert.False(t, s.IsAuthenticated())
}

func TestBcryptVerifierSubstitutesForMock(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	s := NewStore(mirror.NewMemory(), NewBcryptVerifier(map[string]string{
		"a@b.com": hash,
	}))

	_, err = s.SignIn("a@b.com", "wrong", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, s.IsAuthenticated())

	_, err = s.SignIn("nobody@b.com", "secret", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := s.SignIn("a@b.com", "secret", "")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
}
