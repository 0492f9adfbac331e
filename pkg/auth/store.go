// Package auth manages the current signed-in identity. The store is
// independent of the collection stores; they read its current user to
// resolve their session id.
package auth

import (
	"errors"
	"log"
	"sync"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrNameRequired     = errors.New("name is required")
)

// Store holds the current user, hydrated from the local mirror at
// construction. States are Anonymous and Authenticated; sessions never
// expire on their own.
type Store struct {
	mu       sync.RWMutex
	mirror   mirror.Mirror
	verifier CredentialVerifier
	current  *models.User
}

// NewStore hydrates the current user from the mirror. Corrupt stored data is
// discarded silently and the store starts anonymous. A nil verifier means
// AllowAll.
func NewStore(m mirror.Mirror, verifier CredentialVerifier) *Store {
	if verifier == nil {
		verifier = AllowAll{}
	}
	s := &Store{mirror: m, verifier: verifier}

	var saved models.User
	if m.Load(mirror.KeyUser, &saved) && saved.ID != "" {
		s.current = &saved
	}
	return s
}

// Current returns the signed-in user, or nil when anonymous.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

// SignIn authenticates and returns the new user. Name is optional; when
// empty the display name is derived from the email.
func (s *Store) SignIn(email, password, name string) (*models.User, error) {
	if err := s.check(email, password); err != nil {
		return nil, err
	}
	return s.establish(email, name), nil
}

// SignUp registers a new user. Unlike SignIn the name is required.
func (s *Store) SignUp(email, password, name string) (*models.User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := s.check(email, password); err != nil {
		return nil, err
	}
	return s.establish(email, name), nil
}

// SignOut clears the current user and its mirror entry.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.mirror.Remove(mirror.KeyUser); err != nil {
		log.Printf("Warning: failed to clear stored user: %v", err)
	}
}

func (s *Store) check(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return s.verifier.Verify(email, password)
}

func (s *Store) establish(email, name string) *models.User {
	user := models.NewUser(email, name)

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	if err := s.mirror.Store(mirror.KeyUser, user); err != nil {
		log.Printf("Warning: failed to persist user: %v", err)
	}
	return user
}
