// Package session derives the identifier that scopes every remote collection:
// the authenticated user's id when someone is signed in, otherwise a guest id
// generated once and persisted in the local mirror.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/mayank-0789/azclone-1/pkg/mirror"
	"github.com/mayank-0789/azclone-1/pkg/models"
)

const guestSuffixLen = 9

// Resolver resolves the current session id. Safe for concurrent use; the
// guest id is generated lazily on first need and is stable afterwards.
type Resolver struct {
	mu     sync.Mutex
	mirror mirror.Mirror
}

func NewResolver(m mirror.Mirror) *Resolver {
	return &Resolver{mirror: m}
}

// Resolve returns currentUser's id when present. Otherwise it reads the guest
// id from the mirror, generating and persisting one if absent. Uniqueness of
// generated ids is not enforced; the timestamp plus random suffix makes a
// collision negligible.
func (r *Resolver) Resolve(currentUser *models.User) string {
	if currentUser != nil && currentUser.ID != "" {
		return currentUser.ID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var sessionID string
	if r.mirror.Load(mirror.KeySessionID, &sessionID) && sessionID != "" {
		return sessionID
	}

	sessionID = fmt.Sprintf("guest_%d_%s", time.Now().UnixMilli(), randomSuffix(guestSuffixLen))
	if err := r.mirror.Store(mirror.KeySessionID, sessionID); err != nil {
		// The id is still returned; it just won't survive a restart.
		return sessionID
	}
	return sessionID
}

func randomSuffix(n int) string {
	bytes := make([]byte, (n+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "randguest"[:n]
	}
	return hex.EncodeToString(bytes)[:n]
}
