package whatsapp

import "sync"

type AuthState string

const (
	AuthStateUnauthenticated AuthState = "unauthenticated"
	AuthStateAwaitingScan    AuthState = "awaiting_scan"
	AuthStateReady           AuthState = "ready"
)

// AuthSnapshot is a read-only copy of the tracker state for the REST layer.
type AuthSnapshot struct {
	State AuthState
	Code  string
}

// AuthTracker owns the login state and the current credential artifact (QR
// payload or pairing code). Each new artifact replaces the previous one; the
// ready transition clears it.
type AuthTracker struct {
	mu    sync.RWMutex
	state AuthState
	code  string
}

func NewAuthTracker() *AuthTracker {
	return &AuthTracker{state: AuthStateUnauthenticated}
}

// CredentialIssued stores the latest artifact and moves to AwaitingScan.
func (t *AuthTracker) CredentialIssued(code string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = AuthStateAwaitingScan
	t.code = code
}

// SessionReady clears the artifact and moves to Ready.
func (t *AuthTracker) SessionReady() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = AuthStateReady
	t.code = ""
}

// SessionClosed resets the tracker after a logout or dropped session.
func (t *AuthTracker) SessionClosed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = AuthStateUnauthenticated
	t.code = ""
}

func (t *AuthTracker) Snapshot() AuthSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return AuthSnapshot{State: t.state, Code: t.code}
}
