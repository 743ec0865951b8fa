// Package session models the client's authentication state: who is signed
// in, the session token, and the in-flight/error state of a login or
// registration attempt.
package session

import (
	"errors"
	"sync"

	"github.com/andriiko/pocketbank/internal/domain/user"
)

type State string

const (
	Anonymous     State = "anonymous"
	Pending       State = "pending"
	Authenticated State = "authenticated"
	Failed        State = "failed"
)

var ErrInvalidTransition = errors.New("invalid session transition")

// Machine holds {user, token, loading, error} and enforces that user and
// token are always set together or both absent.
type Machine struct {
	mu    sync.Mutex
	state State
	user  *user.PublicUser
	token string
	err   string

	// Called once on each transition into Authenticated; drives navigation
	// to the main application shell.
	onAuthenticated func()
}

func NewMachine() *Machine {
	return &Machine{state: Anonymous}
}

func (m *Machine) OnAuthenticated(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onAuthenticated = fn
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the signed-in user, or false when the session is anonymous.
func (m *Machine) User() (user.PublicUser, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return user.PublicUser{}, false
	}
	return *m.user, true
}

func (m *Machine) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Machine) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Machine) Loading() bool {
	return m.State() == Pending
}

// Submit moves into Pending and clears any previous error. Retrying from
// Failed is allowed; submitting while already authenticated or pending is
// not.
func (m *Machine) Submit() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Anonymous && m.state != Failed {
		return ErrInvalidTransition
	}

	m.state = Pending
	m.err = ""

	return nil
}

// Succeed stores the user and token together and enters Authenticated.
func (m *Machine) Succeed(u user.PublicUser, token string) error {
	m.mu.Lock()

	if m.state != Pending {
		m.mu.Unlock()
		return ErrInvalidTransition
	}

	m.state = Authenticated
	m.user = &u
	m.token = token
	m.err = ""
	fn := m.onAuthenticated
	m.mu.Unlock()

	if fn != nil {
		fn()
	}

	return nil
}

// Fail records the failure message; user and token remain absent.
func (m *Machine) Fail(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Pending {
		return ErrInvalidTransition
	}

	m.state = Failed
	m.err = message

	return nil
}

// Logout clears user and token unconditionally. It is safe from any state,
// including Failed, and never notifies the server: forgetting the token is
// the only invalidation the session model has.
func (m *Machine) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = Anonymous
	m.user = nil
	m.token = ""
	m.err = ""
}
