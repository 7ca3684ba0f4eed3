package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/token"
	"github.com/dmitrijs2005/dungeonkeeper/internal/common"
	"github.com/dmitrijs2005/dungeonkeeper/internal/logging"
)

var (
	ErrAlreadyInitialized = errors.New("session store already initialized")
	ErrExpired            = errors.New("credential already expired")
)

// RecordStorage persists the durable credential record.
// Get returns (nil, nil) when nothing is stored under key.
type RecordStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type Option func(*Store)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// withRecordKey overrides the key the credential is stored under.
func withRecordKey(key string) Option {
	return func(s *Store) { s.recordKey = key }
}

type Store struct {
	storage   RecordStorage
	log       logging.Logger
	now       func() time.Time
	recordKey string

	// opMu serialises Initialize, Login and Logout so the durable record
	// and the in-memory session change together.
	opMu sync.Mutex

	mu          sync.RWMutex
	credential  string
	identity    *Identity
	initialized bool

	subMu  sync.Mutex
	subs   map[int]func(State)
	nextID int
}

func NewStore(storage RecordStorage, log logging.Logger, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		log:       log,
		now:       time.Now,
		recordKey: common.CredentialRecordKey,
		subs:      make(map[int]func(State)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize restores a session persisted by a previous run. A record that
// does not decode or has expired is erased and the store stays Anonymous;
// that is not an error. Only storage failures are returned.
func (s *Store) Initialize(ctx context.Context) error {
	restored, err := s.restore(ctx)
	if restored {
		s.notify()
	}
	return err
}

func (s *Store) restore(ctx context.Context) (bool, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return false, ErrAlreadyInitialized
	}
	s.initialized = true
	// A Login made before Initialize already owns the session.
	active := s.identity != nil
	s.mu.Unlock()
	if active {
		return false, nil
	}

	raw, err := s.storage.Get(ctx, s.recordKey)
	if err != nil {
		return false, fmt.Errorf("read credential record: %w", err)
	}
	if len(raw) == 0 {
		return false, nil
	}

	credential := string(raw)
	claims, err := token.Decode(credential)
	if err != nil {
		return false, s.discard(ctx, "undecodable", err)
	}
	if claims.ExpiredAt(s.now()) {
		return false, s.discard(ctx, "expired", nil)
	}

	id := identityFromClaims(claims)
	s.mu.Lock()
	s.credential = credential
	s.identity = &id
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "user", id.Username)
	return true, nil
}

func (s *Store) discard(ctx context.Context, reason string, cause error) error {
	args := []any{"reason", reason}
	if cause != nil {
		args = append(args, "error", cause)
	}
	s.log.Warn(ctx, "stored credential discarded", args...)

	if err := s.storage.Delete(ctx, s.recordKey); err != nil {
		return fmt.Errorf("erase credential record: %w", err)
	}
	return nil
}

// Login adopts credential as the current session. A credential that does not
// decode is a contract violation by the backend and is returned as a
// *token.DecodeError; nothing is stored in that case.
func (s *Store) Login(ctx context.Context, credential string) (Identity, error) {
	id, err := s.login(ctx, credential)
	if err != nil {
		return Identity{}, err
	}
	s.notify()
	return id, nil
}

func (s *Store) login(ctx context.Context, credential string) (Identity, error) {
	claims, err := token.Decode(credential)
	if err != nil {
		return Identity{}, err
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if claims.ExpiredAt(s.now()) {
		return Identity{}, ErrExpired
	}
	if err := s.storage.Set(ctx, s.recordKey, []byte(credential)); err != nil {
		return Identity{}, fmt.Errorf("write credential record: %w", err)
	}

	id := identityFromClaims(claims)
	s.mu.Lock()
	s.credential = credential
	s.identity = &id
	s.mu.Unlock()

	s.log.Info(ctx, "session started", "user", id.Username)
	return id, nil
}

// Logout ends the session. It is safe to call when Anonymous. The in-memory
// session is cleared even if the record cannot be erased.
func (s *Store) Logout(ctx context.Context) error {
	err := s.logout(ctx)
	s.notify()
	return err
}

func (s *Store) logout(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	err := s.storage.Delete(ctx, s.recordKey)

	s.mu.Lock()
	wasActive := s.identity != nil
	s.credential = ""
	s.identity = nil
	s.mu.Unlock()

	if wasActive {
		s.log.Info(ctx, "session ended")
	}
	if err != nil {
		return fmt.Errorf("erase credential record: %w", err)
	}
	return nil
}

func (s *Store) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

func (s *Store) CurrentIdentity() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Credential returns the raw bearer credential for outbound requests.
func (s *Store) Credential() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return "", false
	}
	return s.credential, true
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return State{}
	}
	return State{Active: true, Identity: *s.identity}
}

// Subscribe registers fn to be called synchronously after every mutation.
// The returned func cancels the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify runs outside s.mu so subscribers may read the store.
func (s *Store) notify() {
	st := s.State()

	s.subMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// Teardown drops subscribers and forgets the in-memory session. The durable
// record is left in place for the next run. A Login in flight completes
// first and is then forgotten.
func (s *Store) Teardown() {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.subMu.Lock()
	s.subs = make(map[int]func(State))
	s.subMu.Unlock()

	s.mu.Lock()
	s.credential = ""
	s.identity = nil
	s.mu.Unlock()
}
