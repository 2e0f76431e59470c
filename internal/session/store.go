package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// RoleStore holds the identity logged in for one role.
type RoleStore struct {
	role      Role
	persister Persister

	mu       sync.RWMutex
	identity Identity
}

func newRoleStore(role Role, persister Persister) *RoleStore {
	return &RoleStore{role: role, persister: persister}
}

// Role returns the role this store serves.
func (s *RoleStore) Role() Role {
	return s.role
}

// SetIdentity records a successful login. Only the id is required. The
// store keeps its previous identity when persisting fails.
func (s *RoleStore) SetIdentity(ctx context.Context, id ID, name string) error {
	if id.IsZero() {
		return fmt.Errorf("%w: id is required", ErrInvalidIdentity)
	}
	identity := Identity{ID: id, Name: name, Authenticated: true}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.save(ctx, identity); err != nil {
		return err
	}
	s.identity = identity
	return nil
}

// Clear logs the role out. The identity stays when the persisted copy
// cannot be deleted.
func (s *RoleStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persister.Delete(ctx, s.key()); err != nil {
		return fmt.Errorf("session: clear %s: %w", s.role, err)
	}
	s.identity = Identity{}
	return nil
}

// Identity returns the current identity.
func (s *RoleStore) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Snapshot returns the current identity tagged with the role.
func (s *RoleStore) Snapshot() Snapshot {
	return Snapshot{Role: s.role, Identity: s.Identity()}
}

func (s *RoleStore) key() string {
	return "role:" + string(s.role)
}

func (s *RoleStore) save(ctx context.Context, identity Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.persister.Save(ctx, s.key(), data); err != nil {
		return fmt.Errorf("session: save %s: %w", s.role, err)
	}
	return nil
}

func (s *RoleStore) load(ctx context.Context) error {
	data, err := s.persister.Load(ctx, s.key())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("session: load %s: %w", s.role, err)
	}
	var identity Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return fmt.Errorf("session: decode %s: %w", s.role, err)
	}
	s.mu.Lock()
	s.identity = identity
	s.mu.Unlock()
	return nil
}

// WorkerSession holds the operator currently recording production.
type WorkerSession struct {
	persister Persister

	mu     sync.RWMutex
	worker Worker
}

// Get returns the current worker fields.
func (s *WorkerSession) Get() Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.worker
}

// Update applies fn to a copy of the worker fields and keeps the result
// once it is persisted.
func (s *WorkerSession) Update(ctx context.Context, fn func(w *Worker)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	worker := s.worker
	fn(&worker)

	data, err := json.Marshal(worker)
	if err != nil {
		return err
	}
	if err := s.persister.Save(ctx, workerKey, data); err != nil {
		return fmt.Errorf("session: save worker: %w", err)
	}
	s.worker = worker
	return nil
}

// Clear resets every worker field.
func (s *WorkerSession) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persister.Delete(ctx, workerKey); err != nil {
		return fmt.Errorf("session: clear worker: %w", err)
	}
	s.worker = Worker{}
	return nil
}

const workerKey = "worker"

func (s *WorkerSession) load(ctx context.Context) error {
	data, err := s.persister.Load(ctx, workerKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("session: load worker: %w", err)
	}
	var worker Worker
	if err := json.Unmarshal(data, &worker); err != nil {
		return fmt.Errorf("session: decode worker: %w", err)
	}
	s.mu.Lock()
	s.worker = worker
	s.mu.Unlock()
	return nil
}

// Registry owns one store per role plus the worker session. Build one per
// console session at startup and reset it at logout.
type Registry struct {
	roles  map[Role]*RoleStore
	worker *WorkerSession
}

// NewRegistry builds the stores. A nil persister keeps state in memory only.
func NewRegistry(persister Persister) *Registry {
	if persister == nil {
		persister = MemoryPersister{}
	}
	r := &Registry{
		roles:  make(map[Role]*RoleStore, len(Roles())),
		worker: &WorkerSession{persister: persister},
	}
	for _, role := range Roles() {
		r.roles[role] = newRoleStore(role, persister)
	}
	return r
}

// Role returns the store for role.
func (r *Registry) Role(role Role) (*RoleStore, error) {
	store, ok := r.roles[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	return store, nil
}

// Worker returns the worker session.
func (r *Registry) Worker() *WorkerSession {
	return r.worker
}

// Snapshots lists every role store in display order.
func (r *Registry) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(r.roles))
	for _, role := range Roles() {
		out = append(out, r.roles[role].Snapshot())
	}
	return out
}

// Load restores persisted state into every store.
func (r *Registry) Load(ctx context.Context) error {
	var errs []error
	for _, role := range Roles() {
		errs = append(errs, r.roles[role].load(ctx))
	}
	errs = append(errs, r.worker.load(ctx))
	return errors.Join(errs...)
}

// ResetAll clears every store.
func (r *Registry) ResetAll(ctx context.Context) error {
	var errs []error
	for _, role := range Roles() {
		errs = append(errs, r.roles[role].Clear(ctx))
	}
	errs = append(errs, r.worker.Clear(ctx))
	return errors.Join(errs...)
}
