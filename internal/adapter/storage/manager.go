// Package storage maps the task and user collections onto a key-value
// backend and owns the backup document format.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

const (
	tasksKey = "tasks"
	usersKey = "users"
	probeKey = "probe"
)

// Manager namespaces keys as "<namespace>_<name>" and serializes every
// read-modify-write against the backend.
type Manager struct {
	backend   ports.KeyValueStore
	namespace string
	version   string
	now       func() time.Time

	mu sync.Mutex
}

var (
	_ ports.StorageProbe = (*Manager)(nil)
	_ ports.DataTransfer = (*Manager)(nil)
)

type document struct {
	App        string       `json:"app"`
	Version    string       `json:"version"`
	ExportedAt time.Time    `json:"exportedAt"`
	Data       documentData `json:"data"`
}

type documentData struct {
	Tasks []taskRecord `json:"tasks"`
	Users []userRecord `json:"users"`
}

func NewManager(backend ports.KeyValueStore, namespace, version string) (*Manager, error) {
	if backend == nil {
		return nil, errors.New("storage backend is required")
	}
	if strings.TrimSpace(namespace) == "" {
		return nil, errors.New("storage namespace is required")
	}
	if strings.TrimSpace(version) == "" {
		return nil, errors.New("schema version is required")
	}
	return &Manager{
		backend:   backend,
		namespace: namespace,
		version:   version,
		now:       time.Now,
	}, nil
}

func (m *Manager) Namespace() string { return m.namespace }

func (m *Manager) Version() string { return m.version }

func (m *Manager) key(name string) string {
	return m.namespace + "_" + name
}

// CheckAvailability writes, reads back and removes a probe entry.
func (m *Manager) CheckAvailability(ctx context.Context) error {
	key := m.key(probeKey)
	want := []byte(m.now().UTC().Format(time.RFC3339Nano))

	if err := m.backend.Set(ctx, key, want); err != nil {
		return fmt.Errorf("%w: write probe: %v", domain.ErrStorageUnavailable, err)
	}
	got, err := m.backend.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("%w: read probe: %v", domain.ErrStorageUnavailable, err)
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: probe value mismatch", domain.ErrStorageUnavailable)
	}
	if err := m.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: delete probe: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// read decodes the named entry into dst. A missing entry leaves dst as is.
func (m *Manager) read(ctx context.Context, name string, dst any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.load(ctx, name, dst)
}

// mutate loads the named entry into dst, runs fn and saves dst when fn
// succeeds. The whole sequence runs under the manager lock.
func (m *Manager) mutate(ctx context.Context, name string, dst any, fn func() error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.load(ctx, name, dst); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return m.save(ctx, name, dst)
}

func (m *Manager) load(ctx context.Context, name string, dst any) error {
	raw, err := m.backend.Get(ctx, m.key(name))
	if errors.Is(err, domain.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (m *Manager) save(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := m.backend.Set(ctx, m.key(name), raw); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

// Export renders the whole persisted state as an indented JSON document.
func (m *Manager) Export(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc := document{
		App:        m.namespace,
		Version:    m.version,
		ExportedAt: m.now().UTC(),
		Data: documentData{
			Tasks: []taskRecord{},
			Users: []userRecord{},
		},
	}
	if err := m.load(ctx, tasksKey, &doc.Data.Tasks); err != nil {
		return nil, err
	}
	if err := m.load(ctx, usersKey, &doc.Data.Users); err != nil {
		return nil, err
	}
	if doc.Data.Tasks == nil {
		doc.Data.Tasks = []taskRecord{}
	}
	if doc.Data.Users == nil {
		doc.Data.Users = []userRecord{}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// Import replaces both collections with the content of a document produced
// by Export. Nothing is written unless the whole document is valid, and the
// previous users are put back when the tasks cannot be saved.
func (m *Manager) Import(ctx context.Context, raw []byte) error {
	doc, err := decodeDocument(raw)
	if err != nil {
		return err
	}
	if doc.App != m.namespace {
		return fmt.Errorf("%w: app %q does not match %q", domain.ErrIncompatibleBackup, doc.App, m.namespace)
	}
	if doc.Version != m.version {
		return fmt.Errorf("%w: version %q does not match %q", domain.ErrIncompatibleBackup, doc.Version, m.version)
	}
	if err := validateDocument(doc); err != nil {
		return err
	}
	if doc.Data.Tasks == nil {
		doc.Data.Tasks = []taskRecord{}
	}
	if doc.Data.Users == nil {
		doc.Data.Users = []userRecord{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	previousUsers, err := m.backend.Get(ctx, m.key(usersKey))
	hadUsers := err == nil
	if err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return fmt.Errorf("load %s: %w", usersKey, err)
	}

	if err := m.save(ctx, usersKey, doc.Data.Users); err != nil {
		return err
	}
	if err := m.save(ctx, tasksKey, doc.Data.Tasks); err != nil {
		if rollbackErr := m.restore(ctx, usersKey, previousUsers, hadUsers); rollbackErr != nil {
			return errors.Join(err, rollbackErr)
		}
		return err
	}
	return nil
}

// restore puts back a raw entry captured before a failed write.
func (m *Manager) restore(ctx context.Context, name string, raw []byte, existed bool) error {
	if !existed {
		if err := m.backend.Delete(ctx, m.key(name)); err != nil {
			return fmt.Errorf("restore %s: %w", name, err)
		}
		return nil
	}
	if err := m.backend.Set(ctx, m.key(name), raw); err != nil {
		return fmt.Errorf("restore %s: %w", name, err)
	}
	return nil
}

func decodeDocument(raw []byte) (document, error) {
	var doc document

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return document{}, fmt.Errorf("%w: %v", domain.ErrIncompatibleBackup, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return document{}, fmt.Errorf("%w: trailing content", domain.ErrIncompatibleBackup)
	}
	return doc, nil
}

func validateDocument(doc document) error {
	userIDs := make(map[string]struct{}, len(doc.Data.Users))
	usernames := make(map[string]struct{}, len(doc.Data.Users))
	for i, user := range doc.Data.Users {
		if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Username) == "" {
			return fmt.Errorf("%w: user %d is missing id or username", domain.ErrIncompatibleBackup, i)
		}
		if _, dup := userIDs[user.ID]; dup {
			return fmt.Errorf("%w: duplicate user id %q", domain.ErrIncompatibleBackup, user.ID)
		}
		name := strings.ToLower(user.Username)
		if _, dup := usernames[name]; dup {
			return fmt.Errorf("%w: duplicate username %q", domain.ErrIncompatibleBackup, user.Username)
		}
		userIDs[user.ID] = struct{}{}
		usernames[name] = struct{}{}
	}

	taskIDs := make(map[string]struct{}, len(doc.Data.Tasks))
	for i, task := range doc.Data.Tasks {
		if strings.TrimSpace(task.ID) == "" || strings.TrimSpace(task.Title) == "" {
			return fmt.Errorf("%w: task %d is missing id or title", domain.ErrIncompatibleBackup, i)
		}
		if _, dup := taskIDs[task.ID]; dup {
			return fmt.Errorf("%w: duplicate task id %q", domain.ErrIncompatibleBackup, task.ID)
		}
		if task.UpdatedAt.Before(task.CreatedAt) {
			return fmt.Errorf("%w: task %q updated before it was created", domain.ErrIncompatibleBackup, task.ID)
		}
		taskIDs[task.ID] = struct{}{}
	}
	return nil
}
