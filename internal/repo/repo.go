// Package repo owns the canonical in-memory task collection and keeps a
// persisted copy consistent with it.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"taskdeck/internal/storage"
	"taskdeck/internal/task"
)

// TasksKey is the well-known storage key for the serialized collection.
const TasksKey = "tasks"

// snapshotVersion is written into every persisted blob so a later schema
// change can tell old blobs apart.
const snapshotVersion = 1

// writeQueueSize bounds pending persist snapshots. Mutations block (briefly)
// once the queue is full rather than dropping or reordering writes.
const writeQueueSize = 64

// ErrNotFound indicates the referenced task ID is absent from the collection.
var ErrNotFound = errors.New("task not found")

// ErrClosed indicates the repository has been closed.
var ErrClosed = errors.New("repository closed")

// CorruptError indicates the persisted blob could not be deserialized.
// The session continues on an empty collection; the next persist
// overwrites the bad blob.
type CorruptError struct {
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("stored tasks unreadable: %v", e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// snapshot is the persisted shape: a versioned envelope around the full
// task collection.
type snapshot struct {
	Version int         `json:"version"`
	Tasks   []task.Task `json:"tasks"`
}

// Repository maintains the canonical task collection. All mutations end by
// enqueueing a whole-collection snapshot onto a single-writer queue, so
// storage writes are applied in mutation order while mutation calls never
// block on I/O.
type Repository struct {
	mu     sync.Mutex
	tasks  []task.Task
	closed bool

	kv  storage.KV
	log *logrus.Entry

	writes chan []byte
	done   chan struct{}

	errMu   sync.Mutex
	lastErr error
}

// New creates a repository over the given store and starts its writer.
// Call Load before reading, and Close to drain pending writes.
func New(kv storage.KV, log *logrus.Entry) *Repository {
	r := &Repository{
		kv:     kv,
		log:    log,
		writes: make(chan []byte, writeQueueSize),
		done:   make(chan struct{}),
	}
	go r.writer()
	return r
}

// writer drains the persist queue. One goroutine, one key: writes reach
// storage in the order their snapshots were enqueued.
func (r *Repository) writer() {
	defer close(r.done)
	for blob := range r.writes {
		if err := r.kv.Put(TasksKey, blob); err != nil {
			r.setErr(err)
			r.log.WithError(err).Warn("persist failed, in-memory state retained")
			continue
		}
		r.setErr(nil)
	}
}

// Load reads the persisted collection. A missing blob yields an empty
// collection and no error. A corrupt blob yields an empty collection and a
// *CorruptError so the caller can warn without losing the session.
func (r *Repository) Load(ctx context.Context) error {
	blob, err := r.kv.Get(TasksKey)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(blob) == 0 {
		r.tasks = nil
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		r.tasks = nil
		return &CorruptError{Err: err}
	}

	r.tasks = snap.Tasks
	return nil
}

// Tasks returns a snapshot copy of the collection. The returned slice is
// safe to hold across later mutations.
func (r *Repository) Tasks() []task.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]task.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Create validates and appends a new task, then persists.
func (r *Repository) Create(ctx context.Context, title, description string, due time.Time, priority task.Priority) (task.Task, error) {
	t, err := task.New(title, description, due, priority)
	if err != nil {
		return task.Task{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return task.Task{}, ErrClosed
	}
	r.tasks = append(r.tasks, t)
	r.persistLocked()
	return t, nil
}

// Update merges the supplied fields over the task with the given ID,
// then persists. Fields not supplied are preserved.
func (r *Repository) Update(ctx context.Context, id string, fields task.Fields) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return task.Task{}, ErrClosed
	}

	i := r.indexLocked(id)
	if i < 0 {
		return task.Task{}, ErrNotFound
	}

	updated, err := task.Apply(r.tasks[i], fields)
	if err != nil {
		return task.Task{}, err
	}
	r.tasks[i] = updated
	r.persistLocked()
	return updated, nil
}

// Remove deletes the task with the given ID. Removing an absent ID is a
// harmless no-op; either way the current state is persisted.
func (r *Repository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}

	i := r.indexLocked(id)
	if i >= 0 {
		r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	}
	r.persistLocked()
	return nil
}

// ToggleCompleted flips the completed flag of the task with the given ID,
// then persists. The status field is left untouched.
func (r *Repository) ToggleCompleted(ctx context.Context, id string) (task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return task.Task{}, ErrClosed
	}

	i := r.indexLocked(id)
	if i < 0 {
		return task.Task{}, ErrNotFound
	}

	r.tasks[i].Completed = !r.tasks[i].Completed
	r.persistLocked()
	return r.tasks[i], nil
}

// Err returns the most recent persist failure, or nil if the last persist
// succeeded. A later successful persist clears it.
func (r *Repository) Err() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	return r.lastErr
}

// Close drains pending writes (bounded by ctx) and closes the store.
// The repository accepts no mutations afterwards.
func (r *Repository) Close(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.writes)
	r.mu.Unlock()

	select {
	case <-r.done:
	case <-ctx.Done():
		return fmt.Errorf("close: %w", ctx.Err())
	}

	if err := r.kv.Close(); err != nil {
		return err
	}
	return r.Err()
}

// indexLocked returns the position of id in the collection, or -1.
func (r *Repository) indexLocked(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked marshals the current collection and enqueues it for the
// writer. The caller must hold r.mu. A marshal failure is recorded like a
// storage failure; the in-memory state is never rolled back.
func (r *Repository) persistLocked() {
	snap := snapshot{Version: snapshotVersion, Tasks: r.tasks}
	blob, err := json.Marshal(snap)
	if err != nil {
		r.setErr(err)
		r.log.WithError(err).Warn("persist failed, in-memory state retained")
		return
	}
	r.writes <- blob
}

func (r *Repository) setErr(err error) {
	r.errMu.Lock()
	r.lastErr = err
	r.errMu.Unlock()
}
