package store

import (
	"context"
	"maps"
	"slices"
	"sync"
)

// MemoryRepo is an in-process RecordRepo. ReadErr and WriteErr, when set,
// are returned by every read or write so callers can exercise storage failures.
type MemoryRepo struct {
	mu      sync.Mutex
	records map[string][]byte

	ReadErr  error
	WriteErr error

	// Writes counts successful Put and Delete calls per key.
	Writes map[string]int
}

var _ RecordRepo = (*MemoryRepo)(nil)

// NewMemoryRepo creates an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		records: make(map[string][]byte),
		Writes:  make(map[string]int),
	}
}

func (m *MemoryRepo) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(key)
}

func (m *MemoryRepo) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.put(m.records, key, value)
}

func (m *MemoryRepo) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.delete(m.records, key)
}

// Update applies fn to a staged copy of the records and swaps it in on success.
func (m *MemoryRepo) Update(ctx context.Context, fn func(tx RecordTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{repo: m, staged: maps.Clone(m.records)}
	if err := fn(tx); err != nil {
		return err
	}
	m.records = tx.staged
	return nil
}

// Set stores raw bytes directly, bypassing WriteErr and the write counter.
// Tests use it to plant corrupt or legacy records.
func (m *MemoryRepo) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = slices.Clone(value)
}

func (m *MemoryRepo) get(key string) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	v, ok := m.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (m *MemoryRepo) put(records map[string][]byte, key string, value []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	records[key] = slices.Clone(value)
	m.Writes[key]++
	return nil
}

func (m *MemoryRepo) delete(records map[string][]byte, key string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	delete(records, key)
	m.Writes[key]++
	return nil
}

type memoryTx struct {
	repo   *MemoryRepo
	staged map[string][]byte
}

func (t *memoryTx) Get(ctx context.Context, key string) ([]byte, error) {
	if t.repo.ReadErr != nil {
		return nil, t.repo.ReadErr
	}
	v, ok := t.staged[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (t *memoryTx) Put(ctx context.Context, key string, value []byte) error {
	return t.repo.put(t.staged, key, value)
}

func (t *memoryTx) Delete(ctx context.Context, key string) error {
	return t.repo.delete(t.staged, key)
}
