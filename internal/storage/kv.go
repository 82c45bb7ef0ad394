package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// DefaultNamespace prefixes every physical key.
const DefaultNamespace = "focusboard"

// Logical document keys.
const (
	KeyProfile            = "profile"
	KeyNotes              = "notes"
	KeyRoutine            = "routine"
	KeyAIUsage            = "ai_usage"
	KeyInspiration        = "inspiration"
	KeyQuizResults        = "quiz_results"
	KeyInspirationsViewed = "inspirations_viewed"
)

// KV is the persistence port: raw JSON documents under logical keys.
//
// Update performs a read-modify-write of a single key; fn receives the current
// value (ok=false when absent) and returns the value to store.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Update(ctx context.Context, key string, fn func(current []byte, ok bool) ([]byte, error)) error
}

func physicalKey(namespace, key string) string {
	ns := strings.TrimSpace(namespace)
	if ns == "" {
		ns = DefaultNamespace
	}
	return ns + "_" + key
}

// SQLiteKV stores documents in the kv table.
type SQLiteKV struct {
	db        *sql.DB
	namespace string
}

func NewSQLiteKV(db *sql.DB, namespace string) *SQLiteKV {
	return &SQLiteKV{db: db, namespace: namespace}
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func getValue(ctx context.Context, q queryer, key string) ([]byte, bool, error) {
	row := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	var v string
	if err := row.Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return []byte(v), true, nil
}

func putValue(ctx context.Context, q queryer, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("kv put %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return getValue(ctx, s.db, physicalKey(s.namespace, key))
}

func (s *SQLiteKV) Put(ctx context.Context, key string, value []byte) error {
	return putValue(ctx, s.db, physicalKey(s.namespace, key), value)
}

func (s *SQLiteKV) Update(ctx context.Context, key string, fn func([]byte, bool) ([]byte, error)) error {
	pk := physicalKey(s.namespace, key)
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		cur, ok, err := getValue(ctx, tx, pk)
		if err != nil {
			return err
		}
		next, err := fn(cur, ok)
		if err != nil {
			return err
		}
		return putValue(ctx, tx, pk, next)
	})
}


// MemoryKV is an in-process KV, used by tests and dry runs.
type MemoryKV struct {
	mu        sync.Mutex
	namespace string
	data      map[string][]byte
}

func NewMemoryKV(namespace string) *MemoryKV {
	return &MemoryKV{namespace: namespace, data: map[string][]byte{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[physicalKey(m.namespace, key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[physicalKey(m.namespace, key)] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryKV) Update(_ context.Context, key string, fn func([]byte, bool) ([]byte, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	pk := physicalKey(m.namespace, key)
	cur, ok := m.data[pk]
	next, err := fn(append([]byte(nil), cur...), ok)
	if err != nil {
		return err
	}
	m.data[pk] = append([]byte(nil), next...)
	return nil
}

