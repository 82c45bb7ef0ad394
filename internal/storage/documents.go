package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

func loadDoc[T any](ctx context.Context, kv KV, key string) (T, bool, error) {
	var out T
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return out, ok, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return out, true, nil
}

func saveDoc(ctx context.Context, kv KV, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, raw)
}

// updateDoc decodes the current document (zero value when absent), lets fn
// mutate it, and writes it back in one KV.Update.
func updateDoc[T any](ctx context.Context, kv KV, key string, fn func(doc *T, existed bool) error) error {
	return kv.Update(ctx, key, func(cur []byte, ok bool) ([]byte, error) {
		var doc T
		if ok {
			if err := json.Unmarshal(cur, &doc); err != nil {
				return nil, fmt.Errorf("decode %s: %w", key, err)
			}
		}
		if err := fn(&doc, ok); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		return raw, nil
	})
}
