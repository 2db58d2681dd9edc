package store

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
)

// Load decodes the value stored under key into dst. It returns false
// without touching dst when the key is absent.
func Load[T any](ctx context.Context, s Store, key string, dst *T) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := sonic.ConfigStd.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func Save(ctx context.Context, s Store, key string, v any) error {
	raw, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw)
}
