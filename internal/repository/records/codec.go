package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ReadList decodes the JSON array stored under key. A missing key yields an
// empty list. A malformed document also yields an empty list: the condition
// is logged and never propagated, so callers always receive usable data.
// Only genuine backend failures are returned as errors.
func ReadList[T any](ctx context.Context, store Store, key string, logger *zap.Logger) ([]T, error) {
	raw, err := store.Read(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		if logger != nil {
			logger.Warn("stored document is malformed, substituting empty list",
				zap.String("key", key), zap.Error(err))
		}
		return nil, nil
	}

	return list, nil
}

// WriteList encodes the list as a JSON array and stores it under key.
func WriteList[T any](ctx context.Context, store Store, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Write(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// ReadDoc decodes the JSON object stored under key. Missing and malformed
// documents both yield nil, with malformed content logged.
func ReadDoc[T any](ctx context.Context, store Store, key string, logger *zap.Logger) (*T, error) {
	raw, err := store.Read(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	doc := new(T)
	if err := json.Unmarshal(raw, doc); err != nil {
		if logger != nil {
			logger.Warn("stored document is malformed, substituting nil",
				zap.String("key", key), zap.Error(err))
		}
		return nil, nil
	}

	return doc, nil
}

// WriteDoc encodes the document as a JSON object and stores it under key.
func WriteDoc[T any](ctx context.Context, store Store, key string, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Write(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
