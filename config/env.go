package config

import (
	"context"
	"strconv"

	"github.com/sethvargo/go-envconfig"
)

// Env is the environment surface of the store.
type Env struct {
	// Level is a level name, or a legacy integer rank as a string.
	Level string `env:"GATELOG_LEVEL, default=info"`
	// TruncateSize is the truncation size in bytes.
	TruncateSize int `env:"GATELOG_TRUNCATE_SIZE, default=4096"`
}

// FromEnv builds a Store from the environment. Unrecognized level
// values fail loudly here rather than falling back to the default,
// so a typo in deployment configuration is not silently ignored.
func FromEnv(ctx context.Context) (*Store, error) {
	var e Env
	if err := envconfig.Process(ctx, &e); err != nil {
		return nil, err
	}

	s := NewStore()
	s.SetTruncateSize(e.TruncateSize)

	if n, err := strconv.Atoi(e.Level); err == nil {
		if err := s.SetLevelNum(n); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err := s.SetLevelName(e.Level); err != nil {
		return nil, err
	}
	return s, nil
}
