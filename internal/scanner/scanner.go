package scanner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kpauljoseph/pagecheck/pkg/logger"
)

type Scanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *Scanner {
	return &Scanner{
		logger: logger,
	}
}

// Candidates returns the fixture path followed by every match of pattern.
// Paths are not checked for existence and duplicates are kept.
// A missing or unreadable directory yields no matches; only a malformed pattern is an error.
func (s *Scanner) Candidates(ctx context.Context, fixture, pattern string) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	paths := []string{fixture}
	if pattern == "" {
		return paths, nil
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		if errors.Is(err, filepath.ErrBadPattern) {
			return nil, fmt.Errorf("invalid output pattern %q: %w", pattern, err)
		}
		return nil, fmt.Errorf("failed to match %q: %w", pattern, err)
	}

	s.logger.Debug("Pattern %s matched %d files", pattern, len(matches))
	for _, m := range matches {
		s.logger.Trace("  %s", m)
	}

	return append(paths, matches...), nil
}
