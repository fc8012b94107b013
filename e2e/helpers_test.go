//go:build e2e

package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xengvang1984/xengvang.com-e2e/pkg/browser"
	"github.com/xengvang1984/xengvang.com-e2e/pkg/pages"
)

// newSession opens a tab that closes when t finishes.
func newSession(t *testing.T) browser.Session {
	t.Helper()
	s, err := chrome.NewSession(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("session close: %v", err)
		}
	})
	return s
}

func pageOptions(t *testing.T) []pages.Option {
	return []pages.Option{pages.WithLogger(logger.With(zap.String("test", t.Name())))}
}
