package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tsexpand/internal/controller"
)

func TestExploreCmd(t *testing.T) {
	t.Run("starts the explorer", func(t *testing.T) {
		useExpander(t)

		var started *controller.Explorer

		original := runExplorer
		runExplorer = func(_ context.Context, explorer *controller.Explorer) error {
			started = explorer
			return nil
		}

		defer func() { runExplorer = original }()

		_, _, err := runRoot(t, "", "explore", "a.ts")
		require.NoError(t, err)
		require.NotNil(t, started)
	})

	t.Run("rejects stdin sources", func(t *testing.T) {
		useExpander(t)

		_, _, err := runRoot(t, "", "explore", "-")
		require.Error(t, err)
	})
}
