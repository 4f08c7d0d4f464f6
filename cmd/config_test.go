package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tsexpand/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tsexpand.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const testConfig = `
typescript: /opt/ts/typescript.js
prettier: /opt/prettier
prettify:
  enabled: false
  options:
    printWidth: 100
compilerOptions:
  strict: true
parallel: 3
`

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, testConfig))
	require.NoError(t, err)

	require.Equal(t, "/opt/ts/typescript.js", cfg.TypeScript)
	require.Equal(t, "/opt/prettier", cfg.Prettier)
	require.NotNil(t, cfg.Prettify.Enabled)
	require.False(t, *cfg.Prettify.Enabled)
	require.Equal(t, map[string]any{"printWidth": 100}, cfg.Prettify.Options)
	require.Equal(t, map[string]any{"strict": true}, cfg.CompilerOptions)
	require.Equal(t, 3, cfg.Parallel)

	empty, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, fileConfig{}, empty)

	_, err = loadConfig(writeConfig(t, "parallel: [1"))
	require.Error(t, err)
}

func TestRootCmd_ConfigFile(t *testing.T) {
	path := writeConfig(t, testConfig)

	t.Run("config values reach the request", func(t *testing.T) {
		mockExpander := useExpander(t)
		mockExpander.EXPECT().
			Expand(mock.Anything, mock.MatchedBy(func(req m.Request) bool {
				return !prettifyEnabled(req) &&
					req.Prettify.Options["printWidth"] == 100 &&
					req.CompilerOptions.Values["strict"] == true
			})).
			Return("x", nil)

		_, _, err := runRoot(t, "", "--config", path, "a.ts", "X")
		require.NoError(t, err)
	})

	t.Run("flags win over the config", func(t *testing.T) {
		mockExpander := useExpander(t)
		mockExpander.EXPECT().
			Expand(mock.Anything, mock.MatchedBy(prettifyEnabled)).
			Return("x", nil)

		_, _, err := runRoot(t, "", "--config", path, "-p", "a.ts", "X")
		require.NoError(t, err)
	})
}

func TestResolveSettings(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", writeConfig(t, testConfig), "--typescript", "/flag/typescript.js"}))

	s, err := resolveSettings(cmd)
	require.NoError(t, err)
	require.Equal(t, "/flag/typescript.js", s.typescript)
	require.Equal(t, "/opt/prettier", s.prettier)
	require.Equal(t, 3, s.parallel)
	require.False(t, *s.prettify.Enabled)
}
