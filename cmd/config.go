package cmd

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig is the --config file. Flags given on the command line win over
// its values.
type fileConfig struct {
	TypeScript      string         `yaml:"typescript"`
	Prettier        string         `yaml:"prettier"`
	Prettify        prettifyConfig `yaml:"prettify"`
	CompilerOptions map[string]any `yaml:"compilerOptions"`
	TSConfig        string         `yaml:"tsconfig"`
	Parallel        int            `yaml:"parallel"`
}

type prettifyConfig struct {
	Enabled *bool          `yaml:"enabled"`
	Options map[string]any `yaml:"options"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}

	return cfg, nil
}
