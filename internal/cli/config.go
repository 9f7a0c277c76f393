package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	nberrors "github.com/matzehuels/nbexplode/pkg/errors"
	"github.com/matzehuels/nbexplode/pkg/explode"
)

// Config holds settings read from config.toml. Command-line flags take
// precedence over every field.
type Config struct {
	// CodeExtension is the source extension for code cells of notebooks
	// whose metadata does not declare language_info.file_extension.
	CodeExtension string `toml:"code_extension"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{CodeExtension: explode.DefaultCodeExtension}
}

// loadConfig reads the config file at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func loadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, nberrors.Wrap(nberrors.ErrCodeIO, err, "open config %s", path)
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return cfg, nberrors.Wrap(nberrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, nberrors.New(nberrors.ErrCodeInvalidInput, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/nbexplode/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}
