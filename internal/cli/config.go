package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depinfo/pkg/errors"
)

const configFile = "config.toml"

// Config holds defaults read from a TOML file. Unset fields leave the flag
// defaults untouched; flags given on the command line always win.
type Config struct {
	BuildTools   []string `toml:"build_tools"`
	MaxDepth     *int     `toml:"max_depth"`
	Markdown     *bool    `toml:"markdown"`
	LogLevel     string   `toml:"log_level"`
	Python       string   `toml:"python"`
	SitePackages []string `toml:"site_packages"`
	LockFile     string   `toml:"lock_file"`
}

// configDir returns the config directory using XDG standard (~/.config/depinfo/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config at path. An empty path selects the default
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(dir, configFile)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// applyConfig loads the config selected by --config and copies its values
// into opts for every flag that was not set explicitly.
func applyConfig(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts.config)
	if err != nil || cfg == nil {
		return err
	}

	flags := cmd.Flags()
	unset := func(name string) bool { return !flags.Changed(name) }

	if cfg.BuildTools != nil && unset("build-tools") {
		opts.buildTools = strings.Join(cfg.BuildTools, ",")
	}
	if cfg.MaxDepth != nil && unset("max-depth") {
		opts.maxDepth = *cfg.MaxDepth
	}
	if cfg.Markdown != nil && unset("markdown") {
		opts.markdown = *cfg.Markdown
	}
	if cfg.LogLevel != "" && unset("log-level") {
		opts.logLevel = cfg.LogLevel
	}
	if cfg.Python != "" && unset("python") {
		opts.python = cfg.Python
	}
	if len(cfg.SitePackages) > 0 && unset("site-packages") {
		opts.sitePackages = cfg.SitePackages
	}
	if cfg.LockFile != "" && unset("lock-file") {
		opts.lockFile = cfg.LockFile
	}
	return nil
}
