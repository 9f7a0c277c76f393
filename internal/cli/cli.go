package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nbexplode/pkg/buildinfo"
	"github.com/matzehuels/nbexplode/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "nbexplode"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives user-facing results. Logs go to the writer passed to New.
	Out io.Writer

	// FS is the filesystem notebooks and trees are read from and written to.
	FS afero.Fs
}

// New creates a new CLI instance with a default logger on the OS filesystem.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		FS:     afero.NewOsFs(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// flags are the root command's flag values.
type flags struct {
	recombine  bool
	verbose    bool
	configPath string
	codeExt    string
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var f flags
	var cfg Config

	root := &cobra.Command{
		Use:   "nbexplode [flags] FILE",
		Short: "nbexplode splits notebooks into diff-friendly directory trees",
		Long: `nbexplode converts a Jupyter notebook (FILE.ipynb) into a directory tree
(FILE.ipynb.exploded) with one directory per cell, so notebooks can be
reviewed and merged with ordinary line-based tools.

With --recombine, FILE.ipynb.exploded is turned back into FILE.ipynb.`,
		Version:       buildinfo.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = loadConfig(c.FS, f.configPath); err != nil {
				return err
			}
			if cmd.Flags().Changed("code-ext") {
				cfg.CodeExtension = f.codeExt
			}
			if f.verbose || cfg.Verbose {
				c.SetLogLevel(LogDebug)
			}

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetTransformHooks(newLogHooks(c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.recombine {
				return c.runRecombine(cmd.Context(), args[0])
			}
			return c.runExplode(cmd.Context(), args[0], cfg.CodeExtension)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().BoolVarP(&f.recombine, "recombine", "r", false, "recombine FILE.ipynb.exploded into FILE.ipynb")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/nbexplode/config.toml)")
	root.Flags().StringVar(&f.codeExt, "code-ext", "", "source extension for code cells when the notebook declares none (default .py)")

	root.AddCommand(c.completionCommand())

	return root
}
