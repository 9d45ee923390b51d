// Package cli implements the sprawl command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprawl/pkg/buildinfo"
	"github.com/matzehuels/sprawl/pkg/config"
	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/observability"
	"github.com/matzehuels/sprawl/pkg/pipeline"
)

const appName = "sprawl"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger and registers the
// logging observability hooks.
func New(w io.Writer, level log.Level) *CLI {
	observability.SetGrowthHooks(logHooks{})
	observability.SetRenderHooks(logHooks{})
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. Running it grows one shape and
// prints it to the command's output stream.
func (c *CLI) RootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Sprawl grows a random shape on a grid and prints it",
		Long:         `Sprawl grows a random connected shape on an unbounded grid by repeatedly annexing a random neighboring cell, then prints it as a brick wall with the shape cut out.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, configPath)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.Flags().StringVar(&configPath, "config", "", "TOML file overriding the default steps and glyphs")

	return root
}

func (c *CLI) run(cmd *cobra.Command, configPath string) error {
	logger := c.Logger.With("run", uuid.NewString()[:8])
	ctx := withLogger(cmd.Context(), logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", configPath, "steps", cfg.Steps)

	prog := newProgress(logger)
	result, err := pipeline.NewRunner(logger).Execute(ctx, cmd.OutOrStdout(), pipeline.FromConfig(cfg))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Grew %d cells", result.Stats.Cells))

	if logger.GetLevel() <= log.DebugLevel {
		printStats(cmd.ErrOrStderr(), result.Stats)
	}
	return nil
}

// ErrorMessage returns the text printed for a failed run. Coded errors are
// shown without their code, and broken shape invariants are labelled as such.
func ErrorMessage(err error) string {
	if errors.IsInvariant(err) {
		return "invariant violation: " + errors.UserMessage(err)
	}
	return errors.UserMessage(err)
}
