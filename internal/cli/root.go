// Package cli implements dirctl, a command-line client over the resource
// directory. It builds the same store as the server and prints query
// results as tables, JSON or YAML.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/CommunityDirectory/internal/catalog"
	"github.com/JonMunkholm/CommunityDirectory/internal/core"
	"github.com/JonMunkholm/CommunityDirectory/internal/logging"
)

// Version is printed by "dirctl version". Overridden at link time.
var Version = "dev"

// app holds the global flags shared by every subcommand.
type app struct {
	dataPath string
	seed     uint64
	verbose  bool

	logger *slog.Logger
}

// NewRootCommand returns the dirctl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "dirctl",
		Short: "Query the community resource directory",
		Long: `dirctl searches the community resource directory from the terminal.

It reads the embedded catalog, or the table given with --data, and applies
the same filters as the web directory.

Example:
  dirctl query --category food --city Boston
  dirctl show food-projectbread --format yaml
  dirctl export --verified-only > resources.txt`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level, "text")
		},
	}

	root.PersistentFlags().StringVar(&a.dataPath, "data", os.Getenv("DATA_PATH"), "resource table to load instead of the embedded catalog")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "seed for map placement and initial trust scores (0 = random)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newQueryCmd(a),
		newShowCmd(a),
		newCitiesCmd(a),
		newCategoriesCmd(a),
		newBoundsCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs dirctl with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// store builds the directory from --data or the embedded catalog.
func (a *app) store() (*core.Store, error) {
	opts := core.BuildOptions{Rand: core.NewRand(a.seed)}

	if a.dataPath == "" {
		s := core.Build(catalog.Raw(), opts)
		a.log().Debug("loaded embedded catalog", "resources", s.Len())
		return s, nil
	}

	f, err := os.Open(a.dataPath)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	s, err := core.BuildFromReader(f, opts)
	if err != nil {
		return nil, err
	}
	a.log().Debug("loaded resource table", "path", a.dataPath, "resources", s.Len())
	return s, nil
}

func (a *app) log() *slog.Logger {
	if a.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a.logger
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dirctl %s\n", Version)
		},
	}
}
