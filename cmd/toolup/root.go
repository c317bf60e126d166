package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mfriesen/toolup/internal/version"
	"github.com/mfriesen/toolup/pkg/config"
	"github.com/mfriesen/toolup/pkg/logging"
	"github.com/mfriesen/toolup/pkg/setupfile"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		cfgPath   string
	)

	rootCmd := &cobra.Command{
		Use:     "toolup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", MsgFlagConfig)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newEnabledCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newManagersCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("toolup version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

// loadStore builds the effective store for a command invocation, honoring
// the persistent --config flag.
func loadStore(cmd *cobra.Command) (*setupfile.Store, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	return config.Load(config.Options{Path: path})
}

// configPath resolves the file a command should inspect directly: the
// explicit --config value or the first hit on the search path.
func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path != "" {
		return path
	}
	return config.DefaultPath()
}
