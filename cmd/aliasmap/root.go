package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/aliasmap/internal/version"
	"github.com/arthur-debert/aliasmap/pkg/aliases"
	"github.com/arthur-debert/aliasmap/pkg/config"
	"github.com/arthur-debert/aliasmap/pkg/logging"
)

// newRootCmd creates and returns the root command
func newRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "aliasmap",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Add all commands
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newAliasesCmd())
	rootCmd.AddCommand(newCanonicalCmd())
	rootCmd.AddCommand(newResolveCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadRegistry loads a definition file and applies it to a fresh registry
func loadRegistry(path string) (aliases.Registry, *config.Definitions, error) {
	defs, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	reg := aliases.New()
	if err := defs.Apply(reg); err != nil {
		return nil, nil, err
	}

	log.Debug().
		Str("file", path).
		Int("aliases", reg.Count()).
		Int("placeholders", len(defs.Placeholders)).
		Msg("Definitions loaded")

	return reg, defs, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("aliasmap version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}
