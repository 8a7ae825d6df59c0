package main

import (
	"context"
	"errors"
	"fmt"

	storybookcmd "github.com/louisbranch/vtnds/internal/cmd/storybook"
	"github.com/louisbranch/vtnds/internal/platform/branding"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	commit = "none"
	date   = "unknown"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "storybook",
		Short:         branding.HarnessName + " serves and exports the component catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newConfigCmd("serve", "Serve the interactive harness over HTTP", storybookcmd.Run))
	cmd.AddCommand(newConfigCmd("build", "Export the harness as static HTML", storybookcmd.Build))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newConfigCmd leaves flag parsing to the storybook config loader so that
// environment values sit between flag defaults and explicit flags.
func newConfigCmd(use, short string, run func(context.Context, storybookcmd.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := pflag.NewFlagSet(use, pflag.ContinueOnError)
			fs.SetOutput(cmd.OutOrStderr())
			cfg, err := storybookcmd.ParseConfig(fs, args)
			if errors.Is(err, pflag.ErrHelp) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("parse flags: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\ncommit: %s\nbuilt: %s\n", branding.HarnessName, tokens.Version, commit, date)
			return nil
		},
	}
}
