package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

// newRootCmd builds the command tree. Global flags land in opts, which every
// subcommand reads once cobra has parsed them.
func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "roster",
		Short: "Browse a randomuser.me employee directory in the terminal",
		Long: `roster fetches a batch of synthetic employee records from randomuser.me
and shows them as a searchable card gallery with a paging detail view.

Run without a subcommand to start the interactive UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "override config path (default ~/.config/roster/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (default ~/.config/roster/prefs.toml)")
	flags.IntVar(&opts.Results, "results", 0, "number of records to fetch (default from config, 12)")
	flags.StringVar(&opts.Seed, "seed", "", "randomuser seed for a repeatable batch")
	flags.BoolVar(&opts.Debug, "debug", false, "write debug-level entries to the log file")

	root.AddCommand(
		newListCmd(&opts),
		newExportCmd(&opts),
		newLogsCmd(&opts),
	)
	return root
}

func newListCmd(opts *app.Options) *cobra.Command {
	var list app.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the directory once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.List(cmd.Context(), *opts, list, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&list.Query, "query", "q", "", "only list employees whose name contains this text")
	cmd.Flags().IntVar(&list.Show, "show", 0, "also print the detail of the Nth listed employee")
	return cmd
}

func newExportCmd(opts *app.Options) *cobra.Command {
	var query, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the directory as vCards",
		Long: `Fetch the batch, apply --query, and write every matching employee as a
vCard 4.0 entry. Output goes to stdout unless --out names a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Export(cmd.Context(), *opts, query, out, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "only export employees whose name contains this text")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newLogsCmd(opts *app.Options) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the tail of roster's log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Logs(*opts, lines, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to show (0 for all)")
	return cmd
}
