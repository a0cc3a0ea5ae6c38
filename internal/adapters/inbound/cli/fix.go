package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/designcheck/designcheck/internal/adapters/outbound/discovery"
	"github.com/designcheck/designcheck/internal/adapters/outbound/tui"
	"github.com/designcheck/designcheck/internal/application"
	"github.com/designcheck/designcheck/internal/domain/fix"
)

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Mechanically repair specific violation classes",
		Long: "Each fix subcommand targets one rule and mirrors the checker's\n" +
			"detection logic, so it never edits code the checker would not flag.\n" +
			"Fixers are idempotent and exit 0 even when they changed files.",
	}
	for _, f := range fix.All() {
		cmd.AddCommand(newFixerCmd(f))
	}
	return cmd
}

func newFixerCmd(f fix.Fixer) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   f.Name() + " <path|file>...",
		Short: f.Summary(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewFixService(discovery.New())
			report, err := svc.Run(f, args, dryRun)
			if err != nil {
				return err
			}

			verb := application.Verb(f, dryRun)
			for _, ff := range report.Files {
				fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFixLine(verb, ff.Path, ff.Count))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderFixSummary(report.FilesChanged, report.FixesApplied))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned changes without writing")
	return cmd
}
