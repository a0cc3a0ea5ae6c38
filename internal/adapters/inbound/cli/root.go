// Package cli wires the cobra command tree. The root command itself runs
// the checker, so `designcheck` with no arguments checks the current
// directory.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/designcheck/designcheck/internal/adapters/outbound/discovery"
	"github.com/designcheck/designcheck/internal/adapters/outbound/gitinfo"
	"github.com/designcheck/designcheck/internal/adapters/outbound/tui"
	"github.com/designcheck/designcheck/internal/application"
	"github.com/designcheck/designcheck/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		quiet            bool
		root             string
		validateRegistry bool
	)

	cmd := &cobra.Command{
		Use:   "designcheck [files...]",
		Short: "Design system checker for CSS, HTML and JS",
		Long: "Designcheck scans stylesheets, markup and scripts for design-token,\n" +
			"cascade-order and architecture violations. With no file arguments it\n" +
			"walks the project root; warnings are reported but only errors fail\n" +
			"the run.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := domain.LoadRegistry()
			if err != nil {
				return fmt.Errorf("loading rule registry: %w", err)
			}
			svc := application.NewCheckService(discovery.New(), registry)

			if validateRegistry {
				return runValidateRegistry(cmd, svc)
			}

			absRoot, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			results, err := svc.Check(absRoot, args)
			if err != nil {
				return err
			}

			hash := ""
			if gi := gitinfo.New(); gi.IsRepo(absRoot) {
				hash, _ = gi.ShortHash(absRoot)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(absRoot, hash, results, quiet))

			if errs, _ := domain.CountSeverities(results); errs > 0 {
				return domain.ErrIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only list errors; warnings stay in the summary counts")
	cmd.Flags().StringVar(&root, "root", ".", "Project root to walk when no files are given")
	cmd.Flags().BoolVar(&validateRegistry, "validate-registry", false, "Cross-check the rule registry against the scanners and exit")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

func runValidateRegistry(cmd *cobra.Command, svc *application.CheckService) error {
	mismatches := svc.ValidateRegistry()
	if len(mismatches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "registry OK (%d rules)\n", len(application.DeclaredRules()))
		return nil
	}
	for _, m := range mismatches {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", m.Rule, m.Reason)
	}
	return fmt.Errorf("registry validation failed: %d mismatch(es)", len(mismatches))
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI. The issues-found sentinel is already reported by
// the rendered output, so only unexpected errors are printed here.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, domain.ErrIssuesFound) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
