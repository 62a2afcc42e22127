package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"voting_ledger/internal/scenario"
)

var flagBuiltin bool

func init() {
	runCmd.Flags().BoolVar(&flagBuiltin, "builtin", false, "also run the built-in scenarios")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Run scenario files against a fresh simulated chain each",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 && !flagBuiltin {
			return errors.New("no scenario given, pass files or --builtin")
		}
		scenarios, err := loadScenarios(args, flagBuiltin)
		if err != nil {
			return err
		}

		runner := scenario.NewRunner(log)
		out := c.OutOrStdout()
		var failed int
		for _, s := range scenarios {
			report, err := runner.Run(s)
			if err != nil {
				return errors.Wrapf(err, "scenario %q", s.Name)
			}
			if flagVerbose {
				for i, res := range report.Results {
					fmt.Fprintf(out, "  #%d success=%t ret=%q symbol=%s\n", i, res.Success, res.Ret, res.Symbol)
				}
			}
			if report.Passed() {
				fmt.Fprintf(out, "PASS\t%s\n", s.Name)
				continue
			}
			failed++
			fmt.Fprintf(out, "FAIL\t%s\n", s.Name)
			for _, f := range report.Failures {
				fmt.Fprintf(out, "\t%s\n", f)
			}
		}

		log.Debug("scenarios finished", "total", len(scenarios), "failed", failed)
		if failed > 0 {
			return errors.Errorf("%d of %d scenarios failed", failed, len(scenarios))
		}
		return nil
	},
}
