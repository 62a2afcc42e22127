package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"voting_ledger/internal/scenario"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List scenarios, the built-in ones when no file is given",
	RunE: func(c *cobra.Command, args []string) error {
		scenarios, err := loadScenarios(args, len(args) == 0)
		if err != nil {
			return err
		}
		for _, s := range scenarios {
			fmt.Fprintf(c.OutOrStdout(), "%s\t%d steps\n", s.Name, len(s.Steps))
		}
		return nil
	},
}

func loadScenarios(files []string, builtin bool) ([]*scenario.Scenario, error) {
	var out []*scenario.Scenario
	if builtin {
		scenarios, err := scenario.Builtin()
		if err != nil {
			return nil, err
		}
		out = append(out, scenarios...)
	}
	for _, f := range files {
		scenarios, err := scenario.LoadFile(f)
		if err != nil {
			return nil, err
		}
		out = append(out, scenarios...)
	}
	return out, nil
}
