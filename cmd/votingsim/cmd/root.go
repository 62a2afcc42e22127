package cmd

import (
	"fmt"
	"os"

	logging "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultLogLevel logging.Lvl = logging.LvlInfo

var (
	flagLogLevel string = getENVValue("VOTINGSIM_LOG_LEVEL", defaultLogLevel.String())
	flagVerbose  bool   = getENVValue("VOTINGSIM_VERBOSE", "0") == "1"

	log logging.Logger = logging.New("module", "main")
)

var rootCmd = &cobra.Command{
	Use:           "votingsim",
	Short:         "run voting ledger scenarios against a simulated chain",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return setLogging(c)
	},
	Run: func(c *cobra.Command, args []string) {
		if len(args) < 1 {
			c.Usage()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", flagLogLevel, "log level, {crit, error, warn, info, debug}")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", flagVerbose, "print every call result")
}

func getENVValue(key, defaultValue string) (v string) {
	var found bool
	if v, found = os.LookupEnv(key); !found {
		return defaultValue
	}
	return
}

func setLogging(c *cobra.Command) error {
	lvl, err := logging.LvlFromString(flagLogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid '--log-level'")
	}
	handler := logging.StreamHandler(c.ErrOrStderr(), logging.TerminalFormat())
	log.SetHandler(logging.LvlFilterHandler(lvl, handler))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func SetArgs(s []string) {
	rootCmd.SetArgs(s)
}
