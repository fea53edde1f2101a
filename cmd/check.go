package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(check)
}

var check = &cobra.Command{
	Use:   "check",
	Short: "Run a single iteration over all targets and exit",
	Long:  "This sub-command probes every configured target exactly once and exits with code 0 only when all of them are healthy, which makes it usable as a container healthcheck",
	Run: func(cmd *cobra.Command, args []string) {
		w := watcherFromConfigDir()

		snapshot := w.RunIteration()
		if !snapshot.Healthy {
			os.Exit(1)
		}
	},
}
