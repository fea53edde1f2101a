package cmd

import (
	"fmt"

	"github.com/NikolasTh90/healthwatcher/pkg/cli"
	"github.com/spf13/cobra"
)

var apiAddress string

func init() {
	statusCmd.Flags().StringVar(&apiAddress, "api-address", "http://127.0.0.1:9102", "address of the running watcher's status API")
	statusCmd.Flags().BoolP("json", "j", false, "print the raw status JSON")
	statusCmd.Flags().BoolP("follow", "f", false, "stream iteration results as they finish")

	rootCmd.AddCommand(&statusCmd)
}

var statusCmd = cobra.Command{
	Use:   "status",
	Short: "Show the latest iteration of a running watcher",
	Long:  "This command queries the status API of a running watcher daemon and renders the most recent iteration.\n\nUse --follow to keep streaming results as iterations finish.",

	RunE: func(cmd *cobra.Command, args []string) error {
		apiClient := cli.NewAPIClient(apiAddress)

		if follow, _ := cmd.Flags().GetBool("follow"); follow {
			if err := apiClient.Events().Print(); err != nil {
				return fmt.Errorf("failed to stream watcher events: %w", err)
			}
			return nil
		}

		if printJSON, _ := cmd.Flags().GetBool("json"); printJSON {
			resp := apiClient.StatusRaw()
			if resp.Err() != nil {
				return fmt.Errorf("failed to get watcher status: %w", resp.Err())
			}
			return resp.Print()
		}

		resp := apiClient.Status()
		if resp.Err() != nil {
			return fmt.Errorf("failed to get watcher status: %w", resp.Err())
		}

		fmt.Println(renderSnapshot(resp.Body))
		return nil
	},
}
