package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show remote reasoning availability and catalog size",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if answerService == nil {
			return errors.New("answer service not configured")
		}
		cmd.Println(answerService.Status(cmd.Context()))
		if configStore != nil {
			cmd.Printf("Config: %s\n", configStore.Path())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
