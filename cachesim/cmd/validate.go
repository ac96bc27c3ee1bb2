package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a hierarchy configuration file.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := loadHierarchy(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(),
			"Configuration is valid: %d cache level(s), memory latency %d.\n",
			len(h.Levels), h.MemoryLatency)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("config", "cachesim.yaml",
		"The hierarchy configuration file.")
}
