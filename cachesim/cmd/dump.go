package cmd

import (
	"github.com/sarchlab/cachesim/simulation"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the hierarchy as a Graphviz dot graph.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := loadHierarchy(cmd)
		if err != nil {
			return err
		}

		s, err := simulation.MakeBuilder().WithHierarchy(h).Build()
		if err != nil {
			return err
		}

		s.DumpHierarchy(cmd.OutOrStdout())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().String("config", "cachesim.yaml",
		"The hierarchy configuration file.")
}
