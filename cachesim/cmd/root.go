// Package cmd provides the command-line interface of the cache simulator.
package cmd

import (
	"log"

	"github.com/sarchlab/cachesim/config"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cachesim",
	Short: "Cachesim replays memory traces through a cache hierarchy.",
	Long: `Cachesim replays memory traces through a hierarchy of ` +
		`set-associative write-back caches and reports hit ratios, ` +
		`average memory access times and total cycles.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return config.LoadEnv()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Printf("Error: %v", err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func loadHierarchy(cmd *cobra.Command) (config.Hierarchy, error) {
	path, _ := cmd.Flags().GetString("config")
	path = config.EnvString(config.EnvConfig, path)

	if flag := cmd.Flags().Lookup("config"); flag != nil && flag.Changed {
		path = flag.Value.String()
	}

	return config.Load(path)
}
