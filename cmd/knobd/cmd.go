package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "knobd",
		Short: "Rotary encoder gesture daemon",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Lookup("debug").Changed {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newStartCmd())
	rootCmd.AddCommand(newReadCmd())
	rootCmd.PersistentFlags().Bool("debug", false, "Turn on debug logging.")

	return rootCmd
}

var (
	buildTime    = "unknown"
	buildVersion = "dev"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s (built: %s)\n", buildVersion, buildTime)
		},
	}
}

func newStartCmd() *cobra.Command {
	configFile := ""
	cmd := cobra.Command{
		Use:   "start",
		Short: "Starts the gesture daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return startDaemon(configFile)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", defaultConfigFile, "Configuration file to use.")

	return &cmd
}

func newReadCmd() *cobra.Command {
	configFile := ""
	cmd := cobra.Command{
		Use:   "read",
		Short: "Samples the encoder lines once and prints their levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return readOnce(configFile)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", defaultConfigFile, "Configuration file to use.")

	return &cmd
}
