package cmd

import (
	"fmt"
	"os"

	"commerce-linker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "commerce-linker",
	Short: "Commerce Linker Service",
	Long: `Commerce Linker generates synthetic website traffic and customer account
datasets and links anonymous sessions to known accounts.
It can run as a CLI or serve the segment, dataset and matching API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		l, logErr := logger.NewConsole()
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
