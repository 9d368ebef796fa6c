package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alani-lang/alani"
	"github.com/alani-lang/alani/internal"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Compile sources and report errors only",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		config, err := alani.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		color.NoColor = color.NoColor || config.NoColor

		engine := internal.NewEngine(logger, config.Extensions)
		results, err := engine.ProcessPaths(ctx, args)
		if err != nil {
			logger.Error("Error processing paths", zap.Error(err))
			os.Exit(1)
		}

		if printResults(results, false, false) {
			os.Exit(1)
		}
	},
}
