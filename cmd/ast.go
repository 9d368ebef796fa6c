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

var astJSONOutput bool

var astCmd = &cobra.Command{
	Use:   "ast [paths...]",
	Short: "Compile sources and print their ASTs",
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

		useJSON := astJSONOutput || config.Format == "json"
		failed := printResults(results, useJSON, true)
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	astCmd.Flags().BoolVar(&astJSONOutput, "json", false, "Output ASTs in JSON format")
}

// printResults renders compile outcomes and reports whether any file
// failed to compile.
func printResults(results []internal.Result, useJSON, withTrees bool) bool {
	failed := false
	if useJSON {
		for _, result := range results {
			if result.Err != nil {
				failed = true
				fmt.Fprintf(os.Stderr, "error: %s: %v\n", result.Filename, result.Err)
				continue
			}
			data, err := internal.MarshalAST(result.AST)
			if err != nil {
				logger.Error("Failed to marshal AST", zap.String("file", result.Filename), zap.Error(err))
				failed = true
				continue
			}
			fmt.Printf("%s:\n%s\n", result.Filename, data)
		}
		return failed
	}

	fmt.Print(internal.FormatResults(results, withTrees))
	for _, result := range results {
		if result.Err != nil {
			failed = true
		}
	}
	return failed
}
