package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alani-lang/alani"
	"github.com/alani-lang/alani/internal"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Recompile sources whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		config, err := alani.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		color.NoColor = color.NoColor || config.NoColor

		engine := internal.NewEngine(logger, config.Extensions)
		err = engine.StartWatching(args, func(result internal.Result) {
			fmt.Print(internal.FormatResults([]internal.Result{result}, result.Err == nil))
		})
		if err != nil {
			logger.Error("Failed to start watching", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := engine.StopWatching(); err != nil {
				logger.Error("Failed to stop watching", zap.Error(err))
			}
		}()

		fmt.Println("watching for changes, press Ctrl+C to stop")

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
	},
}
