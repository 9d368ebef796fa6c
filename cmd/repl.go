package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alani-lang/alani"
	"github.com/alani-lang/alani/ast"
	"github.com/alani-lang/alani/internal"
)

const historyFile = ".alani_history"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively compile patterns and inspect their ASTs",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := alani.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		color.NoColor = color.NoColor || config.NoColor

		runRepl()
	},
}

func runRepl() {
	fmt.Println("alani repl - enter a pattern, :quit to exit")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("alani> ")
		if err != nil {
			// liner returns an error on Ctrl+C and Ctrl+D alike
			fmt.Println()
			return
		}

		input := strings.TrimSpace(line)
		if input == ":quit" || input == ":q" {
			return
		}
		if input == "" {
			continue
		}
		ln.AppendHistory(line)

		tree, err := ast.ToAST(input)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		fmt.Println(internal.FormatAST(tree))
	}
}
