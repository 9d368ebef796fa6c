// Package alani exposes the Alani pattern-language compiler front end:
// source text in, typed AST out.
package alani

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alani-lang/alani/ast"
)

// Config drives the command-line tool. It is read from a .alani.yaml
// file when one exists.
type Config struct {
	Name       string   `yaml:"name"`
	Format     string   `yaml:"format"`     // "tree" or "json"
	NoColor    bool     `yaml:"no_color"`   // disable styled terminal output
	Extensions []string `yaml:"extensions"` // recognized source extensions
}

// DefaultConfigFile is the configuration file looked up when no explicit
// path is given.
const DefaultConfigFile = ".alani.yaml"

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig() *Config {
	return &Config{
		Name:       "alani",
		Format:     "tree",
		Extensions: []string{".alani"},
	}
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error; the defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	config := DefaultConfig()
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return config, nil
}

// SourceToAST compiles Alani source text into its AST.
func SourceToAST(source string) (*ast.AST, error) {
	return ast.ToAST(source)
}

// CompileFile reads and compiles a single source file.
func CompileFile(path string) (*ast.AST, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ast.ToAST(string(content))
}
