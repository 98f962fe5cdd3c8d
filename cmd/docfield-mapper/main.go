// Package main provides the CLI entrypoint for docfield-mapper.
//
// docfield-mapper reads a document (PDF, DOCX, ODT, image or plain text)
// and a schema (CSV, XLSX or SQLite) and finds the value of every schema
// column in the document text:
//   - map: resolve one document and print or save the assignments
//   - extract: show the label/value pairs mined from a document
//   - explain: show the ranked candidates behind each assignment
//   - batch: resolve many documents against one schema
//   - run: execute a YAML job file
//   - serve: expose the resolver as MCP tools over stdio
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docfield-mapper/internal/logger"
)

const appName = "docfield-mapper"

var (
	Version     = "0.1.0"
	CommitSha   = "unknown"
	FullVersion = Version + "-" + CommitSha
)

var (
	appDir            = filepath.Join(xdg.StateHome, appName)
	defaultConfigPath = filepath.Join(xdg.ConfigHome, appName, "config.toml")
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	noColor    bool

	config    *Config
	logCloser io.Closer
}

func (a *app) setup(cmd *cobra.Command) error {
	config, err := LoadConfigFromFile(a.configPath)
	if err != nil {
		return err
	}

	a.config = config

	if a.logLevel != "" {
		config.Log.Level = a.logLevel
	}

	logPath := config.Log.File
	if logPath == "" {
		logPath = filepath.Join(appDir, appName+".log")
	}

	a.logCloser, err = logger.InitLogger(logPath, config.Log.Level)
	if err != nil {
		return err
	}

	if a.noColor || !config.Core.Color {
		color.NoColor = true
	}

	slog.Debug("starting", "command", cmd.CommandPath(), "version", FullVersion, "config", a.configPath)

	return nil
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Find the values of expected fields in document text",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Map the columns of a CSV/XLSX/SQLite schema to values found in a document. %s",
			color.New(color.FgBlue).Sprintf("(%s)", FullVersion),
		),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath, "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newMapCmd(a),
		newExtractCmd(a),
		newExplainCmd(a),
		newBatchCmd(a),
		newRunCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)

	a.close()
	stop()

	if err != nil {
		slog.Error("Error executing command", "error", err)
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}
