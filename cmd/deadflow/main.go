package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arxeiss/deadflow/analysis"
	"github.com/arxeiss/deadflow/config"
	"github.com/arxeiss/deadflow/console"

	_ "embed"
)

var (
	//go:embed doc.go
	doc string

	debugFlag   bool
	jsonFlag    bool
	watchFlag   bool
	noColorFlag bool
	configFlag  string
)

var rootCmd = &cobra.Command{
	Use:           "deadflow [path]",
	Short:         "Report unused Flow type declarations and type-only imports",
	Long:          usage(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "enable debug output")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "output JSON records")
	rootCmd.Flags().BoolVar(&watchFlag, "watch", false, "lint again whenever a candidate file changes")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "path to a YAML config file (default: <path>/"+config.FileName+")")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))

		exitCode := 1
		os.Exit(exitCode)
	}
}

func run(cmd *cobra.Command, args []string) error {
	root, err := rootPath(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	runner := analysis.New(os.Stdout, os.Stderr, root)
	runner.Config = cfg
	runner.DebugFlag = debugFlag
	runner.JSONFlag = jsonFlag
	runner.ColorFlag = !noColorFlag && !jsonFlag && console.IsTerminal(os.Stdout)
	runner.ProgressFlag = !jsonFlag && !debugFlag && !watchFlag

	if watchFlag {
		return runner.Watch(cmd.Context())
	}
	return runner.Run(cmd.Context())
}

// rootPath returns the scanned directory, the working directory by default.
// The default is absolute so reported paths are too.
func rootPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

func loadConfig(root string) (*config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}
	return config.LoadFromRoot(root)
}

func usage() string {
	// Extract the content of the /* ... */ comment in doc.go.
	_, after, _ := strings.Cut(doc, "/*\n")
	doc, _, _ := strings.Cut(after, "*/")
	return doc
}
