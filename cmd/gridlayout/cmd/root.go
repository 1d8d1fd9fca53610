// Package cmd implements the gridlayout CLI commands.
//
// A root command dispatches to subcommands (render, inspect, snapshot).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-drift/displaylayout/internal/config"
	"github.com/go-drift/displaylayout/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "gridlayout",
	Short: "gridlayout - grid layouts for small pixel displays",
	Long: `gridlayout places widgets into the cells of a fixed-size grid and
draws the result the way an embedded display would show it.

Use "gridlayout <command> --help" for more information about a command.`,
	Usage: "gridlayout [--debug] <command> [flags]",
}

// Commands registered with the CLI, in registration order.
var (
	commands    = make(map[string]*Command)
	commandList []*Command
)

// Output streams. Tests swap them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// logger is configured by Execute before a command runs.
var logger = slog.Default()

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	commandList = append(commandList, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	debug := false
	var filtered []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filtered) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filtered = append(filtered, arg)
		case "-v", "--version", "version":
			if len(filtered) == 0 {
				fmt.Fprintf(stdout, "gridlayout version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filtered = append(filtered, arg)
		case "--debug":
			debug = true
		default:
			filtered = append(filtered, arg)
		}
	}
	args = filtered

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}
	setupLogging(debug)

	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", name)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", name)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: debug})
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range commandList {
		fmt.Fprintf(stdout, "  %-10s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help      Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version   Show version information")
	fmt.Fprintln(stdout, "  --debug         Log placement and divider details to stderr")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  gridlayout render screen.yaml -o screen.png --scale 4")
	fmt.Fprintln(stdout, "  gridlayout inspect screen.yaml")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// loadScreen loads and builds the layout file at path.
func loadScreen(path string) (*config.Screen, error) {
	l, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return config.Build(l, logger)
}

// layoutPath returns the single positional layout file argument.
func layoutPath(positional []string, usage string) (string, error) {
	switch len(positional) {
	case 0:
		return "", fmt.Errorf("layout file is required\n\nUsage: %s", usage)
	case 1:
		return positional[0], nil
	default:
		return "", fmt.Errorf("unexpected arguments %v\n\nUsage: %s", positional[1:], usage)
	}
}
