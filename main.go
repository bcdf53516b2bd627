package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.creack.net/gocalc/config"
	"go.creack.net/gocalc/executor"
)

// errEvaluationFailed is returned once the failure has been reported.
var errEvaluationFailed = errors.New("evaluation failed")

var (
	configFile string
	angleMode  executor.AngleMode
	degrees    bool
	groupFlag  bool
	showAST    bool
	verbose    bool
	colorMode  string
)

var rootCmd = &cobra.Command{
	Use:   "gocalc [expression...]",
	Short: "Scientific calculator",
	Long: `gocalc evaluates arithmetic expressions.

Operators: + - * / % ^ ! and parentheses.
Functions: sin cos tan sqrt log ln inv. Constants: pi e.

With arguments, the joined arguments are evaluated once. Use -- before an
expression starting with '-'. Without arguments, expressions are read line
by line from stdin; ':deg' and ':rad' switch the angle mode, ':q' quits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errEvaluationFailed) {
			os.Exit(1)
		}
		log.Fatalf("Error: %v", err)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "Configuration file (YAML)")
	rootCmd.Flags().Var(&angleMode, "angle", "Angle mode for trigonometric functions (deg, rad)")
	rootCmd.Flags().BoolVarP(&degrees, "deg", "d", false, "Shorthand for --angle=deg")
	rootCmd.Flags().BoolVarP(&groupFlag, "group", "g", false, "Group digits in results (1,234.5)")
	rootCmd.Flags().BoolVar(&showAST, "ast", false, "Print the parsed expression tree")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log tokens and trees to stderr")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "Color output (auto, always, never)")
}

// loadSettings merges the config file and the command line flags.
func loadSettings(cmd *cobra.Command) (config.Config, executor.AngleMode, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return cfg, 0, err
	}
	flags := cmd.Flags()
	if flags.Changed("angle") {
		cfg.AngleMode = angleMode.String()
	}
	if degrees {
		cfg.AngleMode = executor.Degrees.String()
	}
	if flags.Changed("group") {
		cfg.GroupDigits = groupFlag
	}
	if flags.Changed("color") {
		cfg.Color = colorMode
	}
	if err := cfg.Validate(); err != nil {
		return cfg, 0, err
	}
	mode, err := cfg.Mode()
	return cfg, mode, err
}

func run(cmd *cobra.Command, args []string) error {
	cfg, mode, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	switch cfg.Color {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}

	s := &session{
		mode:    mode,
		group:   cfg.GroupDigits,
		showAST: showAST,
		verbose: verbose,
		prompt:  cfg.Prompt,
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
	}

	if len(args) > 0 {
		if !s.eval(strings.Join(args, " ")) {
			return errEvaluationFailed
		}
		return nil
	}

	interactive := false
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return s.repl(cmd.InOrStdin(), interactive)
}
