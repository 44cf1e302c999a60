package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/bcliden/floateq/internal/floateqgen"
)

var Version = "dev"

func init() {
	floateqgen.Version = Version
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("FLOATEQ")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "floateq [packages]",
		Short: "Generate approximate float comparisons for annotated types",
		Long: `floateq generates the floateq interfaces for every type annotated with
//floateq:derive in the given packages. The packages default to the current
directory. Each package gets its own floateq_gen.go.

All packages of a run are generated together, so that a field may have a
type derived in another package of the run.

Examples:
  floateq                 # Generate for the current package
  floateq ./...           # Generate for every package in the module
  floateq -b integration  # Load packages with extra build tags`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), v, args)
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", floateqgen.DefaultOutput, "output file name")
	flags.StringP("tags", "b", "", "comma-separated build tags")
	flags.BoolP("tests", "t", false, "include tests")
	flags.StringP("color", "c", "auto", "colorize (auto|always|never)")
	flags.BoolP("verbose", "v", false, "log progress to stderr")
	flags.String("config", "", "config file (toml, yaml or json)")
	_ = v.BindPFlags(flags)

	return cmd
}

func run(ctx context.Context, v *viper.Viper, args []string) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
	}

	color, err := useColor(v.GetString("color"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	var cfg floateqgen.Config
	if err := v.Unmarshal(&cfg); err != nil {
		err = errors.Wrap(err, "invalid configuration")
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	cfg.Dir = wd
	cfg.Env = os.Environ()
	if len(args) != 0 {
		cfg.Patterns = args
	}

	log := zap.NewNop()
	if v.GetBool("verbose") {
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
	}
	defer func() { _ = log.Sync() }()
	cfg.Logger = log

	outs, err := floateqgen.Main(ctx, cfg)
	if err != nil {
		message := floateqgen.Describe(err)
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		return err
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
	return nil
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return isatty(), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, errors.Newf("invalid --color value: %s", mode)
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stderr.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	reTab  = regexp.MustCompile(`(?m)^\t.+`)
	rePos  = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)
	reHelp = regexp.MustCompile(`^\thelp:`)
)

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		bold  = "\033[1m"
		dim   = "\033[2m"
		cyan  = "\033[36m"
		reset = "\033[0m"
	)
	m := []byte(message)
	m = rePos.ReplaceAllFunc(m, func(b []byte) []byte {
		return []byte(bold + string(b) + reset)
	})
	m = reTab.ReplaceAllFunc(m, func(b []byte) []byte {
		if reHelp.Match(b) {
			return []byte(cyan + string(b) + reset)
		}
		return []byte(dim + string(b) + reset)
	})
	return string(m)
}
