// internal/config/config.go
//
// Runtime configuration for the helper.
// Sources, lowest precedence first:
//   - .env in the working directory (optional, via godotenv).
//   - Environment variables.
//   - Command-line flags and positional arguments.
//
// Environment variables:
//   WORDS_DICTIONARY_FILE  dictionary used when the positional path is "-"
//   WORDS_ANSWERS_FILE     answers used when the positional path is "-"
//   SOLVER_STRATEGY        rotation | score | letters
//   LOG_LEVEL              zerolog level (debug, info, ...)
//   PORT                   HTTP port for serve mode
//   RESULTS_DB             sqlite file for simulated runs
//   JWT_SECRET             when set, the HTTP API requires a bearer token

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

// Modes accepted as the last positional argument.
const (
	ModeAutomated   = "a"
	ModeInteractive = "i"
	ModeServe       = "serve"
)

const usageLine = "usage: wordlehelper [flags] <dictionary> <answers> <day> <mode>"

var (
	// ErrUsage is returned when positional arguments are missing.
	ErrUsage = errors.New("config: " + usageLine)
	// ErrInvalidMode is returned for an unknown mode.
	ErrInvalidMode = errors.New("config: invalid mode")
)

// Config is the resolved runtime configuration.
type Config struct {
	DictionaryFile string // "" selects the embedded list
	AnswersFile    string // "" selects the embedded list
	Day            string // unparsed; see daily.ParseDay
	Mode           string

	Strategy  string
	LogLevel  string
	Debug     bool
	Addr      string
	ResultsDB string
	Report    string
	JWTSecret string
}

// Load reads .env (if present) and the environment, then parses args
// (without the program name).
func Load(args []string) (Config, error) {
	_ = godotenv.Load()
	return Parse(args, os.Stderr)
}

// Parse resolves configuration from the current environment and args.
// Usage output for -h goes to usage.
func Parse(args []string, usage io.Writer) (Config, error) {
	cfg := Config{
		Strategy:  getEnv("SOLVER_STRATEGY", "rotation"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Addr:      ":" + getEnv("PORT", "5175"),
		ResultsDB: os.Getenv("RESULTS_DB"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	fs := flag.NewFlagSet("wordlehelper", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "guess selection: rotation, score or letters")
	fs.BoolVar(&cfg.Debug, "debug", false, "log every suggestion (overrides LOG_LEVEL)")
	fs.StringVar(&cfg.ResultsDB, "db", cfg.ResultsDB, "sqlite file recording simulated runs")
	fs.StringVar(&cfg.Report, "report", "", "write a YAML summary of automated runs to this file")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address in serve mode")
	fs.Usage = func() {
		fmt.Fprintln(usage, usageLine)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	rest := fs.Args()
	if len(rest) != 4 {
		return cfg, fmt.Errorf("%w (got %d arguments)", ErrUsage, len(rest))
	}
	cfg.DictionaryFile = pathOrEnv(rest[0], "WORDS_DICTIONARY_FILE")
	cfg.AnswersFile = pathOrEnv(rest[1], "WORDS_ANSWERS_FILE")
	cfg.Day = rest[2]
	cfg.Mode = rest[3]

	switch cfg.Mode {
	case ModeAutomated, ModeInteractive, ModeServe:
	default:
		return cfg, fmt.Errorf("%w: %q, use a, i or serve", ErrInvalidMode, cfg.Mode)
	}
	if cfg.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// pathOrEnv maps "-" or "" to the environment variable k, which may itself
// be empty to select the embedded list.
func pathOrEnv(p, k string) string {
	if p == "" || p == "-" {
		return os.Getenv(k)
	}
	return p
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
