// Command envseek resolves a single value from .env, the environment or the terminal
// and prints it to standard output.
//
//	envseek [-mode all|file|system|input] [-env-file PATH] [-dotenv] [-config FILE] KEY
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/velmie/x/envseek"
	"github.com/velmie/x/envseek/internal/config"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("envseek", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.String("mode", envseek.ModeAll.String(), "sources to consult: all, file, system or input")
	fs.String("env-file", envseek.DefaultEnvFile, "path of the key-value file")
	fs.String("prompt", envseek.DefaultPrompt, "text written before reading from the terminal")
	fs.Bool("dotenv", false, "parse the key-value file with the full dotenv syntax")
	fs.String("log-level", "error", "log level: debug, info, warn or error")
	configFile := fs.String("config", "", "optional YAML, JSON or TOML configuration file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Load(fs, *configFile)
	if err != nil {
		fmt.Fprintln(stderr, "envseek:", err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	key := fs.Arg(0)
	if key == "" && cfg.Mode != envseek.ModeInput {
		fmt.Fprintln(stderr, "usage: envseek [flags] KEY")
		return exitUsage
	}

	seeker := envseek.NewSeeker(
		fileOption(cfg),
		envseek.WithInput(&envseek.InteractiveResolver{In: stdin, Out: stdout, Prompt: cfg.Prompt}),
		envseek.WithLogger(logger),
	)

	val, err := seeker.Seek(cfg.Mode, key)
	if err != nil {
		fmt.Fprintln(stderr, "envseek:", err)
		return exitFailure
	}

	fmt.Fprintln(stdout, val)
	return exitOK
}

func fileOption(cfg *config.Config) envseek.Option {
	fsys := afero.NewOsFs()
	if cfg.Dotenv {
		return envseek.WithFile(&envseek.DotenvResolver{Fs: fsys, Path: cfg.Env.File})
	}
	return envseek.WithEnvFile(fsys, cfg.Env.File)
}
