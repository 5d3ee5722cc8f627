// Command takeout-reorg reorganizes an extracted Google Photos Takeout
// export into a deduplicated, album-aware photo library. It is the thin
// CLI entry point over internal/pipeline, generalized from the teacher's
// main.go: flag parsing, persisted-default loading, the --setup wizard,
// TUI/plain-CLI dispatch, and exit-code mapping all live here, exactly as
// the teacher keeps orchestration glue out of its core packages.
package main

import (
	"errors"
	"fmt"
	"os"

	"takeout-reorg/internal/config"
	"takeout-reorg/internal/pipeline"
	"takeout-reorg/internal/progresscli"
	"takeout-reorg/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 && args[0] == "--setup" {
		if _, err := config.RunSetupWizard(os.Stdin, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "setup failed:", err)
			return config.ExitGenericFailure
		}
		return config.ExitOK
	}

	cfg, err := config.ParseFlags(args)
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, "error:", cfgErr.Error())
			return config.ExitMissingArg
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return config.ExitCLIParseError
	}

	if defaults, derr := config.LoadDefaults(); derr == nil {
		defaults.Apply(cfg)
	}
	if verr := cfg.Validate(); verr != nil {
		fmt.Fprintln(os.Stderr, "error:", verr)
		return config.ExitMissingArg
	}

	var result *pipeline.Result
	var runErr error
	if cfg.NoTUI {
		result, runErr = pipeline.Run(cfg, progresscli.New())
	} else {
		result, runErr = tui.Run(cfg)
	}

	if runErr != nil {
		var pipeErr *pipeline.Error
		if errors.As(runErr, &pipeErr) {
			fmt.Fprintln(os.Stderr, "error:", pipeErr.Error())
			if pipeErr.Kind == pipeline.KindInput && pipeErr.Stage == "discovery" {
				return config.ExitNoMediaFound
			}
			if pipeErr.Kind == pipeline.KindInput {
				return config.ExitInputMissing
			}
			return config.ExitGenericFailure
		}
		fmt.Fprintln(os.Stderr, "error:", runErr)
		return config.ExitGenericFailure
	}

	if result == nil {
		return config.ExitGenericFailure
	}

	pipeline.WriteSummary(result, cfg.OutputPath)
	if cfg.NoTUI {
		pipeline.PrintSummary(result)
	}

	if !result.Success {
		return config.ExitGenericFailure
	}
	return config.ExitOK
}
