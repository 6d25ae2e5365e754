// Command sfxgen renders the puzzle game's sound effects and music loops to
// mono 16-bit WAV files.
//
//	go run ./cmd/sfxgen            # writes ./Audio/*.wav
//	go run ./cmd/sfxgen -list      # prints the asset manifest as YAML
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/puzzle-sfx/asset"
	"github.com/lixenwraith/puzzle-sfx/manifest"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "sfxgen: %v\n", err)
		os.Exit(1)
	}
}

// run parses args over the environment config and generates every asset
func run(args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("sfxgen", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	outDir := flagSet.String("out", "", "output directory (overrides $"+asset.EnvOutputDir+", default Audio)")
	seed := flagSet.Int64("seed", 0, "noise seed, 0 seeds from the clock (overrides $"+asset.EnvSeed+")")
	jobs := flagSet.Int("jobs", 0, "assets written concurrently (overrides $"+asset.EnvJobs+", default 1)")
	list := flagSet.Bool("list", false, "print the asset manifest as YAML and exit")
	debug := flagSet.Bool("debug", false, "write a debug log to logs/"+logFileName)

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	cfg := asset.LoadConfig()

	// Only explicitly set flags override the environment
	var flagErr error
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutputDir = *outDir
		case "seed":
			cfg.Seed = *seed
		case "jobs":
			if *jobs < 1 {
				flagErr = fmt.Errorf("-jobs must be at least 1, got %d", *jobs)
			}
			cfg.Jobs = *jobs
		}
	})
	if flagErr != nil {
		return flagErr
	}

	if *list {
		return manifest.WriteYAML(stdout, cfg.Assets)
	}

	g := asset.NewGenerator(cfg, stdout)
	if _, err := g.Run(context.Background()); err != nil {
		return err
	}
	g.LogSummary()
	return nil
}
