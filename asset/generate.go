package asset

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/puzzle-sfx/audio"
	"github.com/lixenwraith/puzzle-sfx/constant"
	"github.com/lixenwraith/puzzle-sfx/manifest"
	"github.com/lixenwraith/puzzle-sfx/status"
)

// Metric keys
const (
	MetricAssets  = "assets.written"
	MetricFrames  = "frames.written"
	MetricSeconds = "audio.seconds"
	MetricLast    = "asset.last"
)

// Result describes one written asset
type Result struct {
	Name    string
	Path    string
	Frames  int
	Elapsed time.Duration
}

// Summary is the run totals read back from the metrics registry
type Summary struct {
	OutputDir string
	Assets    int
	Frames    int
	Seconds   float64
	Last      string
}

// Generator renders a configured asset list to disk
type Generator struct {
	cfg      *Config
	seed     int64
	reporter *reporter
	metrics  *status.Registry

	// Cached metric pointers
	assets  *atomic.Int64
	frames  *atomic.Int64
	seconds *status.AtomicFloat
	last    *status.AtomicString
}

// NewGenerator creates a generator writing status lines to out
// A zero seed is replaced by one drawn from the clock
func NewGenerator(cfg *Config, out io.Writer) *Generator {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	metrics := status.NewRegistry()
	return &Generator{
		cfg:      cfg,
		seed:     seed,
		reporter: newReporter(out),
		metrics:  metrics,
		assets:   metrics.Ints.Get(MetricAssets),
		frames:   metrics.Ints.Get(MetricFrames),
		seconds:  metrics.Floats.Get(MetricSeconds),
		last:     metrics.Strings.Get(MetricLast),
	}
}

// Seed returns the effective noise seed of the run
func (g *Generator) Seed() int64 { return g.seed }

// Metrics returns the run metrics registry
func (g *Generator) Metrics() *status.Registry { return g.metrics }

// Summary returns the totals written so far
func (g *Generator) Summary() Summary {
	return Summary{
		OutputDir: g.cfg.OutputDir,
		Assets:    int(g.assets.Load()),
		Frames:    int(g.frames.Load()),
		Seconds:   g.seconds.Get(),
		Last:      g.last.Load(),
	}
}

// LogSummary writes the run totals and every registered metric to the debug log
func (g *Generator) LogSummary() {
	s := g.Summary()
	log.Printf("%d assets, %d frames, %.2fs of audio in %s", s.Assets, s.Frames, s.Seconds, s.OutputDir)

	log.Printf("%d run metrics", g.metrics.TotalCount())
	g.metrics.Ints.Range(func(key string, v *atomic.Int64) {
		log.Printf("  %s = %d", key, v.Load())
	})
	g.metrics.Floats.Range(func(key string, v *status.AtomicFloat) {
		log.Printf("  %s = %.3f", key, v.Get())
	})
	g.metrics.Strings.Range(func(key string, v *status.AtomicString) {
		log.Printf("  %s = %s", key, v.Load())
	})
}

// Run validates the asset list, ensures the output directory exists, then
// renders and writes every asset. The first failure stops remaining work;
// files already written stay on disk. Results are in list order
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	if err := manifest.Validate(g.cfg.Assets); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.cfg.OutputDir, constant.OutputDirMode); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", g.cfg.OutputDir, err)
	}

	jobs := g.cfg.Jobs
	if jobs < 1 {
		jobs = 1
	}
	log.Printf("generating %d assets into %s (seed %d, jobs %d)", len(g.cfg.Assets), g.cfg.OutputDir, g.seed, jobs)

	results := make([]Result, len(g.cfg.Assets))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)

	for i, desc := range g.cfg.Assets {
		if egCtx.Err() != nil {
			break
		}
		i, desc := i, desc
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := g.writeAsset(i, desc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// Canceled before every asset was scheduled
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// writeAsset renders one descriptor with its own noise source and writes it
func (g *Generator) writeAsset(index int, desc manifest.Descriptor) (Result, error) {
	start := time.Now()

	var rng *rand.Rand
	if desc.Noisy() {
		// Per-asset source keeps output independent of scheduling order
		rng = rand.New(rand.NewSource(g.seed + int64(index)))
	}

	stream, err := desc.Build(rng)
	if err != nil {
		return Result{}, err
	}

	path := filepath.Join(g.cfg.OutputDir, desc.Name)
	frames, err := audio.WriteFile(path, stream)
	if err != nil {
		return Result{}, err
	}

	elapsed := time.Since(start)
	g.assets.Add(1)
	g.frames.Add(int64(frames))
	g.seconds.Add(float64(frames) / float64(constant.AudioSampleRate))
	g.last.Store(desc.Name)

	log.Printf("wrote %s: %d frames in %v", path, frames, elapsed)
	g.reporter.wrote(desc.Name)

	return Result{Name: desc.Name, Path: path, Frames: frames, Elapsed: elapsed}, nil
}

// Run renders cfg with a fresh Generator
func Run(ctx context.Context, cfg *Config, out io.Writer) ([]Result, error) {
	return NewGenerator(cfg, out).Run(ctx)
}
