// Command raytracer renders a registered scene progressively, writing the
// accumulated image to disk after every pass until the pass or sample
// budget is reached. Modeled on the teacher's main.go flag/render/save loop.
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ravelin-labs/pathtracer/internal/config"
	"github.com/ravelin-labs/pathtracer/internal/rtlog"
	"github.com/ravelin-labs/pathtracer/pkg/integrator"
	"github.com/ravelin-labs/pathtracer/pkg/renderer"
	"github.com/ravelin-labs/pathtracer/pkg/scene"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "argument error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Help {
		showHelp()
		return
	}

	logger, err := rtlog.New(cfg.LogLevel)
	if err != nil {
		logger = rtlog.NewDefault()
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Printf("render failed: %v", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Progressive path tracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -scene string        Scene name (default or cornell)")
	fmt.Println("  -width int           Output image width")
	fmt.Println("  -aspect-x/-aspect-y  Aspect ratio numerator/denominator")
	fmt.Println("  -samples int         Target samples per pixel")
	fmt.Println("  -max-depth int       Maximum path recursion depth")
	fmt.Println("  -max-passes int      Maximum progressive passes")
	fmt.Println("  -workers int         Worker goroutines (0 = auto-detect)")
	fmt.Println("  -log-level string    debug, info, warn, error")
	fmt.Println("  -output string       Output directory")
	fmt.Println("  -config string       YAML file overriding the defaults above")
	fmt.Println()
	fmt.Println("Registered scenes:")
	for name := range scene.Registry {
		fmt.Printf("  %s\n", name)
	}
}

func run(cfg config.Config, logger *rtlog.ZapLogger) error {
	generate, ok := scene.Registry[cfg.SceneType]
	if !ok {
		return fmt.Errorf("unknown scene %q", cfg.SceneType)
	}

	rnd := rand.New(rand.NewSource(1))
	input := scene.Input{
		Width:           cfg.Width,
		AspectRatio:     cfg.AspectRatio(),
		SamplesPerPixel: cfg.Samples,
		MaxDepth:        cfg.MaxDepth,
	}

	logger.Printf("building scene %q", cfg.SceneType)
	world, cam, sampling := generate(0, 0, input, rnd)

	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = sampling.MaxDepth
	}
	targetSamples := cfg.Samples
	if targetSamples <= 0 {
		targetSamples = sampling.SamplesPerPixel
	}

	acc := renderer.NewAccumulator(cam.ImageWidth(), cam.ImageHeight())
	pool := renderer.NewWorkerPool(cam, acc, cfg.NumWorkers)
	defer pool.Close()

	logger.Printf("pre-render pass: computing albedo/normal auxiliaries")
	pool.PreRenderPass(integrator.AlbedoNormalFuncFor(world))

	outputDir := filepath.Join(cfg.OutputDir, cfg.SceneType)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	trace := integrator.Run(world, maxDepth)
	framesPerPass := 1
	passes := cfg.MaxPasses
	if passes <= 0 {
		passes = 1
	}

	startTime := time.Now()
	for pass := 1; pass <= passes; pass++ {
		ctx, cancel := context.WithCancel(context.Background())
		if acc.SampleCount() >= uint32(targetSamples) {
			cancel()
			break
		}

		pool.RunPasses(ctx, trace, framesPerPass)
		cancel()

		snap := acc.TakeSnapshot()
		filename := filepath.Join(outputDir, fmt.Sprintf("render_pass_%03d.png", pass))
		if err := writePNG(filename, snap, renderer.DisplayRadiance); err != nil {
			return fmt.Errorf("writing pass %d: %w", pass, err)
		}
		logger.Printf("pass %d/%d done, %d samples/pixel, %v elapsed", pass, passes, snap.SampleCount, time.Since(startTime))

		if snap.SampleCount >= uint32(targetSamples) {
			break
		}
	}

	finalSnap := acc.TakeSnapshot()
	finalPath := filepath.Join(outputDir, "render_final.png")
	if err := writePNG(finalPath, finalSnap, renderer.DisplayRadiance); err != nil {
		return fmt.Errorf("writing final image: %w", err)
	}
	logger.Printf("render complete in %v, saved to %s", time.Since(startTime), finalPath)
	return nil
}

func writePNG(path string, snap renderer.Snapshot, mode renderer.DisplayMode) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := renderer.WritePNG(w, snap, mode); err != nil {
		return err
	}
	return w.Flush()
}
