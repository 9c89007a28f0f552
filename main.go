package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-path-tracer/pkg/core"
	"github.com/df07/go-path-tracer/pkg/geometry"
	"github.com/df07/go-path-tracer/pkg/renderer"
	"github.com/df07/go-path-tracer/pkg/scene"
)

// cliOptions holds the parsed command line
type cliOptions struct {
	Scene       string
	Width       int
	Samples     int
	MaxDepth    int
	Workers     int
	TileSize    int
	Seed        int64
	TexturePath string
	Output      string
	Help        bool
}

// newFlagSet registers every command line flag, writing into opts
func newFlagSet(opts *cliOptions, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("path-tracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.Scene, "scene", scene.DefaultSceneName, "Scene to render (see -help for the list)")
	fs.IntVar(&opts.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.Samples, "spp", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&opts.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.IntVar(&opts.TileSize, "tile", renderer.DefaultTileSize, "Tile size in pixels")
	fs.Int64Var(&opts.Seed, "seed", 1, "Random seed for scene generation and sampling")
	fs.StringVar(&opts.TexturePath, "texture", "", "Image texture for the earth scene (default "+scene.DefaultEarthTexture+")")
	fs.StringVar(&opts.Output, "out", "", "Output file, .png or .ppm (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.Help, "help", false, "Show help information")
	return fs
}

// parseFlags parses args (without the program name) into cliOptions
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions
	fs := newFlagSet(&opts, output)

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if opts.Width < 0 || opts.Samples < 0 || opts.MaxDepth < 0 || opts.Workers < 0 || opts.TileSize < 0 {
		return opts, fmt.Errorf("numeric options must not be negative")
	}
	return opts, nil
}

// printHelp writes usage information and the scene catalog
func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: path-tracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	var opts cliOptions
	newFlagSet(&opts, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-15s %s\n", info.Name, info.Description)
	}
}

// createScene builds the requested scene and applies command line overrides
func createScene(opts cliOptions, logger core.Logger) (*scene.Scene, error) {
	s, err := scene.NewScene(opts.Scene, core.NewSeededSampler(opts.Seed), scene.Options{
		TexturePath: opts.TexturePath,
		Camera:      geometry.CameraConfig{Width: opts.Width},
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	if opts.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.Samples
	}
	if opts.MaxDepth > 0 {
		s.SamplingConfig.MaxDepth = opts.MaxDepth
	}
	return s, nil
}

// createOutputPath returns the explicit output path, or a timestamped PNG
// under output/<scene>/
func createOutputPath(sceneName, explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// run renders one image according to opts
func run(ctx context.Context, opts cliOptions, logger core.Logger) error {
	s, err := createScene(opts, logger)
	if err != nil {
		return err
	}
	logger.Printf("Scene %s: %d primitives\n", s.Name, s.GetPrimitiveCount())

	raytracer, err := renderer.NewRaytracer(s, renderer.RenderConfig{
		TileSize:   opts.TileSize,
		NumWorkers: opts.Workers,
		Seed:       opts.Seed,
	}, logger)
	if err != nil {
		return err
	}

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", s.Name, err)
	}

	filename := createOutputPath(s.Name, opts.Output, time.Now())
	if err := renderer.SaveImage(filename, img); err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%.1f samples per pixel)\n", stats.Duration, stats.AverageSamples)
	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			printHelp(os.Stdout)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if opts.Help {
		printHelp(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
