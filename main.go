package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// cliFlags holds the raw command line values; only flags the user set are applied
type cliFlags struct {
	scene     string
	width     int
	spp       int
	depth     int
	workers   int
	seed      int64
	format    string
	out       string
	thumbnail int
	upload    bool
}

func main() {
	var flags cliFlags
	flag.StringVar(&flags.scene, "scene", "", "Scene: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&flags.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&flags.spp, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&flags.depth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.IntVar(&flags.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&flags.seed, "seed", 42, "Random seed for scene generation and sampling")
	flag.StringVar(&flags.format, "format", "", "Output format: "+strings.Join(output.Formats(), ", "))
	flag.StringVar(&flags.out, "out", "", "Output root directory")
	flag.IntVar(&flags.thumbnail, "thumbnail", 0, "Also write a PNG thumbnail no larger than N pixels (0 = off)")
	flag.BoolVar(&flags.upload, "upload", false, "Upload the render to the configured S3 bucket")
	envFile := flag.String("env", ".env", "Path to a .env file with PATHTRACER_* settings")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
	cfg = applyFlags(cfg, flags, setFlags)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if err := run(context.Background(), cfg, renderer.NewDefaultLogger(), time.Now()); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}

func printHelp() {
	fmt.Println("Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Settings are read from the .env file and PATHTRACER_* variables; flags override both.")
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// applyFlags overrides cfg with every flag named in set
func applyFlags(cfg config.Config, flags cliFlags, set map[string]bool) config.Config {
	if set["scene"] {
		cfg.Scene = flags.scene
	}
	if set["width"] {
		cfg.Width = flags.width
	}
	if set["spp"] {
		cfg.SamplesPerPixel = flags.spp
	}
	if set["depth"] {
		cfg.MaxDepth = flags.depth
	}
	if set["workers"] {
		cfg.Workers = flags.workers
	}
	if set["seed"] {
		cfg.Seed = flags.seed
	}
	if set["format"] {
		cfg.Format = flags.format
	}
	if set["out"] {
		cfg.OutputDir = flags.out
	}
	if set["thumbnail"] {
		cfg.Thumbnail = flags.thumbnail
	}
	if set["upload"] {
		cfg.Upload = flags.upload
	}
	return cfg
}

// createScene builds the configured scene with the configured width applied to its camera
func createScene(cfg config.Config) (*scene.Scene, error) {
	return scene.CreateScene(cfg.Scene, cfg.Seed, geometry.CameraConfig{Width: cfg.Width})
}

// renderConfig combines the scene's recommended sampling with explicit settings
func renderConfig(s *scene.Scene, cfg config.Config) renderer.Config {
	width, height := s.ImageSize()

	rc := renderer.DefaultConfig()
	rc.Width, rc.Height = width, height
	rc.NumWorkers = cfg.Workers
	rc.Seed = cfg.Seed
	if s.SamplingConfig.SamplesPerPixel > 0 {
		rc.SamplesPerPixel = s.SamplingConfig.SamplesPerPixel
	}
	if s.SamplingConfig.MaxDepth > 0 {
		rc.MaxDepth = s.SamplingConfig.MaxDepth
	}
	if cfg.SamplesPerPixel > 0 {
		rc.SamplesPerPixel = cfg.SamplesPerPixel
	}
	if cfg.MaxDepth > 0 {
		rc.MaxDepth = cfg.MaxDepth
	}
	return rc
}

// outputPath returns <dir>/<scene>/render_<timestamp>.<ext>
func outputPath(dir, sceneName, suffix, ext string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join(dir, sceneName, fmt.Sprintf("render_%s%s.%s", timestamp, suffix, ext))
}

// run renders the configured scene and writes, and optionally uploads, the results
func run(ctx context.Context, cfg config.Config, logger core.Logger, now time.Time) error {
	s, err := createScene(cfg)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d objects)...\n", cfg.Scene, s.GetPrimitiveCount())

	raytracer := renderer.NewRaytracer(s.World, s.NewCamera(), renderConfig(s, cfg), logger)
	frame, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render interrupted: %w", err)
	}
	logger.Printf("Samples per pixel: %.1f, average luminance %.3f\n",
		stats.AverageSamples, renderer.CalculateAverageLuminance(frame))

	data, err := output.EncodeBytes(frame, cfg.Format)
	if err != nil {
		return err
	}

	filename := outputPath(cfg.OutputDir, cfg.Scene, "", cfg.Format, now)
	if err := output.SaveFile(filename, data); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	uploads := map[string][]byte{filepath.Base(filename): data}

	if cfg.Thumbnail > 0 {
		thumb, err := output.EncodeThumbnail(output.ToRGBA(frame), uint(cfg.Thumbnail))
		if err != nil {
			return err
		}
		thumbName := outputPath(cfg.OutputDir, cfg.Scene, "_thumb", output.FormatPNG, now)
		if err := output.SaveFile(thumbName, thumb); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbName)
		uploads[filepath.Base(thumbName)] = thumb
	}

	if cfg.Upload {
		return upload(ctx, cfg, logger, uploads)
	}
	return nil
}

func upload(ctx context.Context, cfg config.Config, logger core.Logger, files map[string][]byte) error {
	uploader, err := output.NewS3Uploader(cfg.S3, logger)
	if err != nil {
		return err
	}

	for name, data := range files {
		contentType := output.ContentType(strings.TrimPrefix(filepath.Ext(name), "."))
		if _, err := uploader.Upload(ctx, filepath.ToSlash(filepath.Join(cfg.Scene, name)), data, contentType); err != nil {
			return err
		}
	}
	return nil
}
