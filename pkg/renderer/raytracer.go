package renderer

import (
	"context"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplerFactory creates the sampler for one scanline from its seed
type SamplerFactory func(seed int64) core.Sampler

// Config contains rendering configuration
type Config struct {
	Width           int            // Image width in pixels
	Height          int            // Image height in pixels
	SamplesPerPixel int            // Number of rays per pixel
	MaxDepth        int            // Maximum ray bounce depth
	NumWorkers      int            // Number of parallel workers (0 = use CPU count)
	Seed            int64          // Base seed; each row derives its own generator from it
	NewSampler      SamplerFactory // Optional; defaults to core.NewSeededSampler
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          266,
		SamplesPerPixel: 10,
		MaxDepth:        5,
		NumWorkers:      0, // Auto-detect CPU count
		Seed:            42,
	}
}

// Raytracer renders a world through a camera into a Frame
type Raytracer struct {
	world      geometry.Hittable
	camera     *geometry.Camera
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. The world and camera are only read
// during rendering and may be shared by concurrent renders.
func NewRaytracer(world geometry.Hittable, camera *geometry.Camera, config Config, logger core.Logger) *Raytracer {
	if config.NewSampler == nil {
		config.NewSampler = func(seed int64) core.Sampler {
			return core.NewSeededSampler(seed)
		}
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth),
		config:     config,
		logger:     logger,
	}
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// Config returns the active configuration
func (rt *Raytracer) Config() Config {
	return rt.config
}

// rowSeed derives a distinct, reproducible seed for each scanline
func (rt *Raytracer) rowSeed(row int) int64 {
	return rt.config.Seed*1000003 + int64(row) + 42 // +42 to avoid seed 0
}

func (rt *Raytracer) samplerForRow(row int) core.Sampler {
	return rt.config.NewSampler(rt.rowSeed(row))
}

// RenderRow samples every pixel of frame row y into pixels
func (rt *Raytracer) RenderRow(y int, pixels []core.Vec3, sampler core.Sampler) RenderStats {
	width, height := float64(rt.config.Width), float64(rt.config.Height)

	// Frame rows run top to bottom, camera t runs bottom to top
	j := rt.config.Height - 1 - y

	stats := RenderStats{Rows: 1}
	for i := range pixels {
		var ps PixelStats

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			// Convert pixel coordinates to normalized coordinates with jitter
			s := (float64(i) + sampler.Get1D()) / width
			t := (float64(j) + sampler.Get1D()) / height

			ray := rt.camera.GetRay(s, t, sampler)
			ps.AddSample(rt.integrator.RayColor(ray, rt.world, sampler))
		}

		pixels[i] = ps.GetColor()
		stats.TotalPixels++
		stats.TotalSamples += ps.SampleCount
	}

	return stats
}

// Render renders the full frame in parallel. If ctx is cancelled the rows
// already finished are kept and ctx.Err() is returned.
func (rt *Raytracer) Render(ctx context.Context) (*Frame, RenderStats, error) {
	startTime := time.Now()
	frame := NewFrame(rt.config.Width, rt.config.Height)

	pool := NewWorkerPool(rt, frame.Height, rt.config.NumWorkers)
	pool.Start()

	rt.logger.Printf("Rendering %dx%d at %d samples/pixel, depth %d (using %d workers)...\n",
		frame.Width, frame.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	for y := 0; y < frame.Height; y++ {
		pool.SubmitTask(RowTask{Ctx: ctx, Row: y, Pixels: frame.Row(y)})
	}
	go pool.Stop()

	stats := RenderStats{Workers: pool.GetNumWorkers()}
	progressStep := max(1, frame.Height/10)

	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Skipped {
			continue
		}

		stats.add(result.Stats)
		if remaining := frame.Height - stats.Rows; remaining > 0 && stats.Rows%progressStep == 0 {
			rt.logger.Printf("Scanlines remaining: %d\n", remaining)
		}
	}

	stats.finalize()
	stats.Duration = time.Since(startTime)

	if stats.Rows < frame.Height {
		rt.logger.Printf("Rendering cancelled after %d of %d scanlines\n", stats.Rows, frame.Height)
		return frame, stats, ctx.Err()
	}

	rt.logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	return frame, stats, nil
}

// Render draws world through camera with the given configuration and no logging
func Render(world geometry.Hittable, camera *geometry.Camera, config Config) (*Frame, RenderStats) {
	frame, stats, _ := NewRaytracer(world, camera, config, nil).Render(context.Background())
	return frame, stats
}
