// Package renderer contains the Monte Carlo integrator that turns a
// scene into a progressively refined image.
package renderer

import (
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rand"

	"github.com/okvist/pathtrace/pkg/camera"
	"github.com/okvist/pathtrace/pkg/core"
	"github.com/okvist/pathtrace/pkg/geometry"
	"github.com/okvist/pathtrace/pkg/post"
)

// Scene is an immutable aggregate of everything needed to render an
// image. It is read-only for the whole render and safely shared by all
// rendering goroutines.
type Scene struct {
	World           core.Hittable
	Camera          camera.Config
	BackgroundColor core.Vec3
	RenderConfig    RenderConfig
}

// RenderConfig contains all settings steering the render loop
type RenderConfig struct {
	SamplesPerPixel int
	Shader          Shader
	// PostProcessors are applied in order over the accumulated
	// buffers after the final sample
	PostProcessors []post.Processor
	ImagePolicy    ImagePolicy
	// MinImageInterval is the minimum time between materialized
	// images when ImagePolicy is EmitImageThrottled
	MinImageInterval time.Duration
	// Seed makes the render reproducible; 0 selects a random seed
	Seed uint64
	// Workers caps the number of concurrent row tasks; 0 selects the
	// number of CPUs
	Workers int
	Logger  core.Logger
}

// Renderer executes the render loop for a single scene
type Renderer struct {
	scene   *Scene
	lights  *geometry.List
	output  chan<- RenderProgress
	abort   <-chan struct{}
	needAux bool
}

// NewRenderer creates a renderer for the scene. Fails when the shader
// requires light sampling and the scene contains no light.
func NewRenderer(scene *Scene, output chan<- RenderProgress, abort <-chan struct{}) (*Renderer, error) {
	lights := geometry.NewList()
	collectLights(scene.World, lights)

	if scene.RenderConfig.Shader.NeedsLight() && len(lights.Items) == 0 {
		return nil, errors.New("scene should have at least one light")
	}

	needAux := false
	for _, p := range scene.RenderConfig.PostProcessors {
		if p.NeedsAlbedoAndNormals() {
			needAux = true
		}
	}

	return &Renderer{
		scene:   scene,
		lights:  lights,
		output:  output,
		abort:   abort,
		needAux: needAux,
	}, nil
}

// collectLights walks the hittable tree and gathers every subtree with
// an emitting material. Transformed lights are collected as their
// outermost wrapper so that light sampling sees world space.
func collectLights(h core.Hittable, lights *geometry.List) {
	if h.IsLight() {
		lights.Add(h)
		return
	}
	for _, child := range h.Children() {
		collectLights(child, lights)
	}
}

// RayTrace renders the scene and emits progress on the output channel,
// which is closed when rendering completes, is aborted or fails.
// Blocks the calling goroutine for the duration of the render.
func RayTrace(width, height int, scene *Scene, output chan<- RenderProgress, abort <-chan struct{}) error {
	defer close(output)

	r, err := NewRenderer(scene, output, abort)
	if err != nil {
		return err
	}
	return r.Render(width, height)
}

// Render runs the sample passes in order, accumulating pixel colors
// and emitting progress after each pass. Returns early without error
// when aborted.
func (r *Renderer) Render(width, height int) error {
	cfg := r.scene.RenderConfig
	cam := camera.New(width, height, r.scene.Camera)

	pixelCount := width * height
	pixelColors := make([]core.Vec3, pixelCount)
	albedoColors := make([]core.Vec3, pixelCount)
	normalColors := make([]core.Vec3, pixelCount)
	var pixelMu, albedoMu, normalMu sync.Mutex

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	lastSampleAt := start
	var lastImageAt time.Time

	for sample := 1; sample <= cfg.SamplesPerPixel; sample++ {
		select {
		case <-r.abort:
			r.logf("render aborted after %d of %d samples", sample-1, cfg.SamplesPerPixel)
			return nil
		default:
		}

		g := new(errgroup.Group)
		g.SetLimit(workers)

		for y := 0; y < height; y++ {
			y := y
			sample := sample
			g.Go(func() error {
				rnd := r.rowRandom(sample, y)

				rowPixel := make([]core.Vec3, width)
				var rowAlbedo, rowNormal []core.Vec3
				if r.needAux {
					rowAlbedo = make([]core.Vec3, width)
					rowNormal = make([]core.Vec3, width)
				}

				for x := 0; x < width; x++ {
					u := (float64(x) + rnd.Float64()) / float64(width)
					v := 1 - (float64(y)+rnd.Float64())/float64(height)
					ray := cam.Ray(u, v, rnd)

					pixel, albedo, normal := r.samplePixel(ray, rnd)
					rowPixel[x] = pixel
					if r.needAux {
						rowAlbedo[x] = albedo
						rowNormal[x] = normal
					}
				}

				offset := y * width
				pixelMu.Lock()
				for x := 0; x < width; x++ {
					pixelColors[offset+x] = pixelColors[offset+x].Add(rowPixel[x])
				}
				pixelMu.Unlock()

				if r.needAux {
					albedoMu.Lock()
					for x := 0; x < width; x++ {
						albedoColors[offset+x] = albedoColors[offset+x].Add(rowAlbedo[x])
					}
					albedoMu.Unlock()

					normalMu.Lock()
					for x := 0; x < width; x++ {
						normalColors[offset+x] = normalColors[offset+x].Add(rowNormal[x])
					}
					normalMu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()

		now := time.Now()
		progress := float64(sample) / float64(cfg.SamplesPerPixel)
		fps := samplesPerSecond(now.Sub(lastSampleAt))
		eta := estimatedTimeLeft(now.Sub(start), sample, cfg.SamplesPerPixel)
		lastSampleAt = now

		final := sample == cfg.SamplesPerPixel
		var img image.Image
		if r.shouldEmitImage(final, now, lastImageAt) {
			colors := pixelColors
			if final {
				select {
				case <-r.abort:
					r.logf("render aborted before post processing")
					return nil
				default:
				}

				var err error
				for _, p := range cfg.PostProcessors {
					colors, err = p.Process(colors, albedoColors, normalColors, width, height, sample)
					if err != nil {
						return err
					}
				}
			}
			img = post.ToImage(colors, width, height, sample)
			lastImageAt = now
		}

		r.logf("sample %d of %d done, %.1f samples/s", sample, cfg.SamplesPerPixel, fps)
		r.output <- RenderProgress{
			Progress:          progress,
			FPS:               fps,
			EstimatedTimeLeft: eta,
			RenderImage:       img,
		}
	}
	return nil
}

// samplePixel traces a single camera ray and returns its color
// contribution, plus albedo and normal contributions when the post
// processing chain needs them
func (r *Renderer) samplePixel(ray core.Ray, rnd *rand.Rand) (pixel, albedo, normal core.Vec3) {
	rec, ok := r.scene.World.Hit(ray, core.RayInterval, rnd)
	if !ok {
		bg := r.scene.BackgroundColor
		if r.needAux {
			return bg, bg, core.Vec3{}
		}
		return bg, core.Vec3{}, core.Vec3{}
	}

	pixel = r.scene.RenderConfig.Shader.Shade(r, rec, ray, 0, 0, rnd).Attenuated()
	if r.needAux {
		albedo = Albedo{}.Shade(r, rec, ray, 0, 0, rnd).Attenuated()
		normal = Normal{}.Shade(r, rec, ray, 0, 0, rnd).Attenuated()
	}
	return pixel, albedo, normal
}

// rayColor evaluates the color seen along a bounced ray, delegating
// hits to the active shader and misses to the background
func (r *Renderer) rayColor(ray core.Ray, depth int, accumulatedRayLength float64, rnd *rand.Rand) core.AttenuatedColor {
	if rec, ok := r.scene.World.Hit(ray, core.RayInterval, rnd); ok {
		return r.scene.RenderConfig.Shader.Shade(r, rec, ray, depth, accumulatedRayLength, rnd)
	}
	return core.AttenuatedColor{Color: r.scene.BackgroundColor}
}

func (r *Renderer) rowRandom(sample, row int) *rand.Rand {
	if r.scene.RenderConfig.Seed == 0 {
		return core.NewRandom(0)
	}
	return core.NewRandom(core.MixSeed(r.scene.RenderConfig.Seed, uint64(sample), uint64(row)))
}

func (r *Renderer) shouldEmitImage(final bool, now, lastImageAt time.Time) bool {
	switch r.scene.RenderConfig.ImagePolicy {
	case EmitImageFinalOnly:
		return final
	case EmitImageThrottled:
		return final || now.Sub(lastImageAt) >= r.scene.RenderConfig.MinImageInterval
	default:
		return true
	}
}

func (r *Renderer) logf(format string, args ...interface{}) {
	if r.scene.RenderConfig.Logger != nil {
		r.scene.RenderConfig.Logger.Printf(format, args...)
	}
}
