package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okvist/pathtrace/pkg/post"
	"github.com/okvist/pathtrace/pkg/renderer"
	"github.com/okvist/pathtrace/pkg/scene"
)

// settings is the render configuration read from a YAML settings file.
// Zero values fall back to the built-in defaults.
type settings struct {
	Scene    string `yaml:"scene"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Samples  int    `yaml:"samples"`
	MaxDepth int    `yaml:"maxDepth"`
	Seed     uint64 `yaml:"seed"`
	Workers  int    `yaml:"workers"`
	Output   string `yaml:"output"`
	Bloom    *struct {
		KernelSizeFraction float64 `yaml:"kernelSizeFraction"`
		StdDev             float64 `yaml:"stdDev"`
		Threshold          float64 `yaml:"threshold"`
	} `yaml:"bloom"`
}

func defaultSettings() settings {
	return settings{
		Scene:    "cornell",
		Width:    400,
		Height:   400,
		Samples:  50,
		MaxDepth: 50,
		Output:   "render.png",
	}
}

func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file: %w", err)
	}
	return s, nil
}

// slogPrinter adapts slog to the renderer's logger interface
type slogPrinter struct {
	logger *slog.Logger
}

func (sp slogPrinter) Printf(format string, args ...interface{}) {
	sp.logger.Debug(fmt.Sprintf(format, args...))
}

func main() {
	settingsPath := flag.String("settings", "", "path to a YAML settings file")
	sceneName := flag.String("scene", "", "scene to render (cornell, showcase)")
	width := flag.Int("width", 0, "image width")
	height := flag.Int("height", 0, "image height")
	samples := flag.Int("samples", 0, "samples per pixel")
	seed := flag.Uint64("seed", 0, "random seed, 0 for non-deterministic")
	out := flag.String("out", "", "output PNG file")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	s, err := loadSettings(*settingsPath)
	if err != nil {
		logger.Error("invalid settings", "error", err)
		os.Exit(1)
	}
	if *sceneName != "" {
		s.Scene = *sceneName
	}
	if *width > 0 {
		s.Width = *width
	}
	if *height > 0 {
		s.Height = *height
	}
	if *samples > 0 {
		s.Samples = *samples
	}
	if *seed != 0 {
		s.Seed = *seed
	}
	if *out != "" {
		s.Output = *out
	}

	var postProcessors []post.Processor
	if s.Bloom != nil {
		bloom, err := post.NewBloom(s.Bloom.KernelSizeFraction, s.Bloom.StdDev, s.Bloom.Threshold)
		if err != nil {
			logger.Error("invalid bloom settings", "error", err)
			os.Exit(1)
		}
		postProcessors = append(postProcessors, bloom)
	}

	renderConfig := renderer.RenderConfig{
		SamplesPerPixel:  s.Samples,
		Shader:           renderer.NewPathTracing(s.MaxDepth),
		PostProcessors:   postProcessors,
		ImagePolicy:      renderer.EmitImageThrottled,
		MinImageInterval: 500 * time.Millisecond,
		Seed:             s.Seed,
		Workers:          s.Workers,
		Logger:           slogPrinter{logger: logger},
	}

	sc, err := buildScene(s.Scene, renderConfig)
	if err != nil {
		logger.Error("failed to build scene", "scene", s.Scene, "error", err)
		os.Exit(1)
	}

	output := make(chan renderer.RenderProgress)
	abort := make(chan struct{})
	renderErr := make(chan error, 1)

	go func() {
		renderErr <- renderer.RayTrace(s.Width, s.Height, sc, output, abort)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		logger.Info("interrupted, aborting render")
		close(abort)
	}()

	logger.Info("rendering", "scene", s.Scene, "width", s.Width, "height", s.Height, "samples", s.Samples)

	var final image.Image
	for p := range output {
		logger.Info("progress",
			"done", fmt.Sprintf("%.0f%%", p.Progress*100),
			"fps", fmt.Sprintf("%.1f", p.FPS),
			"eta", p.EstimatedTimeLeft.Round(time.Second),
		)
		if p.RenderImage != nil {
			final = p.RenderImage
		}
	}

	if err := <-renderErr; err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
	if final == nil {
		logger.Info("no image rendered")
		return
	}

	f, err := os.Create(s.Output)
	if err != nil {
		logger.Error("failed to create output file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, final); err != nil {
		logger.Error("failed to encode output image", "error", err)
		os.Exit(1)
	}
	logger.Info("render written", "file", s.Output)
}

func buildScene(name string, renderConfig renderer.RenderConfig) (*renderer.Scene, error) {
	switch name {
	case "cornell":
		return scene.CornellBox(renderConfig)
	case "showcase":
		return scene.Showcase(renderConfig)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}
