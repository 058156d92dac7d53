package scene

import (
	"testing"

	"github.com/okvist/pathtrace/pkg/renderer"
)

func TestExampleScenes_AreRenderable(t *testing.T) {
	tests := []struct {
		name  string
		build func(renderer.RenderConfig) (*renderer.Scene, error)
	}{
		{"Cornell box", CornellBox},
		{"Showcase", Showcase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := tt.build(renderer.RenderConfig{
				SamplesPerPixel: 1,
				Shader:          renderer.NewPathTracing(10),
			})
			if err != nil {
				t.Fatal(err)
			}

			// The path tracing shader requires the scene to have a light
			output := make(chan renderer.RenderProgress, 1)
			if _, err := renderer.NewRenderer(sc, output, make(chan struct{})); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCornellBox_RendersSinglePass(t *testing.T) {
	sc, err := CornellBox(renderer.RenderConfig{
		SamplesPerPixel: 1,
		Shader:          renderer.NewPathTracing(5),
		ImagePolicy:     renderer.EmitImageFinalOnly,
		Seed:            7,
	})
	if err != nil {
		t.Fatal(err)
	}

	output := make(chan renderer.RenderProgress)
	renderErr := make(chan error, 1)
	go func() {
		renderErr <- renderer.RayTrace(16, 16, sc, output, make(chan struct{}))
	}()

	var last renderer.RenderProgress
	for p := range output {
		last = p
	}
	if err := <-renderErr; err != nil {
		t.Fatal(err)
	}
	if last.Progress != 1.0 || last.RenderImage == nil {
		t.Error("Expected a completed single pass with a final image")
	}
}
