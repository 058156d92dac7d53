package renderer

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/okvist/pathtrace/pkg/camera"
	"github.com/okvist/pathtrace/pkg/core"
	"github.com/okvist/pathtrace/pkg/geometry"
	"github.com/okvist/pathtrace/pkg/material"
)

// testScene is a yellow diffuse sphere at the origin lit by a distant
// emissive sphere
func testScene(renderConfig RenderConfig) *Scene {
	yellow := material.NewLambertian(material.NewSolidColor(1, 1, 0))
	light := material.NewDiffuseLight(10, 10, 10)

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, yellow),
		geometry.NewSphere(core.NewVec3(0, 50, 0), 10, light),
	)

	return &Scene{
		World: world,
		Camera: camera.Config{
			VerticalFovDegrees: 40,
			LookFrom:           core.NewVec3(0, 0, 4),
			LookAt:             core.NewVec3(0, 0, 0),
			Up:                 core.NewVec3(0, 1, 0),
		},
		BackgroundColor: core.NewVec3(0, 0, 0),
		RenderConfig:    renderConfig,
	}
}

func renderAll(t *testing.T, width, height int, scene *Scene, abort <-chan struct{}) ([]RenderProgress, error) {
	t.Helper()

	output := make(chan RenderProgress)
	renderErr := make(chan error, 1)
	go func() {
		renderErr <- RayTrace(width, height, scene, output, abort)
	}()

	var progress []RenderProgress
	for p := range output {
		progress = append(progress, p)
	}
	return progress, <-renderErr
}

func TestNewRenderer_RequiresLight(t *testing.T) {
	matte := material.NewLambertian(material.NewSolidColor(1, 1, 1))
	scene := testScene(RenderConfig{SamplesPerPixel: 1, Shader: NewPathTracing(10)})
	scene.World = geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, matte))

	output := make(chan RenderProgress, 1)
	_, err := NewRenderer(scene, output, make(chan struct{}))
	if err == nil {
		t.Fatal("Expected error for scene without lights")
	}
	if !strings.Contains(err.Error(), "at least one light") {
		t.Errorf("Expected light error, got %v", err)
	}
}

func TestNewRenderer_LightlessSceneWithSimpleShader(t *testing.T) {
	matte := material.NewLambertian(material.NewSolidColor(1, 1, 1))
	scene := testScene(RenderConfig{SamplesPerPixel: 1, Shader: Simple{}})
	scene.World = geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, matte))

	if _, err := NewRenderer(scene, make(chan RenderProgress, 1), make(chan struct{})); err != nil {
		t.Errorf("Expected the simple shader to accept a lightless scene, got %v", err)
	}
}

func TestRenderer_SingleSample(t *testing.T) {
	scene := testScene(RenderConfig{
		SamplesPerPixel: 1,
		Shader:          NewPathTracing(50),
		ImagePolicy:     EmitImageEverySample,
		Seed:            7,
	})

	progress, err := renderAll(t, 20, 10, scene, make(chan struct{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(progress) != 1 {
		t.Fatalf("Expected exactly one progress event, got %d", len(progress))
	}
	if progress[0].Progress != 1.0 {
		t.Errorf("Expected progress 1.0, got %v", progress[0].Progress)
	}
	if progress[0].RenderImage == nil {
		t.Fatal("Expected a final image")
	}

	img := progress[0].RenderImage
	bounds := img.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 10 {
		t.Errorf("Expected a 20x10 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	allBlack := true
	for y := bounds.Min.Y; y < bounds.Max.Y && allBlack; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r > 0 || g > 0 || b > 0 {
				allBlack = false
				break
			}
		}
	}
	if allBlack {
		t.Error("Expected a non-all-black image")
	}
}

func TestRenderer_Cancellation(t *testing.T) {
	scene := testScene(RenderConfig{
		SamplesPerPixel: 500,
		Shader:          NewPathTracing(10),
		ImagePolicy:     EmitImageFinalOnly,
		Seed:            7,
	})

	output := make(chan RenderProgress)
	abort := make(chan struct{})
	renderErr := make(chan error, 1)
	go func() {
		renderErr <- RayTrace(10, 5, scene, output, abort)
	}()

	events := 0
	for p := range output {
		events++
		if events == 1 {
			close(abort)
		}
		_ = p
	}

	if err := <-renderErr; err != nil {
		t.Fatalf("Expected cancellation to not be an error, got %v", err)
	}
	if events >= 10 {
		t.Errorf("Expected cancellation latency of about one sample pass, got %d events", events)
	}
}

func TestRenderer_DeterministicWithSeed(t *testing.T) {
	render := func() image.Image {
		scene := testScene(RenderConfig{
			SamplesPerPixel: 2,
			Shader:          NewPathTracing(20),
			ImagePolicy:     EmitImageFinalOnly,
			Seed:            7,
		})
		progress, err := renderAll(t, 10, 10, scene, make(chan struct{}))
		if err != nil {
			t.Fatal(err)
		}
		return progress[len(progress)-1].RenderImage
	}

	first, ok := render().(*image.RGBA)
	if !ok {
		t.Fatal("Expected an RGBA image")
	}
	second := render().(*image.RGBA)

	if diff := cmp.Diff(first.Pix, second.Pix); diff != "" {
		t.Errorf("Expected identical renders for a fixed seed:\n%s", diff)
	}
}

func TestRenderer_ImagePolicyFinalOnly(t *testing.T) {
	scene := testScene(RenderConfig{
		SamplesPerPixel: 3,
		Shader:          NewPathTracing(10),
		ImagePolicy:     EmitImageFinalOnly,
		Seed:            7,
	})

	progress, err := renderAll(t, 10, 5, scene, make(chan struct{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(progress) != 3 {
		t.Fatalf("Expected 3 progress events, got %d", len(progress))
	}
	for i, p := range progress[:2] {
		if p.RenderImage != nil {
			t.Errorf("Expected no image for sample %d", i+1)
		}
	}
	if progress[2].RenderImage == nil {
		t.Error("Expected an image on the final sample")
	}
}

func TestSamplesPerSecond(t *testing.T) {
	if fps := samplesPerSecond(500 * time.Millisecond); fps != 2 {
		t.Errorf("Expected 2 samples/s, got %v", fps)
	}
	if fps := samplesPerSecond(0); fps != 0 {
		t.Errorf("Expected 0 for zero duration, got %v", fps)
	}
}

func TestEstimatedTimeLeft(t *testing.T) {
	eta := estimatedTimeLeft(10*time.Second, 5, 10)
	if eta != 10*time.Second {
		t.Errorf("Expected 10s remaining, got %v", eta)
	}
	if eta := estimatedTimeLeft(time.Second, 0, 10); eta != 0 {
		t.Errorf("Expected 0 before the first sample, got %v", eta)
	}
}
