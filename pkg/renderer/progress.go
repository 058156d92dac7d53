package renderer

import (
	"image"
	"time"
)

// RenderProgress is a snapshot of the render state, emitted on the
// output channel after every completed sample pass
type RenderProgress struct {
	// Progress is the completed fraction of all samples, in (0, 1]
	Progress float64
	// FPS is the instantaneous throughput in sample passes per second
	FPS float64
	// EstimatedTimeLeft until the render completes
	EstimatedTimeLeft time.Duration
	// RenderImage is the image rendered so far. Nil when the image
	// emission policy skipped this sample.
	RenderImage image.Image
}

// ImagePolicy controls how often a materialized image accompanies the
// emitted progress, bounding the image conversion overhead
type ImagePolicy int

const (
	// EmitImageEverySample materializes an image after every sample pass
	EmitImageEverySample ImagePolicy = iota
	// EmitImageThrottled materializes an image at most once per
	// configured interval, and always on the final sample
	EmitImageThrottled
	// EmitImageFinalOnly materializes an image only on the final sample
	EmitImageFinalOnly
)

func samplesPerSecond(sampleDuration time.Duration) float64 {
	if sampleDuration <= 0 {
		return 0
	}
	return float64(time.Second) / float64(sampleDuration)
}

func estimatedTimeLeft(elapsed time.Duration, samplesDone, totalSamples int) time.Duration {
	if samplesDone == 0 {
		return 0
	}
	perSample := elapsed / time.Duration(samplesDone)
	return perSample * time.Duration(totalSamples-samplesDone)
}
