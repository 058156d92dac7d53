package scene

import (
	"github.com/okvist/pathtrace/pkg/camera"
	"github.com/okvist/pathtrace/pkg/core"
	"github.com/okvist/pathtrace/pkg/geometry"
	"github.com/okvist/pathtrace/pkg/material"
	"github.com/okvist/pathtrace/pkg/renderer"
)

// Showcase creates an open scene exercising every primitive and
// material type: matte, metal and glass spheres, a motion blurred
// sphere, a fog volume, a triangle and an attenuated area light
func Showcase(renderConfig renderer.RenderConfig) (*renderer.Scene, error) {
	ground := material.NewLambertian(material.NewSolidColor(0.5, 0.5, 0.5))
	matte := material.NewLambertian(material.NewSolidColor(0.4, 0.2, 0.1))
	metal := material.NewMetal(material.NewSolidColor(0.7, 0.6, 0.5), 0.1)
	glass := material.NewDielectric(material.NewSolidColor(1, 1, 1), 1.5)
	light := material.NewDiffuseLightWithAttenuation(material.NewSolidColor(10, 10, 10), 50)
	fog := material.NewIsotropic(material.NewSolidColor(0.8, 0.8, 0.8))
	blend := material.NewBlend(metal, matte, 0.3)

	items := []core.Hittable{
		geometry.NewQuad(core.NewVec3(-50, 0, -50), core.NewVec3(100, 0, 0), core.NewVec3(0, 0, 100), ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-3, 1, 0), 1, matte),
		geometry.NewSphere(core.NewVec3(3, 1, 0), 1, metal),
		geometry.NewSphere(core.NewVec3(0, 1, -3), 1, blend),
		geometry.NewMotionBlur(
			geometry.NewSphere(core.NewVec3(-1.5, 0.4, 2), 0.4, matte),
			core.NewVec3(0, 0.3, 0),
		),
		geometry.NewConstantMedium(
			geometry.NewSphere(core.NewVec3(1.5, 0.6, 2.5), 0.6, fog),
			2,
			fog,
		),
		geometry.NewTriangle(
			core.NewVec3(-2, 0, 3),
			core.NewVec3(-1, 0, 3),
			core.NewVec3(-1.5, 1.2, 3),
			matte,
		),
		geometry.NewSphere(core.NewVec3(0, 6, 2), 2, light),
	}

	world, err := geometry.NewBVH(items)
	if err != nil {
		return nil, err
	}

	return &renderer.Scene{
		World: world,
		Camera: camera.Config{
			VerticalFovDegrees: 30,
			ApertureSize:       0.1,
			LookFrom:           core.NewVec3(0, 2.5, 10),
			LookAt:             core.NewVec3(0, 1, 0),
			Up:                 core.NewVec3(0, 1, 0),
		},
		BackgroundColor: core.NewVec3(0.2, 0.3, 0.5),
		RenderConfig:    renderConfig,
	}, nil
}
