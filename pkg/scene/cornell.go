// Package scene provides ready-made example scenes.
package scene

import (
	"github.com/okvist/pathtrace/pkg/camera"
	"github.com/okvist/pathtrace/pkg/core"
	"github.com/okvist/pathtrace/pkg/geometry"
	"github.com/okvist/pathtrace/pkg/material"
	"github.com/okvist/pathtrace/pkg/renderer"
)

// CornellBox creates the classic Cornell box: an enclosed room with a
// ceiling light, a rotated tall box and a glass sphere
func CornellBox(renderConfig renderer.RenderConfig) (*renderer.Scene, error) {
	red := material.NewLambertian(material.NewSolidColor(0.65, 0.05, 0.05))
	white := material.NewLambertian(material.NewSolidColor(0.73, 0.73, 0.73))
	green := material.NewLambertian(material.NewSolidColor(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(15, 15, 15)
	glass := material.NewDielectric(material.NewSolidColor(1, 1, 1), 1.5)

	world := geometry.NewList(
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105), light),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
		geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glass),
	)

	tallBox, err := geometry.NewBVH(geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white))
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewTranslation(
		geometry.NewRotationY(tallBox, 15),
		core.NewVec3(265, 0, 295),
	))

	return &renderer.Scene{
		World: world,
		Camera: camera.Config{
			VerticalFovDegrees: 40,
			LookFrom:           core.NewVec3(278, 278, -800),
			LookAt:             core.NewVec3(278, 278, 0),
			Up:                 core.NewVec3(0, 1, 0),
		},
		BackgroundColor: core.NewVec3(0, 0, 0),
		RenderConfig:    renderConfig,
	}, nil
}
