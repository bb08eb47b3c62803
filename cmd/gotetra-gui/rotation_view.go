package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// dragSensitivity converts dragged pixels into radians
const dragSensitivity = 0.01

// rotationView shows the rendered frame and turns mouse drags into rotation
type rotationView struct {
	widget.BaseWidget
	raster *canvas.Raster
	onDrag func(deltaHeading, deltaPitch float64)
}

func newRotationView(raster *canvas.Raster, onDrag func(deltaHeading, deltaPitch float64)) *rotationView {
	v := &rotationView{raster: raster, onDrag: onDrag}
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *rotationView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

// Dragged handles mouse drag events for rotation
func (v *rotationView) Dragged(event *fyne.DragEvent) {
	if v.onDrag != nil {
		v.onDrag(float64(event.Dragged.DX)*dragSensitivity, float64(-event.Dragged.DY)*dragSensitivity)
	}
}

// DragEnd handles the end of a drag event
func (v *rotationView) DragEnd() {}
