package rimage

import (
	"github.com/golang/geo/r3"

	"go.viam.com/depthnormal/utils"
)

// NormalField stores one surface normal per pixel, row-major. Every vector has unit
// length, except where the unnormalized vector had zero length; those are zero.
type NormalField struct {
	width  int
	height int

	data []r3.Vector
}

// Width returns the number of columns.
func (nf *NormalField) Width() int {
	return nf.width
}

// Height returns the number of rows.
func (nf *NormalField) Height() int {
	return nf.height
}

// At returns the normal at column x, row y.
func (nf *NormalField) At(x, y int) r3.Vector {
	return nf.data[(y*nf.width)+x]
}

// NormalFromGradient builds (-dx, -dy, 1) and scales it to unit length. Depth grows away
// from the viewer, so the normal leans against the gradient; the camera looks down Z
// with unit pixel spacing.
func NormalFromGradient(dx, dy float64) r3.Vector {
	v := r3.Vector{X: -dx, Y: -dy, Z: 1.0}
	m := v.Norm()
	if m == 0 {
		return r3.Vector{}
	}
	return r3.Vector{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
}

// NormalsFromGradients reconstructs the unit normal of every pixel of g.
func NormalsFromGradients(g *GradientField) *NormalField {
	nf := &NormalField{
		width:  g.Width(),
		height: g.Height(),
	}
	nf.data = make([]r3.Vector, nf.width*nf.height)
	utils.ParallelForEachRow(nf.height, func(y int) {
		for x := 0; x < nf.width; x++ {
			nf.data[(y*nf.width)+x] = NormalFromGradient(g.At(x, y))
		}
	})
	return nf
}
