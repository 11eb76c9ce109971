package rimage

import (
	"gonum.org/v1/gonum/mat"
)

// GradientField holds the horizontal and vertical partial derivatives of a depth map.
// In mat.Dense, indexing is (row, column), so DX.At(y, x) is the derivative at pixel (x, y).
type GradientField struct {
	DX *mat.Dense
	DY *mat.Dense
}

// Width returns the number of columns.
func (g *GradientField) Width() int {
	_, w := g.DX.Dims()
	return w
}

// Height returns the number of rows.
func (g *GradientField) Height() int {
	h, _ := g.DX.Dims()
	return h
}

// At returns (dx, dy) at column x, row y.
func (g *GradientField) At(x, y int) (float64, float64) {
	return g.DX.At(y, x), g.DY.At(y, x)
}

// ToDense copies the depth map into a float64 matrix with one row per image row.
func (dm *DepthMap) ToDense() *mat.Dense {
	values := make([]float64, len(dm.data))
	for i, d := range dm.data {
		values[i] = float64(d)
	}
	return mat.NewDense(dm.height, dm.width, values)
}

// SobelGradients approximates d(depth)/dx and d(depth)/dy at every pixel with the 3x3
// Sobel kernels. Edge pixels are replicated outward, so the output has the same shape as
// the input. The depth map must be non-empty.
func SobelGradients(dm *DepthMap) *GradientField {
	depth := dm.ToDense()
	sobelX, sobelY := GetSobelX(), GetSobelY()
	return &GradientField{
		DX: convolveFloat64(depth, &sobelX, BorderReplicate),
		DY: convolveFloat64(depth, &sobelY, BorderReplicate),
	}
}
