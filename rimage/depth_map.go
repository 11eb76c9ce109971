// Package rimage holds the depth grid and the image types derived from it: Sobel
// gradients, surface normals and the 8-bit normal map, plus image file codecs.
package rimage

import (
	"image"
	"image/color"
	"math"

	"github.com/pkg/errors"
)

// Depth is the depth of a single pixel. 8-bit sources use the low byte only.
type Depth uint16

// MaxDepth is the largest depth a DepthMap can hold.
const MaxDepth = Depth(math.MaxUint16)

// ErrShape is returned for empty or non-rectangular depth grids.
var ErrShape = errors.New("depth map must be a non-empty rectangular grid")

// DepthMap fulfills image.Image so it can be passed to image codecs. Samples are
// stored row-major.
type DepthMap struct {
	width  int
	height int

	data []Depth
}

// NewEmptyDepthMap returns a zeroed depth map of the given size.
func NewEmptyDepthMap(width, height int) *DepthMap {
	return &DepthMap{
		width:  width,
		height: height,
		data:   make([]Depth, width*height),
	}
}

// NewDepthMapFromRows copies a grid indexed [row][col] into a depth map. Every row must
// have the same, non-zero length.
func NewDepthMapFromRows(rows [][]Depth) (*DepthMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrShape, "no rows or columns")
	}
	width := len(rows[0])
	dm := NewEmptyDepthMap(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrShape, "row %d has %d columns, expected %d", y, len(row), width)
		}
		copy(dm.data[y*width:(y+1)*width], row)
	}
	return dm, nil
}

// Validate returns ErrShape if the depth map holds no samples.
func (dm *DepthMap) Validate() error {
	if dm == nil {
		return errors.Wrap(ErrShape, "depth map is nil")
	}
	if dm.width <= 0 || dm.height <= 0 || len(dm.data) != dm.width*dm.height {
		return errors.Wrapf(ErrShape, "got %dx%d with %d samples", dm.width, dm.height, len(dm.data))
	}
	return nil
}

func (dm *DepthMap) kxy(x, y int) int {
	return (y * dm.width) + x
}

// Width returns the number of columns.
func (dm *DepthMap) Width() int {
	return dm.width
}

// Height returns the number of rows.
func (dm *DepthMap) Height() int {
	return dm.height
}

// Bounds returns the rectangle of the depth map, always anchored at the origin.
func (dm *DepthMap) Bounds() image.Rectangle {
	return image.Rect(0, 0, dm.width, dm.height)
}

// ColorModel is Gray16; depths are reported as-is.
func (dm *DepthMap) ColorModel() color.Model {
	return color.Gray16Model
}

// At returns the depth at (x, y) as a 16-bit gray.
func (dm *DepthMap) At(x, y int) color.Color {
	return color.Gray16{Y: uint16(dm.GetDepth(x, y))}
}

// Contains returns whether (x, y) is inside the depth map.
func (dm *DepthMap) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < dm.width && y < dm.height
}

// GetDepth returns the depth at column x, row y.
func (dm *DepthMap) GetDepth(x, y int) Depth {
	return dm.data[dm.kxy(x, y)]
}

// Set sets the depth at column x, row y.
func (dm *DepthMap) Set(x, y int, val Depth) {
	dm.data[dm.kxy(x, y)] = val
}

// MinMax returns the smallest and largest depth, including zeros.
func (dm *DepthMap) MinMax() (Depth, Depth) {
	min, max := MaxDepth, Depth(0)
	for _, d := range dm.data {
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// ToGray16 copies the depth map into a 16-bit gray image.
func (dm *DepthMap) ToGray16() *image.Gray16 {
	img := image.NewGray16(dm.Bounds())
	for y := 0; y < dm.height; y++ {
		for x := 0; x < dm.width; x++ {
			img.SetGray16(x, y, color.Gray16{Y: uint16(dm.GetDepth(x, y))})
		}
	}
	return img
}

// ConvertImageToDepthMap takes an image and figures out if it's already a DepthMap
// or if it can be converted into one. 8-bit and 16-bit gray images keep their raw
// samples; any other image is reduced to luminance, 16-bit for 16-bit color models
// and 8-bit otherwise.
func ConvertImageToDepthMap(img image.Image) (*DepthMap, error) {
	if img == nil {
		return nil, errors.Wrap(ErrShape, "image is nil")
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, errors.Wrapf(ErrShape, "image bounds %v are empty", bounds)
	}
	if dm, ok := img.(*DepthMap); ok {
		return dm, nil
	}

	dm := NewEmptyDepthMap(bounds.Dx(), bounds.Dy())
	var get func(x, y int) Depth
	switch ii := img.(type) {
	case *image.Gray16:
		get = func(x, y int) Depth { return Depth(ii.Gray16At(x, y).Y) }
	case *image.Gray:
		get = func(x, y int) Depth { return Depth(ii.GrayAt(x, y).Y) }
	default:
		if is16BitModel(img.ColorModel()) {
			get = func(x, y int) Depth {
				return Depth(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y)
			}
		} else {
			get = func(x, y int) Depth {
				return Depth(color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y)
			}
		}
	}
	for y := 0; y < dm.height; y++ {
		for x := 0; x < dm.width; x++ {
			dm.Set(x, y, get(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return dm, nil
}

func is16BitModel(model color.Model) bool {
	switch model {
	case color.Gray16Model, color.RGBA64Model, color.NRGBA64Model, color.Alpha16Model:
		return true
	default:
		return false
	}
}
