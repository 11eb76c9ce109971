package rimage

import (
	"image"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/depthnormal/utils"
)

// Kernel is a convolution matrix, indexed Content[y][x].
type Kernel struct {
	Content [][]float64
	Width   int
	Height  int
}

// Size returns the kernel dimensions as (width, height).
func (k *Kernel) Size() image.Point {
	return image.Point{k.Width, k.Height}
}

// At returns the kernel weight at column x, row y.
func (k *Kernel) At(x, y int) float64 {
	return k.Content[y][x]
}

// Center returns the anchor that centres the kernel on the output pixel.
func (k *Kernel) Center() image.Point {
	return image.Point{k.Width / 2, k.Height / 2}
}

// Validate checks that Content matches Width and Height.
func (k *Kernel) Validate() error {
	if k.Width <= 0 || k.Height <= 0 {
		return errors.Errorf("invalid kernel size %dx%d", k.Width, k.Height)
	}
	if len(k.Content) != k.Height {
		return errors.Errorf("kernel has %d rows, expected %d", len(k.Content), k.Height)
	}
	for y, row := range k.Content {
		if len(row) != k.Width {
			return errors.Errorf("kernel row %d has %d columns, expected %d", y, len(row), k.Width)
		}
	}
	return nil
}

// GetSobelX returns the Kernel corresponding to the Sobel kernel in the x direction.
func GetSobelX() Kernel {
	return Kernel{
		[][]float64{
			{-1, 0, 1},
			{-2, 0, 2},
			{-1, 0, 1},
		},
		3,
		3,
	}
}

// GetSobelY returns the Kernel corresponding to the Sobel kernel in the y direction.
func GetSobelY() Kernel {
	return Kernel{
		[][]float64{
			{-1, -2, -1},
			{0, 0, 0},
			{1, 2, 1},
		},
		3,
		3,
	}
}

// BorderPad selects how samples outside the matrix are synthesized for a convolution.
type BorderPad int

const (
	// BorderConstant pads with zeros: 000|abcd|000.
	BorderConstant BorderPad = iota
	// BorderReplicate repeats the edge sample: aaa|abcd|ddd.
	BorderReplicate
	// BorderReflect mirrors around the edge sample without repeating it: dcb|abcd|cba.
	BorderReflect
)

func (b BorderPad) String() string {
	switch b {
	case BorderConstant:
		return "constant"
	case BorderReplicate:
		return "replicate"
	case BorderReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// borderIndex maps a possibly out of range index i into [0, n). ok is false when the
// sample should be treated as zero.
func borderIndex(i, n int, border BorderPad) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch border {
	case BorderReplicate:
		return utils.ClampInt(i, 0, n-1), true
	case BorderReflect:
		if n == 1 {
			return 0, true
		}
		period := 2 * (n - 1)
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - i
		}
		return i, true
	default:
		return 0, false
	}
}

// PaddingFloat64 grows m so that a kernel of kernelSize anchored at anchor can be applied
// at every original sample. The original sample (r, c) ends up at (r+anchor.Y, c+anchor.X).
func PaddingFloat64(m *mat.Dense, kernelSize, anchor image.Point, border BorderPad) (*mat.Dense, error) {
	if !anchor.In(image.Rectangle{Max: kernelSize}) {
		return nil, errors.Errorf("anchor %v is outside of kernel of size %v", anchor, kernelSize)
	}
	return padFloat64(m, kernelSize, anchor, border), nil
}

func padFloat64(m *mat.Dense, kernelSize, anchor image.Point, border BorderPad) *mat.Dense {
	h, w := m.Dims()
	padded := mat.NewDense(h+kernelSize.Y-1, w+kernelSize.X-1, nil)
	ph, pw := padded.Dims()
	for r := 0; r < ph; r++ {
		srcR, okR := borderIndex(r-anchor.Y, h, border)
		for c := 0; c < pw; c++ {
			srcC, okC := borderIndex(c-anchor.X, w, border)
			if okR && okC {
				padded.Set(r, c, m.At(srcR, srcC))
			}
		}
	}
	return padded
}

// ConvolveGrayFloat64 correlates the kernel, centred on each sample, with a single channel
// float64 matrix. Samples outside m are produced by border. There is no clamping.
func ConvolveGrayFloat64(m *mat.Dense, filter *Kernel, border BorderPad) (*mat.Dense, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, errors.New("cannot convolve an empty matrix")
	}
	return convolveFloat64(m, filter, border), nil
}

func convolveFloat64(m *mat.Dense, filter *Kernel, border BorderPad) *mat.Dense {
	h, w := m.Dims()
	result := mat.NewDense(h, w, nil)
	kernelSize := filter.Size()
	padded := padFloat64(m, kernelSize, filter.Center(), border)

	utils.ParallelForEachRow(h, func(y int) {
		for x := 0; x < w; x++ {
			sum := 0.0
			for ky := 0; ky < kernelSize.Y; ky++ {
				for kx := 0; kx < kernelSize.X; kx++ {
					sum += padded.At(y+ky, x+kx) * filter.At(kx, ky)
				}
			}
			result.Set(y, x, sum)
		}
	})
	return result
}
