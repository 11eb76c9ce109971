package rimage

import (
	"image"
	"image/color"

	"go.viam.com/depthnormal/utils"
)

// NormalMap is an 8-bit, three channel image of encoded surface normals. Each pixel is
// stored as B, G, R, i.e. (nz, ny, nx), matching the channel order image files are
// written in by BGR codecs. As an image.Image it reports R=nx, G=ny, B=nz.
type NormalMap struct {
	// Pix holds the pixels in B, G, R order. The pixel at (x, y) starts at
	// Pix[y*Stride + x*3].
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// NewNormalMap returns a zeroed normal map of the given size.
func NewNormalMap(width, height int) *NormalMap {
	return &NormalMap{
		Pix:    make([]uint8, 3*width*height),
		Stride: 3 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// EncodeComponent maps a normal component in [-1, 1] to [0, 255]. Out of range values
// are clamped and the fraction is truncated, so 0 encodes to 127.
func EncodeComponent(v float64) uint8 {
	return uint8(utils.ClampF64((v+1)*127.5, 0, 255))
}

// EncodeNormals packs a normal field into a BGR normal map.
func EncodeNormals(nf *NormalField) *NormalMap {
	nm := NewNormalMap(nf.Width(), nf.Height())
	utils.ParallelForEachRow(nf.Height(), func(y int) {
		for x := 0; x < nf.Width(); x++ {
			n := nf.At(x, y)
			i := nm.PixOffset(x, y)
			nm.Pix[i+0] = EncodeComponent(n.Z)
			nm.Pix[i+1] = EncodeComponent(n.Y)
			nm.Pix[i+2] = EncodeComponent(n.X)
		}
	})
	return nm
}

// PixOffset returns the index of the first element of Pix that corresponds to the pixel
// at (x, y).
func (nm *NormalMap) PixOffset(x, y int) int {
	return (y-nm.Rect.Min.Y)*nm.Stride + (x-nm.Rect.Min.X)*3
}

// BGRAt returns the stored (B, G, R) triple at (x, y).
func (nm *NormalMap) BGRAt(x, y int) [3]uint8 {
	i := nm.PixOffset(x, y)
	return [3]uint8{nm.Pix[i], nm.Pix[i+1], nm.Pix[i+2]}
}

// Bounds implements image.Image.
func (nm *NormalMap) Bounds() image.Rectangle {
	return nm.Rect
}

// ColorModel implements image.Image.
func (nm *NormalMap) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements image.Image.
func (nm *NormalMap) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(nm.Rect)) {
		return color.RGBA{}
	}
	bgr := nm.BGRAt(x, y)
	return color.RGBA{R: bgr[2], G: bgr[1], B: bgr[0], A: 0xff}
}

// ToRGBA copies the normal map into an opaque *image.RGBA, the form encoders expect for
// 8 bits per channel output.
func (nm *NormalMap) ToRGBA() *image.RGBA {
	img := image.NewRGBA(nm.Rect)
	for y := nm.Rect.Min.Y; y < nm.Rect.Max.Y; y++ {
		for x := nm.Rect.Min.X; x < nm.Rect.Max.X; x++ {
			src := nm.PixOffset(x, y)
			dst := img.PixOffset(x, y)
			img.Pix[dst+0] = nm.Pix[src+2]
			img.Pix[dst+1] = nm.Pix[src+1]
			img.Pix[dst+2] = nm.Pix[src+0]
			img.Pix[dst+3] = 0xff
		}
	}
	return img
}
