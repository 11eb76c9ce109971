package rimage

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestEncodeComponent(t *testing.T) {
	test.That(t, EncodeComponent(-1), test.ShouldEqual, uint8(0))
	test.That(t, EncodeComponent(0), test.ShouldEqual, uint8(127))
	test.That(t, EncodeComponent(1), test.ShouldEqual, uint8(255))
	test.That(t, EncodeComponent(1.0000001), test.ShouldEqual, uint8(255))
	test.That(t, EncodeComponent(-1.0000001), test.ShouldEqual, uint8(0))
	test.That(t, EncodeComponent(0.5), test.ShouldEqual, uint8(191))
}

func flatDepthMap(width, height int, d Depth) *DepthMap {
	dm := NewEmptyDepthMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dm.Set(x, y, d)
		}
	}
	return dm
}

func TestEncodeNormalsFlat(t *testing.T) {
	for _, d := range []Depth{0, 128, MaxDepth} {
		nm := EncodeNormals(NormalsFromGradients(SobelGradients(flatDepthMap(4, 3, d))))
		test.That(t, nm.Bounds(), test.ShouldResemble, image.Rect(0, 0, 4, 3))
		test.That(t, nm.Pix, test.ShouldHaveLength, 4*3*3)
		for y := 0; y < 3; y++ {
			for x := 0; x < 4; x++ {
				test.That(t, nm.BGRAt(x, y), test.ShouldResemble, [3]uint8{255, 127, 127})
				test.That(t, nm.At(x, y), test.ShouldResemble, color.RGBA{R: 127, G: 127, B: 255, A: 255})
			}
		}
	}
}

func TestEncodeNormalsChannelOrder(t *testing.T) {
	dm := makeColumnRamp(5, 2, 50)
	nf := NormalsFromGradients(SobelGradients(dm))
	nm := EncodeNormals(nf)

	n := nf.At(2, 1)
	bgr := nm.BGRAt(2, 1)
	test.That(t, bgr[0], test.ShouldEqual, EncodeComponent(n.Z))
	test.That(t, bgr[1], test.ShouldEqual, EncodeComponent(n.Y))
	test.That(t, bgr[2], test.ShouldEqual, EncodeComponent(n.X))
	// nx < 0 encodes below the midpoint
	test.That(t, bgr[2], test.ShouldBeLessThan, 127)

	rgba := nm.ToRGBA()
	test.That(t, rgba.Bounds(), test.ShouldResemble, nm.Bounds())
	test.That(t, rgba.RGBAAt(2, 1), test.ShouldResemble, color.RGBA{R: bgr[2], G: bgr[1], B: bgr[0], A: 255})
	test.That(t, nm.At(2, 1), test.ShouldResemble, rgba.At(2, 1))
	test.That(t, nm.At(-1, 0), test.ShouldResemble, color.RGBA{})
	test.That(t, nm.ColorModel(), test.ShouldEqual, color.RGBAModel)
}

func TestEncodeNormalsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	dm := NewEmptyDepthMap(64, 48)
	for y := 0; y < dm.Height(); y++ {
		for x := 0; x < dm.Width(); x++ {
			dm.Set(x, y, Depth(r.Intn(256)))
		}
	}
	first := EncodeNormals(NormalsFromGradients(SobelGradients(dm)))
	second := EncodeNormals(NormalsFromGradients(SobelGradients(dm)))
	test.That(t, first.Pix, test.ShouldResemble, second.Pix)

	for y := 0; y < dm.Height(); y++ {
		for x := 0; x < dm.Width(); x++ {
			// z is always positive, so blue never drops below the midpoint
			test.That(t, first.BGRAt(x, y)[0], test.ShouldBeGreaterThanOrEqualTo, 127)
		}
	}
}
