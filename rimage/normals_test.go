package rimage

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestNormalFromGradient(t *testing.T) {
	test.That(t, NormalFromGradient(0, 0), test.ShouldResemble, r3.Vector{X: 0, Y: 0, Z: 1})

	n := NormalFromGradient(3, 4)
	m := math.Sqrt(26)
	test.That(t, n.X, test.ShouldEqual, -3/m)
	test.That(t, n.Y, test.ShouldEqual, -4/m)
	test.That(t, n.Z, test.ShouldEqual, 1/m)
	test.That(t, n.Norm(), test.ShouldAlmostEqual, 1, 1e-12)

	// huge gradients still give a unit vector pointing against the slope
	n = NormalFromGradient(4*float64(MaxDepth), 0)
	test.That(t, n.X, test.ShouldBeLessThan, -0.99)
	test.That(t, n.Z, test.ShouldBeGreaterThan, 0)
	test.That(t, n.Norm(), test.ShouldAlmostEqual, 1, 1e-12)
}

func TestNormalsFromGradientsUnitLength(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	dm := NewEmptyDepthMap(37, 23)
	for y := 0; y < dm.Height(); y++ {
		for x := 0; x < dm.Width(); x++ {
			dm.Set(x, y, Depth(r.Intn(int(MaxDepth)+1)))
		}
	}
	nf := NormalsFromGradients(SobelGradients(dm))
	test.That(t, nf.Width(), test.ShouldEqual, 37)
	test.That(t, nf.Height(), test.ShouldEqual, 23)
	for y := 0; y < nf.Height(); y++ {
		for x := 0; x < nf.Width(); x++ {
			test.That(t, nf.At(x, y).Norm(), test.ShouldAlmostEqual, 1, 1e-4)
		}
	}
}

func TestNormalsFromGradientsRampSign(t *testing.T) {
	nf := NormalsFromGradients(SobelGradients(makeColumnRamp(8, 3, 3)))
	for y := 0; y < nf.Height(); y++ {
		for x := 1; x < nf.Width()-1; x++ {
			n := nf.At(x, y)
			// depth grows to the right, away from the viewer, so the surface faces left
			test.That(t, n.X, test.ShouldBeLessThan, 0)
			test.That(t, n.X, test.ShouldEqual, nf.At(1, 0).X)
			test.That(t, n.Y, test.ShouldEqual, 0.)
		}
	}
}
