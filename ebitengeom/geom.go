// Package ebitengeom converts between orientation's Matrix33, read as a 2D homogeneous affine transform, and
// ebiten's GeoM. It lives apart from the root package so that importing orientation does not pull in ebiten.
package ebitengeom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/orientation"
)

// GeoM returns the ebiten.GeoM equivalent to the affine Matrix33 given:
//
//	| a  b  tx |
//	| c  d  ty |
//	| 0  0  1  |
//
// The bottom row of the Matrix33 is ignored.
func GeoM(m orientation.Matrix33) ebiten.GeoM {
	g := ebiten.GeoM{}
	for i := range 2 {
		for j := range 3 {
			g.SetElement(i, j, float64(m[i][j]))
		}
	}
	return g
}

// FromGeoM returns the affine Matrix33 equivalent to the ebiten.GeoM given, with a bottom row of [0, 0, 1].
func FromGeoM(g ebiten.GeoM) orientation.Matrix33 {
	m := orientation.NewMatrix33()
	for i := range 2 {
		for j := range 3 {
			m[i][j] = float32(g.Element(i, j))
		}
	}
	return m
}

// IsAffine returns true if the bottom row of the Matrix33 is exactly [0, 0, 1], meaning it converts to a GeoM without loss.
func IsAffine(m orientation.Matrix33) bool {
	return m[2][0] == 0 && m[2][1] == 0 && m[2][2] == 1
}

// Rotation2D returns a GeoM rotating by the rotation's component around Z: the rotation is applied to +X and the angle of
// the result, projected onto the XY plane, is used. If +X is mapped onto (or within a hair of) the Z axis, the identity
// is returned.
func Rotation2D(q orientation.Quaternion) ebiten.GeoM {
	g := ebiten.GeoM{}
	x := q.Rot(orientation.VecX)
	x.Z = 0
	if x.MagnitudeSquared() < 1e-10 {
		return g
	}
	x = x.Unit()
	g.SetElement(0, 0, float64(x.X))
	g.SetElement(0, 1, float64(-x.Y))
	g.SetElement(1, 0, float64(x.Y))
	g.SetElement(1, 1, float64(x.X))
	return g
}

// DrawImageOptions returns a new set of ebiten.DrawImageOptions with its GeoM set from the affine Matrix33 given.
func DrawImageOptions(m orientation.Matrix33) *ebiten.DrawImageOptions {
	opt := &ebiten.DrawImageOptions{}
	opt.GeoM = GeoM(m)
	return opt
}
