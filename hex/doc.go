// Package hex provides the hexagonal coordinate system for package lattice.
//
// Coordinates are axial (q, r) with the implicit cube component s = -q - r.
// The direction table runs clockwise from East on a pointy-top layout with r
// growing downwards:
//
//	E(+1,0) SE(0,+1) SW(-1,+1) W(-1,0) NW(0,-1) NE(+1,-1)
//
// and the inverse of direction i is (i+3) mod 6.
//
// Shapes:
//
//   - Hexagon: all cells within a radius of the origin. 3R(R+1)+1 cells,
//     indexed by r ascending, then q ascending. This is the canonical shape.
//   - Parallelogram: q in [0,W), r in [0,H), index r*W + q; each axis may wrap.
//   - Rectangle: W×H offset layout, index row*W + col. The layout is one of
//     odd-r (default), even-r, odd-q or even-q. Either axis may wrap; the
//     shoved axis (rows for -r, columns for -q) needs an even extent to wrap.
//
// Distance, Ring and Spiral work on cube coordinates and do not depend on any shape.
package hex
