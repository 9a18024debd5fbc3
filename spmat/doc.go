// Package spmat implements the supporting sparse-matrix algebra (C9):
// the spmat text file format, Gauss-Jordan reduction over GF(2),
// encoder/decoder derivation via column permutation, greedy
// column-overlap pruning, and the random regular matrix generator.
//
// Matrix is a plain, mutable-by-replacement value type (unlike
// tanner.Graph, which is immutable once built): every transform in this
// package takes a *Matrix and returns a new *Matrix, leaving its input
// untouched. Construct a tanner.Graph from the final Matrix via
// tanner.Build(m.N, m.M, m.DC, m.DV, m.Rows) once the matrix utilities
// have produced the H you want to decode.
package spmat
