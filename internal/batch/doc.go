// Package batch implements row-oriented pixel kernels for the fast sprite
// path. Kernels operate on raw RGBA byte rows (4 bytes per pixel,
// non-premultiplied) and are required to be bit-exact with the scalar
// per-pixel implementations in the root package; the equivalence suites in
// the root package enforce this for every operation.
//
// The speed comes from memory layout, not from different math: opaque and
// transparent runs are detected and handled with copies or skips, and the
// remaining pixels use the exact same float64 arithmetic as the scalar path.
package batch
