// Package domain contains the core value types of the simulation kernel:
// the closed disease-state enumeration, the lattice Grid, the stochastic
// rate Params and the errors the kernel can surface.
//
// The types here are deliberately free of any engine logic. The engine in
// internal/runtime mutates a Grid; everything else (display adapters, the
// HTTP server, the CLI) only ever sees copies.
package domain
