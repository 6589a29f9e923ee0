// Package coarsen is a classical algebraic-multigrid (AMG) coarsening and
// interpolation toolkit in the style of Ruge–Stüben.
//
// Given a sparse operator A in compressed-row storage, the toolkit computes,
// in order:
//
//  1. a strength-of-connection matrix S          (package strength)
//  2. a coarse/fine splitting of the nodes       (package split)
//  3. a prolongation operator P                  (package interp)
//
// Everything is organized under four subpackages:
//
//	csr/      — the CRS container, transpose, dense adapters, numeric helpers
//	strength/ — classical strength-of-connection measures
//	split/    — Ruge–Stüben and CLJP splittings, compatible-relaxation helper
//	interp/   — direct, standard, modified, extended and extended+i prolongators
//
// All operations are single-threaded, deterministic, and free of global
// state: each is a pure transformation of CRS buffers whose scratch memory
// lives exactly as long as the call. Cycle orchestration, smoothers and
// matrix I/O are deliberately left to the caller.
package coarsen
