// Package model assembles a scenario linear program: a time index set, a
// scenario index set, two bounded integer variable families x and y, a
// coefficient table P and one independent minimization objective
// P[t,s]*x[t,s] + y[t,s] per (t,s) pair.
//
// Build returns the model with the default dimensions (24 time steps,
// 4 scenarios, variables in 0..9, P = 1.0). New accepts a Spec for other
// dimensions. The package never solves the model; see package standard for
// the solver hand-off.
package model
