// Package standard hands scenario objectives off to a simplex solver. Each
// objective becomes an independent LP over its own two columns, first in the
// inequality form min cᵀz s.t. G z ≤ h with the variable domains as rows of
// G, then in the standard form min cᵀz s.t. A z = b, z ≥ 0 produced by
// gonum's lp.Convert. Integrality of the columns is carried as a flag; the
// LP itself is the continuous relaxation.
package standard
