// SPDX-License-Identifier: MIT

// Package numeric is the single source of truth for the tolerance policy
// shared by every other euclid package.
//
// What & Why:
//
//	Every orientation conversion ends in an inverse-trigonometric call or a
//	normalisation by a possibly tiny norm. The constants and helpers here fix,
//	once, how close to a singular configuration a value may come before the
//	callers switch branches, and keep arguments of acos/asin inside [-1, 1]
//	when floating-point error pushes them a few ulps outside.
//
// Contents:
//   - DefaultEpsilon     - orthogonality/determinant tolerance for 3×3 validity checks.
//   - NearZeroEpsilon    - axis normalisation and angle-near-zero branches.
//   - SingularityEpsilon - documented, looser tolerance near singular configurations.
//   - Clamp / ClampUnit  - argument guards for inverse trigonometry.
//   - IsNearZero, EpsilonEquals, ShiftAngle, ContainsNaN.
//
// Determinism:
//
//	All helpers are pure functions; none allocates or keeps state.
package numeric
