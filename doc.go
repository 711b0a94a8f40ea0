// Package bezier provides the numerically sensitive leaf primitives used by
// Bézier curve intersection and subdivision algorithms: the 2D cross product,
// axis-aligned bounding boxes of control polygons, and tolerance-aware
// handling of curve parameters in the unit interval.
//
// # Curve parameters and wiggle room
//
// Algorithms that intersect Bézier curves compute candidate parameter values
// through long chains of floating-point arithmetic. A mathematically valid
// parameter t ∈ [0, 1] can drift a few ULPs outside that interval by the time
// it reaches the caller. [WiggleInterval] distinguishes such harmless rounding
// noise, which it snaps back onto the boundary, from genuinely invalid
// parameters, which it rejects. [Interval.Contains] is its tolerance-free
// counterpart, for values that have already been normalized.
//
// # Bounding boxes
//
// A Bézier curve lies within the convex hull of its control points, so the
// bounding box of the control polygon ([Nodes.BoundingBox]) is a valid, though
// not always tight, bounding region for the curve itself. Intersection
// algorithms use it as a cheap rejection test before subdividing.
//
// # Purity
//
// Every operation in this package is a pure function over caller-owned
// values: no shared state, no I/O, no synchronization. All of them are safe
// to call concurrently, provided the caller does not mutate a [Nodes] slice
// while a call is reading it.
//
// Malformed inputs, such as an empty control polygon, are caller contract
// violations. They are not checked and panic via the runtime's bounds checks
// rather than returning errors. The single recoverable failure in the package
// is [WiggleInterval]'s comma-ok result.
package bezier
