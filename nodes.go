package bezier

// Nodes is the control polygon of a Bézier curve: one entry per control
// point, in curve order. A curve of degree d has d+1 nodes.
//
// Nodes is a read-only view for the functions in this package; none of them
// mutate or retain the slice. A curve must have at least one control point,
// and methods panic on an empty slice.
type Nodes []Point

// BoundingBox returns the smallest axis-aligned rectangle enclosing all
// control points.
//
// Because a Bézier curve lies within the convex hull of its control points,
// the returned rectangle also encloses the curve itself, though not always
// tightly. The result satisfies X0 ≤ X1 and Y0 ≤ Y1.
func (ns Nodes) BoundingBox() Rect {
	r := Rect{ns[0].X, ns[0].Y, ns[0].X, ns[0].Y}
	for _, pt := range ns[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Contains reports whether pt lies within the bounding box of the control
// polygon, boundaries included.
//
// Note that this is a property of the bounding box, not of the curve: a point
// inside the box may still be far from the curve. Unlike the box itself this
// test is exact, with no tolerance on the boundaries.
func (ns Nodes) Contains(pt Point) bool {
	bbox := ns.BoundingBox()
	return Interval{bbox.X0, bbox.X1}.Contains(pt.X) &&
		Interval{bbox.Y0, bbox.Y1}.Contains(pt.Y)
}
