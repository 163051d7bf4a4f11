package cullgo

import (
	"math"

	"github.com/codeyousef/cullgo/internal/simd"
)

// Vec3 is a 3-component float32 vector in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Mat4 is a 4x4 row-major matrix: element (r, c) is at index r*4+c.
type Mat4 [16]float32

// DepthRange identifies the clip-space depth convention of the
// projection matrix the view-projection was built from. This is a
// contract with the caller's projection math, not a free choice: using
// the wrong convention silently miscomputes the near and far planes.
type DepthRange uint8

const (
	// DepthZeroToOne is clip-space depth in [0, 1] with reversed z
	// (depth 1 at the near plane), the wgpu/Vulkan-style convention of
	// modern renderers. The far plane is row 2 directly.
	DepthZeroToOne DepthRange = iota
	// DepthNegOneToOne is clip-space depth in [-1, 1] (classic OpenGL).
	// The far plane is row 3 - row 2.
	DepthNegOneToOne
)

// Frustum plane indices, in extraction order.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Plane is a clip plane ax + by + cz + d = 0 with an inward-facing
// unit normal: Distance is zero on the plane and positive on the side
// the frustum interior lies.
type Plane struct {
	Normal Vec3
	D      float32
}

// Distance returns the signed distance from pt to the plane.
func (p Plane) Distance(pt Vec3) float32 {
	return p.Normal.X*pt.X + p.Normal.Y*pt.Y + p.Normal.Z*pt.Z + p.D
}

// Frustum holds six extracted clip planes plus their broadcast
// structure-of-arrays form, prepared once per camera per frame.
// Degenerate planes (near-zero raw normal from a singular matrix) are
// excluded from culling entirely - they never reject anything.
type Frustum struct {
	planes    [6]Plane
	valid     [6]bool
	broadcast []simd.CullPlane
}

// rawNormalEpsilon guards the normalization division. A raw plane
// whose normal length falls below it is degenerate.
const rawNormalEpsilon = 1e-8

// ExtractPlanes derives the six frustum planes from a row-major
// view-projection matrix using the Gribb-Hartmann row combinations:
// left = r3+r0, right = r3-r0, bottom = r3+r1, top = r3-r1,
// near = r3+r2, and far per the depth convention. Each plane is
// normalized so signed distances and projected radii share units.
//
// Degenerate planes are skipped rather than rejected; use
// ExtractPlanesStrict to surface them as an error.
func ExtractPlanes(m Mat4, depth DepthRange) *Frustum {
	f, _ := ExtractPlanesStrict(m, depth)
	return f
}

// ExtractPlanesStrict is ExtractPlanes returning a non-nil
// *ErrDegeneratePlane when the matrix produced one or more degenerate
// planes. The returned Frustum is still usable: degenerate planes are
// simply excluded from culling.
func ExtractPlanesStrict(m Mat4, depth DepthRange) (*Frustum, error) {
	r0 := m.row(0)
	r1 := m.row(1)
	r2 := m.row(2)
	r3 := m.row(3)

	var raw [6][4]float32
	raw[PlaneLeft] = add4(r3, r0)
	raw[PlaneRight] = sub4(r3, r0)
	raw[PlaneBottom] = add4(r3, r1)
	raw[PlaneTop] = sub4(r3, r1)
	raw[PlaneNear] = add4(r3, r2)
	if depth == DepthZeroToOne {
		raw[PlaneFar] = r2
	} else {
		raw[PlaneFar] = sub4(r3, r2)
	}

	return frustumFromRaw(raw)
}

// FrustumFromPlanes builds a Frustum from six explicit planes given as
// (normal, d) with inward-facing normals. Planes are normalized; a
// plane with a near-zero normal is treated as degenerate and skipped.
func FrustumFromPlanes(planes [6]Plane) *Frustum {
	var raw [6][4]float32
	for i, p := range planes {
		raw[i] = [4]float32{p.Normal.X, p.Normal.Y, p.Normal.Z, p.D}
	}
	f, _ := frustumFromRaw(raw)
	return f
}

func frustumFromRaw(raw [6][4]float32) (*Frustum, error) {
	f := &Frustum{
		broadcast: make([]simd.CullPlane, 0, 6),
	}

	var degenerate []int
	for i, p := range raw {
		length := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
		if length < rawNormalEpsilon {
			degenerate = append(degenerate, i)
			continue
		}

		inv := 1 / length
		plane := Plane{
			Normal: Vec3{X: p[0] * inv, Y: p[1] * inv, Z: p[2] * inv},
			D:      p[3] * inv,
		}
		f.planes[i] = plane
		f.valid[i] = true
		f.broadcast = append(f.broadcast, simd.CullPlane{
			Normal: simd.SplatVec3x4(plane.Normal.X, plane.Normal.Y, plane.Normal.Z),
			Offset: simd.SplatFloat32x4(plane.D),
		})
	}

	if len(degenerate) > 0 {
		return f, &ErrDegeneratePlane{Planes: degenerate}
	}
	return f, nil
}

// Planes returns the six extracted planes in extraction order.
// Degenerate slots are zero-valued.
func (f *Frustum) Planes() [6]Plane {
	return f.planes
}

// PlaneValid reports whether plane i participated in culling.
func (f *Frustum) PlaneValid(i int) bool {
	return f.valid[i]
}

// ContainsPoint tests a single point against all valid planes.
func (f *Frustum) ContainsPoint(pt Vec3) bool {
	for i, p := range f.planes {
		if !f.valid[i] {
			continue
		}
		if p.Distance(pt) < 0 {
			return false
		}
	}
	return true
}

// ContainsSphere tests a bounding sphere against all valid planes.
// Boundary-touching spheres are inside.
func (f *Frustum) ContainsSphere(center Vec3, radius float32) bool {
	for i, p := range f.planes {
		if !f.valid[i] {
			continue
		}
		if p.Distance(center)+radius < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB tests a single box without batching, using the same
// boundary-inclusive test as the batched driver.
func (f *Frustum) ContainsAABB(box AABB) bool {
	for i, p := range f.planes {
		if !f.valid[i] {
			continue
		}
		dist := p.Distance(box.Center)
		radius := abs32(box.HalfExtent.X*p.Normal.X) +
			abs32(box.HalfExtent.Y*p.Normal.Y) +
			abs32(box.HalfExtent.Z*p.Normal.Z)
		if dist+radius < 0 {
			return false
		}
	}
	return true
}

func (m Mat4) row(i int) [4]float32 {
	return [4]float32{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

func add4(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

func sub4(a, b [4]float32) [4]float32 {
	return [4]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
