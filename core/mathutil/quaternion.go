package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// QuatIdentity is the rotation that does nothing.
var QuatIdentity = Quat{0, 0, 0, 1}

// EulerXYZToQuat converts intrinsic Euler XYZ angles (radians) to a quaternion.
// XYZ is the default order of glTF-based scene graphs, so renderers can apply
// the result directly.
func EulerXYZToQuat(e Vec3) Quat {
	c1, s1 := math.Cos(e[0]*0.5), math.Sin(e[0]*0.5)
	c2, s2 := math.Cos(e[1]*0.5), math.Sin(e[1]*0.5)
	c3, s3 := math.Cos(e[2]*0.5), math.Sin(e[2]*0.5)

	return Quat{
		s1*c2*c3 + c1*s2*s3, // x
		c1*s2*c3 - s1*c2*s3, // y
		c1*c2*s3 + s1*s2*c3, // z
		c1*c2*c3 - s1*s2*s3, // w
	}
}

// Len returns the quaternion norm.
func (q Quat) Len() float64 {
	return math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}
