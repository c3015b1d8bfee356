package mathutil

// Reference directions in a tracked device's local frame.
var (
	// Forward is the direction a controller points at rest (-Z).
	Forward = Vec3{0, 0, -1}

	// ClipReference is rotated by the controller orientation to obtain the
	// normal of the clipping plane it carries.
	ClipReference = Vec3{0, -1, 0}

	// UnitScale leaves a transform's scale untouched.
	UnitScale = Vec3{1, 1, 1}
)

// Epsilon is the tolerance used when comparing decomposed transforms.
const Epsilon = 1e-9
