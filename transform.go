package wiremesh

import (
	"fmt"
	"math"

	"github.com/solarlune/wiremesh/math32"
)

// DefaultMeshScale is the factor raw mesh vertices are multiplied by before being rotated; meshes tend to be authored in
// large real-world units, so this brings them down to normalized device coordinates.
const DefaultMeshScale = 1.0 / 2000000

// YRotationDetune is how much faster the Y axis spins than the X and Z axes, so the mesh never settles into an axis-aligned view.
const YRotationDetune = 1.01

// ProjectionMode selects the projection applied after the three rotations.
type ProjectionMode int

const (
	ProjectionFlat        ProjectionMode = iota // Keeps X and Y as they are and flattens Z to 0; there's no perspective
	ProjectionIdentity                          // Leaves all three axes untouched
	ProjectionPerspective                       // A real perspective projection with a divide by W
)

func (mode ProjectionMode) String() string {
	switch mode {
	case ProjectionFlat:
		return "flat"
	case ProjectionIdentity:
		return "identity"
	case ProjectionPerspective:
		return "perspective"
	}
	return fmt.Sprintf("ProjectionMode(%d)", int(mode))
}

// ParseProjectionMode returns the ProjectionMode named by the string given ("flat", "identity", or "perspective").
func ParseProjectionMode(name string) (ProjectionMode, error) {
	for _, mode := range []ProjectionMode{ProjectionFlat, ProjectionIdentity, ProjectionPerspective} {
		if mode.String() == name {
			return mode, nil
		}
	}
	return ProjectionFlat, fmt.Errorf("unknown projection mode %q", name)
}

const (
	perspectiveFOV      = 45
	perspectiveNear     = 0.1
	perspectiveFar      = 100
	perspectiveDistance = 2
)

// NewProjection builds the projection Matrix4 for the given mode.
func NewProjection(mode ProjectionMode) Matrix4 {
	switch mode {
	case ProjectionIdentity:
		return NewMatrix4()
	case ProjectionPerspective:
		// Aspect is handled afterwards by the Transformer, the same as for the other modes.
		return NewMatrix4Perspective(math32.ToRadians(perspectiveFOV), 1, perspectiveNear, perspectiveFar, perspectiveDistance)
	}
	return NewMatrix4FlatProjection()
}

// TickAngle converts a tick count to the rotation angle, in radians, that it represents: one degree per tick.
func TickAngle(tick int) float64 {
	return float64(tick) * math.Pi / 180
}

// FrameState holds the matrices for a single frame. It is rebuilt from the tick on every update and nothing carries over
// from the previous frame.
type FrameState struct {
	Tick       int
	RotationX  Matrix4
	RotationY  Matrix4
	RotationZ  Matrix4
	Rotation   Matrix4 // RotationX, RotationY, and RotationZ combined, in that order
	Projection Matrix4
	Mode       ProjectionMode
}

// NewFrameState derives the three rotation matrices and the projection matrix for the tick given.
func NewFrameState(tick int, mode ProjectionMode) FrameState {

	theta := TickAngle(tick)

	sx, cx := math32.Sincos(theta)
	sy, cy := math32.Sincos(theta * YRotationDetune)
	sz, cz := math32.Sincos(theta)

	state := FrameState{
		Tick:       tick,
		RotationX:  NewMatrix4RotateX(sx, cx),
		RotationY:  NewMatrix4RotateY(sy, cy),
		RotationZ:  NewMatrix4RotateZ(sz, cz),
		Projection: NewProjection(mode),
		Mode:       mode,
	}

	state.Rotation = state.RotationX.Mult(state.RotationY).Mult(state.RotationZ)

	return state

}

// Transformer maps mesh triangles into screen space. It owns the tick counter and the aspect ratio of the output surface.
type Transformer struct {
	Scale  float32 // The factor raw vertices are multiplied by before rotating them
	aspect float32
	mode   ProjectionMode
	state  FrameState
}

// NewTransformer creates a new Transformer at tick 0 for a surface of the given size.
func NewTransformer(width, height int, mode ProjectionMode) *Transformer {
	tr := &Transformer{
		Scale:  DefaultMeshScale,
		aspect: 1,
		mode:   mode,
	}
	tr.Resize(width, height)
	tr.state = NewFrameState(0, mode)
	return tr
}

// Update advances the tick counter by one and rebuilds the FrameState from it.
func (tr *Transformer) Update() {
	tr.state = NewFrameState(tr.state.Tick+1, tr.mode)
}

// SetTick sets the tick counter directly, rebuilding the FrameState.
func (tr *Transformer) SetTick(tick int) {
	tr.state = NewFrameState(tick, tr.mode)
}

// Tick returns the current tick counter.
func (tr *Transformer) Tick() int {
	return tr.state.Tick
}

// State returns the current FrameState.
func (tr *Transformer) State() FrameState {
	return tr.state
}

// Resize recomputes the aspect ratio from the surface size given. Sizes that aren't positive (e.g. a minimized window)
// are ignored, keeping the previous aspect ratio.
func (tr *Transformer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	tr.aspect = float32(width) / float32(height)
}

// Aspect returns the current width / height ratio of the output surface.
func (tr *Transformer) Aspect() float32 {
	return tr.aspect
}

// Transform maps the raw Triangle into screen space, returning its vertices flattened into a new 9-float slice in the
// same order as the Triangle's.
func (tr *Transformer) Transform(tri Triangle) []float32 {

	var screen Triangle

	for i, v := range tri {
		p := tr.transformVertex(v)
		p.X /= tr.aspect
		screen[i] = p
	}

	return screen.Flatten()

}

func (tr *Transformer) transformVertex(v Vector3) Vector3 {

	state := &tr.state

	p := state.Rotation.MultVec(v.Scale(tr.Scale))

	if state.Mode == ProjectionPerspective {
		var w float32
		p, w = state.Projection.MultVecW(p)
		if w != 0 {
			p = p.Scale(1 / w)
		}
		return p
	}

	return state.Projection.MultVec(p)

}
