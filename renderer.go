package wiremesh

import (
	"errors"
	"fmt"
)

// ErrInvalidSubmission is returned when a triangle handed to a Frame isn't made of (at least) 9 floats.
var ErrInvalidSubmission = errors.New("invalid triangle submission")

// Primitive is the kind of primitive a draw call assembles its vertices into.
type Primitive int

const (
	PrimitiveTriangles Primitive = iota // Filled triangles
	PrimitiveLineLoop                   // A closed outline connecting each vertex to the next and the last back to the first
)

func (primitive Primitive) String() string {
	switch primitive {
	case PrimitiveTriangles:
		return "triangles"
	case PrimitiveLineLoop:
		return "line loop"
	}
	return fmt.Sprintf("Primitive(%d)", int(primitive))
}

// BufferHandle identifies a vertex buffer created by a Device.
type BufferHandle uint32

// ProgramHandle identifies a shader program known to a Device.
type ProgramHandle uint32

// Device is the graphics backend the Renderer draws through. Vertex data is 3 floats (x, y, z) per vertex,
// in normalized device coordinates.
type Device interface {
	// NewVertexBuffer creates a vertex buffer initialized with a copy of the data given.
	NewVertexBuffer(data []float32) (BufferHandle, error)
	// BindVertexBuffer makes the buffer the source for subsequent draw calls.
	BindVertexBuffer(buffer BufferHandle)
	// UpdateVertexBuffer overwrites the buffer's contents starting at the float offset given.
	UpdateVertexBuffer(buffer BufferHandle, offset int, data []float32)
	// UseProgram selects the shader program subsequent draw calls are made with.
	UseProgram(program ProgramHandle)
	// DrawArrays draws count vertices from the bound buffer, starting at vertex first.
	DrawArrays(primitive Primitive, first, count int)
}

// RendererOptions alters how a Renderer draws.
type RendererOptions struct {
	// RewriteZ makes the Renderer copy each vertex's Z into the shared vertex buffer along with X and Y. When false (the default),
	// only X and Y are written, so the buffer keeps whatever Z it held before.
	RewriteZ bool
}

// DefaultRendererOptions creates an instance of RendererOptions with the default settings.
func DefaultRendererOptions() *RendererOptions {
	return &RendererOptions{}
}

// defaultTriangle is what the shared vertex buffer holds before anything is drawn.
var defaultTriangle = [9]float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// Renderer draws screen-space triangles through a Device, one triangle per draw call, reusing a single
// 9-float vertex buffer for each one. Every triangle is drawn twice: filled, then outlined.
type Renderer struct {
	device         Device
	fillProgram    ProgramHandle
	outlineProgram ProgramHandle
	buffer         BufferHandle
	vertices       []float32
	options        RendererOptions
}

// NewRenderer creates a new Renderer, creating its shared vertex buffer on the Device given. Passing nil for options
// uses the default options.
func NewRenderer(device Device, fillProgram, outlineProgram ProgramHandle, options *RendererOptions) (*Renderer, error) {

	if options == nil {
		options = DefaultRendererOptions()
	}

	renderer := &Renderer{
		device:         device,
		fillProgram:    fillProgram,
		outlineProgram: outlineProgram,
		vertices:       append([]float32{}, defaultTriangle[:]...),
		options:        *options,
	}

	buffer, err := device.NewVertexBuffer(renderer.vertices)
	if err != nil {
		return nil, fmt.Errorf("creating vertex buffer: %w", err)
	}

	renderer.buffer = buffer

	return renderer, nil

}

// SharedVertices returns a copy of the shared vertex buffer's current contents.
func (renderer *Renderer) SharedVertices() []float32 {
	return append([]float32{}, renderer.vertices...)
}

// BeginFrame starts a new Frame. The Frame's queues start out empty and belong to it alone.
func (renderer *Renderer) BeginFrame() *Frame {
	return &Frame{
		renderer: renderer,
		fill:     [][]float32{},
		outline:  [][]float32{},
	}
}

func (renderer *Renderer) drawQueue(queue [][]float32, program ProgramHandle, primitive Primitive) int {

	renderer.device.UseProgram(program)

	for _, tri := range queue {
		renderer.uploadTriangle(tri)
		renderer.device.DrawArrays(primitive, 0, 3)
	}

	return len(queue)

}

func (renderer *Renderer) uploadTriangle(tri []float32) {

	for v := 0; v < 3; v++ {
		renderer.vertices[v*3] = tri[v*3]
		renderer.vertices[v*3+1] = tri[v*3+1]
		if renderer.options.RewriteZ {
			renderer.vertices[v*3+2] = tri[v*3+2]
		}
	}

	renderer.device.UpdateVertexBuffer(renderer.buffer, 0, renderer.vertices)

}

// FrameStats reports what a Frame drew.
type FrameStats struct {
	Filled    int // Triangles drawn in the fill pass
	Outlined  int // Triangles drawn in the outline pass
	DrawCalls int
}

// Frame collects the visible triangles for one frame into a fill queue and an outline queue, then draws them when ended.
type Frame struct {
	renderer *Renderer
	fill     [][]float32
	outline  [][]float32
}

// Submit queues a flattened screen-space triangle to be both filled and outlined. tri must hold at least 9 floats; if it doesn't,
// an error wrapping ErrInvalidSubmission is returned and nothing is queued. Only the first 9 floats are kept.
func (frame *Frame) Submit(tri []float32) error {

	if len(tri) < 9 {
		return fmt.Errorf("%w: got %d floats, need 9", ErrInvalidSubmission, len(tri))
	}

	queued := append([]float32{}, tri[:9]...)

	frame.fill = append(frame.fill, queued)
	frame.outline = append(frame.outline, queued)

	return nil

}

// FillQueue returns the number of triangles waiting to be filled.
func (frame *Frame) FillQueue() int {
	return len(frame.fill)
}

// OutlineQueue returns the number of triangles waiting to be outlined.
func (frame *Frame) OutlineQueue() int {
	return len(frame.outline)
}

// End draws the Frame: every queued triangle is filled with the fill program, and only then is every queued triangle outlined
// with the outline program. Both queues are emptied afterwards, so ending a Frame a second time draws nothing.
func (frame *Frame) End() FrameStats {

	stats := FrameStats{}

	if len(frame.fill) == 0 && len(frame.outline) == 0 {
		return stats
	}

	renderer := frame.renderer

	renderer.device.BindVertexBuffer(renderer.buffer)

	stats.Filled = renderer.drawQueue(frame.fill, renderer.fillProgram, PrimitiveTriangles)
	stats.Outlined = renderer.drawQueue(frame.outline, renderer.outlineProgram, PrimitiveLineLoop)
	stats.DrawCalls = stats.Filled + stats.Outlined

	frame.fill = frame.fill[:0]
	frame.outline = frame.outline[:0]

	return stats

}
