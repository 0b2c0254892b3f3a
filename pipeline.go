package wiremesh

import (
	"errors"
	"fmt"
)

// ErrEmptyMesh is returned when a Pipeline is created without any triangles to draw.
var ErrEmptyMesh = errors.New("mesh has no triangles")

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	Width, Height   int            // Initial size of the output surface
	Scale           float32        // Factor raw mesh vertices are multiplied by; see DefaultMeshScale
	Projection      ProjectionMode // How rotated vertices are projected
	BackfaceCulling bool           // Whether triangles facing away from the viewer are discarded
}

// DefaultPipelineOptions creates an instance of PipelineOptions with some sensible defaults.
func DefaultPipelineOptions() *PipelineOptions {
	return &PipelineOptions{
		Width:           800,
		Height:          779,
		Scale:           DefaultMeshScale,
		Projection:      ProjectionFlat,
		BackfaceCulling: true,
	}
}

// Pipeline runs the per-frame work for a single Mesh: transforming each triangle to screen space, culling those facing away,
// and handing the rest to the Renderer.
type Pipeline struct {
	mesh        *Mesh
	renderer    *Renderer
	Transformer *Transformer
	Culler      *Culler
	lastStats   FrameStats
}

// NewPipeline creates a new Pipeline drawing the given Mesh with the given Renderer. Passing nil for options uses the defaults.
// An error wrapping ErrEmptyMesh is returned if the Mesh is nil or has no triangles.
func NewPipeline(mesh *Mesh, renderer *Renderer, options *PipelineOptions) (*Pipeline, error) {

	if mesh.TriangleCount() == 0 {
		return nil, ErrEmptyMesh
	}

	if renderer == nil {
		return nil, errors.New("pipeline needs a renderer")
	}

	if options == nil {
		options = DefaultPipelineOptions()
	}

	pipeline := &Pipeline{
		mesh:        mesh,
		renderer:    renderer,
		Transformer: NewTransformer(options.Width, options.Height, options.Projection),
		Culler:      NewCuller(),
	}

	if options.Scale != 0 {
		pipeline.Transformer.Scale = options.Scale
	}
	pipeline.Culler.BackfaceCulling = options.BackfaceCulling

	return pipeline, nil

}

// Mesh returns the Mesh the Pipeline draws.
func (pipeline *Pipeline) Mesh() *Mesh {
	return pipeline.mesh
}

// Tick returns the current tick counter.
func (pipeline *Pipeline) Tick() int {
	return pipeline.Transformer.Tick()
}

// Update advances the Pipeline by one tick.
func (pipeline *Pipeline) Update() {
	pipeline.Transformer.Update()
}

// Resize informs the Pipeline that the output surface changed size.
func (pipeline *Pipeline) Resize(width, height int) {
	pipeline.Transformer.Resize(width, height)
}

// LastStats returns the statistics of the most recently rendered frame.
func (pipeline *Pipeline) LastStats() FrameStats {
	return pipeline.lastStats
}

// Render draws one frame: every triangle in the Mesh, in order, is transformed and culled, and the visible ones are
// filled and then outlined.
func (pipeline *Pipeline) Render() (FrameStats, error) {

	pipeline.Culler.ResetCount()

	frame := pipeline.renderer.BeginFrame()

	for i, tri := range pipeline.mesh.Triangles {

		screenTri := pipeline.Transformer.Transform(tri)

		if !pipeline.Culler.Visible(screenTri) {
			continue
		}

		if err := frame.Submit(screenTri); err != nil {
			return FrameStats{}, fmt.Errorf("triangle %d: %w", i, err)
		}

	}

	pipeline.lastStats = frame.End()

	return pipeline.lastStats, nil

}
