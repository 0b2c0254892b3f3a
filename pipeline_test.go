package wiremesh

import (
	"errors"
	"testing"
)

func newTestPipeline(t *testing.T, mesh *Mesh, options *PipelineOptions) (*Pipeline, *fakeDevice) {
	t.Helper()
	renderer, device := newTestRenderer(t, nil)
	pipeline, err := NewPipeline(mesh, renderer, options)
	if err != nil {
		t.Fatal(err)
	}
	return pipeline, device
}

func TestNewPipelineEmptyMesh(t *testing.T) {

	renderer, _ := newTestRenderer(t, nil)

	for _, mesh := range []*Mesh{nil, NewMesh("empty")} {
		if _, err := NewPipeline(mesh, renderer, nil); !errors.Is(err, ErrEmptyMesh) {
			t.Errorf("expected ErrEmptyMesh, got %v", err)
		}
	}

}

func TestPipelineCubeAtTickZero(t *testing.T) {

	// At tick 0 nothing is rotated, so with the flat projection only the +Z face is wound counter-clockwise on screen.
	// The -Z face is wound clockwise, and the four side faces collapse to lines.
	pipeline, device := newTestPipeline(t, NewCube(1000000), nil)

	stats, err := pipeline.Render()
	if err != nil {
		t.Fatal(err)
	}

	if stats != (FrameStats{Filled: 2, Outlined: 2, DrawCalls: 4}) {
		t.Errorf("stats = %+v", stats)
	}

	if pipeline.Culler.Culled() != 10 {
		t.Errorf("culled = %d, want 10", pipeline.Culler.Culled())
	}

	if pipeline.LastStats() != stats {
		t.Error("LastStats doesn't match the returned stats")
	}

	// The first triangle of the +Z face is (-h, -h), (h, -h), (h, h), scaled to half a unit; the aspect is 800 / 779.
	aspect := float32(800) / float32(779)
	first := device.draws[0].vertices

	if !(Vector3{first[0], first[1], 0}).Equals(Vector3{-0.5 / aspect, -0.5, 0}, 1e-6) {
		t.Errorf("first drawn vertex = %v", first[:3])
	}

}

func TestPipelineUnitSizedMesh(t *testing.T) {

	mesh, err := LoadOBJData([]byte(testTriangleOBJ), nil)
	if err != nil {
		t.Fatal(err)
	}

	for _, culling := range []bool{true, false} {

		options := DefaultPipelineOptions()
		options.BackfaceCulling = culling

		pipeline, _ := newTestPipeline(t, mesh, options)

		stats, err := pipeline.Render()
		if err != nil {
			t.Fatal(err)
		}

		if stats != (FrameStats{Filled: 1, Outlined: 1, DrawCalls: 2}) {
			t.Errorf("culling %t: stats = %+v", culling, stats)
		}

	}

}

func TestPipelineCullingOff(t *testing.T) {

	options := DefaultPipelineOptions()
	options.BackfaceCulling = false

	pipeline, _ := newTestPipeline(t, NewCube(1000000), options)

	stats, err := pipeline.Render()
	if err != nil {
		t.Fatal(err)
	}

	// Both the +Z and -Z faces; the side faces have no area on screen either way.
	if stats.Filled != 4 || stats.Outlined != 4 {
		t.Errorf("stats = %+v", stats)
	}

}

func TestPipelineKeepsMeshOrder(t *testing.T) {

	// Three front-facing triangles, drawn at different X offsets so they can be told apart.
	mesh := NewMesh("strip")
	for i := 0; i < 3; i++ {
		x := float32(i) * 200000
		mesh.Triangles = append(mesh.Triangles, NewTriangle(
			Vector3{x, 0, 0},
			Vector3{x + 100000, 0, 0},
			Vector3{x, 100000, 0},
		))
	}

	options := DefaultPipelineOptions()
	options.Width, options.Height = 100, 100

	pipeline, device := newTestPipeline(t, mesh, options)

	if _, err := pipeline.Render(); err != nil {
		t.Fatal(err)
	}

	if len(device.draws) != 6 {
		t.Fatalf("expected 6 draws, got %d", len(device.draws))
	}

	for pass := 0; pass < 2; pass++ {
		for i := 0; i < 3; i++ {
			call := device.draws[pass*3+i]
			want := float32(i) * 0.1
			if d := call.vertices[0] - want; d > 1e-6 || d < -1e-6 {
				t.Errorf("pass %d draw %d starts at x = %f, want %f", pass, i, call.vertices[0], want)
			}
		}
	}

}

func TestPipelineUpdateAndResize(t *testing.T) {

	pipeline, _ := newTestPipeline(t, NewCube(1000000), nil)

	pipeline.Update()
	pipeline.Update()

	if pipeline.Tick() != 2 {
		t.Errorf("tick = %d, want 2", pipeline.Tick())
	}

	pipeline.Resize(1000, 500)

	if pipeline.Transformer.Aspect() != 2 {
		t.Errorf("aspect = %f, want 2", pipeline.Transformer.Aspect())
	}

	// A spinning cube always shows something.
	for i := 0; i < 360; i++ {
		pipeline.Update()
		stats, err := pipeline.Render()
		if err != nil {
			t.Fatal(err)
		}
		if stats.Filled == 0 {
			t.Fatalf("nothing drawn at tick %d", pipeline.Tick())
		}
		if stats.Filled != stats.Outlined {
			t.Fatalf("tick %d: filled %d but outlined %d", pipeline.Tick(), stats.Filled, stats.Outlined)
		}
	}

}

func TestPipelinePerspective(t *testing.T) {

	options := DefaultPipelineOptions()
	options.Projection = ProjectionPerspective

	pipeline, _ := newTestPipeline(t, NewCube(400000), options)

	stats, err := pipeline.Render()
	if err != nil {
		t.Fatal(err)
	}

	// Looking straight at the +Z face, only it faces the camera.
	if stats.Filled != 2 {
		t.Errorf("filled = %d, want 2", stats.Filled)
	}

}

func BenchmarkPipelineRender(b *testing.B) {

	device := &fakeDevice{}
	renderer, err := NewRenderer(device, testFillProgram, testOutlineProgram, nil)
	if err != nil {
		b.Fatal(err)
	}

	pipeline, err := NewPipeline(NewCube(1000000), renderer, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		pipeline.Update()
		if _, err := pipeline.Render(); err != nil {
			b.Fatal(err)
		}
		device.draws = device.draws[:0]
	}

}
