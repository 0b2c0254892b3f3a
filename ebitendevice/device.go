// Package ebitendevice draws wiremesh triangles with Ebitengine. It provides a wiremesh.Device backed by Kage shaders,
// and a Window that drives a wiremesh.Pipeline from Ebitengine's update and draw callbacks.
package ebitendevice

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/wiremesh"

	_ "embed"
)

//go:embed shaders/solid.kage
var solidShaderSrc []byte

// DefaultLineWidth is the width, in pixels, that line loops are stroked with.
const DefaultLineWidth = 3

// Program is a compiled shader along with the color uniform it's drawn with.
type Program struct {
	Shader *ebiten.Shader
	Color  wiremesh.Color
}

// Device implements wiremesh.Device on top of an *ebiten.Image. Vertex buffers live in CPU memory; each draw call converts the
// bound buffer's normalized device coordinates to pixels on the target image and issues a DrawTrianglesShader call.
type Device struct {
	// Target is the image draw calls render to. Draw calls made while it's nil are dropped.
	Target    *ebiten.Image
	LineWidth float32

	buffers  [][]float32
	bound    int
	programs []*Program
	current  *Program

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewDevice creates a new Device with no target image.
func NewDevice() *Device {
	return &Device{
		LineWidth: DefaultLineWidth,
		bound:     -1,
		vertices:  make([]ebiten.Vertex, 0, 64),
		indices:   make([]uint16, 0, 64),
	}
}

// NewProgram compiles the flat color shader and registers it as a new program drawing with the color given.
func (device *Device) NewProgram(color wiremesh.Color) (wiremesh.ProgramHandle, error) {

	shader, err := ebiten.NewShader(solidShaderSrc)
	if err != nil {
		return 0, fmt.Errorf("compiling shader: %w", err)
	}

	return device.AddProgram(&Program{Shader: shader, Color: color}), nil

}

// AddProgram registers an already created Program, returning its handle.
func (device *Device) AddProgram(program *Program) wiremesh.ProgramHandle {
	device.programs = append(device.programs, program)
	return wiremesh.ProgramHandle(len(device.programs) - 1)
}

// Program returns the Program for the handle given, or nil if there's no such Program.
func (device *Device) Program(handle wiremesh.ProgramHandle) *Program {
	if int(handle) >= len(device.programs) {
		return nil
	}
	return device.programs[handle]
}

func (device *Device) NewVertexBuffer(data []float32) (wiremesh.BufferHandle, error) {
	if len(data)%3 != 0 {
		return 0, fmt.Errorf("vertex data length %d isn't a multiple of 3", len(data))
	}
	device.buffers = append(device.buffers, append([]float32{}, data...))
	return wiremesh.BufferHandle(len(device.buffers) - 1), nil
}

func (device *Device) BindVertexBuffer(buffer wiremesh.BufferHandle) {
	if int(buffer) >= len(device.buffers) {
		panic(fmt.Sprintf("ebitendevice: binding unknown vertex buffer %d", buffer))
	}
	device.bound = int(buffer)
}

func (device *Device) UpdateVertexBuffer(buffer wiremesh.BufferHandle, offset int, data []float32) {
	if int(buffer) >= len(device.buffers) {
		panic(fmt.Sprintf("ebitendevice: updating unknown vertex buffer %d", buffer))
	}
	dst := device.buffers[buffer]
	if offset < 0 || offset+len(data) > len(dst) {
		panic(fmt.Sprintf("ebitendevice: update of %d floats at %d overruns vertex buffer of %d", len(data), offset, len(dst)))
	}
	copy(dst[offset:], data)
}

// BufferData returns the current contents of the vertex buffer given.
func (device *Device) BufferData(buffer wiremesh.BufferHandle) []float32 {
	return device.buffers[buffer]
}

func (device *Device) UseProgram(program wiremesh.ProgramHandle) {
	device.current = device.Program(program)
}

func (device *Device) DrawArrays(primitive wiremesh.Primitive, first, count int) {

	if device.Target == nil || device.current == nil || device.bound < 0 || count < 3 {
		return
	}

	data := device.buffers[device.bound]

	if (first+count)*3 > len(data) {
		panic(fmt.Sprintf("ebitendevice: drawing vertices %d-%d from a buffer of %d", first, first+count, len(data)/3))
	}

	bounds := device.Target.Bounds()
	width, height := float32(bounds.Dx()), float32(bounds.Dy())

	points := make([][2]float32, count)
	for i := range points {
		v := (first + i) * 3
		points[i][0], points[i][1] = NDCToScreen(data[v], data[v+1], width, height)
	}

	device.vertices = device.vertices[:0]
	device.indices = device.indices[:0]

	switch primitive {

	case wiremesh.PrimitiveTriangles:

		for i := 0; i+2 < count; i += 3 {
			for j := i; j < i+3; j++ {
				device.vertices = append(device.vertices, ebiten.Vertex{
					DstX:   points[j][0],
					DstY:   points[j][1],
					ColorR: 1,
					ColorG: 1,
					ColorB: 1,
					ColorA: 1,
				})
				device.indices = append(device.indices, uint16(j))
			}
		}

	case wiremesh.PrimitiveLineLoop:

		var path vector.Path
		path.MoveTo(points[0][0], points[0][1])
		for _, p := range points[1:] {
			path.LineTo(p[0], p[1])
		}
		path.Close()

		device.vertices, device.indices = path.AppendVerticesAndIndicesForStroke(device.vertices, device.indices, &vector.StrokeOptions{
			Width:    device.LineWidth,
			LineJoin: vector.LineJoinRound,
		})

	}

	opt := &ebiten.DrawTrianglesShaderOptions{
		Uniforms: map[string]any{
			"Color": device.current.Color.Floats(),
		},
		AntiAlias: true,
	}

	device.Target.DrawTrianglesShader(device.vertices, device.indices, device.current.Shader, opt)

}

// NDCToScreen maps a point in normalized device coordinates (-1 to 1 on both axes, +Y up) to pixel coordinates on a
// surface of the given size (+Y down).
func NDCToScreen(x, y, width, height float32) (float32, float32) {
	return (x + 1) / 2 * width, (1 - y) / 2 * height
}

var _ wiremesh.Device = (*Device)(nil)
