package ebitendevice

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/solarlune/wiremesh"
	"github.com/solarlune/wiremesh/colors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"
)

// outlinePulseSeconds is how long the outline takes to fade from one of its colors to the other.
const outlinePulseSeconds = 1.5

// WindowOptions configures a Window.
type WindowOptions struct {
	Title         string
	ClearColor    wiremesh.Color
	FillColor     wiremesh.Color
	OutlineColor  wiremesh.Color
	PulseColor    wiremesh.Color // The color the outline fades towards and back from; set it equal to OutlineColor for a steady outline
	DrawDebugText bool
}

// DefaultWindowOptions creates an instance of WindowOptions with some sensible defaults.
func DefaultWindowOptions() *WindowOptions {
	return &WindowOptions{
		Title:        "wiremesh",
		ClearColor:   colors.Black(),
		FillColor:    colors.Teal(),
		OutlineColor: colors.White(),
		PulseColor:   colors.Orange(),
	}
}

// Window runs a wiremesh.Pipeline as an Ebitengine game. Each Update advances the Pipeline by one tick, and each Draw
// renders one frame of it to the screen.
type Window struct {
	Pipeline      *wiremesh.Pipeline
	Device        *Device
	DrawDebugText bool

	options        WindowOptions
	outlineProgram *Program
	pulse          *gween.Tween
	pulseForward   bool

	width, height  int
	closeRequested bool
	err            error
}

// NewWindow creates the Device and shader programs, then the Renderer and Pipeline drawing the given Mesh.
// Passing nil for either options struct uses its defaults.
func NewWindow(mesh *wiremesh.Mesh, pipelineOptions *wiremesh.PipelineOptions, rendererOptions *wiremesh.RendererOptions, options *WindowOptions) (*Window, error) {

	if options == nil {
		options = DefaultWindowOptions()
	}

	if pipelineOptions == nil {
		pipelineOptions = wiremesh.DefaultPipelineOptions()
	}

	device := NewDevice()

	fill, err := device.NewProgram(options.FillColor)
	if err != nil {
		return nil, err
	}

	outline, err := device.NewProgram(options.OutlineColor)
	if err != nil {
		return nil, err
	}

	renderer, err := wiremesh.NewRenderer(device, fill, outline, rendererOptions)
	if err != nil {
		return nil, err
	}

	pipeline, err := wiremesh.NewPipeline(mesh, renderer, pipelineOptions)
	if err != nil {
		return nil, err
	}

	window := &Window{
		Pipeline:       pipeline,
		Device:         device,
		DrawDebugText:  options.DrawDebugText,
		options:        *options,
		outlineProgram: device.Program(outline),
		pulse:          gween.New(0, 1, outlinePulseSeconds, ease.InOutSine),
		pulseForward:   true,
		width:          pipelineOptions.Width,
		height:         pipelineOptions.Height,
	}

	return window, nil

}

// Close asks the Window to stop. The frame in progress is finished first; the following Update ends the game.
func (window *Window) Close() {
	window.closeRequested = true
}

func (window *Window) Update() error {

	if window.err != nil {
		return window.err
	}

	if window.closeRequested {
		return ebiten.Termination
	}

	window.Pipeline.Update()

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		window.Close()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		window.DrawDebugText = !window.DrawDebugText
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		window.Pipeline.Culler.BackfaceCulling = !window.Pipeline.Culler.BackfaceCulling
	}

	window.updatePulse(float32(1.0 / float64(ebiten.TPS())))

	return nil

}

func (window *Window) updatePulse(dt float32) {

	t, finished := window.pulse.Update(dt)

	if finished {
		window.pulseForward = !window.pulseForward
		if window.pulseForward {
			window.pulse = gween.New(0, 1, outlinePulseSeconds, ease.InOutSine)
		} else {
			window.pulse = gween.New(1, 0, outlinePulseSeconds, ease.InOutSine)
		}
	}

	window.outlineProgram.Color = window.options.OutlineColor.Lerp(window.options.PulseColor, t)

}

func (window *Window) Draw(screen *ebiten.Image) {

	screen.Fill(window.options.ClearColor.ToRGBA64())

	window.Device.Target = screen

	stats, err := window.Pipeline.Render()
	if err != nil {
		// Update hands this back to Ebitengine, which stops the game loop with it.
		window.err = err
		return
	}

	fps := ebiten.ActualFPS()

	ebiten.SetWindowTitle(fmt.Sprintf("%s - FPS: %.1f", window.options.Title, math.Round(fps*10)/10))

	if window.DrawDebugText {
		mesh := window.Pipeline.Mesh()
		txt := fmt.Sprintf(
			"FPS: %.1f\nTick: %d\nMesh: %s (%d triangles)\nFilled: %d, Outlined: %d, Culled: %d\nDraw calls: %d\nCulling: %t\nF1: Toggle this text\nF2: Toggle backface culling\nESC: Quit",
			fps,
			window.Pipeline.Tick(),
			mesh.Name,
			mesh.TriangleCount(),
			stats.Filled,
			stats.Outlined,
			window.Pipeline.Culler.Culled(),
			stats.DrawCalls,
			window.Pipeline.Culler.BackfaceCulling,
		)
		text.Draw(screen, txt, basicfont.Face7x13, 8, 16, colors.LightGray().ToRGBA64())
	}

}

// Layout uses the full size of the window as the screen, so the aspect ratio tracks the window as it's resized.
func (window *Window) Layout(outsideWidth, outsideHeight int) (int, int) {

	if outsideWidth != window.width || outsideHeight != window.height {
		window.width = outsideWidth
		window.height = outsideHeight
		window.Pipeline.Resize(outsideWidth, outsideHeight)
	}

	return outsideWidth, outsideHeight

}

// Err returns the error that stopped the Window, if any.
func (window *Window) Err() error {
	return window.err
}

var _ ebiten.Game = (*Window)(nil)
