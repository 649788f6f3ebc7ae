// Command filademo renders a textured triangle into a headless swapchain.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/filament"
	"github.com/gogpu/filament/driver"
)

func main() {
	var (
		width    = flag.Uint("width", 800, "swapchain width")
		height   = flag.Uint("height", 600, "swapchain height")
		frames   = flag.Int("frames", 3, "number of frames to render")
		drv      = flag.String("driver", "", "driver name: native, noop or empty for the best available")
		material = flag.String("material", "", "compiled material package (.filamat)")
		verbose  = flag.Bool("v", false, "log object lifetimes")
	)
	flag.Parse()

	if *verbose {
		filament.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	log.Printf("drivers available: %v", driver.Available())

	engine, err := filament.NewEngine(filament.BackendDefault, filament.WithDriverName(*drv))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer engine.Release()
	log.Printf("engine on %s (driver %s)", engine.Backend(), engine.Driver().Name())

	if err := run(engine, uint32(*width), uint32(*height), *frames, *material); err != nil {
		log.Fatal(err)
	}
	engine.FlushAndWait()
	log.Printf("rendered %d frames, %d buffers in flight", *frames, engine.InFlightBuffers())
}

func run(engine *filament.Engine, width, height uint32, frames int, materialPath string) error {
	renderer, err := engine.CreateRenderer()
	if err != nil {
		return err
	}
	defer renderer.Release()

	swapChain, err := engine.CreateHeadlessSwapChain(width, height, filament.SwapChainReadable)
	if err != nil {
		return err
	}
	defer swapChain.Release()

	scene, err := engine.CreateScene()
	if err != nil {
		return err
	}
	defer scene.Release()

	view, err := engine.CreateView()
	if err != nil {
		return err
	}
	defer view.Release()

	em := engine.EntityManager()
	cameraEntity := em.Create()
	defer em.Destroy(cameraEntity)
	camera, err := engine.CreateCamera(cameraEntity)
	if err != nil {
		return err
	}
	defer camera.Release()

	aspect := float64(width) / float64(height)
	camera.SetProjection(filament.ProjectionOrtho, -aspect, aspect, -1, 1, 0, 1)

	view.SetScene(scene)
	view.SetCamera(camera)
	view.SetViewport(swapChain.Viewport())
	view.SetName("filademo")

	opts := filament.DefaultClearOptions()
	opts.ClearColor = [4]float32{0.1, 0.125, 0.25, 1}
	renderer.SetClearOptions(opts)

	triangle, err := newTriangle(engine, materialPath)
	if err != nil {
		return err
	}
	defer triangle.release()
	scene.Add(triangle.entity)

	for range frames {
		if renderer.BeginFrame(swapChain, 0) {
			renderer.Render(view)
			renderer.EndFrame()
		}
	}
	return nil
}

// triangle is a renderable entity and the resources it draws with.
type triangle struct {
	engine   *filament.Engine
	entity   filament.Entity
	vertices *filament.VertexBuffer
	indices  *filament.IndexBuffer
	texture  *filament.Texture
	material *filament.Material
	instance *filament.MaterialInstance
}

func newTriangle(engine *filament.Engine, materialPath string) (*triangle, error) {
	tr := &triangle{engine: engine, entity: engine.EntityManager().Create()}

	vb, err := filament.NewVertexBufferBuilder().
		BufferCount(1).
		VertexCount(3).
		Attribute(filament.AttributePosition, 0, filament.AttributeFloat2, 0, 16).
		Attribute(filament.AttributeUV0, 0, filament.AttributeFloat2, 8, 16).
		Build(engine)
	if err != nil {
		tr.release()
		return nil, err
	}
	tr.vertices = vb
	vb.SetBufferAt(0, filament.NewBuffer([]float32{
		-0.8, -0.8, 0, 0,
		0.8, -0.8, 1, 0,
		0, 0.8, 0.5, 1,
	}), 0)

	ib, err := filament.NewIndexBufferBuilder().
		IndexCount(3).
		BufferType(filament.IndexUShort).
		Build(engine)
	if err != nil {
		tr.release()
		return nil, err
	}
	tr.indices = ib
	ib.SetBuffer(filament.NewBuffer([]uint16{0, 1, 2}), 0)

	rb := filament.NewRenderableBuilder(1).
		Geometry(0, filament.PrimitiveTriangles, vb, ib).
		BoundingBox(filament.Box{HalfExtent: [3]float32{1, 1, 1}}).
		Culling(false)

	if err := tr.loadTexture(); err != nil {
		tr.release()
		return nil, err
	}
	if materialPath != "" {
		if err := tr.loadMaterial(materialPath); err != nil {
			tr.release()
			return nil, err
		}
		rb.Material(0, tr.instance)
	}

	if err := rb.Build(engine, tr.entity); err != nil {
		tr.release()
		return nil, err
	}
	return tr, nil
}

func (tr *triangle) loadMaterial(path string) error {
	pkg, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tr.material, err = tr.engine.CreateMaterial(pkg)
	if err != nil {
		return err
	}
	tr.instance, err = tr.material.CreateInstance()
	if err != nil {
		return err
	}

	sampler := filament.NewTextureSampler(filament.MinLinearMipmapLinear, filament.MagLinear, filament.WrapRepeat)
	sampler.Anisotropy = 8
	tr.instance.SetTexture("albedo", tr.texture, sampler)
	return nil
}

// loadTexture uploads a gradient with a full mip chain.
func (tr *triangle) loadTexture() error {
	const size = 256
	var err error
	tr.texture, err = filament.NewTextureBuilder().
		Width(size).
		Height(size).
		Levels(0xff).
		Format(filament.FormatRGBA8).
		Build(tr.engine)
	if err != nil {
		return err
	}
	tr.texture.SetImage(0, filament.NewImageBuffer(gradient(64), image.Pt(size, size)),
		filament.PixelRGBA, filament.PixelUByte)
	tr.texture.GenerateMipmaps()
	return nil
}

func (tr *triangle) release() {
	tr.engine.RenderableManager().Destroy(tr.entity)
	tr.engine.EntityManager().Destroy(tr.entity)
	if tr.instance != nil {
		tr.instance.Release()
	}
	if tr.material != nil {
		tr.material.Release()
	}
	if tr.texture != nil {
		tr.texture.Release()
	}
	if tr.indices != nil {
		tr.indices.Release()
	}
	if tr.vertices != nil {
		tr.vertices.Release()
	}
}

// gradient returns a size x size image fading from red to blue.
func gradient(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := range size {
		for x := range size {
			t := float64(x) / float64(size-1)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(255 * (1 - t)),
				G: uint8(y * 255 / (size - 1)),
				B: uint8(255 * t),
				A: 255,
			})
		}
	}
	return img
}
