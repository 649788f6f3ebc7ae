package noop

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

func newEngine(t *testing.T, opts ...Option) (*Driver, driver.Engine) {
	t.Helper()
	d := New(opts...)
	e := d.CreateEngine(0)
	if e == 0 {
		t.Fatal("CreateEngine() returned null")
	}
	t.Cleanup(func() {
		if _, ok := d.engines[e]; ok {
			d.DestroyEngine(e)
		}
	})
	return d, e
}

func TestDriverName(t *testing.T) {
	if got := New().Name(); got != driver.DriverNoop {
		t.Errorf("Name() = %q, want %q", got, driver.DriverNoop)
	}
}

func TestRegistered(t *testing.T) {
	if !driver.IsRegistered(driver.DriverNoop) {
		t.Fatal("noop driver should be registered on import")
	}
	if d := driver.Get(driver.DriverNoop); d == nil {
		t.Error("Get(noop) returned nil")
	}
}

func TestEntityRegistryReuse(t *testing.T) {
	r := newEntityRegistry()

	a := r.create()
	if a == 0 {
		t.Fatal("create() returned the null entity")
	}
	if !r.isAlive(a) {
		t.Fatalf("isAlive(%#x) = false after create", a)
	}
	if !r.destroy(a) {
		t.Fatalf("destroy(%#x) = false", a)
	}
	if r.destroy(a) {
		t.Errorf("second destroy(%#x) = true, want false", a)
	}

	b := r.create()
	if b&entityIndexMask != a&entityIndexMask {
		t.Errorf("slot not reused: index %d, want %d", b&entityIndexMask, a&entityIndexMask)
	}
	if b == a {
		t.Errorf("reused entity %#x has the same generation", b)
	}
	if r.isAlive(a) {
		t.Errorf("stale entity %#x reported alive", a)
	}
	if r.isAlive(0) {
		t.Error("null entity reported alive")
	}
}

func TestEntityManager(t *testing.T) {
	d := New()
	em := d.EntityManager()

	out := make([]uint32, 4)
	d.EntityCreate(em, out)
	seen := make(map[uint32]bool)
	for _, e := range out {
		if e == 0 || seen[e] {
			t.Fatalf("EntityCreate() produced %v", out)
		}
		seen[e] = true
	}

	d.EntityDestroy(em, out[:2])
	for i, e := range out {
		want := i >= 2
		if got := d.EntityIsAlive(em, e); got != want {
			t.Errorf("EntityIsAlive(%#x) = %v, want %v", e, got, want)
		}
	}
}

func TestEngineBackendRejected(t *testing.T) {
	d := New()
	if e := d.CreateEngine(5); e != 0 {
		t.Errorf("CreateEngine(5) = %#x, want null", e)
	}
	if got := d.Created(KindEngine); got != 0 {
		t.Errorf("Created(Engine) = %d, want 0", got)
	}
}

func TestFailing(t *testing.T) {
	d, e := newEngine(t)
	d.SetFailing(KindScene)

	if s := d.CreateScene(e); s != 0 {
		t.Errorf("CreateScene() = %#x, want null", s)
	}
	if r := d.CreateRenderer(e); r == 0 {
		t.Error("CreateRenderer() returned null, only scenes should fail")
	} else {
		d.DestroyRenderer(e, r)
	}

	d.ClearFailing()
	if s := d.CreateScene(e); s == 0 {
		t.Error("CreateScene() returned null after ClearFailing")
	}
}

func TestFlushReleasesUploads(t *testing.T) {
	for _, async := range []bool{false, true} {
		name := "sync"
		var opts []Option
		if async {
			name = "async"
			opts = append(opts, WithAsyncRelease())
		}
		t.Run(name, func(t *testing.T) {
			d, e := newEngine(t, opts...)

			b := d.NewIndexBufferBuilder()
			d.IndexBufferBuilderIndexCount(b, 3)
			d.IndexBufferBuilderBufferType(b, indexTypeUShort)
			ib := d.IndexBufferBuilderBuild(b, e)
			d.DestroyIndexBufferBuilder(b)
			if ib == 0 {
				t.Fatal("IndexBufferBuilderBuild() returned null")
			}

			data := []uint16{0, 1, 2}
			var calls atomic.Int32
			var gotSize atomic.Uintptr
			desc := driver.BufferDescriptor{
				Buffer: unsafe.Pointer(&data[0]),
				Size:   6,
				Callback: func(_ unsafe.Pointer, size uintptr, user uintptr) {
					calls.Add(1)
					gotSize.Store(size)
					if user != 7 {
						t.Errorf("callback user = %d, want 7", user)
					}
				},
				User: 7,
			}
			d.IndexBufferSetBuffer(e, ib, &desc, 0)

			if got := d.PendingReleases(); got != 1 {
				t.Fatalf("PendingReleases() = %d, want 1", got)
			}
			if got := calls.Load(); got != 0 {
				t.Fatalf("callback fired before flush (%d calls)", got)
			}

			d.FlushAndWait(e)

			if got := calls.Load(); got != 1 {
				t.Errorf("callback calls = %d, want 1", got)
			}
			if got := gotSize.Load(); got != 6 {
				t.Errorf("callback size = %d, want 6", got)
			}
			if got := d.Released(); got != 1 {
				t.Errorf("Released() = %d, want 1", got)
			}
			want := []byte{0, 0, 1, 0, 2, 0}
			if got := d.IndexBufferData(ib); string(got) != string(want) {
				t.Errorf("IndexBufferData() = %v, want %v", got, want)
			}

			d.FlushAndWait(e)
			if got := calls.Load(); got != 1 {
				t.Errorf("callback calls after second flush = %d, want 1", got)
			}
		})
	}
}

func TestDestroyEngineFlushes(t *testing.T) {
	d := New()
	e := d.CreateEngine(0)

	b := d.NewVertexBufferBuilder()
	d.VertexBufferBuilderVertexCount(b, 1)
	vb := d.VertexBufferBuilderBuild(b, e)
	d.DestroyVertexBufferBuilder(b)

	var calls int
	desc := driver.BufferDescriptor{
		Callback: func(unsafe.Pointer, uintptr, uintptr) { calls++ },
	}
	d.VertexBufferSetBufferAt(e, vb, 0, &desc, 0)
	d.DestroyEngine(e)

	if calls != 1 {
		t.Errorf("callback calls = %d, want 1", calls)
	}
	if got := d.Live(KindEngine); got != 0 {
		t.Errorf("Live(Engine) = %d, want 0", got)
	}
}

func TestVertexBufferBuildValidation(t *testing.T) {
	d, e := newEngine(t)

	tests := []struct {
		name    string
		buffers uint8
		count   uint32
		attrBuf uint8
		wantNil bool
	}{
		{"valid", 2, 3, 1, false},
		{"no vertices", 1, 0, 0, true},
		{"no buffers", 0, 3, 0, true},
		{"attribute out of range", 1, 3, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := d.NewVertexBufferBuilder()
			defer d.DestroyVertexBufferBuilder(b)
			d.VertexBufferBuilderBufferCount(b, tt.buffers)
			d.VertexBufferBuilderVertexCount(b, tt.count)
			d.VertexBufferBuilderAttribute(b, 0, tt.attrBuf, 0, 0, 8)
			vb := d.VertexBufferBuilderBuild(b, e)
			if (vb == 0) != tt.wantNil {
				t.Errorf("VertexBufferBuilderBuild() = %#x, want null %v", vb, tt.wantNil)
			}
			if vb != 0 {
				if got := d.VertexBufferVertexCount(vb); got != uint64(tt.count) {
					t.Errorf("VertexBufferVertexCount() = %d, want %d", got, tt.count)
				}
				d.DestroyVertexBuffer(e, vb)
			}
		})
	}
}

func TestTextureLevels(t *testing.T) {
	d, e := newEngine(t)

	b := d.NewTextureBuilder()
	d.TextureBuilderWidth(b, 123)
	d.TextureBuilderHeight(b, 456)
	d.TextureBuilderLevels(b, 0xff)
	tex := d.TextureBuilderBuild(b, e)
	d.DestroyTextureBuilder(b)
	if tex == 0 {
		t.Fatal("TextureBuilderBuild() returned null")
	}

	if got := d.TextureLevels(tex); got != 9 {
		t.Errorf("TextureLevels() = %d, want 9", got)
	}
	tests := []struct {
		level         uint64
		width, height uint64
	}{
		{0, 123, 456},
		{1, 61, 228},
		{7, 1, 3},
		{8, 1, 1},
	}
	for _, tt := range tests {
		if got := d.TextureWidth(tex, tt.level); got != tt.width {
			t.Errorf("TextureWidth(%d) = %d, want %d", tt.level, got, tt.width)
		}
		if got := d.TextureHeight(tex, tt.level); got != tt.height {
			t.Errorf("TextureHeight(%d) = %d, want %d", tt.level, got, tt.height)
		}
	}
	if got := d.TextureFormat(tex); got != formatRGBA8 {
		t.Errorf("TextureFormat() = %d, want %d", got, formatRGBA8)
	}
}

func TestTextureUnsupportedFormat(t *testing.T) {
	d, e := newEngine(t)

	if d.TextureFormatSupported(e, formatUnused) {
		t.Error("TextureFormatSupported(unused) = true")
	}
	b := d.NewTextureBuilder()
	defer d.DestroyTextureBuilder(b)
	d.TextureBuilderFormat(b, formatUnused)
	if tex := d.TextureBuilderBuild(b, e); tex != 0 {
		t.Errorf("TextureBuilderBuild() = %#x, want null", tex)
	}
}

func TestTransformHierarchy(t *testing.T) {
	d, e := newEngine(t)
	em := d.EntityManager()
	ents := make([]uint32, 2)
	d.EntityCreate(em, ents)
	parent, child := ents[0], ents[1]

	tm := d.TransformManager(e)
	translate := identity
	translate[12], translate[13], translate[14] = 1, 2, 3

	d.TransformCreate(tm, parent, 0, &translate)
	pi := d.TransformInstance(tm, parent)
	d.TransformCreate(tm, child, pi, &translate)
	ci := d.TransformInstance(tm, child)

	if got := d.TransformParent(tm, ci); got != parent {
		t.Errorf("TransformParent() = %#x, want %#x", got, parent)
	}
	world, ok := d.TransformWorldTransform(tm, ci)
	if !ok {
		t.Fatal("TransformWorldTransform() ok = false")
	}
	if world[12] != 2 || world[13] != 4 || world[14] != 6 {
		t.Errorf("world translation = %v, want [2 4 6]", world[12:15])
	}

	// A cycle is refused.
	d.TransformSetParent(tm, pi, ci)
	if got := d.TransformParent(tm, pi); got != 0 {
		t.Errorf("TransformParent(parent) = %#x after cyclic reparent, want 0", got)
	}

	d.TransformDestroy(tm, parent)
	if got := d.TransformParent(tm, ci); got != 0 {
		t.Errorf("TransformParent() = %#x after parent destroyed, want 0", got)
	}
	if _, ok := d.TransformTransform(tm, pi); ok {
		t.Error("TransformTransform() ok = true for destroyed instance")
	}
}

func TestCameraGetsIdentityTransform(t *testing.T) {
	d, e := newEngine(t)
	ents := make([]uint32, 1)
	d.EntityCreate(d.EntityManager(), ents)

	c := d.CreateCamera(e, ents[0])
	if c == 0 {
		t.Fatal("CreateCamera() returned null")
	}
	tm := d.TransformManager(e)
	inst := d.TransformInstance(tm, ents[0])
	got, ok := d.TransformTransform(tm, inst)
	if !ok || got != identity {
		t.Errorf("camera transform = %v, %v; want identity", got, ok)
	}

	d.CameraLookAt(c, [3]float64{0, 0, 5}, [3]float64{}, [3]float64{0, 1, 0})
	got, _ = d.TransformTransform(tm, inst)
	if got[14] != 5 {
		t.Errorf("camera z after LookAt = %v, want 5", got[14])
	}

	d.DestroyCamera(e, c)
	d.DestroyCamera(e, c)
	if got := d.Destroyed(KindCamera); got != 1 {
		t.Errorf("Destroyed(Camera) = %d, want 1", got)
	}
}

func TestSceneRenderableCount(t *testing.T) {
	d, e := newEngine(t)
	ents := make([]uint32, 2)
	d.EntityCreate(d.EntityManager(), ents)

	vbb := d.NewVertexBufferBuilder()
	d.VertexBufferBuilderVertexCount(vbb, 3)
	vb := d.VertexBufferBuilderBuild(vbb, e)
	d.DestroyVertexBufferBuilder(vbb)
	ibb := d.NewIndexBufferBuilder()
	d.IndexBufferBuilderIndexCount(ibb, 3)
	ib := d.IndexBufferBuilderBuild(ibb, e)
	d.DestroyIndexBufferBuilder(ibb)

	rb := d.NewRenderableBuilder(1)
	d.RenderableBuilderGeometry(rb, 0, 4, vb, ib)
	if !d.RenderableBuilderBuild(rb, e, ents[0]) {
		t.Fatal("RenderableBuilderBuild() = false")
	}
	d.DestroyRenderableBuilder(rb)

	s := d.CreateScene(e)
	d.SceneAddEntities(s, ents)
	if got := d.SceneRenderableCount(s); got != 1 {
		t.Errorf("SceneRenderableCount() = %d, want 1", got)
	}
	d.RenderableDestroy(e, ents[0])
	if got := d.SceneRenderableCount(s); got != 0 {
		t.Errorf("SceneRenderableCount() after destroy = %d, want 0", got)
	}
}

func TestMaterialDefaultInstance(t *testing.T) {
	d, e := newEngine(t)

	if m := d.CreateMaterial(e, nil); m != 0 {
		t.Errorf("CreateMaterial(nil) = %#x, want null", m)
	}
	m := d.CreateMaterial(e, []byte("package"))
	mi := d.MaterialDefaultInstance(m)
	if mi == 0 {
		t.Fatal("MaterialDefaultInstance() returned null")
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("DestroyMaterialInstance(default) did not panic")
			}
		}()
		d.DestroyMaterialInstance(e, mi)
	}()

	d.MaterialInstanceSetFloat(mi, "roughness", 0.5)
	if v, ok := d.MaterialInstanceParameter(mi, "roughness"); !ok || v != float32(0.5) {
		t.Errorf("MaterialInstanceParameter() = %v, %v; want 0.5, true", v, ok)
	}

	inst := d.MaterialCreateInstance(m)
	func() {
		defer func() {
			if recover() == nil {
				t.Error("DestroyMaterial() with a live instance did not panic")
			}
		}()
		d.DestroyMaterial(e, m)
	}()
	d.DestroyMaterialInstance(e, inst)
	d.DestroyMaterial(e, m)

	if got := d.Live(KindMaterial); got != 0 {
		t.Errorf("Live(Material) = %d, want 0", got)
	}
}

func TestRendererFrame(t *testing.T) {
	d, e := newEngine(t)
	r := d.CreateRenderer(e)
	sc := d.CreateHeadlessSwapChain(e, 64, 32, 0)
	v := d.CreateView(e)

	if !d.RendererBeginFrame(r, sc, 0) {
		t.Fatal("RendererBeginFrame() = false")
	}
	d.RendererRender(r, v)
	d.RendererEndFrame(r)

	stats := d.RendererStats(r)
	if stats.Frames != 1 || stats.ViewsRendered != 1 {
		t.Errorf("RendererStats() = %+v, want 1 frame and 1 view", stats)
	}
	if w, h := d.SwapChainSize(sc); w != 64 || h != 32 {
		t.Errorf("SwapChainSize() = %dx%d, want 64x32", w, h)
	}
}

func TestLiveBuilders(t *testing.T) {
	d, e := newEngine(t)

	vb := d.NewVertexBufferBuilder()
	ib := d.NewIndexBufferBuilder()
	tb := d.NewTextureBuilder()
	rb := d.NewRenderableBuilder(1)
	if got := d.LiveBuilders(); got != 4 {
		t.Errorf("LiveBuilders() = %d, want 4", got)
	}

	d.IndexBufferBuilderIndexCount(ib, 3)
	buf := d.IndexBufferBuilderBuild(ib, e)
	if buf == 0 {
		t.Fatal("IndexBufferBuilderBuild() = 0, want a buffer")
	}
	d.DestroyIndexBuffer(e, buf)
	d.DestroyVertexBufferBuilder(vb)
	d.DestroyIndexBufferBuilder(ib)
	d.DestroyTextureBuilder(tb)
	d.DestroyRenderableBuilder(rb)
	if got := d.LiveBuilders(); got != 0 {
		t.Errorf("LiveBuilders() = %d, want 0", got)
	}
}
