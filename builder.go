package filament

import "github.com/gogpu/filament/driver"

// recorder collects builder settings until Build replays them on a native
// builder of type B. It is not safe for concurrent use.
type recorder[B any] struct {
	kind  string
	ops   []func(driver.Driver, B)
	built bool
}

func (r *recorder[B]) record(op func(driver.Driver, B)) {
	if r.built {
		panic("filament: " + r.kind + " builder used after Build")
	}
	r.ops = append(r.ops, op)
}

// build creates the native builder, replays every setting, calls finish
// and destroys the native builder whatever finish returned. A recorder
// builds once.
func (r *recorder[B]) build(d driver.Driver, create func() B, destroy func(B), finish func(B)) {
	if r.built {
		panic("filament: " + r.kind + " builder already built")
	}
	r.built = true

	b := create()
	defer destroy(b)
	for _, op := range r.ops {
		op(d, b)
	}
	r.ops = nil
	finish(b)
}
