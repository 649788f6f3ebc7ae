//go:build !cgo && (linux || darwin || freebsd) && (amd64 || arm64)

package native

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"unsafe"

	"github.com/gogpu/filament/driver"
)

func TestSignatures(t *testing.T) {
	seen := make(map[string]sym)
	for i, sig := range signatures {
		s := sym(i)
		if !strings.HasPrefix(sig.name, "filc_") {
			t.Errorf("signatures[%d].name = %q, want filc_ prefix", i, sig.name)
		}
		if sig.ret == nil {
			t.Errorf("%s: nil return type", sig.name)
		}
		for j, a := range sig.args {
			if a == nil {
				t.Errorf("%s: nil type for argument %d", sig.name, j)
			}
		}
		if prev, ok := seen[sig.name]; ok {
			t.Errorf("%s bound by both %d and %d", sig.name, prev, s)
		}
		seen[sig.name] = s
	}
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"filc_buffer_descriptor", unsafe.Sizeof(cBufferDescriptor{}), 32},
		{"filc_pixel_buffer_descriptor", unsafe.Sizeof(cPixelBufferDescriptor{}), 48},
		{"pixel left offset", unsafe.Offsetof(cPixelBufferDescriptor{}.left), 36},
		{"Viewport", unsafe.Sizeof(driver.Viewport{}), 16},
		{"ClearOptions", unsafe.Sizeof(driver.ClearOptions{}), 20},
		{"DisplayInfo", unsafe.Sizeof(driver.DisplayInfo{}), 24},
		{"FrameRateOptions", unsafe.Sizeof(driver.FrameRateOptions{}), 12},
		{"AmbientOcclusionOptions", unsafe.Sizeof(driver.AmbientOcclusionOptions{}), 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("size = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestOpenMissingLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libfilament_c.so")
	d, err := Open(path)
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Fatalf("Open() error = %v, want ErrLibraryNotFound", err)
	}
	if d != nil {
		t.Errorf("Open() = %v, want nil", d)
	}
}

func TestReleaseTrampoline(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	var (
		calls   int
		gotPtr  unsafe.Pointer
		gotSize uintptr
		gotUser uintptr
	)
	desc := driver.BufferDescriptor{
		Buffer: unsafe.Pointer(&data[0]),
		Size:   uintptr(len(data)),
		User:   42,
		Callback: func(buffer unsafe.Pointer, size, user uintptr) {
			calls++
			gotPtr, gotSize, gotUser = buffer, size, user
		},
	}

	before := pendingReleases()
	cd := descriptor(&desc)
	if cd.callback == 0 {
		t.Fatal("descriptor() callback = 0, want trampoline")
	}
	if cd.user == desc.User {
		t.Errorf("descriptor() user = %d, want a driver token", cd.user)
	}
	if got := pendingReleases(); got != before+1 {
		t.Errorf("pendingReleases() = %d, want %d", got, before+1)
	}

	releaseTrampoline(cd.buffer, cd.size, cd.user)
	if calls != 1 {
		t.Fatalf("callback calls = %d, want 1", calls)
	}
	if gotPtr != desc.Buffer || gotSize != desc.Size || gotUser != 42 {
		t.Errorf("callback(%p, %d, %d), want (%p, %d, 42)", gotPtr, gotSize, gotUser, desc.Buffer, desc.Size)
	}

	// A second call with the same token is dropped.
	releaseTrampoline(cd.buffer, cd.size, cd.user)
	if calls != 1 {
		t.Errorf("callback calls after repeat = %d, want 1", calls)
	}
	if got := pendingReleases(); got != before {
		t.Errorf("pendingReleases() = %d, want %d", got, before)
	}
}

func TestStrings(t *testing.T) {
	for _, s := range []string{"", "main", "view with spaces"} {
		c := cstring(s)
		if c[len(c)-1] != 0 {
			t.Errorf("cstring(%q) not NUL-terminated", s)
		}
		if got := gostring(unsafe.Pointer(&c[0])); got != s {
			t.Errorf("gostring(cstring(%q)) = %q", s, got)
		}
	}
	if got := gostring(nil); got != "" {
		t.Errorf("gostring(nil) = %q, want empty", got)
	}
}

func TestBoolArg(t *testing.T) {
	if boolArg(true) != 1 || boolArg(false) != 0 {
		t.Errorf("boolArg() = %d/%d, want 1/0", boolArg(true), boolArg(false))
	}
}
