package libutil

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const InvalidAddress uintptr = 0xffff_ffff_ffff_ffff

type Deleter interface {
	Delete()
}

type DeleterFunc func()

func (fn DeleterFunc) Delete() {
	fn()
}

// Releaser deletes everything it was given in reverse order of acquisition.
// The zero value is ready to use.
type Releaser struct {
	held []Deleter
}

func (r *Releaser) Hold(d Deleter) {
	r.held = append(r.held, d)
}

func (r *Releaser) HoldFunc(fn func()) {
	r.Hold(DeleterFunc(fn))
}

func (r *Releaser) Len() int {
	return len(r.held)
}

// Release may be called more than once; later calls only release what was
// acquired since the previous call.
func (r *Releaser) Release() {
	for i := len(r.held) - 1; i >= 0; i-- {
		r.held[i].Delete()
		r.held[i] = nil
	}
	r.held = r.held[:0]
}

// Converts a normalized color to 8 bit per channel, clamping to [0, 1].
func ToRGBA8(c mgl32.Vec4) [4]uint8 {
	var out [4]uint8
	for i, v := range c {
		v = math32.Min(math32.Max(v, 0), 1)
		out[i] = uint8(math32.Floor(v*0xff + 0.5))
	}
	return out
}

// Reports whether two 8 bit colors differ by at most tolerance in every channel.
func ColorNear(a, b [4]uint8, tolerance uint8) bool {
	for i := range a {
		d := math32.Abs(float32(a[i]) - float32(b[i]))
		if d > float32(tolerance) {
			return false
		}
	}
	return true
}
