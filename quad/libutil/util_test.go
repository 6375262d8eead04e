package libutil_test

import (
	"learn-gl/quad/libutil"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/slices"
)

func TestReleaserOrder(t *testing.T) {
	var order []string
	var r libutil.Releaser
	r.HoldFunc(func() { order = append(order, "window") })
	r.HoldFunc(func() { order = append(order, "program") })
	r.HoldFunc(func() { order = append(order, "vao") })

	if r.Len() != 3 {
		t.Fatalf("expected 3 held resources, got %d", r.Len())
	}

	r.Release()

	expected := []string{"vao", "program", "window"}
	if !slices.Equal(order, expected) {
		t.Errorf("release order %v, expected %v", order, expected)
	}
	if r.Len() != 0 {
		t.Errorf("releaser still holds %d resources", r.Len())
	}

	r.Release()
	if len(order) != 3 {
		t.Errorf("second release deleted again: %v", order)
	}
}

func TestToRGBA8(t *testing.T) {
	tests := []struct {
		in  mgl32.Vec4
		out [4]uint8
	}{
		{mgl32.Vec4{1.0, 0.5, 0.2, 1.0}, [4]uint8{255, 128, 51, 255}},
		{mgl32.Vec4{0.2, 0.3, 0.3, 1.0}, [4]uint8{51, 77, 77, 255}},
		{mgl32.Vec4{-1, 2, 0, 0}, [4]uint8{0, 255, 0, 0}},
	}

	for _, test := range tests {
		got := libutil.ToRGBA8(test.in)
		if got != test.out {
			t.Errorf("ToRGBA8(%v) = %v, expected %v", test.in, got, test.out)
		}
	}
}

func TestColorNear(t *testing.T) {
	if !libutil.ColorNear([4]uint8{255, 128, 51, 255}, [4]uint8{254, 127, 52, 255}, 1) {
		t.Error("colors within tolerance reported as different")
	}
	if libutil.ColorNear([4]uint8{255, 128, 51, 255}, [4]uint8{51, 77, 77, 255}, 2) {
		t.Error("quad and clear color reported as near")
	}
}
