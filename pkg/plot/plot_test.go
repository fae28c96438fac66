// 20 May 2025

package plot

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/andrew-torda/seq_mut/pkg/align"
)

func TestIdentity(t *testing.T) {
	res := &align.Result{
		Ops: []align.Op{
			align.XClip, align.Match, align.Match, align.Subst,
			align.Match, align.YClip,
		},
	}
	for _, tc := range []struct {
		window int
		want   []float64
	}{
		{2, []float64{1, 0.5}},
		{3, []float64{2.0 / 3.0, 1}},
		{0, []float64{1, 1, 0, 1}},
		{100, []float64{0.75}},
	} {
		got := Identity(res, tc.window)
		if len(got) != len(tc.want) {
			t.Fatalf("window %d: got %v want %v", tc.window, got, tc.want)
		}
		for i := range got {
			if math.Abs(got[i]-tc.want[i]) > 1e-12 {
				t.Errorf("window %d: got %v want %v", tc.window, got, tc.want)
				break
			}
		}
	}
}

func TestIdentityEmpty(t *testing.T) {
	if got := Identity(&align.Result{}, 5); got != nil {
		t.Error("expected nil for empty alignment, got", got)
	}
}

func TestPNG(t *testing.T) {
	var b bytes.Buffer
	vals := []float64{0, 0.25, 0.5, 0.75, 1, 1.5, -1}
	if err := PNG(&b, vals, &Args{Width: 320, Height: 120}); err != nil {
		t.Fatal("png write:", err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal("png decode:", err)
	}
	if r := img.Bounds(); r.Dx() != 320 || r.Dy() != 120 {
		t.Error("wrong image size", r)
	}
}

func TestPNGDefaults(t *testing.T) {
	var b bytes.Buffer
	if err := PNG(&b, nil, nil); err != nil {
		t.Fatal("png write:", err)
	}
	img, err := png.Decode(&b)
	if err != nil {
		t.Fatal("png decode:", err)
	}
	if r := img.Bounds(); r.Dx() != 640 || r.Dy() != 240 {
		t.Error("wrong default size", r)
	}
}
