package cobra

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPixelFormatChannels(t *testing.T) {
	tests := []struct {
		pf   PixelFormat
		want int
	}{
		{PFRGB, 3},
		{PFRGB | PFA, 4},
		{PFGray | PFA, 2},
		{PFGray, 1},
		{PFRGB | PFA | PFZ, 5},
		{PFBGR | PFA | PFAStart, 4},
		{PFRawColor, 16},
	}
	for _, tt := range tests {
		if got := tt.pf.Channels(); got != tt.want {
			t.Errorf("%v.Channels() = %d, want %d", tt.pf, got, tt.want)
		}
	}
}

func TestPixelFormatLayout(t *testing.T) {
	c := RGBA(1, 0.5, 0, 0.25)
	tests := []struct {
		pf   PixelFormat
		want []byte
	}{
		{PFRGB, []byte{255, 128, 0}},
		{PFRGBA, []byte{255, 128, 0, 64}},
		{PFBGRA, []byte{0, 128, 255, 64}},
		{PFARGB, []byte{64, 255, 128, 0}},
		{PFABGR, []byte{64, 0, 128, 255}},
		{PFRGBA | PFAInv, []byte{255, 128, 0, 191}},
		{PFRGBA | PFZ, []byte{255, 128, 0, 64, 0}},
		{PFRGBA | PFZ | PFZA, []byte{255, 128, 0, 0, 64}},
		{PFRGBA | PFZ | PFZStart | PFZInv, []byte{255, 255, 128, 0, 64}},
		{PFRGBA | PFZ | PFZStart | PFAStart | PFZA, []byte{0, 64, 255, 128, 0}},
	}
	for _, tt := range tests {
		buf := make([]byte, tt.pf.Channels())
		n := tt.pf.Encode(buf, c, nil)
		test.T(t, n, len(tt.want), tt.pf)
		test.Bytes(t, buf, tt.want, tt.pf)
	}
}

// TestPixelFormatRoundTrip checks every non-raw flag combination.
func TestPixelFormatRoundTrip(t *testing.T) {
	colors := []Color{
		RGBA(0, 0, 0, 0),
		RGBA(1, 1, 1, 1),
		RGBA(0.2, 0.4, 0.6, 0.8),
		RGBA(0.9, 0.1, 0.3, 0.25),
		RGBA(0.123, 0.456, 0.789, 0.5),
	}
	const tol = 1.0 / 255
	for f := PixelFormat(0); f < 1<<9; f++ {
		buf := make([]byte, f.Channels())
		for _, c := range colors {
			want := c
			if f.Has(PFGray) {
				y := c.Y()
				want = RGBA(y, y, y, c.A)
			}
			if !f.Has(PFA) {
				want.A = 1
			}
			f.Encode(buf, c, nil)
			got := f.Decode(buf, nil)
			if !colorNear(got, want, tol) {
				t.Fatalf("%v: Decode(Encode(%v)) = %v, want %v", f, c, got, want)
			}
		}
	}
}

func TestPixelFormatRoundTripGamma(t *testing.T) {
	g := NewGamma(2.2)
	c := RGBA(0.5, 0.25, 0.75, 1)
	buf := make([]byte, 4)
	PFRGBA.Encode(buf, c, g)
	got := PFRGBA.Decode(buf, g)
	if !colorNear(got, c, 0.01) {
		t.Errorf("gamma round trip = %v, want %v", got, c)
	}
	if buf[0] <= 128 {
		t.Errorf("gamma 2.2 should brighten mid tones, got %d", buf[0])
	}
}

func TestPixelFormatRawBitExact(t *testing.T) {
	colors := []Color{
		RGBA(0.1, -2, 3.5, 0.25),
		RGBA(float32(math.Inf(1)), 0, 0, 1),
		{R: math.Float32frombits(0x7fc00001), G: 1, B: 2, A: 3},
	}
	buf := make([]byte, PFRawColor.Channels())
	for _, c := range colors {
		PFRawColor.Encode(buf, c, nil)
		got := PFRawColor.Decode(buf, nil)
		for i, pair := range [][2]float32{{got.R, c.R}, {got.G, c.G}, {got.B, c.B}, {got.A, c.A}} {
			if math.Float32bits(pair[0]) != math.Float32bits(pair[1]) {
				t.Errorf("channel %d: bits %08x, want %08x", i, math.Float32bits(pair[0]), math.Float32bits(pair[1]))
			}
		}
	}
}

func TestPixelFormatRows(t *testing.T) {
	src := []Color{Red, RGBA(0, 1, 0, 0.5), RGBA(2, -1, 0.5, 1)}
	buf := make([]byte, len(src)*PFRGBA.Channels())
	n := PFRGBA.EncodeRow(buf, src, nil)
	test.T(t, n, len(buf))
	test.Bytes(t, buf[8:], []byte{255, 0, 128, 255})

	dst := make([]Color, len(src))
	PFRGBA.DecodeRow(dst, buf, nil)
	test.T(t, dst[0], Red)

	raw := make([]byte, len(src)*PFRawColor.Channels())
	PFRawColor.EncodeRow(raw, src, nil)
	back := make([]Color, len(src))
	PFRawColor.DecodeRow(back, raw, nil)
	test.T(t, back, src)
}

func TestPixelFormatShortBufferPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Encode into a short buffer did not panic")
		}
	}()
	PFRGBA.Encode(make([]byte, 3), Red, nil)
}

func TestPixelFormatString(t *testing.T) {
	test.String(t, PFRGB.String(), "RGB")
	test.String(t, PFBGRA.String(), "A|BGR")
	test.String(t, PFRawColor.String(), "A|RAW")
}

func BenchmarkEncodeRow(b *testing.B) {
	src := make([]Color, 256)
	for i := range src {
		src[i] = RGBA(float32(i)/255, 0.5, 0.25, 1)
	}
	buf := make([]byte, len(src)*4)
	g := NewGamma(2.2)
	for b.Loop() {
		PFRGBA.EncodeRow(buf, src, g)
	}
}
