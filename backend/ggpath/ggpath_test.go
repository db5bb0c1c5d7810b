package ggpath

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"honnef.co/go/squircle"
)

func countElements(p *gg.Path) map[string]int {
	counts := map[string]int{}
	for _, el := range p.Elements() {
		switch el.(type) {
		case gg.MoveTo:
			counts["move"]++
		case gg.LineTo:
			counts["line"]++
		case gg.CubicTo:
			counts["cubic"]++
		case gg.QuadTo:
			counts["quad"]++
		case gg.Close:
			counts["close"]++
		}
	}
	return counts
}

func TestAppendPath(t *testing.T) {
	p := squircle.DrawSmoothRoundRect(0, 0, 100, 100, 0.6, 20, 20, 20, 20)
	out := NewPath(p, squircle.DefaultTolerance)

	els := out.Elements()
	require.NotEmpty(t, els)
	move, ok := els[0].(gg.MoveTo)
	require.True(t, ok, "first element is %T, want gg.MoveTo", els[0])
	assert.InDelta(t, p.Start().X, move.Point.X, 1e-12)
	assert.InDelta(t, p.Start().Y, move.Point.Y, 1e-12)
	assert.IsType(t, gg.Close{}, els[len(els)-1])

	counts := countElements(out)
	assert.Equal(t, 1, counts["move"])
	assert.Equal(t, 3, counts["line"])
	assert.Equal(t, 1, counts["close"])
	assert.Zero(t, counts["quad"])
	// Every arc becomes at least one cubic Bézier.
	assert.GreaterOrEqual(t, counts["cubic"], 8+4)
}

func TestAppendPathMatchesCubics(t *testing.T) {
	p := squircle.NewRoundedRect(0, 0, 50, 30, 8).Path(squircle.DefaultTolerance)
	want := p.Cubics(squircle.DefaultTolerance)

	out := gg.NewPath()
	AppendPath(out, p, squircle.DefaultTolerance)
	els := out.Elements()
	require.Len(t, els, len(want))
	for i, el := range els {
		switch el := el.(type) {
		case gg.MoveTo:
			assert.Equal(t, squircle.MoveToKind, want[i].Kind)
			assert.InDelta(t, want[i].P0.X, el.Point.X, 1e-12)
			assert.InDelta(t, want[i].P0.Y, el.Point.Y, 1e-12)
		case gg.LineTo:
			assert.Equal(t, squircle.LineToKind, want[i].Kind)
			assert.InDelta(t, want[i].P0.X, el.Point.X, 1e-12)
			assert.InDelta(t, want[i].P0.Y, el.Point.Y, 1e-12)
		case gg.CubicTo:
			assert.Equal(t, squircle.CubicToKind, want[i].Kind)
			assert.InDelta(t, want[i].P2.X, el.Point.X, 1e-12)
			assert.InDelta(t, want[i].P2.Y, el.Point.Y, 1e-12)
			assert.InDelta(t, want[i].P0.X, el.Control1.X, 1e-12)
			assert.InDelta(t, want[i].P1.Y, el.Control2.Y, 1e-12)
		case gg.Close:
			assert.Equal(t, squircle.ClosePathKind, want[i].Kind)
		default:
			t.Errorf("unexpected element %T", el)
		}
	}
}

func TestBuilderTracksCurrentPoint(t *testing.T) {
	dc := gg.NewContext(10, 10)
	b := NewContextBuilder(dc, squircle.DefaultTolerance)
	b.MoveTo(squircle.Pt(1, 1))
	b.ArcTo(squircle.Vec(2, 2), 0, false, true, squircle.Pt(5, 1))

	x, y, ok := dc.GetCurrentPoint()
	require.True(t, ok)
	assert.InDelta(t, 5.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)

	b.LineTo(squircle.Pt(5, 8))
	b.ClosePath()
	x, y, _ = dc.GetCurrentPoint()
	assert.InDelta(t, 1.0, x, 1e-12)
	assert.InDelta(t, 1.0, y, 1e-12)
}

func TestDeviceTransform(t *testing.T) {
	aff := DeviceTransform(100)
	assert.Equal(t, squircle.Pt(0, 0), squircle.Pt(0, 100).Transform(aff))
	assert.Equal(t, squircle.Pt(30, 100), squircle.Pt(30, 0).Transform(aff))
}

func TestFill(t *testing.T) {
	dc := gg.NewContext(120, 120)
	dc.ClearWithColor(gg.White)
	dc.SetRGB(1, 0, 0)

	r := squircle.NewSmoothRoundRect(10, 10, 100, 100, 0.6, squircle.UniformRadii(20))
	require.NoError(t, Fill(dc, r, squircle.DefaultTolerance))

	img := dc.Image()
	red, green, _, _ := img.At(60, 60).RGBA()
	assert.Greater(t, red, uint32(0x8000), "center should be filled")
	assert.Less(t, green, uint32(0x8000), "center should be filled")

	_, green, blue, _ := img.At(2, 2).RGBA()
	assert.Greater(t, green, uint32(0xf000), "outside should stay white")
	assert.Greater(t, blue, uint32(0xf000), "outside should stay white")
}
