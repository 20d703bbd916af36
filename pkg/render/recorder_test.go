package render

import (
	"image/color"
	"testing"
)

func TestRecorderCopiesPoints(t *testing.T) {
	rec := &Recorder{}
	buf := []Point{{X: 1, Y: 2, Color: color.NRGBA{R: 1, A: 255}}}
	rec.Points(buf, 7)

	// 调用方复用缓冲区
	buf[0].X = 99

	call, ok := rec.Last(CallPoints)
	if !ok {
		t.Fatal("expected a Points call")
	}
	if call.Points[0].X != 1 {
		t.Errorf("recorded point changed with caller buffer: %v", call.Points[0].X)
	}
}

func TestRecorderCountAndReset(t *testing.T) {
	rec := &Recorder{}
	rec.Rect(Rect{W: 1, H: 1}, Style{Fill: true})
	rec.Rect(Rect{W: 2, H: 2}, Style{})
	rec.Text(0, 0, "Hala 1", color.NRGBA{A: 255})
	rec.Title("t")

	if rec.Count(CallRect) != 2 || rec.Count(CallText) != 1 || rec.Count(CallTitle) != 1 {
		t.Errorf("unexpected counts: %+v", rec.Calls)
	}
	last, _ := rec.Last(CallRect)
	if last.Rect.W != 2 || last.Style.Fill {
		t.Errorf("Last(CallRect) = %+v, want the stroked 2x2 rect", last)
	}

	rec.Reset()
	if len(rec.Calls) != 0 {
		t.Errorf("Reset left %d calls", len(rec.Calls))
	}
	if _, ok := rec.Last(CallTitle); ok {
		t.Error("Last after Reset should report nothing")
	}
}

func TestDiscard(t *testing.T) {
	// 不应 panic
	Discard.Rect(Rect{}, Style{})
	Discard.Text(0, 0, "x", color.NRGBA{})
	Discard.Points(nil, 1)
	Discard.Title("x")
}
