package render

import "image/color"

// CallKind 绘制调用类型
type CallKind int

const (
	CallRect CallKind = iota
	CallText
	CallPoints
	CallTitle
)

// Call 一次被记录的绘制调用
type Call struct {
	Kind   CallKind
	Rect   Rect
	Style  Style
	X, Y   float64
	Label  string
	Color  color.NRGBA
	Points []Point
	Radius float32
}

// Recorder 记录所有绘制调用的 Surface，用于测试
type Recorder struct {
	Calls []Call
}

// Rect 记录矩形
func (r *Recorder) Rect(rect Rect, style Style) {
	r.Calls = append(r.Calls, Call{Kind: CallRect, Rect: rect, Style: style})
}

// Text 记录文本
func (r *Recorder) Text(x, y float64, label string, clr color.NRGBA) {
	r.Calls = append(r.Calls, Call{Kind: CallText, X: x, Y: y, Label: label, Color: clr})
}

// Points 记录点簇（复制切片，避免调用方复用缓冲区）
func (r *Recorder) Points(points []Point, radius float32) {
	cp := make([]Point, len(points))
	copy(cp, points)
	r.Calls = append(r.Calls, Call{Kind: CallPoints, Points: cp, Radius: radius})
}

// Title 记录标题
func (r *Recorder) Title(title string) {
	r.Calls = append(r.Calls, Call{Kind: CallTitle, Label: title})
}

// Count 返回指定类型的调用次数
func (r *Recorder) Count(kind CallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Last 返回指定类型的最后一次调用
func (r *Recorder) Last(kind CallKind) (Call, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Kind == kind {
			return r.Calls[i], true
		}
	}
	return Call{}, false
}

// Reset 清空记录
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
