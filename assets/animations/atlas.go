package animations

import "image"

// Layout is the ordered list of frame sub-rectangles within one texture,
// in texture pixel space.
type Layout struct {
	Frames []image.Rectangle
}

// NewGridLayout slices a sheet of cols x rows equally sized frames, read
// left-to-right then top-to-bottom.
func NewGridLayout(frameW, frameH, cols, rows int) Layout {
	if frameW <= 0 || frameH <= 0 || cols <= 0 || rows <= 0 {
		return Layout{}
	}
	frames := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			sx, sy := col*frameW, row*frameH
			frames = append(frames, image.Rect(sx, sy, sx+frameW, sy+frameH))
		}
	}
	return Layout{Frames: frames}
}

// Len is the number of frames in the layout.
func (l Layout) Len() int {
	return len(l.Frames)
}

// Rect returns the sub-rectangle for frame index.
func (l Layout) Rect(index int) (image.Rectangle, bool) {
	if index < 0 || index >= len(l.Frames) {
		return image.Rectangle{}, false
	}
	return l.Frames[index], true
}

// Bounds is the smallest rectangle holding every frame.
func (l Layout) Bounds() image.Rectangle {
	var b image.Rectangle
	for _, f := range l.Frames {
		b = b.Union(f)
	}
	return b
}

// Resolve returns the sub-rectangle for index, or prev unchanged when the
// layout has no such frame. The bool reports whether the lookup succeeded.
func Resolve(l Layout, index int, prev image.Rectangle) (image.Rectangle, bool) {
	r, ok := l.Rect(index)
	if !ok {
		return prev, false
	}
	return r, true
}
