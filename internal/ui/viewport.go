package ui

// nearBottomThreshold is the proximity, in transcript lines, within which
// the viewport still counts as "at the bottom" for auto-scroll purposes.
const nearBottomThreshold = 100

// Viewport is a fixed-height window over the rendered transcript. It exists
// so the auto-scroll policy is decidable without a real terminal.
type Viewport struct {
	top     int
	height  int
	content int
}

func NewViewport(height int) Viewport {
	if height <= 0 {
		height = 20
	}
	return Viewport{height: height}
}

// SetContent records the total rendered line count and keeps the window in
// bounds.
func (v *Viewport) SetContent(lines int) {
	if lines < 0 {
		lines = 0
	}
	v.content = lines
	v.clamp()
}

// NearBottom reports whether the window sits within the threshold of the end
// of the content.
func (v *Viewport) NearBottom() bool {
	return v.content-v.top-v.height < nearBottomThreshold
}

func (v *Viewport) ScrollToBottom() {
	v.top = v.content - v.height
	v.clamp()
}

func (v *Viewport) ScrollBy(delta int) {
	v.top += delta
	v.clamp()
}

// Window returns the half-open line range currently visible.
func (v *Viewport) Window() (start, end int) {
	start = v.top
	end = v.top + v.height
	if end > v.content {
		end = v.content
	}
	return start, end
}

func (v *Viewport) clamp() {
	maxTop := v.content - v.height
	if maxTop < 0 {
		maxTop = 0
	}
	if v.top > maxTop {
		v.top = maxTop
	}
	if v.top < 0 {
		v.top = 0
	}
}
