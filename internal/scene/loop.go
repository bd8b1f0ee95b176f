package scene

import "context"

// Loop counts frames until its context is cancelled or an optional budget runs out.
type Loop struct {
	ctx    context.Context
	max    int
	frames int
}

// NewLoop returns a loop bounded by ctx and, when max > 0, by max frames.
func NewLoop(ctx context.Context, max int) *Loop {
	return &Loop{ctx: ctx, max: max}
}

// Next reports whether another frame should run and counts it if so.
func (l *Loop) Next() bool {
	if l.ctx.Err() != nil {
		return false
	}
	if l.max > 0 && l.frames >= l.max {
		return false
	}
	l.frames++
	return true
}

func (l *Loop) Frames() int { return l.frames }
