package timing

import "time"

// TickerLimiter paces frames with a time.Ticker: simple and accurate
// enough for interactive use.
type TickerLimiter struct {
	ticker *time.Ticker
}

func NewTickerLimiter() *TickerLimiter {
	return &TickerLimiter{ticker: time.NewTicker(FrameDuration())}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(FrameDuration())
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
