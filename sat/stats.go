package sat

// ema is an exponential moving average, adapted from the teacher's EMA type
// (sat/avg.go in rhartert/yass), which that repo used to smooth restart
// scheduling signals. This solver has no restarts (spec.md's Non-goals
// exclude them), so it is repurposed here as a plain diagnostic: the rolling
// average decision depth at which conflicts occur, exposed for an embedder
// or the CLI to log.
type ema struct {
	decay float64
	value float64
	init  bool
}

func newEMA(decay float64) ema {
	return ema{decay: decay}
}

func (e *ema) add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

func (e *ema) val() float64 {
	return e.value
}

// Stats are solver counters exposed for an embedder to log; they have no
// effect on the search itself.
type Stats struct {
	Decisions int64
	Conflicts int64
	Flips     int64
}
