package render

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// ladder is one decade of the 1-2-5 sequence.
var ladder = [...]float64{1, 2, 5, 10}

// NiceStep returns the smallest value of the form {1, 2, 5} x 10^k whose
// magnitude is at least |x|, carrying the sign of x. NiceStep(0) is 0.
func NiceStep(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	mag := math.Abs(x)
	exp := math.Floor(math.Log10(mag))
	base := math.Pow(10, exp)
	frac := mag / base

	step := ladder[len(ladder)-1]
	for _, l := range ladder {
		if frac <= l*(1+1e-9) {
			step = l
			break
		}
	}
	return math.Copysign(step*base, x)
}

// NiceTicker places labelled ticks on a 1-2-5 step chosen so roughly Target
// ticks cover the axis.
type NiceTicker struct {
	Target int
}

const defaultTickTarget = 8

// Ticks implements plot.Ticker.
func (t NiceTicker) Ticks(min, max float64) []plot.Tick {
	if !(max > min) {
		return []plot.Tick{{Value: min, Label: strconv.FormatFloat(min, 'g', 6, 64)}}
	}
	target := t.Target
	if target <= 0 {
		target = defaultTickTarget
	}
	step := NiceStep((max - min) / float64(target))
	if !(step > 0) || math.IsInf(step, 0) {
		return plot.DefaultTicks{}.Ticks(min, max)
	}

	first := math.Ceil(min/step) * step
	var ticks []plot.Tick
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > max+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 6, 64)})
	}
	return ticks
}
