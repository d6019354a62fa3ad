package chart

import (
	"math"
	"strconv"
	"time"
)

// DefaultTickCount is the approximate number of x ticks.
const DefaultTickCount = 6

// Tick is a labelled axis position.
type Tick struct {
	Value float64
	Label string
}

// NiceTicks returns evenly spaced ticks covering [lo, hi] with a step of
// 1, 2 or 5 times a power of ten, aiming for about n ticks.
func NiceTicks(lo, hi float64, n int) []Tick {
	step := niceStep(lo, hi, n)
	decimals := max(0, -int(math.Floor(math.Log10(step))))
	var ticks []Tick
	for _, v := range stepsWithin(lo, hi, step) {
		ticks = append(ticks, Tick{Value: v, Label: strconv.FormatFloat(v, 'f', decimals, 64)})
	}
	return ticks
}

func niceStep(lo, hi float64, n int) float64 {
	n = max(n, 2)
	span := hi - lo
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	raw := span / float64(n-1)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if raw <= m*mag {
			return m * mag
		}
	}
	return 10 * mag
}

func stepsWithin(lo, hi, step float64) []float64 {
	var out []float64
	first := math.Ceil(lo/step) * step
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		if v == 0 {
			v = 0 // normalise -0
		}
		out = append(out, v)
		if i > 1000 {
			break
		}
	}
	return out
}

// timeSteps are the tick spacings considered for time axes, in seconds.
var timeSteps = []float64{
	1, 2, 5, 10, 15, 30,
	60, 2 * 60, 5 * 60, 10 * 60, 15 * 60, 30 * 60,
	3600, 2 * 3600, 3 * 3600, 6 * 3600, 12 * 3600,
	86400, 2 * 86400, 7 * 86400, 14 * 86400, 30 * 86400, 91 * 86400, 365 * 86400,
}

// TimeTicks returns ticks for x values given as Unix seconds.
func TimeTicks(lo, hi float64, n int) []Tick {
	n = max(n, 2)
	raw := (hi - lo) / float64(n-1)
	step := timeSteps[len(timeSteps)-1]
	for _, s := range timeSteps {
		if raw <= s {
			step = s
			break
		}
	}
	if hi <= lo {
		step = 1
	}
	layout := TimeLayout(step)
	var ticks []Tick
	for _, v := range stepsWithin(lo, hi, step) {
		ticks = append(ticks, Tick{Value: v, Label: FormatTime(v, layout)})
	}
	return ticks
}

// TimeLayout picks a time format fine enough for the tick step.
func TimeLayout(step float64) string {
	switch {
	case step < 60:
		return "15:04:05"
	case step < 86400:
		return "01-02 15:04"
	default:
		return "2006-01-02"
	}
}

// FormatTime formats Unix seconds in UTC.
func FormatTime(sec float64, layout string) string {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC().Format(layout)
}
