package dhyan

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/saadjs/dhyan-cli/internal/service"
)

const dayBarWidth = 24

// printDayBars renders one row per day of the series, scaled to the largest
// absolute value. Negative values (calorie deficits) draw with '='.
func printDayBars(out io.Writer, title string, series []service.DayAggregate, valueFn func(service.DayAggregate) int) {
	fmt.Fprintf(out, "%s by day:\n", title)
	peak, total := 0, 0
	for _, d := range series {
		v := valueFn(d)
		total += v
		if abs(v) > peak {
			peak = abs(v)
		}
	}
	if peak == 0 {
		fmt.Fprintln(out, "  nothing logged")
		return
	}
	for _, d := range series {
		v := valueFn(d)
		fmt.Fprintf(out, "  %s %-*s %d\n", dayLabel(d.Date), dayBarWidth, dayBar(v, peak, dayBarWidth), v)
	}
	avg := int(math.Round(float64(total) / float64(len(series))))
	fmt.Fprintf(out, "  total %d | avg %d/day\n", total, avg)
}

// dayLabel turns 2026-03-02 into "Mon 03-02".
func dayLabel(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Mon 01-02")
}

func dayBar(value, peak, width int) string {
	if width <= 0 || peak <= 0 || value == 0 {
		return ""
	}
	n := int(math.Round(float64(abs(value)) / float64(peak) * float64(width)))
	n = min(max(n, 1), width)
	if value < 0 {
		return strings.Repeat("=", n)
	}
	return strings.Repeat("#", n)
}

// percentBar draws a fixed-width gauge such as [#####.....] for 0-100.
func percentBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(pct / 100 * float64(width)))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	chars := []rune("._-~=*#@")
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	if maxV == minV {
		return strings.Repeat(string(chars[0]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		idx := int(math.Round((v - minV) / (maxV - minV) * float64(len(chars)-1)))
		b.WriteRune(chars[min(max(idx, 0), len(chars)-1)])
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
