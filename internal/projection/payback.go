package projection

import "fmt"

// Payback is the first year in which cumulative net value turns positive.
type Payback struct {
	Year    int  // 0 when not reached
	Reached bool // false when the horizon ends before break-even
	Horizon int
}

// PaybackPeriod scans a cumulative series for the first year whose
// cumulative net value is strictly positive.
func PaybackPeriod(cumulative []CumulativeRecord) Payback {
	for _, record := range cumulative {
		if record.CumulativeNetValue > 0 {
			return Payback{Year: record.Year, Reached: true, Horizon: len(cumulative)}
		}
	}
	return Payback{Horizon: len(cumulative)}
}

func (p Payback) String() string {
	if !p.Reached {
		return fmt.Sprintf("more than %d years", p.Horizon)
	}
	if p.Year == 1 {
		return "1 Year"
	}
	return fmt.Sprintf("%d Years", p.Year)
}
