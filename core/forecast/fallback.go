package forecast

// Fallback projects days of impressions from history: 5% above the
// historical mean plus 1% per day. Without history it starts at 1000 and
// adds 50 per day.
func Fallback(history []int, days int) []int {
	out := make([]int, days)
	if len(history) == 0 {
		for i := range out {
			out[i] = 1000 + 50*i
		}
		return out
	}

	sum := 0
	for _, v := range history {
		sum += v
	}
	avg := float64(sum) / float64(len(history))
	for i := range out {
		out[i] = int(avg * 1.05 * (1 + float64(i)*0.01))
	}
	return out
}
