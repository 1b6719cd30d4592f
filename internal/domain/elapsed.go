package domain

import "fmt"

const elapsedLabel = "Tiempo transcurrido"

// ElapsedSeconds derives elapsed time from the remaining seconds reported by
// the backend. The second result is false when remaining is unknown.
func ElapsedSeconds(remainingSeconds *int, totalAllowedSeconds int) (int, bool) {
	if remainingSeconds == nil {
		return 0, false
	}

	return max(0, totalAllowedSeconds-*remainingSeconds), true
}

// FormatClock renders seconds as zero-padded MM:SS. Minutes are not capped.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatElapsed appends the elapsed clock to base. With no remaining time
// it returns base unchanged.
func FormatElapsed(base string, remainingSeconds *int, totalAllowedSeconds int) string {
	elapsed, ok := ElapsedSeconds(remainingSeconds, totalAllowedSeconds)
	if !ok {
		return base
	}

	return fmt.Sprintf("%s — %s: %s", base, elapsedLabel, FormatClock(elapsed))
}
