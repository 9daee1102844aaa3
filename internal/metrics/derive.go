// Package metrics implements the derived-field and statistics calculations
// for poker sessions. All functions are pure: they operate on values passed
// in and touch no shared state.
package metrics

// Profit computes a session's result from its buy-in and cash-out.
func Profit(buyIn, cashOut float64) float64 {
	return cashOut - buyIn
}

// HourlyRate computes profit per hour. Sessions with no recorded duration
// get a rate of zero rather than dividing by zero.
func HourlyRate(profit, hours float64) float64 {
	if hours > 0 {
		return profit / hours
	}
	return 0
}

// IsWin reports whether a profit counts as a win. Break-even sessions
// (profit exactly zero) count as losses.
func IsWin(profit float64) bool {
	return profit > 0
}
