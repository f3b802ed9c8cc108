package winepage

// Age is the winery age in years. Negative results pass through
// unchanged; YearWord handles them.
func Age(foundationYear, currentYear int) int {
	return currentYear - foundationYear
}

// YearWord returns the Russian word for "year" agreeing with n:
// 1 год, 2 года, 5 лет, with 11-14 always taking "лет".
func YearWord(n int) string {
	if last2 := mod(n, 100); last2 >= 11 && last2 <= 14 {
		return "лет"
	}
	switch last := mod(n, 10); {
	case last == 1:
		return "год"
	case last >= 2 && last <= 4:
		return "года"
	default:
		return "лет"
	}
}

// mod is the non-negative remainder, also for negative n.
func mod(n, m int) int {
	return ((n % m) + m) % m
}
