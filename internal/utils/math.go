package utils

func Min(a, b int) int {
	if a <= b {
		return a
	}
	return b
}

func Max(a, b int) int {
	if a >= b {
		return a
	}
	return b
}

// AbsDiff returns |a - b| for non-negative counts.
func AbsDiff(a, b int) int {
	if a >= b {
		return a - b
	}
	return b - a
}
