package numberutils

// MinInt returns the minimum value from a list of integers.
// It returns 0 when called without arguments.
func MinInt(nums ...int) int {
	if len(nums) == 0 {
		return 0
	}
	minVal := nums[0]
	for _, num := range nums[1:] {
		if num < minVal {
			minVal = num
		}
	}
	return minVal
}
