package main

// benchmarkArithmetic folds the integers [0, iterations) through
// sum = ((sum + i) * i + 3) % 7. Both operands stay non-negative, so the
// result is always in [0, 6].
func benchmarkArithmetic(iterations int64) int64 {
	var sum int64
	for i := int64(0); i < iterations; i++ {
		sum = ((sum+i)*i + 3) % 7
	}
	return sum
}
