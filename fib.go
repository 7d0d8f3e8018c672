package main

// fib is deliberately exponential. Do not memoize.
func fib(n int64) int64 {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
