package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// EurosToMicros converte um valor em euros para micros (1 euro = 1.000.000 micros)
func EurosToMicros(euros float64) int64 {
	return int64(math.Round(euros * 1_000_000))
}

// MicrosToEuros converte micros para euros
func MicrosToEuros(micros int64) float64 {
	return float64(micros) / 1_000_000
}

// Clamp limita n ao intervalo [min, max]
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
