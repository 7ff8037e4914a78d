// internal/utils/math.go
package utils

import "math"

// EaseFunc отображает нормализованное время [0,1] в прогресс [0,1]
type EaseFunc func(t float64) float64

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp01 ограничивает значение диапазоном [0,1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseInOut — кубическая кривая с плавным стартом и финишем.
// Монотонна на [0,1] и не выходит за его пределы.
func EaseInOut(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Linear — тождественная кривая
func Linear(t float64) float64 {
	return Clamp01(t)
}
