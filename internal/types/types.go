// internal/types/types.go
package types

import "math"

// BugID — непрозрачный идентификатор жука, стабилен всё время жизни сущности.
type BugID string

// Position — точка в экранных координатах.
type Position struct {
	X, Y float64
}

// Sub возвращает вектор p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add возвращает p + o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale умножает вектор на скаляр.
func (p Position) Scale(k float64) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Len — длина вектора.
func (p Position) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo — евклидово расстояние до o.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Viewport — размеры области, в которой живут агенты.
type Viewport struct {
	Width, Height float64
}

// At переводит проценты (0..100) в абсолютную точку внутри области.
func (v Viewport) At(xPercent, yPercent float64) Position {
	return Position{X: v.Width * xPercent / 100, Y: v.Height * yPercent / 100}
}
