// internal/utils/math.go
package utils

import (
	"math"
	"strings"

	"go-owl-patrol/internal/types"
)

// Direction возвращает единичный вектор от from к to и расстояние между ними.
// При нулевом расстоянии направление нулевое.
func Direction(from, to types.Position) (types.Position, float64) {
	d := to.Sub(from)
	dist := d.Len()
	if dist == 0 {
		return types.Position{}, 0
	}
	return d.Scale(1 / dist), dist
}

// FromAngle строит вектор длины length под углом angle (радианы).
func FromAngle(angle, length float64) types.Position {
	return types.Position{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// WrapText разбивает строку на строки не длиннее maxChars, по словам.
// Слово длиннее maxChars режется.
func WrapText(s string, maxChars int) []string {
	if maxChars <= 0 {
		return []string{s}
	}
	var lines []string
	var line []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > maxChars {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(w[:maxChars]))
			w = w[maxChars:]
		}
		switch {
		case len(w) == 0:
		case len(line) == 0:
			line = append(line, w...)
		case len(line)+1+len(w) <= maxChars:
			line = append(line, ' ')
			line = append(line, w...)
		default:
			lines = append(lines, string(line))
			line = append(line[:0], w...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}
