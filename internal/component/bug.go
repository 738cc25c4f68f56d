// internal/component/bug.go
package component

import (
	"time"

	"go-owl-patrol/internal/types"
)

// Bug — один вредитель на экране.
// После IsSquashed жук неподвижен и не выбирается целью, но остаётся в хранилище RemoveIn.
type Bug struct {
	ID         types.BugID
	X, Y       float64
	VX, VY     float64
	IsSquashed bool
	RemoveIn   time.Duration // обратный отсчёт до удаления раздавленного жука
}

// Position возвращает текущие координаты жука.
func (b *Bug) Position() types.Position {
	return types.Position{X: b.X, Y: b.Y}
}

// Velocity возвращает вектор скорости (единиц за тик).
func (b *Bug) Velocity() types.Position {
	return types.Position{X: b.VX, Y: b.VY}
}
