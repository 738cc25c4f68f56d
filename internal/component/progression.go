// internal/component/progression.go
package component

import (
	"fmt"
	"strings"
	"time"
)

// Stat — одна из трёх характеристик совы.
type Stat uint8

const (
	StatStrength Stat = iota
	StatAgility
	StatIntellect
)

// AllStats — порядок кнопок в окне выбора.
var AllStats = []Stat{StatStrength, StatAgility, StatIntellect}

func (s Stat) String() string {
	switch s {
	case StatStrength:
		return "strength"
	case StatAgility:
		return "agility"
	case StatIntellect:
		return "intellect"
	default:
		return fmt.Sprintf("Stat(%d)", uint8(s))
	}
}

// ParseStat разбирает имя характеристики без учёта регистра.
func ParseStat(name string) (Stat, bool) {
	for _, s := range AllStats {
		if strings.EqualFold(name, s.String()) {
			return s, true
		}
	}
	return 0, false
}

// StatPrompt — открытая возможность потратить опыт.
type StatPrompt struct {
	Remaining time.Duration
}

// Progression — опыт и характеристики совы.
type Progression struct {
	Experience int
	Strength   int
	Agility    int
	Intellect  int
	Prompt     *StatPrompt
	// DismissedAt — опыт на момент последнего автозакрытия окна; -1, если закрытия не было.
	DismissedAt int
}

// NewProgression создаёт пустую прогрессию.
func NewProgression() *Progression {
	return &Progression{DismissedAt: -1}
}

// Counter возвращает указатель на счётчик характеристики.
func (p *Progression) Counter(s Stat) *int {
	switch s {
	case StatStrength:
		return &p.Strength
	case StatAgility:
		return &p.Agility
	case StatIntellect:
		return &p.Intellect
	default:
		return nil
	}
}
