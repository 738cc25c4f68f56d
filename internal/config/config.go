// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	// Поведение жуков
	PanicDistance = 220.0
	PanicSpeed    = 3.5
	WanderSpeed   = 0.8
	WanderChance  = 0.02
	SpawnSpeed    = 0.5
	BoundsPadding = 50.0
	SpawnMargin   = 0.1 // спавн во внутренних 80% экрана

	// Поведение совы
	OwlSpeed      = 2.0
	AttackRange   = 60.0
	HomeThreshold = 5.0

	// Прогрессия
	XPPerSquash    = 20
	XPPerStatPoint = 100

	// Отрисовка
	BugRadius        = 14.0
	OwlBodyWidth     = 88.0
	OwlBodyHeight    = 128.0
	ClickCooldown    = 300
	IndicatorOffsetX = 30
	IndicatorRadius  = 12.0
	TextCharWidth    = 7
	BubbleMaxChars   = 34
	CellWidth        = 8.0  // ширина клетки терминала в мировых единицах
	CellHeight       = 16.0 // высота клетки терминала в мировых единицах

	MinScale     = 0.4
	MaxScale     = 1.5
	DefaultScale = 0.8

	MaxIntervalSeconds = 24 * 60 * 60 // потолок для интервалов из конфигурации
)

// Тайминги, все в длительностях симулированных часов.
const (
	ReactionDelayMin  = 3000 * time.Millisecond
	ReactionDelayMax  = 10000 * time.Millisecond
	SquashDelay       = 400 * time.Millisecond  // синхронно с замахом
	CelebrateDelay    = 300 * time.Millisecond  // после раздавливания
	CelebrateDuration = 1500 * time.Millisecond // "Fixed it!"
	JokeDuration      = 5000 * time.Millisecond
	SquashRemoveDelay = 2000 * time.Millisecond
	FeedbackDuration  = 1000 * time.Millisecond
	StatPromptTimeout = 10000 * time.Millisecond
	StatPulseDuration = 1000 * time.Millisecond
	TickInterval      = time.Second / TicksPerSec
	SnapshotInterval  = 100 * time.Millisecond
)

var (
	BackgroundColor   = color.RGBA{245, 245, 240, 255}
	TextDarkColor     = color.RGBA{41, 37, 36, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	BugBodyColor      = color.RGBA{28, 25, 23, 255}
	BugLegColor       = color.RGBA{41, 37, 36, 255}
	BugLabelColor     = color.RGBA{239, 68, 68, 255}
	OwlBodyColor      = color.RGBA{120, 113, 108, 255}
	OwlBellyColor     = color.RGBA{214, 211, 209, 255}
	OwlBeakColor      = color.RGBA{217, 119, 6, 255}
	ShadowColor       = color.RGBA{0, 0, 0, 50}
	BubbleColor       = color.RGBA{255, 255, 255, 255}
	BubbleStroke      = color.RGBA{214, 211, 209, 255}
	PanelColor        = color.RGBA{250, 250, 249, 255}
	PanelStroke       = color.RGBA{226, 232, 240, 255}
	ButtonColor       = color.RGBA{226, 232, 240, 255}
	ButtonActiveColor = color.RGBA{245, 158, 11, 255}
	XPBarColor        = color.RGBA{245, 158, 11, 255}
	FeedbackColor     = color.RGBA{22, 163, 74, 255}
	IndicatorStroke   = color.RGBA{100, 116, 139, 255}
	StatColors        = []color.RGBA{
		{220, 38, 38, 255},  // Strength
		{22, 163, 74, 255},  // Agility
		{37, 99, 235, 255},  // Intellect
	}
)
