// internal/config/host.go
package config

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Host — начальные параметры виджета, которые передаёт хост-страница при монтировании.
// Это стартовые значения внутреннего состояния, а не постоянная синхронизация.
type Host struct {
	Scale           float64 `yaml:"scale"`
	StartXPercent   float64 `yaml:"start_x_percent"`
	StartYPercent   float64 `yaml:"start_y_percent"`
	AutoSpawn       bool    `yaml:"auto_spawn"`
	MinSpawnSeconds float64 `yaml:"min_spawn_seconds"`
	MaxSpawnSeconds float64 `yaml:"max_spawn_seconds"`
	ControlsEnabled bool    `yaml:"controls_enabled"`
	ReturnToStart   bool    `yaml:"return_to_start"`
	// SleepAfterSeconds — сколько секунд сова должна простоять дома без жуков, чтобы уснуть. 0 — никогда.
	SleepAfterSeconds float64 `yaml:"sleep_after_seconds"`
	LogLevel          string  `yaml:"log_level"`
	BridgeAddr        string  `yaml:"bridge_addr"`
	// BridgeOrigins — разрешённые Origin для websocket-моста через запятую, например "localhost:*".
	// Пусто — только same-origin запросы.
	BridgeOrigins string `yaml:"bridge_origins"`
	Seed          int64  `yaml:"seed"`
}

// DefaultHost возвращает значения по умолчанию (правый нижний угол, автоспавн выключен).
func DefaultHost() Host {
	return Host{
		Scale:             DefaultScale,
		StartXPercent:     90,
		StartYPercent:     90,
		AutoSpawn:         false,
		MinSpawnSeconds:   60,
		MaxSpawnSeconds:   300,
		ControlsEnabled:   true,
		ReturnToStart:     true,
		SleepAfterSeconds: 0,
		LogLevel:          "info",
	}
}

// Load читает YAML-файл поверх значений по умолчанию и нормализует результат.
// Пустой путь означает "только значения по умолчанию".
func Load(path string) (Host, error) {
	cfg := DefaultHost()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read host config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal host config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize зажимает некорректные значения вместо того, чтобы отвергать их.
// NaN заменяется значением по умолчанию, бесконечности упираются в границу.
func (h *Host) Normalize() {
	def := DefaultHost()
	h.Scale = ClampScale(h.Scale)
	h.StartXPercent = ClampPercent(h.StartXPercent, def.StartXPercent)
	h.StartYPercent = ClampPercent(h.StartYPercent, def.StartYPercent)
	h.MinSpawnSeconds = ClampSeconds(h.MinSpawnSeconds, def.MinSpawnSeconds)
	h.MaxSpawnSeconds = ClampSeconds(h.MaxSpawnSeconds, def.MaxSpawnSeconds)
	if h.MaxSpawnSeconds < h.MinSpawnSeconds {
		h.MaxSpawnSeconds = h.MinSpawnSeconds
	}
	h.SleepAfterSeconds = ClampSeconds(h.SleepAfterSeconds, def.SleepAfterSeconds)
}

// MinSpawn и MaxSpawn — интервалы автоспавна в виде длительностей.
func (h Host) MinSpawn() time.Duration { return seconds(h.MinSpawnSeconds) }
func (h Host) MaxSpawn() time.Duration { return seconds(h.MaxSpawnSeconds) }

// SleepAfter — таймаут засыпания.
func (h Host) SleepAfter() time.Duration { return seconds(h.SleepAfterSeconds) }

// Origins разбирает BridgeOrigins в список шаблонов для websocket.AcceptOptions.
func (h Host) Origins() []string {
	var out []string
	for _, o := range strings.Split(h.BridgeOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Level переводит строковый уровень логирования в slog.Level.
func (h Host) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(h.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// ClampScale держит масштаб совы в допустимом диапазоне. NaN даёт масштаб по умолчанию.
func ClampScale(s float64) float64 {
	if math.IsNaN(s) {
		return DefaultScale
	}
	return math.Min(math.Max(s, MinScale), MaxScale)
}

// ClampPercent держит процент в [0, 100]; NaN заменяется на def.
func ClampPercent(p, def float64) float64 {
	if math.IsNaN(p) {
		return def
	}
	return math.Min(math.Max(p, 0), 100)
}

// ClampSeconds держит интервал в [0, MaxIntervalSeconds]; NaN заменяется на def.
func ClampSeconds(s, def float64) float64 {
	if math.IsNaN(s) {
		return def
	}
	return math.Min(math.Max(s, 0), MaxIntervalSeconds)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
