// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed data/jokes.json
var embeddedJokes []byte

// Jokes — банк шуток, из которого сова выбирает реплику по клику.
type Jokes []string

// Picker — источник случайных индексов (utils.PRNGService).
type Picker interface {
	Intn(n int) int
}

// Pick выбирает шутку равномерно. Пустой банк даёт пустую строку.
func (j Jokes) Pick(p Picker) string {
	if len(j) == 0 {
		return ""
	}
	return j[p.Intn(len(j))]
}

// ParseJokes разбирает JSON-массив строк, отбрасывая пустые.
func ParseJokes(data []byte) (Jokes, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal jokes: %w", err)
	}
	jokes := make(Jokes, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			jokes = append(jokes, s)
		}
	}
	if len(jokes) == 0 {
		return nil, errors.New("joke bank is empty")
	}
	return jokes, nil
}

// LoadJokes читает банк шуток из файла.
func LoadJokes(path string) (Jokes, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jokes file: %w", err)
	}
	return ParseJokes(file)
}

// DefaultJokes возвращает встроенный банк. Встроенные данные валидны, поэтому паника означает сломанную сборку.
func DefaultJokes() Jokes {
	jokes, err := ParseJokes(embeddedJokes)
	if err != nil {
		panic(err)
	}
	return jokes
}
