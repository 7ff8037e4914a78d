// internal/ui/choice.go
package ui

import (
	"fmt"
	"strings"
)

// Choice — один из двух вариантов выбора.
type Choice int

const (
	Male Choice = iota
	Female
)

// Choices перечисляет варианты в порядке приоритета проверки попаданий.
var Choices = [2]Choice{Male, Female}

func (c Choice) String() string {
	switch c {
	case Male:
		return "male"
	case Female:
		return "female"
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// Label — подпись под знаком.
func (c Choice) Label() string {
	switch c {
	case Male:
		return "Male"
	case Female:
		return "Female"
	}
	return c.String()
}

// Other возвращает противоположный вариант.
func (c Choice) Other() Choice {
	if c == Male {
		return Female
	}
	return Male
}

// Valid reports whether c is one of the two declared variants.
func (c Choice) Valid() bool {
	return c == Male || c == Female
}

// ParseChoice разбирает имя варианта без учёта регистра.
func ParseChoice(s string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return Male, nil
	case "female":
		return Female, nil
	}
	return 0, fmt.Errorf("unknown choice %q", s)
}
