// internal/assets/symbols.go
package assets

import (
	"embed"
	"fmt"
	"log"
	"os"

	"gender-selector/pkg/shape"
)

//go:embed symbols/*.path
var symbolFS embed.FS

const (
	maleSymbol   = "symbols/male.path"
	femaleSymbol = "symbols/female.path"
)

// Symbols хранит разобранные контуры обоих знаков.
type Symbols struct {
	Male   *shape.Outline
	Female *shape.Outline
}

// LoadSymbols загружает контуры. Пустой путь означает встроенный ресурс,
// иначе path data читается из указанного файла.
func LoadSymbols(malePath, femalePath string) (Symbols, error) {
	male, err := loadOutline(maleSymbol, malePath)
	if err != nil {
		return Symbols{}, err
	}
	female, err := loadOutline(femaleSymbol, femalePath)
	if err != nil {
		return Symbols{}, err
	}
	return Symbols{Male: male, Female: female}, nil
}

func loadOutline(embedded, override string) (*shape.Outline, error) {
	source := embedded
	var (
		data []byte
		err  error
	)
	if override != "" {
		source = override
		data, err = os.ReadFile(override)
	} else {
		data, err = symbolFS.ReadFile(embedded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol %s: %w", source, err)
	}

	outline, err := shape.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse symbol %s: %w", source, err)
	}
	b := outline.Bounds()
	log.Printf("Loaded symbol %s: %d segments, bounds %.1fx%.1f at (%.1f, %.1f)", source, outline.Len(), b.W, b.H, b.X, b.Y)
	return outline, nil
}
