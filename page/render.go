// Package page renders the grouped catalog into the HTML page.
package page

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/osteele/liquid"

	"winepage"
)

// ErrTemplateNotFound means the template path does not resolve to a
// readable template file.
var ErrTemplateNotFound = errors.New("шаблон не найден")

// Render fills the template at templatePath with exactly three
// bindings: winery_years, year_word and wines. The template owns all
// markup; wines is the catalog as an ordered sequence of
// {category, items} groups so the template can keep source order.
func Render(c *winepage.Catalog, years int, yearWord, templatePath string) (string, error) {
	src, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, templatePath)
	}

	engine := liquid.NewEngine()
	out, err := engine.ParseAndRenderString(string(src), liquid.Bindings{
		"winery_years": years,
		"year_word":    yearWord,
		"wines":        wineGroups(c),
	})
	if err != nil {
		return "", fmt.Errorf("рендеринг шаблона %s: %w", templatePath, err)
	}
	return out, nil
}

func wineGroups(c *winepage.Catalog) []map[string]interface{} {
	groups := make([]map[string]interface{}, 0, len(c.Categories()))
	for _, category := range c.Categories() {
		wines := c.Wines(category)
		items := make([]map[string]interface{}, 0, len(wines))
		for _, w := range wines {
			items = append(items, map[string]interface{}{
				"name":       w.Name,
				"grape_type": w.GrapeType,
				"price":      w.Price,
				"image":      w.Image,
				"promotion":  w.Promotion,
			})
		}
		groups = append(groups, map[string]interface{}{
			"category": category,
			"items":    items,
		})
	}
	return groups
}

// Save writes the page to outputPath in full, overwriting any previous
// version. The write goes to a temporary file in the same directory
// and renames into place, so a failed run never leaves a half-written
// page behind.
func Save(html, outputPath string) error {
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, filepath.Base(outputPath)+".tmp*")
	if err != nil {
		return fmt.Errorf("создание %s: %w", outputPath, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return fmt.Errorf("запись %s: %w", outputPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("запись %s: %w", outputPath, err)
	}
	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return fmt.Errorf("сохранение %s: %w", outputPath, err)
	}
	return nil
}
