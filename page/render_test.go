package page

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winepage"
)

const testTemplate = `<h1>{{ winery_years }} {{ year_word }}</h1>
{% for group in wines %}<section>
<h2>{{ group.category }}</h2>
{% for wine in group.items %}<p>{{ wine.name }} — {{ wine.price }} — {{ wine.grape_type }}{{ wine.promotion }}</p>
{% endfor %}</section>
{% endfor %}`

func writeTemplate(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.html")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func testCatalog() *winepage.Catalog {
	return winepage.Group([]winepage.Row{
		{Category: "Красное", Name: "Саперави", Price: "950", Image: "s.png", GrapeType: "Саперави"},
		{Category: "Белое", Name: "Ркацители", Price: "870", Image: "r.png"},
		{Category: "Красное", Name: "Киндзмараули", Price: "1200", Image: "k.png", Promotion: "Акция"},
	})
}

func TestRender(t *testing.T) {
	html, err := Render(testCatalog(), 103, "года", writeTemplate(t, testTemplate))
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>103 года</h1>")

	// Category order follows first appearance in the source.
	red := strings.Index(html, "<h2>Красное</h2>")
	white := strings.Index(html, "<h2>Белое</h2>")
	require.True(t, red >= 0 && white >= 0)
	assert.Less(t, red, white)

	// Every wine's name and price land inside its category's section.
	redSection := html[red:white]
	assert.Contains(t, redSection, "Саперави — 950")
	assert.Contains(t, redSection, "Киндзмараули — 1200")
	assert.Contains(t, redSection, "Акция")

	whiteSection := html[white:]
	assert.Contains(t, whiteSection, "Ркацители — 870")
}

func TestRenderNegativeAge(t *testing.T) {
	html, err := Render(winepage.NewCatalog(), -7, "года", writeTemplate(t, testTemplate))
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>-7 года</h1>")
}

func TestRenderTemplateNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "нет.html")
	_, err := Render(testCatalog(), 1, "год", missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
	assert.Contains(t, err.Error(), missing)
}

func TestRenderBadTemplate(t *testing.T) {
	path := writeTemplate(t, "{% for %}")
	_, err := Render(testCatalog(), 1, "год", path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTemplateNotFound))
}

func TestDefaultTemplate(t *testing.T) {
	html, err := Render(testCatalog(), 11, "лет", filepath.Join("..", "template.html"))
	require.NoError(t, err)

	assert.Contains(t, html, "Уже 11 лет с вами")
	assert.Contains(t, html, "Киндзмараули")
	assert.Contains(t, html, "950")
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "index.html")

	require.NoError(t, Save("<html>раз</html>", out))
	bs, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<html>раз</html>", string(bs))

	// Overwrite semantics, and no temp files left behind.
	require.NoError(t, Save("<html>два</html>", out))
	bs, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<html>два</html>", string(bs))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveBadPath(t *testing.T) {
	err := Save("x", filepath.Join(t.TempDir(), "нет", "index.html"))
	require.Error(t, err)
}
