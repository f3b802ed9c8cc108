// Package winepage turns a wine shop price list spreadsheet into a
// static HTML catalog page.
package winepage

// Row is one record from the price list, as it comes off the
// spreadsheet. Required fields are always set after a successful load;
// GrapeType and Promotion are empty when the source cell was blank.
type Row struct {
	Category  string
	Name      string
	Price     string
	Image     string
	GrapeType string
	Promotion string
}

// Wine is one catalog entry ready for display.
type Wine struct {
	Name      string
	GrapeType string
	Price     string
	Image     string
	Promotion string
}

// Catalog groups wines by category. Categories keep the order of
// their first appearance in the source data, wines keep source order
// within each category.
type Catalog struct {
	categories []string
	wines      map[string][]Wine
}

func NewCatalog() *Catalog {
	return &Catalog{
		wines: make(map[string][]Wine),
	}
}

// Add appends a wine under category. Categories are compared by exact
// value; no trimming or case folding.
func (c *Catalog) Add(category string, w Wine) {
	if _, ok := c.wines[category]; !ok {
		c.categories = append(c.categories, category)
	}
	c.wines[category] = append(c.wines[category], w)
}

// Categories returns the category keys in first-seen order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// Wines returns the wines of one category in source order.
func (c *Catalog) Wines(category string) []Wine {
	return c.wines[category]
}

// Len is the total number of wines across all categories.
func (c *Catalog) Len() int {
	n := 0
	for _, ws := range c.wines {
		n += len(ws)
	}
	return n
}

// Group builds the catalog from the loaded rows, in source order.
func Group(rows []Row) *Catalog {
	c := NewCatalog()
	for _, row := range rows {
		c.Add(row.Category, Wine{
			Name:      row.Name,
			GrapeType: row.GrapeType,
			Price:     row.Price,
			Image:     row.Image,
			Promotion: row.Promotion,
		})
	}
	return c
}
