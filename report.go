package winepage

// CategoryCount is one line of the operator summary.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary holds the per-category and total wine counts.
type Summary struct {
	Total      int
	Categories []CategoryCount
}

// Summarize counts the catalog, keeping category order.
func Summarize(c *Catalog) Summary {
	var s Summary
	for _, cat := range c.Categories() {
		n := len(c.Wines(cat))
		s.Categories = append(s.Categories, CategoryCount{Category: cat, Count: n})
		s.Total += n
	}
	return s
}
