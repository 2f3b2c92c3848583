package inventory

// Inventory is the resolved set of routes for one generation run.
type Inventory struct {
	Static      []Page
	Products    []string
	CaseStudies []string
}

// ProductPage builds the inventory row for a product slug.
func ProductPage(slug string) Page {
	return Page{
		Path:     ProductPrefix + "/" + slug,
		Category: CategoryProduct,
		Copy:     ProductCopy[slug],
	}
}

// CaseStudyPage builds the inventory row for a case-study slug.
func CaseStudyPage(slug string) Page {
	return Page{
		Path:     CaseStudyPrefix + "/" + slug,
		Category: CategoryCaseStudy,
		Copy:     CaseStudyCopy[slug],
	}
}

// Pages flattens the inventory: static rows first, then products, then case
// studies, each in the order they were resolved.
func (inv Inventory) Pages() []Page {
	out := make([]Page, 0, len(inv.Static)+len(inv.Products)+len(inv.CaseStudies))
	out = append(out, inv.Static...)
	for _, slug := range inv.Products {
		out = append(out, ProductPage(slug))
	}
	for _, slug := range inv.CaseStudies {
		out = append(out, CaseStudyPage(slug))
	}
	return out
}

// ByCategory groups pages by category, preserving order within each group.
func ByCategory(pages []Page) map[Category][]Page {
	out := make(map[Category][]Page)
	for _, p := range pages {
		out[p.Category] = append(out[p.Category], p)
	}
	return out
}
