package catalog

import (
	"math/rand"
	"sort"
	"strings"
)

// CategoryAll is the sentinel category that matches every record.
const CategoryAll = "Hepsi"

// Categories returns the distinct category values in first-occurrence order.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, 8)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Search keeps records whose name contains term, case-insensitively. An
// empty term matches everything.
func Search(products []Product, term string) []Product {
	if term == "" {
		return products
	}
	t := strings.ToLower(term)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), t) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByCategory keeps records whose category matches exactly. The empty
// string and CategoryAll both match everything.
func FilterByCategory(products []Product, category string) []Product {
	if category == "" || category == CategoryAll {
		return products
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Paginate returns the 1-indexed page of the given size. Out-of-range pages
// yield an empty result, never an error.
func Paginate(products []Product, pageSize, page int) []Product {
	if pageSize < 1 || page < 1 {
		return nil
	}

	lo := (page - 1) * pageSize
	if lo >= len(products) {
		return nil
	}

	hi := lo + pageSize
	if hi > len(products) {
		hi = len(products)
	}
	return products[lo:hi]
}

// Featured returns up to n records in a deliberately weak random order: the
// collection is sorted with a coin-flip comparator, the way the storefront
// always has. Not a uniform shuffle.
func Featured(products []Product, n int) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	sort.Slice(out, func(i, j int) bool { return rand.Float64() < 0.5 })
	return clip(out, n)
}

// RecentlyAdded returns the last n records, newest first. The feed appends,
// so reverse insertion order is recency.
func RecentlyAdded(products []Product, n int) []Product {
	out := make([]Product, 0, len(products))
	for i := len(products) - 1; i >= 0; i-- {
		out = append(out, products[i])
	}
	return clip(out, n)
}

// Discounted returns up to n records with a real discount price, in feed
// order. A literal "0" or an empty cell is not a discount, even when the
// list price is set.
func Discounted(products []Product, n int) []Product {
	var out []Product
	for _, p := range products {
		if p.OnSale() {
			out = append(out, p)
		}
	}
	return clip(out, n)
}

func clip(products []Product, n int) []Product {
	if n < 0 {
		n = 0
	}
	if len(products) > n {
		return products[:n]
	}
	return products
}
