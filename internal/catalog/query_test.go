package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FanMarket/internal/catalog"
)

func numbered(n int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, catalog.Product{Name: fmt.Sprintf("Fan %02d", i)})
	}
	return out
}

func TestCategories(t *testing.T) {
	products := []catalog.Product{
		{Name: "a", Category: "Aksiyel"},
		{Name: "b", Category: "Kanal"},
		{Name: "c", Category: "Aksiyel"},
		{Name: "d", Category: "Çatı"},
	}

	assert.Equal(t, []string{"Aksiyel", "Kanal", "Çatı"}, catalog.Categories(products))
}

func TestSearch(t *testing.T) {
	products := []catalog.Product{
		{Name: "Aksiyel Fan 200"},
		{Name: "Kanal Fanı 315"},
		{Name: "Salyangoz Fan"},
	}

	got := catalog.Search(products, "fan")
	assert.Len(t, got, 3, "matching is case-insensitive")

	got = catalog.Search(products, "KANAL")
	require.Len(t, got, 1)
	assert.Equal(t, "Kanal Fanı 315", got[0].Name)

	assert.Len(t, catalog.Search(products, ""), 3, "empty term matches all")
	assert.Empty(t, catalog.Search(products, "duman"))
}

func TestFilterByCategory(t *testing.T) {
	products := []catalog.Product{
		{Name: "a", Category: "Aksiyel"},
		{Name: "b", Category: "Kanal"},
	}

	got := catalog.FilterByCategory(products, "Kanal")
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Name)

	assert.Len(t, catalog.FilterByCategory(products, catalog.CategoryAll), 2)
	assert.Len(t, catalog.FilterByCategory(products, ""), 2)
	assert.Empty(t, catalog.FilterByCategory(products, "aksiyel"), "match is exact, not folded")
}

func TestPaginate(t *testing.T) {
	products := numbered(20)

	page1 := catalog.Paginate(products, 16, 1)
	require.Len(t, page1, 16)
	assert.Equal(t, "Fan 00", page1[0].Name)
	assert.Equal(t, "Fan 15", page1[15].Name)

	page2 := catalog.Paginate(products, 16, 2)
	require.Len(t, page2, 4)
	assert.Equal(t, "Fan 16", page2[0].Name)

	assert.Empty(t, catalog.Paginate(products, 16, 3))
	assert.Empty(t, catalog.Paginate(products, 16, 0))
	assert.Empty(t, catalog.Paginate(products, 0, 1))
}

func TestFeatured(t *testing.T) {
	products := numbered(20)

	got := catalog.Featured(products, 12)
	assert.Len(t, got, 12)

	got = catalog.Featured(products, 50)
	assert.Len(t, got, 20)

	seen := map[string]int{}
	for _, p := range got {
		seen[p.Name]++
	}
	for _, p := range products {
		assert.Equal(t, 1, seen[p.Name], "shuffle must keep each record exactly once")
	}

	assert.Equal(t, numbered(20), products, "input order must not change")
}

func TestRecentlyAdded(t *testing.T) {
	products := numbered(5)

	got := catalog.RecentlyAdded(products, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Fan 04", got[0].Name)
	assert.Equal(t, "Fan 02", got[2].Name)

	assert.Equal(t, numbered(5), products, "input order must not change")
}

func TestDiscounted(t *testing.T) {
	products := []catalog.Product{
		{Name: "a", Price: "1500", DiscountPrice: "1200"},
		{Name: "b", Price: "900", DiscountPrice: "0"},
		{Name: "c", Price: "700", DiscountPrice: ""},
		{Name: "d", Price: "2000", DiscountPrice: "1750,50"},
		{Name: "e", DiscountPrice: "0,00"},
	}

	got := catalog.Discounted(products, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "d", got[1].Name)

	assert.Len(t, catalog.Discounted(products, 1), 1)
	assert.Empty(t, catalog.Discounted(products, 0))
}
