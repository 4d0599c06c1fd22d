package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"FanMarket/internal/catalog"
	"FanMarket/internal/feed"
)

func TestFromRecord(t *testing.T) {
	p := catalog.FromRecord(feed.Record{
		feed.FieldName:          " Aksiyel Fan 200 ",
		feed.FieldCategory:      "Aksiyel",
		feed.FieldPrice:         "1500",
		feed.FieldDiscountPrice: "1200",
		feed.FieldAirflow:       "1800",
		feed.FieldPower:         "0",
	})

	assert.Equal(t, "Aksiyel Fan 200", p.Name)
	assert.True(t, p.OnSale())
	assert.Equal(t, "1800 m³/h", p.AirflowLabel())
	assert.Equal(t, "-", p.PowerLabel(), `"0" means not specified`)
}

func TestProduct_OnSale(t *testing.T) {
	assert.False(t, catalog.Product{DiscountPrice: ""}.OnSale())
	assert.False(t, catalog.Product{DiscountPrice: "0"}.OnSale())
	assert.False(t, catalog.Product{Price: "1500", DiscountPrice: "0"}.OnSale())
	assert.True(t, catalog.Product{DiscountPrice: "899,90"}.OnSale())
}

func TestProduct_ImageURL(t *testing.T) {
	assert.Equal(t, "", catalog.Product{}.ImageURL("/image"))
	assert.Equal(t, "/image/fan.png", catalog.Product{Image: "fan.png"}.ImageURL("/image/"))
	assert.Equal(t,
		"https://cdn.example.com/fan.png",
		catalog.Product{Image: "https://cdn.example.com/fan.png"}.ImageURL("/image"),
		"absolute URLs pass through untouched")
}

func TestInquiryURL(t *testing.T) {
	p := catalog.Product{Name: "Aksiyel Fan 200", Price: "1500"}

	got := catalog.InquiryURL("905541591203", p)
	assert.Contains(t, got, "https://wa.me/905541591203?text=")
	assert.Contains(t, got, "Aksiyel+Fan+200")

	sale := catalog.Product{Name: "Kanal Fanı", Price: "2000", DiscountPrice: "1750"}
	got = catalog.InquiryURL("905541591203", sale)
	assert.Contains(t, got, "1.750")

	assert.Empty(t, catalog.InquiryURL("", p), "no number configured, no link")
}
