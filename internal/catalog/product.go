package catalog

import (
	"strings"

	"FanMarket/internal/feed"
)

// Product is one feed row with named fields. Values stay exactly as the
// sheet exported them; helpers normalize on the way out so every view
// renders the same way.
type Product struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	Price         string `json:"price"`
	DiscountPrice string `json:"discount_price"`
	Airflow       string `json:"airflow_m3h"`
	Power         string `json:"motor_power_kw"`
	Description   string `json:"description"`
}

func FromRecord(rec feed.Record) Product {
	return Product{
		Name:          rec.Get(feed.FieldName),
		Category:      rec.Get(feed.FieldCategory),
		Image:         rec.Get(feed.FieldImage),
		Price:         rec.Get(feed.FieldPrice),
		DiscountPrice: rec.Get(feed.FieldDiscountPrice),
		Airflow:       rec.Get(feed.FieldAirflow),
		Power:         rec.Get(feed.FieldPower),
		Description:   rec.Get(feed.FieldDescription),
	}
}

func FromRecords(recs []feed.Record) []Product {
	out := make([]Product, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromRecord(rec))
	}
	return out
}

// OnSale reports whether the discount price carries a real, non-zero value.
func (p Product) OnSale() bool {
	return !zeroOrEmpty(p.DiscountPrice)
}

func (p Product) Slug() string {
	return Slugify(p.Name)
}

// ImageURL resolves the raw image cell: absolute URLs pass through, bare
// filenames are joined to the configured image base.
func (p Product) ImageURL(base string) string {
	if p.Image == "" {
		return ""
	}
	if strings.HasPrefix(p.Image, "http://") || strings.HasPrefix(p.Image, "https://") {
		return p.Image
	}
	return strings.TrimRight(base, "/") + "/" + p.Image
}

// AirflowLabel renders the airflow spec; "0" and absent both mean the sheet
// has no figure for this model.
func (p Product) AirflowLabel() string {
	if p.Airflow == "" || p.Airflow == "0" {
		return "-"
	}
	return p.Airflow + " m³/h"
}

func (p Product) PowerLabel() string {
	if p.Power == "" || p.Power == "0" {
		return "-"
	}
	return p.Power + " Kw"
}
