package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FanMarket/internal/catalog"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Aksiyel Fan Çİ", "aksiyel-fan-ci"},
		{"Çatı Fanı 500", "cati-fani-500"},
		{"SALYANGOZ FAN (ÖZEL)", "salyangoz-fan-ozel"},
		{"  boşluklu   isim  ", "bosluklu-isim"},
		{"Kanal--Fanı", "kanal-fani"},
		{"ığüşiöç ĞÜŞİÖÇ", "igusioc-gusioc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Slugify(tt.name))
		})
	}
}

func TestResolve(t *testing.T) {
	products := []catalog.Product{
		{Name: "Aksiyel Fan 200", Category: "Aksiyel"},
		{Name: "Kanal Fanı", Category: "Kanal"},
		// Slugifies the same as the record above; the first one wins.
		{Name: "Kanal-Fanı", Category: "Kanal Tipi"},
	}

	p, ok := catalog.Resolve(products, "aksiyel-fan-200")
	require.True(t, ok)
	assert.Equal(t, "Aksiyel Fan 200", p.Name)

	p, ok = catalog.Resolve(products, "kanal-fani")
	require.True(t, ok)
	assert.Equal(t, "Kanal", p.Category, "first matching record is authoritative")

	_, ok = catalog.Resolve(products, "yok-boyle-urun")
	assert.False(t, ok)
}
