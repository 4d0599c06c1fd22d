package catalog

import (
	"strings"
	"unicode"
)

// Turkish letters map to plain ASCII before lowercasing; ToLower alone would
// turn İ into i with a combining dot.
var turkishASCII = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "I", "i",
	"İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// Slugify derives the URL identifier for a product name: transliterate,
// lowercase, drop anything else non-alphanumeric and collapse whitespace
// runs into single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(turkishASCII.Replace(name))

	var b strings.Builder
	b.Grow(len(s))

	hyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// Resolve finds the product whose name slugifies to slug. Slugs are derived,
// never stored: when two names collide the first record in feed order wins.
func Resolve(products []Product, slug string) (Product, bool) {
	for _, p := range products {
		if Slugify(p.Name) == slug {
			return p, true
		}
	}
	return Product{}, false
}
