package catalog

import (
	"fmt"
	"net/url"
)

// InquiryURL builds the wa.me deep link with the pre-filled sales message
// for a product. Discounted products mention the campaign price so the
// quote matches what the visitor saw on the page.
func InquiryURL(phone string, p Product) string {
	if phone == "" {
		return ""
	}

	text := fmt.Sprintf("Merhaba, %s, ürünü hakkında bilgi alabilir miyim?", p.Name)
	if p.OnSale() {
		text = fmt.Sprintf("Merhaba, %s (indirimli fiyat: %s) ürünü hakkında bilgi alabilir miyim?",
			p.Name, FormatPrice(p.DiscountPrice))
	}

	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text)
}
