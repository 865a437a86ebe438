package lib

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds the wa.me deep link customers use instead of a
// checkout. Empty phone disables the feature (returns "").
func WhatsAppLink(phone, productName, productURL string) string {
	if phone == "" {
		return ""
	}

	text := fmt.Sprintf("Hola! Quiero consultar por %q", productName)
	if productURL != "" {
		text += " " + productURL
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}
