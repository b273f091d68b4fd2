package order

import "net/url"

const mapSearchBase = "https://www.google.com/maps/search/?api=1&query="

// MapLinkFor builds a map-search URL from a raw customer address. The
// address is only percent-encoded; no geocoding happens.
func MapLinkFor(address string) string {
	if address == "" {
		return ""
	}

	return mapSearchBase + url.QueryEscape(address)
}
