package models

import "strings"

// PlaceholderImageURL substitutes for vehicles that carry no usable image in
// any of the historical field layouts.
const PlaceholderImageURL = "https://via.placeholder.com/400x300?text=No+Image"

// ResolveImageURL walks the known image aliases in priority order and returns
// the first non-empty URL, normalized against apiOrigin. It is deterministic
// and never fetches anything; a URL that 404s at render time is the
// frontend's broken-image fallback, not ours.
//
// Candidate order: images.thumbnail, images.gallery[0], thumbnail, image,
// imageUrl, image_url, primaryImage, mainImage, images[0] (string array),
// images[0].url (object array).
func ResolveImageURL(raw RawVehicle, apiOrigin string) string {
	candidates := []any{}

	if imgs, ok := asMap(raw["images"]); ok {
		candidates = append(candidates, unwrapURL(imgs["thumbnail"]))
		if gallery := asSlice(imgs["gallery"]); len(gallery) > 0 {
			candidates = append(candidates, unwrapURL(gallery[0]))
		}
	}

	candidates = append(candidates,
		raw["thumbnail"],
		raw["image"],
		raw["imageUrl"],
		raw["image_url"],
		raw["primaryImage"],
		raw["mainImage"],
	)

	// images may itself be an array (legacy listings), of strings or {url}s
	if arr := asSlice(raw["images"]); len(arr) > 0 {
		candidates = append(candidates, unwrapURL(arr[0]))
	}

	for _, c := range candidates {
		if s, ok := c.(string); ok && s != "" {
			return NormalizeImageURL(s, apiOrigin)
		}
	}
	return PlaceholderImageURL
}

// NormalizeImageURL makes a stored image reference absolute. Absolute and
// data: URLs pass through, protocol-relative ones get https, root-relative
// paths get the API origin. Idempotent.
func NormalizeImageURL(url, apiOrigin string) string {
	switch {
	case url == "":
		return ""
	case hasHTTPScheme(url), strings.HasPrefix(url, "data:"):
		return url
	case strings.HasPrefix(url, "//"):
		return "https:" + url
	case strings.HasPrefix(url, "/"):
		return strings.TrimSuffix(apiOrigin, "/") + url
	default:
		return url
	}
}

func hasHTTPScheme(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// unwrapURL accepts either a plain string or a {url: "..."} object.
func unwrapURL(v any) any {
	if m, ok := asMap(v); ok {
		return m["url"]
	}
	return v
}
