package blogservice

import "regexp"

var scriptTagRX = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// sanitizeComment strips script tags from user supplied comment text before it
// is validated and stored.
func sanitizeComment(text string) string {
	return scriptTagRX.ReplaceAllString(text, "")
}
