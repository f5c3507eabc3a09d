package assistant

import (
	"regexp"
	"strings"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^)]+)\)`)
	doubledStorePattern = regexp.MustCompile(`(https://oclaria\.com/)+`)
)

// formatReply rewrites model output for surfaces that render plain text only
// (the storefront widget forwards replies to WhatsApp): markdown links become
// "title: url", and accidentally doubled store-URL prefixes collapse to one.
func formatReply(reply string) string {
	out := markdownLinkPattern.ReplaceAllString(strings.TrimSpace(reply), "$1: $2")
	out = doubledStorePattern.ReplaceAllString(out, "https://oclaria.com/")
	return out
}
