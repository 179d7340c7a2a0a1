package domain

import "regexp"

// urlPattern is the shared "looks like a URL" check used for user avatars
// and card links: http or https scheme, optional www, a dotted host, an
// optional path, and an optional trailing slash. It is deliberately not a
// strict RFC 3986 validator.
var urlPattern = regexp.MustCompile(
	`^https?://(www\.)?[\w\-]+(\.[\w\-]+)+[\w\-._~:/?#\[\]@!$&'()*+,;=]*/?$`,
)

// ValidURL reports whether s passes the shared avatar/link URL check.
func ValidURL(s string) bool {
	return urlPattern.MatchString(s)
}
