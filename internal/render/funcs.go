package render

import (
	"net/url"
	"strings"
)

// NormalizeURL strips the query and fragment from a URL and tidies its path
// (duplicate slashes collapsed, trailing slash dropped). Scheme, host and
// port are kept as-is. Unparseable input is returned unchanged; link fields
// are validated elsewhere.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""

	path := u.Path
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	path = strings.TrimSuffix(path, "/")
	u.Path = path
	u.RawPath = ""

	return u.String()
}
