package utils

import (
	"net/url"
	"strings"
)

// IsValidGitHubURL reports whether link is an absolute URL pointing at
// github.com or www.github.com (case-insensitive host match)
func IsValidGitHubURL(link string) bool {
	if link == "" {
		return false
	}
	u, err := url.Parse(link)
	if err != nil || !u.IsAbs() {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "github.com" || host == "www.github.com"
}
