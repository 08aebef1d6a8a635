package common

import (
	"net/url"
)

func IsValidURL(rawurl string) bool {
	u, err := url.ParseRequestURI(rawurl)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// IsValidNationName checks a nation name or id as the game accepts them:
// letters, digits, spaces, underscores and hyphens, at most 40 characters.
func IsValidNationName(name string) bool {
	if len(name) == 0 || len(name) > 40 {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == ' ' || c == '_' || c == '-':
		default:
			return false
		}
	}

	return true
}
