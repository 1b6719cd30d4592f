package timerapi

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
)

// NewJar returns a cookie jar seeded with the given cookies for baseURL.
// Empty values are skipped.
func NewJar(baseURL string, cookies map[string]string) (http.CookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}

	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	seeded := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		if cookies[name] == "" {
			continue
		}
		seeded = append(seeded, &http.Cookie{Name: name, Value: cookies[name], Path: "/"})
	}
	jar.SetCookies(target, seeded)

	return jar, nil
}

func CookieValue(jar http.CookieJar, baseURL string, name string) string {
	if jar == nil {
		return ""
	}

	target, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}

	for _, cookie := range jar.Cookies(target) {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}
