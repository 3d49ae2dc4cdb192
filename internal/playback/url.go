package playback

import (
	"net/url"
	"strings"
)

// FallbackURL is the embed target used when an entry has no embed URL.
const FallbackURL = "https://www.youtube.com/embed/gC_L9qAHVJ8"

const playbackParams = "autoplay=1&mute=1"

// BuildURL returns a frame source for embedURL that autoplays muted.
//
// Absolute URLs keep any autoplay, mute or muted parameter the caller already
// set; only the missing ones are added. Anything that does not parse as an
// absolute URL gets both parameters appended verbatim, even if it already
// carries them.
func BuildURL(embedURL string) string {
	base := embedURL
	if base == "" {
		base = FallbackURL
	}

	u, ok := parseAbsolute(base)
	if !ok {
		return appendParams(base)
	}
	return withDefaultParams(u)
}

// Schemes that are only meaningful with a host. Any other scheme may have an
// empty host, as in file:///clip.mp4.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

func parseAbsolute(raw string) (*url.URL, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, false
	}
	if u.Scheme == "" {
		return nil, false
	}
	if hostSchemes[u.Scheme] && u.Host == "" {
		return nil, false
	}
	return u, true
}

func withDefaultParams(u *url.URL) string {
	keys := queryKeys(u.RawQuery)

	params := make([]string, 0, 3)
	if u.RawQuery != "" {
		params = append(params, u.RawQuery)
	}
	if !keys["autoplay"] {
		params = append(params, "autoplay=1")
	}
	if !keys["mute"] && !keys["muted"] {
		params = append(params, "mute=1")
	}

	u.RawQuery = strings.Join(params, "&")
	return u.String()
}

// queryKeys collects the keys of an &-separated query. Unlike url.ParseQuery it
// keeps pairs whose values contain a semicolon.
func queryKeys(rawQuery string) map[string]bool {
	keys := make(map[string]bool)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if unescaped, err := url.QueryUnescape(key); err == nil {
			key = unescaped
		}
		keys[key] = true
	}
	return keys
}

func appendParams(raw string) string {
	if strings.Contains(raw, "?") {
		return raw + "&" + playbackParams
	}
	return raw + "?" + playbackParams
}
