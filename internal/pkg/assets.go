package pkg

import "strings"

// AssetURL joins a stored relative asset path with the configured public
// base URL. Empty paths stay empty; absolute URLs are passed through.
func AssetURL(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
