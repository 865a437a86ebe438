package storage

import "strings"

// ExtractPath finds the storage path inside a public (or signed) URL by
// locating a well-known path-prefix marker and taking the remainder. Query
// strings (cache busters, signed tokens) are stripped first.
func ExtractPath(url, baseURL, bucket string) string {
	clean := url
	if idx := strings.IndexByte(clean, '?'); idx != -1 {
		clean = clean[:idx]
	}

	if baseURL != "" {
		prefix := strings.TrimRight(baseURL, "/") + "/"
		if strings.HasPrefix(clean, prefix) {
			return clean[len(prefix):]
		}
	}

	// Supabase-style object gateways embed the bucket after a fixed marker.
	for _, marker := range []string{
		"/object/public/" + bucket + "/",
		"/object/sign/" + bucket + "/",
	} {
		if idx := strings.Index(clean, marker); idx != -1 {
			return clean[idx+len(marker):]
		}
	}

	return ""
}
