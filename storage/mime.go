package storage

// imageExtensions doubles as the accepted-encoding allow-list for uploads:
// a content type outside this map is rejected before anything is written.
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/avif": "avif",
}

// IsAllowedImageType reports whether the content type may be uploaded.
func IsAllowedImageType(contentType string) bool {
	_, ok := imageExtensions[contentType]
	return ok
}

// ExtensionFor returns the file extension used in storage paths for an
// accepted image content type.
func ExtensionFor(contentType string) string {
	if ext, ok := imageExtensions[contentType]; ok {
		return ext
	}
	return "bin"
}
