package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPathWithBaseURL(t *testing.T) {
	base := "https://cdn.dulcemasa.ar/images"

	assert.Equal(t, "categorias/abc-123.webp",
		ExtractPath("https://cdn.dulcemasa.ar/images/categorias/abc-123.webp", base, "images"))

	// cache busters are stripped before matching
	assert.Equal(t, "categorias/abc-123.webp",
		ExtractPath("https://cdn.dulcemasa.ar/images/categorias/abc-123.webp?v=2", base, "images"))

	// trailing slash on the configured base is tolerated
	assert.Equal(t, "productos/p1/img.png",
		ExtractPath("https://cdn.dulcemasa.ar/images/productos/p1/img.png", base+"/", "images"))
}

func TestExtractPathObjectGatewayMarkers(t *testing.T) {
	assert.Equal(t, "productos/p1/img.png",
		ExtractPath("https://xyz.supabase.co/storage/v1/object/public/images/productos/p1/img.png", "", "images"))

	assert.Equal(t, "productos/p1/img.png",
		ExtractPath("https://xyz.supabase.co/storage/v1/object/sign/images/productos/p1/img.png?token=abc", "", "images"))
}

func TestExtractPathUnmappable(t *testing.T) {
	assert.Equal(t, "",
		ExtractPath("https://elsewhere.com/some/image.png", "https://cdn.dulcemasa.ar/images", "images"))
	assert.Equal(t, "", ExtractPath("", "", "images"))
}

func TestImageTypeAllowList(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/webp", "image/gif", "image/avif"} {
		assert.True(t, IsAllowedImageType(ct), ct)
	}
	for _, ct := range []string{"image/svg+xml", "application/pdf", "text/html", ""} {
		assert.False(t, IsAllowedImageType(ct), ct)
	}

	assert.Equal(t, "jpg", ExtensionFor("image/jpeg"))
	assert.Equal(t, "webp", ExtensionFor("image/webp"))
}
