package services

import (
	"context"
	"dulcemasa_server/lib"
	"dulcemasa_server/structs"
	"dulcemasa_server/structs/tables"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func galleryRow(url string, order int, createdAt time.Time) tables.ProductImage {
	return tables.ProductImage{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		URL:       url,
		Order:     order,
		CreatedAt: createdAt,
	}
}

func strPtr(s string) *string { return &s }

func TestNextOrder(t *testing.T) {
	now := time.Now()

	assert.Equal(t, 0, NextOrder(nil))
	assert.Equal(t, 0, NextOrder([]tables.ProductImage{}))

	assert.Equal(t, 3, NextOrder([]tables.ProductImage{
		galleryRow("a", 0, now),
		galleryRow("b", 2, now),
		galleryRow("c", 1, now),
	}))

	// gaps left by deletions are not reused
	assert.Equal(t, 8, NextOrder([]tables.ProductImage{
		galleryRow("a", 7, now),
	}))
}

func TestShouldSetCover(t *testing.T) {
	assert.True(t, ShouldSetCover(true, strPtr("existing")))
	assert.True(t, ShouldSetCover(false, nil))
	assert.True(t, ShouldSetCover(false, strPtr("")))
	assert.False(t, ShouldSetCover(false, strPtr("existing")))
}

func TestMergeGallerySortsByOrderThenCreatedAt(t *testing.T) {
	base := time.Now()
	rows := []tables.ProductImage{
		galleryRow("third", 2, base),
		galleryRow("first", 0, base),
		galleryRow("second", 0, base.Add(time.Minute)),
	}

	gallery := MergeGallery(nil, rows)
	require.Len(t, gallery, 3)
	assert.Equal(t, "first", gallery[0].URL)
	assert.Equal(t, "second", gallery[1].URL)
	assert.Equal(t, "third", gallery[2].URL)
}

func TestMergeGalleryPrependsLegacyCover(t *testing.T) {
	rows := []tables.ProductImage{
		galleryRow("https://cdn/a.png", 0, time.Now()),
	}

	gallery := MergeGallery(strPtr("https://cdn/legacy.png"), rows)
	require.Len(t, gallery, 2)
	assert.Equal(t, structs.LegacyImageID, gallery[0].ID)
	assert.Equal(t, "https://cdn/legacy.png", gallery[0].URL)
	assert.Equal(t, structs.LegacyImageOrder, gallery[0].Order)
	assert.Equal(t, "https://cdn/a.png", gallery[1].URL)
}

func TestMergeGallerySkipsLegacyWhenCoverIsARow(t *testing.T) {
	rows := []tables.ProductImage{
		galleryRow("https://cdn/a.png", 0, time.Now()),
	}

	gallery := MergeGallery(strPtr("https://cdn/a.png"), rows)
	require.Len(t, gallery, 1)
	assert.NotEqual(t, structs.LegacyImageID, gallery[0].ID)
}

func TestMergeGalleryEmptyCoverIgnored(t *testing.T) {
	gallery := MergeGallery(strPtr(""), nil)
	assert.Empty(t, gallery)
}

func TestMergeGalleryIdempotentOrdering(t *testing.T) {
	base := time.Now()
	rows := []tables.ProductImage{
		galleryRow("b", 1, base),
		galleryRow("a", 0, base),
		galleryRow("c", 1, base.Add(time.Second)),
	}

	first := MergeGallery(strPtr("legacy"), rows)
	second := MergeGallery(strPtr("legacy"), rows)
	assert.Equal(t, first, second)
}

func TestNextCoverNotTheDeletedURL(t *testing.T) {
	cover, changed := NextCover("https://cdn/gone.png", strPtr("https://cdn/other.png"), nil)
	assert.False(t, changed)
	require.NotNil(t, cover)
	assert.Equal(t, "https://cdn/other.png", *cover)
}

func TestNextCoverNilCurrent(t *testing.T) {
	cover, changed := NextCover("https://cdn/gone.png", nil, nil)
	assert.False(t, changed)
	assert.Nil(t, cover)
}

func TestNextCoverReassignsToFirstRemaining(t *testing.T) {
	base := time.Now()
	remaining := []tables.ProductImage{
		galleryRow("https://cdn/b.png", 2, base),
		galleryRow("https://cdn/a.png", 1, base),
	}

	cover, changed := NextCover("https://cdn/gone.png", strPtr("https://cdn/gone.png"), remaining)
	assert.True(t, changed)
	require.NotNil(t, cover)
	assert.Equal(t, "https://cdn/a.png", *cover)
}

func TestNextCoverClearsWhenGalleryEmpties(t *testing.T) {
	cover, changed := NextCover("https://cdn/gone.png", strPtr("https://cdn/gone.png"), nil)
	assert.True(t, changed)
	assert.Nil(t, cover)
}

func TestUploadRejectsNonImageContentTypes(t *testing.T) {
	// the MIME gate fires before any database or storage access
	is := &ImageService{}
	id := uuid.New()

	for _, ct := range []string{"application/pdf", "image/svg+xml", "text/html", ""} {
		_, err := is.UploadCategoryCover(context.Background(), id, ct, []byte("payload"))
		assert.ErrorIs(t, err, lib.ErrInvalidInput, ct)

		_, err = is.UploadGalleryImage(context.Background(), id, ct, []byte("payload"), nil, false)
		assert.ErrorIs(t, err, lib.ErrInvalidInput, ct)
	}
}
