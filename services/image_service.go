package services

import (
	"context"
	"dulcemasa_server/database"
	"dulcemasa_server/lib"
	"dulcemasa_server/storage"
	"dulcemasa_server/structs"
	"dulcemasa_server/structs/tables"
	"fmt"
	"sort"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ImageService owns every image concern: category covers, product galleries,
// and the blob lifecycle behind both. Rows are authoritative; blob removal is
// best effort and never blocks a database mutation.
type ImageService struct {
	logger  *gecho.Logger
	db      *database.DB
	storage *storage.Client
	cache   *CacheService
}

func NewImageService(logger *gecho.Logger, db *database.DB, store *storage.Client, cache *CacheService) *ImageService {
	return &ImageService{
		logger:  logger,
		db:      db,
		storage: store,
		cache:   cache,
	}
}

// GalleryImageInput registers an already-uploaded blob as a gallery entry.
type GalleryImageInput struct {
	URL         string `json:"url" validate:"required,url"`
	StoragePath string `json:"path" validate:"required"`
	Order       *int   `json:"orden" validate:"omitempty,min=0"`
	SetCover    bool   `json:"es_portada"`
}

// NextOrder assigns the slot for a new gallery image: one past the highest
// existing order, or zero for an empty gallery.
func NextOrder(existing []tables.ProductImage) int {
	if len(existing) == 0 {
		return 0
	}
	max := existing[0].Order
	for _, img := range existing[1:] {
		if img.Order > max {
			max = img.Order
		}
	}
	return max + 1
}

// ShouldSetCover reports whether a newly added image becomes the product
// cover: either the caller asked for it or the product has none yet.
func ShouldSetCover(requested bool, currentCover *string) bool {
	if requested {
		return true
	}
	return currentCover == nil || *currentCover == ""
}

// MergeGallery folds a legacy cover URL into the gallery rows. Products
// predating the gallery table only have imagen_url; the merged view pins that
// URL first as a synthetic entry unless a row already carries it.
func MergeGallery(cover *string, rows []tables.ProductImage) []structs.GalleryImage {
	sorted := make([]tables.ProductImage, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	gallery := make([]structs.GalleryImage, 0, len(sorted)+1)
	coverInRows := false
	for _, row := range sorted {
		if cover != nil && row.URL == *cover {
			coverInRows = true
		}
		gallery = append(gallery, structs.GalleryImage{
			ID:    row.ID.String(),
			URL:   row.URL,
			Order: row.Order,
		})
	}

	if cover != nil && *cover != "" && !coverInRows {
		legacy := structs.GalleryImage{
			ID:    structs.LegacyImageID,
			URL:   *cover,
			Order: structs.LegacyImageOrder,
		}
		gallery = append([]structs.GalleryImage{legacy}, gallery...)
	}
	return gallery
}

// NextCover picks the replacement cover after a gallery image is removed.
// The boolean reports whether the cover pointer must change at all.
func NextCover(deletedURL string, currentCover *string, remaining []tables.ProductImage) (*string, bool) {
	if currentCover == nil || *currentCover != deletedURL {
		return currentCover, false
	}
	if len(remaining) == 0 {
		return nil, true
	}
	sorted := make([]tables.ProductImage, len(remaining))
	copy(sorted, remaining)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	url := sorted[0].URL
	return &url, true
}

// UploadCategoryCover stores a new cover blob and points the category at it.
// The previous blob is removed first so covers do not accumulate.
func (is *ImageService) UploadCategoryCover(ctx context.Context, categoryID uuid.UUID, contentType string, data []byte) (string, error) {
	if !storage.IsAllowedImageType(contentType) {
		return "", fmt.Errorf("unsupported content type %q: %w", contentType, lib.ErrInvalidInput)
	}

	category, err := database.FindByID[tables.Category](is.db, ctx, categoryID)
	if err != nil {
		return "", err
	}
	if category == nil {
		return "", fmt.Errorf("category %s: %w", categoryID, lib.ErrNotFound)
	}

	if category.ImageURL != nil && *category.ImageURL != "" {
		if old := is.storage.PathFromURL(*category.ImageURL); old != "" {
			if err := is.storage.Remove(ctx, old); err != nil {
				is.logger.Warn("Stale category cover removal failed",
					gecho.Field("category_id", categoryID),
					gecho.Field("path", old),
					gecho.Field("error", err),
				)
			}
		}
	}

	path := fmt.Sprintf("categorias/%s-%d.%s", categoryID, time.Now().UnixMilli(), storage.ExtensionFor(contentType))
	url, err := is.storage.Upload(ctx, path, contentType, data)
	if err != nil {
		return "", fmt.Errorf("uploading category cover: %w", err)
	}

	rows, err := database.Query[tables.Category](is.db).
		Where("id", categoryID).
		Update(ctx, map[string]any{"imagen_url": url})
	if err != nil {
		return "", lib.MapPgError(err)
	}
	if rows == 0 {
		return "", fmt.Errorf("category %s: %w", categoryID, lib.ErrNotFound)
	}

	is.cache.InvalidateCatalog(ctx)
	return url, nil
}

// RemoveCategoryCover clears the cover pointer. The blob is removed when it
// can be mapped back to a storage path; either way the pointer ends up null.
func (is *ImageService) RemoveCategoryCover(ctx context.Context, categoryID uuid.UUID) error {
	category, err := database.FindByID[tables.Category](is.db, ctx, categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("category %s: %w", categoryID, lib.ErrNotFound)
	}

	if category.ImageURL != nil && *category.ImageURL != "" {
		if path := is.storage.PathFromURL(*category.ImageURL); path != "" {
			if err := is.storage.Remove(ctx, path); err != nil {
				is.logger.Warn("Category cover blob removal failed",
					gecho.Field("category_id", categoryID),
					gecho.Field("path", path),
					gecho.Field("error", err),
				)
			}
		} else {
			is.logger.Warn("Category cover URL has no storage path, clearing pointer only",
				gecho.Field("category_id", categoryID),
			)
		}
	}

	if _, err := database.Query[tables.Category](is.db).
		Where("id", categoryID).
		Update(ctx, map[string]any{"imagen_url": nil}); err != nil {
		return lib.MapPgError(err)
	}

	is.cache.InvalidateCatalog(ctx)
	return nil
}

// AddGalleryImage appends an uploaded blob to the product gallery. Existing
// entries are never touched; the cover is claimed when requested or vacant.
func (is *ImageService) AddGalleryImage(ctx context.Context, productID uuid.UUID, input *GalleryImageInput) (*tables.ProductImage, error) {
	product, err := database.FindByID[tables.Product](is.db, ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, lib.ErrNotFound)
	}

	existing, err := is.galleryRows(ctx, productID)
	if err != nil {
		return nil, err
	}

	order := NextOrder(existing)
	if input.Order != nil {
		order = *input.Order
	}

	image := &tables.ProductImage{
		ProductID:   productID,
		URL:         input.URL,
		Order:       order,
		StoragePath: input.StoragePath,
	}
	created, err := database.Query[tables.ProductImage](is.db).Insert(ctx, image)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if ShouldSetCover(input.SetCover, product.ImageURL) {
		if _, err := database.Query[tables.Product](is.db).
			Where("id", productID).
			Update(ctx, map[string]any{"imagen_url": input.URL}); err != nil {
			return nil, lib.MapPgError(err)
		}
	}

	is.cache.InvalidateCatalog(ctx)
	is.logger.Info("Gallery image added",
		gecho.Field("product_id", productID),
		gecho.Field("image_id", created.ID),
		gecho.Field("orden", created.Order),
	)
	return created, nil
}

// UploadGalleryImage stores a blob under the product's gallery prefix and
// registers it. For clients that cannot upload straight to storage.
func (is *ImageService) UploadGalleryImage(ctx context.Context, productID uuid.UUID, contentType string, data []byte, order *int, setCover bool) (*tables.ProductImage, error) {
	if !storage.IsAllowedImageType(contentType) {
		return nil, fmt.Errorf("unsupported content type %q: %w", contentType, lib.ErrInvalidInput)
	}

	product, err := database.FindByID[tables.Product](is.db, ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, lib.ErrNotFound)
	}

	path := fmt.Sprintf("productos/%s/%s.%s", productID, uuid.New(), storage.ExtensionFor(contentType))
	url, err := is.storage.Upload(ctx, path, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("uploading gallery image: %w", err)
	}

	return is.AddGalleryImage(ctx, productID, &GalleryImageInput{
		URL:         url,
		StoragePath: path,
		Order:       order,
		SetCover:    setCover,
	})
}

// SetProductCover points the product cover at url, or clears it when nil.
func (is *ImageService) SetProductCover(ctx context.Context, productID uuid.UUID, url *string) error {
	rows, err := database.Query[tables.Product](is.db).
		Where("id", productID).
		Update(ctx, map[string]any{"imagen_url": url})
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return fmt.Errorf("product %s: %w", productID, lib.ErrNotFound)
	}
	is.cache.InvalidateCatalog(ctx)
	return nil
}

// DeleteGalleryImage removes one gallery entry. When the entry was the
// cover, the first remaining image by display order takes its place.
func (is *ImageService) DeleteGalleryImage(ctx context.Context, productID, imageID uuid.UUID) error {
	image, err := database.Query[tables.ProductImage](is.db).
		Where("id", imageID).
		Where("producto_id", productID).
		First(ctx)
	if err != nil {
		return err
	}
	if image == nil {
		return fmt.Errorf("image %s: %w", imageID, lib.ErrNotFound)
	}

	path := image.StoragePath
	if path == "" {
		path = is.storage.PathFromURL(image.URL)
	}
	if path != "" {
		if err := is.storage.Remove(ctx, path); err != nil {
			is.logger.Warn("Gallery blob removal failed",
				gecho.Field("image_id", imageID),
				gecho.Field("path", path),
				gecho.Field("error", err),
			)
		}
	}

	if _, err := database.Query[tables.ProductImage](is.db).
		Where("id", imageID).
		Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	product, err := database.FindByID[tables.Product](is.db, ctx, productID)
	if err != nil {
		return err
	}
	if product != nil {
		remaining, err := is.galleryRows(ctx, productID)
		if err != nil {
			return err
		}
		if cover, changed := NextCover(image.URL, product.ImageURL, remaining); changed {
			if _, err := database.Query[tables.Product](is.db).
				Where("id", productID).
				Update(ctx, map[string]any{"imagen_url": cover}); err != nil {
				return lib.MapPgError(err)
			}
		}
	}

	is.cache.InvalidateCatalog(ctx)
	return nil
}

// ListImages returns the merged gallery view for the back office, legacy
// cover included.
func (is *ImageService) ListImages(ctx context.Context, productID uuid.UUID) ([]structs.GalleryImage, error) {
	product, err := database.FindByID[tables.Product](is.db, ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, lib.ErrNotFound)
	}

	rows, err := is.galleryRows(ctx, productID)
	if err != nil {
		return nil, err
	}
	return MergeGallery(product.ImageURL, rows), nil
}

// DeleteProductAssets clears every gallery row and blob for a product.
// Called from product deletion; missing blobs are logged and skipped.
func (is *ImageService) DeleteProductAssets(ctx context.Context, productID uuid.UUID) error {
	rows, err := is.galleryRows(ctx, productID)
	if err != nil {
		return err
	}

	var paths []string
	for _, row := range rows {
		path := row.StoragePath
		if path == "" {
			path = is.storage.PathFromURL(row.URL)
		}
		if path != "" {
			paths = append(paths, path)
		}
	}

	if _, err := database.Query[tables.ProductImage](is.db).
		Where("producto_id", productID).
		Delete(ctx); err != nil {
		return lib.MapPgError(err)
	}

	if len(paths) > 0 {
		if err := is.storage.Remove(ctx, paths...); err != nil {
			is.logger.Warn("Product gallery blob cleanup incomplete",
				gecho.Field("product_id", productID),
				gecho.Field("paths", len(paths)),
				gecho.Field("error", err),
			)
		}
	}
	return nil
}

func (is *ImageService) galleryRows(ctx context.Context, productID uuid.UUID) ([]tables.ProductImage, error) {
	return database.Query[tables.ProductImage](is.db).
		Where("producto_id", productID).
		OrderBy("orden", database.ASC).
		OrderBy("created_at", database.ASC).
		All(ctx)
}
