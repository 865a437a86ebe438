package services

import (
	"context"
	"dulcemasa_server/database"
	"dulcemasa_server/lib"
	"dulcemasa_server/structs"
	"dulcemasa_server/structs/tables"
	"fmt"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductService struct {
	logger *gecho.Logger
	config *structs.Config
	db     *database.DB
	cache  *CacheService
	images *ImageService
}

func NewProductService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, cache *CacheService, images *ImageService) *ProductService {
	return &ProductService{
		logger: logger,
		config: cfg,
		db:     db,
		cache:  cache,
		images: images,
	}
}

type ProductCreateInput struct {
	CategoryID  uuid.UUID `json:"categoria_id" validate:"required"`
	Name        string    `json:"nombre" validate:"required,min=1,max=160"`
	Slug        string    `json:"slug" validate:"omitempty,max=180"`
	Description *string   `json:"descripcion" validate:"omitempty,max=4000"`
	Price       *float64  `json:"precio" validate:"omitempty,min=0"`
	Active      *bool     `json:"activo"`
	Order       *int      `json:"orden" validate:"omitempty,min=0"`
	ImageURL    *string   `json:"imagen_url" validate:"omitempty,url"`
}

// ProductUpdateInput is a partial update. Optional fields distinguish an
// absent key from an explicit null, so "precio": null clears the price while
// leaving it out keeps the stored value.
type ProductUpdateInput struct {
	CategoryID  *uuid.UUID            `json:"categoria_id"`
	Name        *string               `json:"nombre" validate:"omitempty,min=1,max=160"`
	Slug        *string               `json:"slug" validate:"omitempty,max=180"`
	Description lib.Optional[string]  `json:"descripcion"`
	Price       lib.Optional[float64] `json:"precio"`
	Active      *bool                 `json:"activo"`
	Order       *int                  `json:"orden" validate:"omitempty,min=0"`
	ImageURL    lib.Optional[string]  `json:"imagen_url"`
}

// columns projects the patch onto the allow-listed column set. Unknown keys
// never reach here; the decoder already rejects them.
func (in *ProductUpdateInput) columns() (map[string]any, error) {
	cols := make(map[string]any)
	if in.CategoryID != nil {
		cols["categoria_id"] = *in.CategoryID
	}
	if in.Name != nil {
		cols["nombre"] = *in.Name
		if in.Slug == nil {
			slug := lib.Slugify(*in.Name)
			if slug == "" {
				return nil, fmt.Errorf("nombre yields an empty slug: %w", lib.ErrInvalidInput)
			}
			cols["slug"] = slug
		}
	}
	if in.Slug != nil {
		slug := lib.Slugify(*in.Slug)
		if slug == "" {
			return nil, fmt.Errorf("slug is empty after normalization: %w", lib.ErrInvalidInput)
		}
		cols["slug"] = slug
	}
	if in.Description.Set {
		cols["descripcion"] = in.Description.Ptr()
	}
	if in.Price.Set {
		cols["precio"] = in.Price.Ptr()
	}
	if in.Active != nil {
		cols["activo"] = *in.Active
	}
	if in.Order != nil {
		cols["orden"] = *in.Order
	}
	if in.ImageURL.Set {
		cols["imagen_url"] = in.ImageURL.Ptr()
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("empty update: %w", lib.ErrInvalidInput)
	}
	return cols, nil
}

// ListAdmin returns every product with its merged gallery, newest first.
func (ps *ProductService) ListAdmin(ctx context.Context) ([]structs.ProductWithImages, error) {
	products, err := database.Query[tables.Product](ps.db).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return ps.enrich(ctx, products, "")
}

// ListPublicByCategory resolves an active category by slug and returns its
// active products with galleries and WhatsApp inquiry links.
func (ps *ProductService) ListPublicByCategory(ctx context.Context, categorySlug string) ([]structs.ProductWithImages, error) {
	key := CatalogKey("productos", categorySlug)

	var cached []structs.ProductWithImages
	if hit, err := ps.cache.GetJSON(ctx, key, &cached); err != nil {
		ps.logger.Warn("Product cache read failed", gecho.Field("error", err))
	} else if hit {
		return cached, nil
	}

	category, err := database.Query[tables.Category](ps.db).
		Where("slug", categorySlug).
		Where("activa", true).
		First(ctx)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %q: %w", categorySlug, lib.ErrNotFound)
	}

	products, err := database.Query[tables.Product](ps.db).
		Where("categoria_id", category.ID).
		Where("activo", true).
		OrderBy("orden", database.ASC).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, err
	}

	enriched, err := ps.enrich(ctx, products, categorySlug)
	if err != nil {
		return nil, err
	}

	if err := ps.cache.SetJSON(ctx, key, enriched, ps.cache.CatalogTTL()); err != nil {
		ps.logger.Warn("Product cache write failed", gecho.Field("error", err))
	}
	return enriched, nil
}

func (ps *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	product, err := database.FindByID[tables.Product](ps.db, ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, lib.ErrNotFound)
	}
	return product, nil
}

func (ps *ProductService) Create(ctx context.Context, input *ProductCreateInput) (*tables.Product, error) {
	slug := lib.Slugify(input.Slug)
	if slug == "" {
		slug = lib.Slugify(input.Name)
	}
	if slug == "" {
		return nil, fmt.Errorf("nombre yields an empty slug: %w", lib.ErrInvalidInput)
	}

	product := &tables.Product{
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Price:       input.Price,
		Active:      true,
		Order:       0,
		ImageURL:    input.ImageURL,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}
	if input.Order != nil {
		product.Order = *input.Order
	}

	created, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.cache.InvalidateCatalog(ctx)
	ps.logger.Info("Product created",
		gecho.Field("id", created.ID),
		gecho.Field("slug", created.Slug),
		gecho.Field("categoria_id", created.CategoryID),
	)
	return created, nil
}

func (ps *ProductService) Update(ctx context.Context, id uuid.UUID, input *ProductUpdateInput) (*tables.Product, error) {
	cols, err := input.columns()
	if err != nil {
		return nil, err
	}

	rows, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Update(ctx, cols)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("product %s: %w", id, lib.ErrNotFound)
	}

	ps.cache.InvalidateCatalog(ctx)
	return ps.GetByID(ctx, id)
}

// Delete removes the product after clearing its gallery rows and blobs.
func (ps *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := ps.GetByID(ctx, id); err != nil {
		return err
	}
	if err := ps.images.DeleteProductAssets(ctx, id); err != nil {
		return err
	}

	rows, err := database.DeleteByID[tables.Product](ps.db, ctx, id)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return fmt.Errorf("product %s: %w", id, lib.ErrNotFound)
	}

	ps.cache.InvalidateCatalog(ctx)
	ps.logger.Info("Product deleted", gecho.Field("id", id))
	return nil
}

// enrich attaches the merged gallery to each product with one bulk query.
// categorySlug feeds the storefront inquiry link and may be empty for the
// back office.
func (ps *ProductService) enrich(ctx context.Context, products []tables.Product, categorySlug string) ([]structs.ProductWithImages, error) {
	result := make([]structs.ProductWithImages, 0, len(products))
	if len(products) == 0 {
		return result, nil
	}

	ids := make([]any, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	rows, err := database.Query[tables.ProductImage](ps.db).
		WhereIn("producto_id", ids).
		OrderBy("orden", database.ASC).
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[uuid.UUID][]tables.ProductImage, len(products))
	for _, row := range rows {
		byProduct[row.ProductID] = append(byProduct[row.ProductID], row)
	}

	for _, p := range products {
		item := structs.ProductWithImages{
			Product: p,
			Images:  MergeGallery(p.ImageURL, byProduct[p.ID]),
		}
		if categorySlug != "" {
			productURL := ps.config.Server.SiteOrigin + "/c/" + categorySlug
			item.WhatsAppURL = lib.WhatsAppLink(ps.config.Contact.WhatsAppPhone, p.Name, productURL)
		}
		result = append(result, item)
	}
	return result, nil
}
