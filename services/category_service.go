package services

import (
	"context"
	"dulcemasa_server/database"
	"dulcemasa_server/lib"
	"dulcemasa_server/storage"
	"dulcemasa_server/structs"
	"dulcemasa_server/structs/tables"
	"fmt"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CategoryService struct {
	logger  *gecho.Logger
	config  *structs.Config
	db      *database.DB
	storage *storage.Client
	cache   *CacheService
}

func NewCategoryService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, store *storage.Client, cache *CacheService) *CategoryService {
	return &CategoryService{
		logger:  logger,
		config:  cfg,
		db:      db,
		storage: store,
		cache:   cache,
	}
}

// CategoryInput carries the admin create/update payload. Updates replace the
// full record; partial edits are a product-only concern.
type CategoryInput struct {
	Name        string  `json:"nombre" validate:"required,min=1,max=120"`
	Slug        string  `json:"slug" validate:"omitempty,max=140"`
	Description *string `json:"descripcion" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"imagen_url" validate:"omitempty,url"`
	Active      *bool   `json:"activa"`
	Order       *int    `json:"orden" validate:"omitempty,min=0"`
}

// ListAll returns every category for the back office, display order first.
func (cs *CategoryService) ListAll(ctx context.Context) ([]tables.Category, error) {
	return database.Query[tables.Category](cs.db).
		OrderBy("orden", database.ASC).
		OrderBy("created_at", database.ASC).
		All(ctx)
}

// ListActive returns the public catalog categories, served from cache when warm.
func (cs *CategoryService) ListActive(ctx context.Context) ([]tables.Category, error) {
	key := CatalogKey("categorias")

	var cached []tables.Category
	if hit, err := cs.cache.GetJSON(ctx, key, &cached); err != nil {
		cs.logger.Warn("Category cache read failed", gecho.Field("error", err))
	} else if hit {
		return cached, nil
	}

	categories, err := database.Query[tables.Category](cs.db).
		Where("activa", true).
		OrderBy("orden", database.ASC).
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, err
	}

	if err := cs.cache.SetJSON(ctx, key, categories, cs.cache.CatalogTTL()); err != nil {
		cs.logger.Warn("Category cache write failed", gecho.Field("error", err))
	}
	return categories, nil
}

// GetActiveBySlug resolves a public category. Inactive and missing both map
// to ErrNotFound so the storefront cannot tell hidden categories apart.
func (cs *CategoryService) GetActiveBySlug(ctx context.Context, slug string) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("slug", slug).
		Where("activa", true).
		First(ctx)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %q: %w", slug, lib.ErrNotFound)
	}
	return category, nil
}

func (cs *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*tables.Category, error) {
	category, err := database.FindByID[tables.Category](cs.db, ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", id, lib.ErrNotFound)
	}
	return category, nil
}

func (cs *CategoryService) Create(ctx context.Context, input *CategoryInput) (*tables.Category, error) {
	slug := lib.Slugify(input.Slug)
	if slug == "" {
		slug = lib.Slugify(input.Name)
	}
	if slug == "" {
		return nil, fmt.Errorf("nombre yields an empty slug: %w", lib.ErrInvalidInput)
	}

	category := &tables.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Active:      true,
		Order:       0,
	}
	if input.Active != nil {
		category.Active = *input.Active
	}
	if input.Order != nil {
		category.Order = *input.Order
	}

	created, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.cache.InvalidateCatalog(ctx)
	cs.logger.Info("Category created",
		gecho.Field("id", created.ID),
		gecho.Field("slug", created.Slug),
	)
	return created, nil
}

// updateColumns projects the PUT body onto the metadata column set. The
// cover pointer is off limits here: imagen_url belongs to the /imagen
// endpoints, and a metadata edit must never clear it.
func (input *CategoryInput) updateColumns() (map[string]any, error) {
	slug := lib.Slugify(input.Slug)
	if slug == "" {
		slug = lib.Slugify(input.Name)
	}
	if slug == "" {
		return nil, fmt.Errorf("nombre yields an empty slug: %w", lib.ErrInvalidInput)
	}

	columns := map[string]any{
		"nombre":      input.Name,
		"slug":        slug,
		"descripcion": input.Description,
	}
	if input.Active != nil {
		columns["activa"] = *input.Active
	}
	if input.Order != nil {
		columns["orden"] = *input.Order
	}
	return columns, nil
}

func (cs *CategoryService) Update(ctx context.Context, id uuid.UUID, input *CategoryInput) (*tables.Category, error) {
	columns, err := input.updateColumns()
	if err != nil {
		return nil, err
	}

	rows, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		Update(ctx, columns)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("category %s: %w", id, lib.ErrNotFound)
	}

	cs.cache.InvalidateCatalog(ctx)
	return cs.GetByID(ctx, id)
}

// Delete removes a category and its cover blob. Products keep their rows;
// pruning a category does not cascade into the product list.
func (cs *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := cs.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if category.ImageURL != nil && *category.ImageURL != "" {
		if path := cs.storage.PathFromURL(*category.ImageURL); path != "" {
			if err := cs.storage.Remove(ctx, path); err != nil {
				cs.logger.Warn("Category cover blob removal failed",
					gecho.Field("category_id", id),
					gecho.Field("path", path),
					gecho.Field("error", err),
				)
			}
		}
	}

	rows, err := database.Query[tables.Category](cs.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if rows == 0 {
		return fmt.Errorf("category %s: %w", id, lib.ErrNotFound)
	}

	cs.cache.InvalidateCatalog(ctx)
	cs.logger.Info("Category deleted", gecho.Field("id", id))
	return nil
}
