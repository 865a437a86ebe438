package tables

import (
	"time"

	"github.com/google/uuid"
)

// Category is a storefront section ("Tortas", "Panes"). Column names keep
// the production schema's Spanish; JSON mirrors them so the admin UI keeps
// working unchanged.
type Category struct {
	tableName   struct{}  `bun:"table:categorias,alias:c"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string    `bun:"nombre,notnull" json:"nombre"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Description *string   `bun:"descripcion" json:"descripcion"`
	ImageURL    *string   `bun:"imagen_url" json:"imagen_url"`
	Active      bool      `bun:"activa,notnull" json:"activa"`
	Order       int       `bun:"orden,notnull" json:"orden"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// Product belongs to exactly one category. Price is nullable: a product
// without a price is shown as "consultar" and inquiries go through WhatsApp.
// ImageURL is the cover pointer; it predates the gallery table and may hold
// a URL with no producto_imagenes row behind it (the legacy case).
type Product struct {
	tableName   struct{}  `bun:"table:productos,alias:p"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	CategoryID  uuid.UUID `bun:"categoria_id,type:uuid,notnull" json:"categoria_id"`
	Name        string    `bun:"nombre,notnull" json:"nombre"`
	Slug        string    `bun:"slug,notnull" json:"slug"`
	Description *string   `bun:"descripcion" json:"descripcion"`
	Price       *float64  `bun:"precio" json:"precio"`
	Active      bool      `bun:"activo,notnull" json:"activo"`
	Order       int       `bun:"orden,notnull" json:"orden"`
	ImageURL    *string   `bun:"imagen_url" json:"imagen_url"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Images []ProductImage `bun:"rel:has-many,join:id=producto_id" json:"-"`
}

// ProductImage is one gallery entry. Orden ties are allowed; display order
// is (orden asc, created_at asc). StoragePath is kept so the blob can be
// removed when the row goes away.
type ProductImage struct {
	tableName   struct{}  `bun:"table:producto_imagenes,alias:pi"`
	ID          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductID   uuid.UUID `bun:"producto_id,type:uuid,notnull" json:"producto_id"`
	URL         string    `bun:"url,notnull" json:"url"`
	Order       int       `bun:"orden,notnull" json:"orden"`
	StoragePath string    `bun:"storage_path" json:"-"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
