package handling

import (
	"dulcemasa_server/lib"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ParseUUIDParam parses a chi URL parameter as a UUID. The zero UUID is
// rejected like a malformed one.
func ParseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parameter %q is not a valid UUID: %w", name, lib.ErrInvalidInput)
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("parameter %q is required: %w", name, lib.ErrInvalidInput)
	}
	return id, nil
}

// CategorySlugQuery reads the category slug filter for the flat product
// listing. The listing is always scoped to one category.
func CategorySlugQuery(r *http.Request) (string, error) {
	slug := r.URL.Query().Get("categoriaSlug")
	if slug == "" {
		slug = r.URL.Query().Get("categoria")
	}
	if slug == "" {
		return "", fmt.Errorf("categoriaSlug query parameter is required: %w", lib.ErrInvalidInput)
	}
	return lib.Slugify(slug), nil
}
