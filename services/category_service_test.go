package services

import (
	"dulcemasa_server/lib"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(n int) *int    { return &n }

func TestCategoryUpdateColumnsNeverTouchCover(t *testing.T) {
	url := "https://cdn/old-cover.webp"
	input := &CategoryInput{
		Name:     "Tortas Clásicas",
		Active:   boolPtr(false),
		Order:    intPtr(3),
		ImageURL: &url,
	}

	columns, err := input.updateColumns()
	require.NoError(t, err)

	// the cover pointer is owned by the /imagen endpoints
	assert.NotContains(t, columns, "imagen_url")

	assert.Equal(t, "Tortas Clásicas", columns["nombre"])
	assert.Equal(t, "tortas-clasicas", columns["slug"])
	assert.Equal(t, false, columns["activa"])
	assert.Equal(t, 3, columns["orden"])
}

func TestCategoryUpdateColumnsOptionalFieldsOmitted(t *testing.T) {
	input := &CategoryInput{Name: "Panes"}

	columns, err := input.updateColumns()
	require.NoError(t, err)

	assert.NotContains(t, columns, "activa")
	assert.NotContains(t, columns, "orden")
	assert.NotContains(t, columns, "imagen_url")
	assert.Contains(t, columns, "descripcion")
}

func TestCategoryUpdateColumnsExplicitSlugWins(t *testing.T) {
	input := &CategoryInput{Name: "Tortas", Slug: "Tortas Especiales"}

	columns, err := input.updateColumns()
	require.NoError(t, err)
	assert.Equal(t, "tortas-especiales", columns["slug"])
}

func TestCategoryUpdateColumnsUnslugifiableName(t *testing.T) {
	input := &CategoryInput{Name: "!!!"}

	_, err := input.updateColumns()
	assert.ErrorIs(t, err, lib.ErrInvalidInput)
}
