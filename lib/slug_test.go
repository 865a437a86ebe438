package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Tortas", "tortas"},
		{"accents stripped", "Tortas Clásicas", "tortas-clasicas"},
		{"enye", "Años Nuevos", "anos-nuevos"},
		{"whitespace collapsed", "  Pan   de  Campo  ", "pan-de-campo"},
		{"symbols dropped", "Café & Té (premium)", "cafe-te-premium"},
		{"existing hyphens kept", "pre-pizzas", "pre-pizzas"},
		{"hyphen runs collapsed", "a -- b", "a-b"},
		{"leading trailing hyphens trimmed", "-tortas-", "tortas"},
		{"numbers kept", "Combo 2x1", "combo-2x1"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	once := Slugify("Tortas Clásicas de Cumpleaños")
	assert.Equal(t, once, Slugify(once))
}
