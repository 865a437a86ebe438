package lib

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("5491122334455", "Torta Selva Negra", "https://dulcemasa.ar/c/tortas")

	require.True(t, strings.HasPrefix(link, "https://wa.me/5491122334455?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	assert.Contains(t, text, "Torta Selva Negra")
	assert.Contains(t, text, "https://dulcemasa.ar/c/tortas")
}

func TestWhatsAppLinkDisabledWithoutPhone(t *testing.T) {
	assert.Equal(t, "", WhatsAppLink("", "Torta", "https://dulcemasa.ar"))
}
