package structs

import "dulcemasa_server/structs/tables"

// LegacyImageID marks the synthesized gallery entry for a cover URL that has
// no producto_imagenes row. The schema grew from a single imagen_url column
// into a gallery table without a backfill; read paths reconcile both forever.
const LegacyImageID = "legacy"

// LegacyImageOrder sorts the synthesized entry ahead of every real row.
const LegacyImageOrder = -1

// GalleryImage is the read-side shape of one gallery entry, real or
// synthesized.
type GalleryImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Order int    `json:"orden"`
}

// ProductWithImages is a product enriched with its merged gallery, as the
// admin screen and the public catalog consume it.
type ProductWithImages struct {
	tables.Product
	Images      []GalleryImage `json:"imagenes"`
	WhatsAppURL string         `json:"whatsapp_url,omitempty"`
}
