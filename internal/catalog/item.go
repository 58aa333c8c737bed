// Package catalog exposes the read-only release listing: the items payment
// unlocks, with category and title filtering for browse views.
package catalog

// Item categories. The set is open: items carry whatever category their
// source assigns, and filtering matches categories verbatim.
const (
	CategoryGame     = "GAME"
	CategorySoftware = "SOFTWARE"
	CategoryMovie    = "MOVIE"
	CategoryOS       = "OS"
)

// Item is one downloadable release in the catalog.
type Item struct {
	ID         string `json:"id"         validate:"required"`
	Title      string `json:"title"      validate:"required"`
	Category   string `json:"category"   validate:"required"`
	Size       string `json:"size"`
	Uploader   string `json:"uploader"`
	UploadTime string `json:"uploadTime"`
	Seeders    int    `json:"seeders"    validate:"min=0"`
	Leechers   int    `json:"leechers"   validate:"min=0"`
	Hot        bool   `json:"hot"`
}
