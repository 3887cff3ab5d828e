package sheet

import (
	"html/template"
	"io"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
)

// Detail output formats
const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// LoadRosterInput defines the request for loading the roster
type LoadRosterInput struct{}

// LoadRosterOutput defines the loaded and resolved roster
type LoadRosterOutput struct {
	Characters []*sheet.Character
	Catalogs   sheet.Catalogs
	// CatalogsDegraded is set when a catalog failed to load and every
	// catalog was replaced by an empty one
	CatalogsDegraded bool
}

// OpenDetailInput defines the request for one detail view
type OpenDetailInput struct {
	Characters  []*sheet.Character
	CharacterID string
	Action      string
	// Format is FormatHTML (default) or FormatMarkdown
	Format string
}

// OpenDetailOutput defines a rendered detail view
type OpenDetailOutput struct {
	Title   string
	Content template.HTML
	// Markdown is set instead of Content for FormatMarkdown
	Markdown string
}

// RenderPageInput defines the request for rendering the full page
type RenderPageInput struct {
	Writer io.Writer
}

// RenderPageOutput reports what was rendered
type RenderPageOutput struct {
	Characters       int
	CatalogsDegraded bool
}

// ImportCatalogsInput defines the request for copying catalogs to the writer
type ImportCatalogsInput struct {
	// Categories defaults to every category
	Categories []sheet.Category
}

// ImportCatalogsOutput reports the entries written per category
type ImportCatalogsOutput struct {
	Entries map[sheet.Category]int
}
