// Package render turns resolved characters into HTML: the cards, the detail
// view of every action and the full static page.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/Masterminds/sprig/v3"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
	"github.com/KirkDiggler/rpg-sheets/internal/pkg/clock"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultTitle is the page heading when none is configured
const DefaultTitle = "Fichas de Personagens"

// Config holds the dependencies for the renderer
type Config struct {
	// ImageDir prefixes every image path on the page, e.g. "img"
	ImageDir string
	Title    string
	Clock    clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// Renderer executes the embedded templates
type Renderer struct {
	templates *template.Template
	markdown  *converter.Converter
	imageDir  string
	title     string
	clock     clock.Clock
}

// New parses the templates and returns a renderer
func New(cfg *Config) (*Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid renderer config")
	}

	tmpl, err := template.New("sheets").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	title := cfg.Title
	if title == "" {
		title = DefaultTitle
	}

	return &Renderer{
		templates: tmpl,
		markdown:  newMarkdownConverter(),
		imageDir:  cfg.ImageDir,
		title:     title,
		clock:     cfg.Clock,
	}, nil
}

// DetailView is the data behind one detail template
type DetailView struct {
	Category  sheet.Category
	Empty     string
	Weapons   []WeaponView
	Spells    []SpellView
	Equipment []EquipmentView
	Traits    []TraitView
}

// NewDetailView builds the detail data of one action for a character
func NewDetailView(c *sheet.Character, category sheet.Category) (DetailView, error) {
	value, _ := c.Field(category.Field())
	items := Items(value)
	names := writtenNames(c, category, value)
	view := DetailView{Category: category, Empty: EmptyMessage(category)}

	fallback := func(i int, def string) string {
		if names[i] != "" {
			return names[i]
		}
		return def
	}

	switch category {
	case sheet.CategoryWeapons:
		for i, item := range items {
			view.Weapons = append(view.Weapons, newWeaponView(item, fallback(i, "Arma")))
		}
	case sheet.CategorySpells:
		for i, item := range items {
			view.Spells = append(view.Spells, newSpellView(item, fallback(i, "Magia")))
		}
	case sheet.CategoryCantrips:
		for i, item := range items {
			view.Spells = append(view.Spells, newSpellView(item, fallback(i, "Truque")))
		}
	case sheet.CategoryEquipment:
		for i, item := range items {
			view.Equipment = append(view.Equipment, newEquipmentView(item, fallback(i, "Equipamento")))
		}
	case sheet.CategoryTraits:
		for i, item := range items {
			view.Traits = append(view.Traits, newTraitView(item, fallback(i, "Traço")))
		}
	default:
		return DetailView{}, errors.InvalidArgumentf("unknown action %q", category)
	}

	return view, nil
}

// writtenNames returns, per item, the name it was selected by: the mapping
// key or the recorded reference name
func writtenNames(c *sheet.Character, category sheet.Category, value tree.Node) []string {
	if m, ok := tree.AsMap(value); ok {
		return m.Keys()
	}
	items, _ := tree.AsList(value)
	names := make([]string, len(items))
	for i := range items {
		names[i] = c.RefName(category, i)
	}
	return names
}

// EmptyMessage is shown when a character has nothing in a category
func EmptyMessage(category sheet.Category) string {
	switch category {
	case sheet.CategoryWeapons:
		return "Nenhuma arma cadastrada."
	case sheet.CategorySpells:
		return "Nenhuma magia cadastrada."
	case sheet.CategoryCantrips:
		return "Nenhum truque cadastrado."
	case sheet.CategoryEquipment:
		return "Nenhum equipamento cadastrado."
	case sheet.CategoryTraits:
		return "Nenhum traço cadastrado."
	default:
		return ""
	}
}

// DetailTitle is the heading of a detail view, e.g. "Armas — Flip"
func DetailTitle(c *sheet.Character, category sheet.Category) string {
	return category.Label() + " — " + c.DisplayName()
}

// DetailID is the element id of a character's detail template
func DetailID(characterID string, category sheet.Category) string {
	return "detail-" + characterID + "-" + string(category)
}

// Detail renders the detail content of one action
func (r *Renderer) Detail(c *sheet.Character, category sheet.Category) (template.HTML, error) {
	view, err := NewDetailView(c, category)
	if err != nil {
		return "", err
	}
	return r.execute("detail-"+string(category), view)
}

// Card renders one character card
func (r *Renderer) Card(c *sheet.Character) (template.HTML, error) {
	return r.execute("card", NewCardView(c, r.imageDir))
}

// NavLink opens an embedded detail from the page header
type NavLink struct {
	DetailID string
	Label    string
}

// EmbeddedDetail is a detail view shipped inside the page
type EmbeddedDetail struct {
	ID      string
	Title   string
	Content template.HTML
}

// PageView is the data behind the full page
type PageView struct {
	Title       string
	Nav         []NavLink
	Cards       []CardView
	Details     []EmbeddedDetail
	GeneratedAt time.Time
}

type imageView struct {
	Src string
	Alt string
}

var referenceTables = []struct {
	id, label, file, alt string
}{
	{"nav-armas", "Armas", "armas.png", "Tabela de Armas"},
	{"nav-armaduras", "Armaduras", "armaduras.png", "Tabela de Armaduras"},
}

// NewPageView renders every detail and assembles the page data
func (r *Renderer) NewPageView(characters []*sheet.Character) (*PageView, error) {
	page := &PageView{
		Title:       r.title,
		GeneratedAt: r.clock.Now(),
	}

	for _, table := range referenceTables {
		content, err := r.execute("detail-image", imageView{
			Src: joinImage(r.imageDir, table.file),
			Alt: table.alt,
		})
		if err != nil {
			return nil, err
		}
		page.Nav = append(page.Nav, NavLink{DetailID: table.id, Label: table.label})
		page.Details = append(page.Details, EmbeddedDetail{ID: table.id, Title: table.label, Content: content})
	}

	for _, c := range characters {
		page.Cards = append(page.Cards, NewCardView(c, r.imageDir))
		for _, category := range sheet.ActionOrder() {
			content, err := r.Detail(c, category)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to render %s for %s", category, c.ID)
			}
			page.Details = append(page.Details, EmbeddedDetail{
				ID:      DetailID(c.ID, category),
				Title:   DetailTitle(c, category),
				Content: content,
			})
		}
	}

	return page, nil
}

// Page writes the full page for the characters
func (r *Renderer) Page(w io.Writer, characters []*sheet.Character) error {
	page, err := r.NewPageView(characters)
	if err != nil {
		return err
	}
	if err := r.templates.ExecuteTemplate(w, "page", page); err != nil {
		return errors.Wrap(err, "failed to render page")
	}
	return nil
}

// ErrorPage writes the page shown when the roster cannot be loaded
func (r *Renderer) ErrorPage(w io.Writer, cause error) error {
	data := struct {
		Title   string
		Message string
	}{Title: r.title, Message: errorText(cause)}

	if err := r.templates.ExecuteTemplate(w, "error", data); err != nil {
		return errors.Wrap(err, "failed to render error page")
	}
	return nil
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}
	// #nosec G203 -- produced by html/template
	return template.HTML(buf.String()), nil
}

func joinImage(dir, file string) string {
	if dir == "" {
		return file
	}
	return strings.TrimSuffix(dir, "/") + "/" + file
}
