package render

import (
	"html/template"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/sheet"
	"github.com/KirkDiggler/rpg-sheets/internal/errors"
)

func newMarkdownConverter() *converter.Converter {
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
}

// Markdown converts rendered HTML to Markdown
func (r *Renderer) Markdown(content template.HTML) (string, error) {
	md, err := r.markdown.ConvertString(string(content))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to convert to markdown")
	}
	return strings.TrimSpace(md), nil
}

// DetailMarkdown renders a detail view as a Markdown document headed by its
// title
func (r *Renderer) DetailMarkdown(c *sheet.Character, category sheet.Category) (string, error) {
	content, err := r.Detail(c, category)
	if err != nil {
		return "", err
	}

	body, err := r.Markdown(content)
	if err != nil {
		return "", err
	}

	return "# " + DetailTitle(c, category) + "\n\n" + body + "\n", nil
}
