package render

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"github.com/KirkDiggler/rpg-sheets/internal/entities/tree"
)

// authoredText lets basic formatting through in free text written in the
// data files and strips scripts, handlers and unknown elements
var authoredText = bluemonday.UGCPolicy()

func sanitize(v tree.Node) template.HTML {
	// #nosec G203 -- output of a bluemonday policy
	return template.HTML(authoredText.Sanitize(tree.Text(v)))
}
