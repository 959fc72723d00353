package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title   string
	Graph   string
	Configs []introspection.ConfigAccess
}

// IntrospectHandler renders the dependency graph and the config keys read at
// startup. The config table is optional.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}
	configs, _ := depend.ResolveNamed[[]introspection.ConfigAccess]("introspection-configs")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := introspectPage{
		Title:   "TaskAgent Introspection Graph",
		Graph:   graph,
		Configs: configs,
	}
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
	}
}
