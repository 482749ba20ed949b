package snippet

import (
	"fmt"

	"github.com/mark3labs/spec2snippets/internal/emitter/axiosemitter"
	"github.com/mark3labs/spec2snippets/internal/emitter/curlemitter"
	"github.com/mark3labs/spec2snippets/internal/emitter/fetchemitter"
	"github.com/mark3labs/spec2snippets/internal/emitter/javaemitter"
	"github.com/mark3labs/spec2snippets/internal/emitter/pyemitter"
	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

// RenderFunc is the emitter plugin contract: a pure function from one
// descriptor and the resolved base URL to target-language source text.
type RenderFunc func(d *genspec.RequestDescriptor, baseURL string) string

// Languages lists the supported target languages in the fixed order used by
// All.
var Languages = []string{"curl", "python", "java", "fetch", "axios"}

var renderers = map[string]RenderFunc{
	"curl":   curlemitter.Render,
	"python": pyemitter.Render,
	"java":   javaemitter.Render,
	"fetch":  fetchemitter.Render,
	"axios":  axiosemitter.Render,
}

// Generator is the façade over extraction and rendering. It is stateless
// beyond its configuration; every call re-runs extraction over the same
// read-only document, so repeated calls produce identical output.
type Generator struct {
	ex *Extractor
}

// NewGenerator builds a generator for doc. Options are the extractor options
// (base URL override, tag filters).
func NewGenerator(doc *genspec.Document, opts ...ExtractOption) *Generator {
	return &Generator{ex: NewExtractor(doc, opts...)}
}

// Descriptors exposes the normalized request descriptors.
func (g *Generator) Descriptors() []genspec.RequestDescriptor {
	return g.ex.Extract()
}

// BaseURL returns the base URL snippets are rendered against.
func (g *Generator) BaseURL() string {
	return g.ex.BaseURL()
}

func (g *Generator) render(fn RenderFunc) []string {
	ds := g.ex.Extract()
	base := g.ex.BaseURL()
	out := make([]string, 0, len(ds))
	for i := range ds {
		out = append(out, fn(&ds[i], base))
	}
	return out
}

// Curl returns one curl command per extracted descriptor.
func (g *Generator) Curl() []string { return g.render(curlemitter.Render) }

// Python returns one Python requests snippet per extracted descriptor.
func (g *Generator) Python() []string { return g.render(pyemitter.Render) }

// Java returns one java.net.http snippet per extracted descriptor.
func (g *Generator) Java() []string { return g.render(javaemitter.Render) }

// Fetch returns one JavaScript fetch snippet per extracted descriptor.
func (g *Generator) Fetch() []string { return g.render(fetchemitter.Render) }

// Axios returns one Axios snippet per extracted descriptor.
func (g *Generator) Axios() []string { return g.render(axiosemitter.Render) }

// Language renders for one named language.
func (g *Generator) Language(lang string) ([]string, error) {
	fn, ok := renderers[lang]
	if !ok {
		return nil, fmt.Errorf("snippet: unknown language %q", lang)
	}
	return g.render(fn), nil
}

// All concatenates every language's snippets in the fixed language order.
func (g *Generator) All() []string {
	var out []string
	for _, lang := range Languages {
		out = append(out, g.render(renderers[lang])...)
	}
	return out
}
