package snippet

import (
	"strings"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

// fallbackBaseURL is used when neither an override nor a servers entry is
// available.
const fallbackBaseURL = "http://localhost"

// renderableMethods are the methods that produce descriptors. The remaining
// recognized methods (patch, head, options) are iterated for structural
// completeness but filtered out before descriptor creation.
var renderableMethods = map[genspec.HttpMethod]bool{
	genspec.GET:    true,
	genspec.POST:   true,
	genspec.PUT:    true,
	genspec.DELETE: true,
}

// ExtractOption configures an Extractor.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	baseURL     string
	includeTags map[string]struct{}
	excludeTags map[string]struct{}
}

// WithBaseURL overrides the document's first server URL.
func WithBaseURL(u string) ExtractOption {
	return func(c *extractConfig) { c.baseURL = strings.TrimSpace(u) }
}

// WithIncludeTags keeps only operations carrying at least one of the given tags.
func WithIncludeTags(tags []string) ExtractOption {
	return func(c *extractConfig) { c.includeTags = tagSet(tags) }
}

// WithExcludeTags drops operations carrying any of the given tags.
func WithExcludeTags(tags []string) ExtractOption {
	return func(c *extractConfig) { c.excludeTags = tagSet(tags) }
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			set[t] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// Extractor walks a document's paths and produces one normalized request
// descriptor per renderable operation, in declared order.
type Extractor struct {
	doc      *genspec.Document
	cfg      extractConfig
	resolver *Resolver
}

// NewExtractor builds an extractor over doc.
func NewExtractor(doc *genspec.Document, opts ...ExtractOption) *Extractor {
	e := &Extractor{doc: doc, resolver: NewResolver(doc)}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

// BaseURL returns the construction-time override, the document's first server
// URL, or the localhost fallback, in that precedence.
func (e *Extractor) BaseURL() string {
	if e.cfg.baseURL != "" {
		return e.cfg.baseURL
	}
	if e.doc != nil {
		for _, srv := range e.doc.Servers {
			if u := strings.TrimSpace(srv.URL); u != "" {
				return u
			}
		}
	}
	return fallbackBaseURL
}

// Extract produces the descriptor sequence. A nil document or absent paths
// yields an empty sequence, never an error.
func (e *Extractor) Extract() []genspec.RequestDescriptor {
	if e.doc == nil {
		return nil
	}
	var out []genspec.RequestDescriptor
	for _, entry := range e.doc.Paths {
		if entry.Item == nil {
			continue
		}
		for _, op := range entry.Item.Operations {
			if op.Op == nil {
				continue
			}
			if !renderableMethods[op.Method] {
				continue
			}
			if !e.allowByTags(op.Op.Tags) {
				continue
			}
			out = append(out, e.describe(entry.Path, op.Method, entry.Item, op.Op))
		}
	}
	return out
}

func (e *Extractor) describe(path string, method genspec.HttpMethod, item *genspec.PathItem, op *genspec.Operation) genspec.RequestDescriptor {
	d := genspec.RequestDescriptor{
		Method:      strings.ToUpper(string(method)),
		Path:        path,
		Summary:     strings.TrimSpace(op.Summary),
		OperationID: strings.TrimSpace(op.OperationID),
		PathParams:  genspec.Params{},
		QueryParams: genspec.Params{},
	}
	for _, t := range op.Tags {
		if t = strings.TrimSpace(t); t != "" {
			d.Tags = append(d.Tags, t)
		}
	}

	// Path-item level parameters apply first, operation-level declarations
	// override by name. Within each list, declared order is kept and duplicate
	// names are last-write-wins.
	for _, p := range item.Parameters {
		e.fileParam(&d, p)
	}
	for _, p := range op.Parameters {
		e.fileParam(&d, p)
	}

	if op.RequestBody != nil {
		for _, media := range op.RequestBody.Content {
			if media.Mime != "application/json" {
				continue
			}
			if media.HasExample {
				d.Body = media.Example
			} else {
				d.Body = e.resolver.Resolve(media.Schema)
			}
			d.HasBody = true
			break
		}
	}
	return d
}

// fileParam resolves one parameter and files it into the matching bucket.
// Header and cookie parameters are read but not part of the descriptor.
func (e *Extractor) fileParam(d *genspec.RequestDescriptor, p *genspec.Parameter) {
	if p == nil || p.Name == "" {
		return
	}
	value := e.resolver.Resolve(p.Schema)
	switch p.In {
	case "path":
		d.PathParams = d.PathParams.Set(p.Name, value)
	case "query":
		d.QueryParams = d.QueryParams.Set(p.Name, value)
	}
}

func (e *Extractor) allowByTags(tags []string) bool {
	if len(e.cfg.includeTags) > 0 {
		ok := false
		for _, t := range tags {
			if _, yes := e.cfg.includeTags[strings.TrimSpace(t)]; yes {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(e.cfg.excludeTags) > 0 {
		for _, t := range tags {
			if _, blocked := e.cfg.excludeTags[strings.TrimSpace(t)]; blocked {
				return false
			}
		}
	}
	return true
}
