// Package snippet derives example request descriptors from an OpenAPI
// document and renders them through the per-language emitters.
package snippet

import (
	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

const (
	// placeholder is returned whenever no example can be derived.
	placeholder = "unknown"
	// zeroUUID is the example for string schemas with format uuid.
	zeroUUID = "00000000-0000-0000-0000-000000000000"
	// defaultMaxDepth bounds schema recursion. Real-world schema trees stay
	// far below this; the guard exists so a self-referential component graph
	// degrades to the placeholder instead of overflowing the stack.
	defaultMaxDepth = 32
)

// Resolver maps a schema node to a single representative JSON-compatible
// value, deterministically and without side effects. A nil document is fine;
// it only disables $ref lookup.
type Resolver struct {
	doc      *genspec.Document
	maxDepth int
}

// NewResolver returns a resolver that resolves local component references
// against doc.
func NewResolver(doc *genspec.Document) *Resolver {
	return &Resolver{doc: doc, maxDepth: defaultMaxDepth}
}

// Resolve returns an example value for s. It never fails: missing schemas,
// unknown types, and unresolvable references all come back as the placeholder
// string.
func (r *Resolver) Resolve(s *genspec.Schema) any {
	return r.resolve(s, 0)
}

func (r *Resolver) resolve(s *genspec.Schema, depth int) any {
	if depth > r.maxDepth {
		return placeholder
	}
	if s == nil {
		return placeholder
	}
	if s.Ref != "" {
		target := r.doc.SchemaByRef(s.Ref)
		if target == nil {
			return placeholder
		}
		return r.resolve(target, depth+1)
	}
	// An explicit example wins over everything, including zero values like
	// 0, false, and empty containers.
	if s.HasExample {
		return s.Example
	}
	switch s.Type {
	case "string":
		if s.Format == "uuid" {
			return zeroUUID
		}
		return "string"
	case "number", "integer":
		return 0
	case "boolean":
		return true
	case "object":
		obj := genspec.Object{}
		for _, prop := range s.Properties {
			obj = obj.Set(prop.Name, r.resolve(prop.Schema, depth+1))
		}
		return obj
	case "array":
		if s.Items == nil {
			return []any{}
		}
		return []any{r.resolve(s.Items, depth+1)}
	default:
		return placeholder
	}
}
