package snippet

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

func TestResolve_NilSchema(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)
	if got := r.Resolve(nil); got != "unknown" {
		t.Fatalf("got %v", got)
	}
}

func TestResolve_ScalarDefaults(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)
	cases := []struct {
		name   string
		schema *genspec.Schema
		want   any
	}{
		{"string", &genspec.Schema{Type: "string"}, "string"},
		{"uuid", &genspec.Schema{Type: "string", Format: "uuid"}, "00000000-0000-0000-0000-000000000000"},
		{"integer", &genspec.Schema{Type: "integer"}, 0},
		{"number", &genspec.Schema{Type: "number"}, 0},
		{"boolean", &genspec.Schema{Type: "boolean"}, true},
		{"unknown type", &genspec.Schema{Type: "widget"}, "unknown"},
		{"missing type", &genspec.Schema{}, "unknown"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Resolve(tc.schema); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestResolve_ExplicitExampleWins(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	// Type-based derivation is skipped even when the example disagrees with
	// the declared type.
	got := r.Resolve(&genspec.Schema{Type: "string", Example: 42, HasExample: true})
	if got != 42 {
		t.Fatalf("got %v, want 42", got)
	}

	// Zero values still count as present.
	if got := r.Resolve(&genspec.Schema{Type: "boolean", Example: false, HasExample: true}); got != false {
		t.Fatalf("false example: got %v", got)
	}
	if got := r.Resolve(&genspec.Schema{Type: "integer", Example: 0, HasExample: true}); got != 0 {
		t.Fatalf("zero example: got %v", got)
	}
}

func TestResolve_ObjectDeclaredOrder(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)
	schema := &genspec.Schema{
		Type: "object",
		Properties: []genspec.Property{
			{Name: "a", Schema: &genspec.Schema{Type: "number"}},
			{Name: "b", Schema: &genspec.Schema{Type: "boolean"}},
		},
	}
	want := genspec.Object{
		{Key: "a", Value: 0},
		{Key: "b", Value: true},
	}
	if diff := cmp.Diff(want, r.Resolve(schema)); diff != "" {
		t.Fatalf("resolve mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_EmptyObject(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)
	got := r.Resolve(&genspec.Schema{Type: "object"})
	obj, ok := got.(genspec.Object)
	if !ok || len(obj) != 0 {
		t.Fatalf("got %#v, want empty Object", got)
	}
	data, _ := json.Marshal(got)
	if string(data) != "{}" {
		t.Fatalf("marshal: got %s", data)
	}
}

func TestResolve_Arrays(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)

	withItems := &genspec.Schema{Type: "array", Items: &genspec.Schema{Type: "string"}}
	if diff := cmp.Diff([]any{"string"}, r.Resolve(withItems)); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	noItems := &genspec.Schema{Type: "array"}
	got, ok := r.Resolve(noItems).([]any)
	if !ok || len(got) != 0 {
		t.Fatalf("got %#v, want empty slice", got)
	}
}

func TestResolve_NestedObject(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)
	schema := &genspec.Schema{
		Type: "object",
		Properties: []genspec.Property{
			{Name: "pet", Schema: &genspec.Schema{
				Type: "object",
				Properties: []genspec.Property{
					{Name: "name", Schema: &genspec.Schema{Type: "string"}},
					{Name: "tags", Schema: &genspec.Schema{Type: "array", Items: &genspec.Schema{Type: "string"}}},
				},
			}},
		},
	}
	data, err := json.Marshal(r.Resolve(schema))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"pet":{"name":"string","tags":["string"]}}`
	if string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()
	r := NewResolver(nil)
	schema := &genspec.Schema{
		Type: "object",
		Properties: []genspec.Property{
			{Name: "id", Schema: &genspec.Schema{Type: "string", Format: "uuid"}},
			{Name: "count", Schema: &genspec.Schema{Type: "integer"}},
		},
	}
	first := r.Resolve(schema)
	second := r.Resolve(schema)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("not deterministic:\n%s", diff)
	}
}

func TestResolve_RefLookup(t *testing.T) {
	t.Parallel()
	doc, err := genspec.ParseDocument([]byte(`
openapi: 3.0.0
components:
  schemas:
    Pet:
      type: object
      properties:
        name:
          type: string
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r := NewResolver(doc)
	got := r.Resolve(&genspec.Schema{Ref: "#/components/schemas/Pet"})
	want := genspec.Object{{Key: "name", Value: "string"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ref mismatch (-want +got):\n%s", diff)
	}

	// Unresolvable references fail closed.
	if got := r.Resolve(&genspec.Schema{Ref: "#/components/schemas/Missing"}); got != "unknown" {
		t.Fatalf("missing ref: got %v", got)
	}
}

func TestResolve_SelfReferentialSchemaTerminates(t *testing.T) {
	t.Parallel()
	doc, err := genspec.ParseDocument([]byte(`
openapi: 3.0.0
components:
  schemas:
    Node:
      type: object
      properties:
        value:
          type: string
        child:
          $ref: '#/components/schemas/Node'
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r := NewResolver(doc)
	got := r.Resolve(doc.SchemaByRef("#/components/schemas/Node"))
	// The depth guard truncates the cycle with the placeholder instead of
	// overflowing; the result must still be JSON-marshalable.
	if _, err := json.Marshal(got); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}
