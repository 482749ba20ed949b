package spec

import (
	"testing"
)

const orderedSpec = `openapi: 3.0.0
info:
  title: Ordered API
  version: "1.0.0"
servers:
  - url: https://api.example.com
    description: prod
paths:
  /zebras:
    post:
      summary: Create zebra
    get:
      summary: List zebras
  /apples/{id}:
    parameters:
      - in: path
        name: id
        required: true
        schema:
          type: integer
    get:
      summary: Get apple
components:
  schemas:
    Zebra:
      type: object
      properties:
        name:
          type: string
        age:
          type: integer
    Apple:
      type: string
`

func TestParseDocument_PreservesDeclaredOrder(t *testing.T) {
	t.Parallel()
	doc, err := ParseDocument([]byte(orderedSpec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if doc.Info.Title != "Ordered API" {
		t.Errorf("title: got %q", doc.Info.Title)
	}
	if len(doc.Servers) != 1 || doc.Servers[0].URL != "https://api.example.com" {
		t.Fatalf("servers: got %+v", doc.Servers)
	}

	// /zebras is declared before /apples/{id} even though it sorts after.
	if len(doc.Paths) != 2 {
		t.Fatalf("paths: got %d", len(doc.Paths))
	}
	if doc.Paths[0].Path != "/zebras" || doc.Paths[1].Path != "/apples/{id}" {
		t.Fatalf("path order: got %q, %q", doc.Paths[0].Path, doc.Paths[1].Path)
	}

	// post is declared before get on /zebras.
	ops := doc.Paths[0].Item.Operations
	if len(ops) != 2 || ops[0].Method != POST || ops[1].Method != GET {
		t.Fatalf("method order: got %+v", ops)
	}

	// Path-level parameters are captured.
	item := doc.Paths[1].Item
	if len(item.Parameters) != 1 || item.Parameters[0].Name != "id" || item.Parameters[0].In != "path" {
		t.Fatalf("path-level params: got %+v", item.Parameters)
	}
	if item.Parameters[0].Schema == nil || item.Parameters[0].Schema.Type != "integer" {
		t.Fatalf("param schema: got %+v", item.Parameters[0].Schema)
	}

	// Component schemas keep declared order and property order.
	if len(doc.Components.Schemas) != 2 {
		t.Fatalf("components: got %d", len(doc.Components.Schemas))
	}
	zebra := doc.Components.Schemas[0]
	if zebra.Name != "Zebra" {
		t.Fatalf("component order: got %q first", zebra.Name)
	}
	if len(zebra.Schema.Properties) != 2 || zebra.Schema.Properties[0].Name != "name" || zebra.Schema.Properties[1].Name != "age" {
		t.Fatalf("property order: got %+v", zebra.Schema.Properties)
	}
}

func TestParseDocument_JSONInput(t *testing.T) {
	t.Parallel()
	data := []byte(`{"openapi":"3.0.0","paths":{"/b":{"get":{}},"/a":{"get":{}}}}`)
	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Paths) != 2 || doc.Paths[0].Path != "/b" || doc.Paths[1].Path != "/a" {
		t.Fatalf("json path order: got %+v", doc.Paths)
	}
}

func TestParseDocument_AbsentFields(t *testing.T) {
	t.Parallel()
	doc, err := ParseDocument([]byte("openapi: 3.0.0\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Paths) != 0 {
		t.Fatalf("expected no paths, got %d", len(doc.Paths))
	}
	if doc.SchemaByRef("#/components/schemas/Missing") != nil {
		t.Fatalf("expected nil for missing ref")
	}
}

func TestSchema_ExamplePresence(t *testing.T) {
	t.Parallel()
	doc, err := ParseDocument([]byte(`
openapi: 3.0.0
components:
  schemas:
    Zeroed:
      type: integer
      example: 0
    Plain:
      type: integer
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	zeroed := doc.SchemaByRef("#/components/schemas/Zeroed")
	if zeroed == nil || !zeroed.HasExample {
		t.Fatalf("expected example presence for explicit 0")
	}
	if v, ok := zeroed.Example.(int); !ok || v != 0 {
		t.Fatalf("example value: got %v", zeroed.Example)
	}
	plain := doc.SchemaByRef("#/components/schemas/Plain")
	if plain == nil || plain.HasExample {
		t.Fatalf("expected no example presence when absent")
	}
}

func TestSchemaByRef(t *testing.T) {
	t.Parallel()
	doc, err := ParseDocument([]byte(orderedSpec))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if s := doc.SchemaByRef("#/components/schemas/Apple"); s == nil || s.Type != "string" {
		t.Fatalf("Apple ref: got %+v", s)
	}
	if s := doc.SchemaByRef("#/definitions/Apple"); s != nil {
		t.Fatalf("non-component ref should be nil, got %+v", s)
	}
}

func TestPathItem_UnrecognizedMethodKeys(t *testing.T) {
	t.Parallel()
	doc, err := ParseDocument([]byte(`
openapi: 3.0.0
paths:
  /things:
    GET:
      summary: uppercase keys are not method keys
    get:
      summary: ok
    x-custom: true
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ops := doc.Paths[0].Item.Operations
	if len(ops) != 1 || ops[0].Method != GET {
		t.Fatalf("expected only lowercase get, got %+v", ops)
	}
}
