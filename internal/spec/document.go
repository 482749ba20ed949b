package spec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Ordered OpenAPI document model.
//
// kin-openapi parses paths and properties into Go maps, which forget the order
// they were declared in. Snippet output must follow declared order so repeated
// runs over the same document are byte-identical and diffable, so the document
// shape read by extraction is decoded here from yaml.v3 nodes instead (JSON is
// a subset of YAML, so both input forms decode the same way). Every field is
// optional; absent or oddly shaped nodes decode to zero values, never errors.

type Document struct {
	OpenAPI    string     `yaml:"openapi"`
	Info       Info       `yaml:"info"`
	Servers    []Server   `yaml:"servers"`
	Paths      []PathEntry
	Components Components
}

type Info struct {
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

type Server struct {
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// PathEntry is one paths-map entry, in declared order.
type PathEntry struct {
	Path string
	Item *PathItem
}

// PathItem holds the recognized operations of one path template, in the order
// their method keys appear in the source document.
type PathItem struct {
	Parameters []*Parameter
	Operations []OperationEntry
}

type OperationEntry struct {
	Method HttpMethod
	Op     *Operation
}

type Operation struct {
	OperationID string       `yaml:"operationId"`
	Summary     string       `yaml:"summary"`
	Description string       `yaml:"description"`
	Tags        []string     `yaml:"tags"`
	Parameters  []*Parameter `yaml:"parameters"`
	RequestBody *RequestBody `yaml:"requestBody"`
}

type Parameter struct {
	Name     string  `yaml:"name"`
	In       string  `yaml:"in"`
	Required bool    `yaml:"required"`
	Schema   *Schema `yaml:"schema"`
}

// RequestBody keeps media entries in declared order so "first application/json
// entry" is well defined.
type RequestBody struct {
	Required bool
	Content  []Media
}

type Media struct {
	Mime       string
	Schema     *Schema
	Example    any
	HasExample bool
}

type Components struct {
	Schemas []NamedSchema
}

type NamedSchema struct {
	Name   string
	Schema *Schema
}

// Schema is the subset of the JSON-schema object the resolver understands.
// HasExample distinguishes an explicit example of 0/false/null from an absent
// example field.
type Schema struct {
	Ref        string
	Type       string
	Format     string
	Example    any
	HasExample bool
	Properties []Property
	Items      *Schema
}

type Property struct {
	Name   string
	Schema *Schema
}

// recognizedMethods are the lowercase path-item keys read during extraction.
var recognizedMethods = map[string]HttpMethod{
	"get":     GET,
	"post":    POST,
	"put":     PUT,
	"delete":  DELETE,
	"patch":   PATCH,
	"head":    HEAD,
	"options": OPTIONS,
}

// ParseDocument decodes YAML or JSON bytes into the ordered document model.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// SchemaByRef resolves a local component reference like
// "#/components/schemas/Pet". Anything else returns nil.
func (d *Document) SchemaByRef(ref string) *Schema {
	const prefix = "#/components/schemas/"
	if d == nil || !strings.HasPrefix(ref, prefix) {
		return nil
	}
	name := strings.TrimPrefix(ref, prefix)
	for _, ns := range d.Components.Schemas {
		if ns.Name == name {
			return ns.Schema
		}
	}
	return nil
}

func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for key, value := range pairs(node) {
		switch key.Value {
		case "openapi":
			_ = value.Decode(&d.OpenAPI)
		case "info":
			_ = value.Decode(&d.Info)
		case "servers":
			_ = value.Decode(&d.Servers)
		case "paths":
			value = deref(value)
			if value.Kind != yaml.MappingNode {
				continue
			}
			for pk, pv := range pairs(value) {
				item := new(PathItem)
				_ = pv.Decode(item)
				d.Paths = append(d.Paths, PathEntry{Path: pk.Value, Item: item})
			}
		case "components":
			_ = value.Decode(&d.Components)
		}
	}
	return nil
}

func (p *PathItem) UnmarshalYAML(node *yaml.Node) error {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for key, value := range pairs(node) {
		if key.Value == "parameters" {
			_ = value.Decode(&p.Parameters)
			continue
		}
		// Method keys are matched case-sensitively in lowercase, matching how
		// OpenAPI declares them. Unrecognized keys are skipped.
		method, ok := recognizedMethods[key.Value]
		if !ok {
			continue
		}
		op := new(Operation)
		_ = value.Decode(op)
		p.Operations = append(p.Operations, OperationEntry{Method: method, Op: op})
	}
	return nil
}

func (r *RequestBody) UnmarshalYAML(node *yaml.Node) error {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for key, value := range pairs(node) {
		switch key.Value {
		case "required":
			_ = value.Decode(&r.Required)
		case "content":
			value = deref(value)
			if value.Kind != yaml.MappingNode {
				continue
			}
			for mk, mv := range pairs(value) {
				media := Media{Mime: mk.Value}
				mv = deref(mv)
				if mv != nil && mv.Kind == yaml.MappingNode {
					for fk, fv := range pairs(mv) {
						switch fk.Value {
						case "schema":
							media.Schema = new(Schema)
							_ = fv.Decode(media.Schema)
						case "example":
							_ = fv.Decode(&media.Example)
							media.HasExample = true
						}
					}
				}
				r.Content = append(r.Content, media)
			}
		}
	}
	return nil
}

func (c *Components) UnmarshalYAML(node *yaml.Node) error {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for key, value := range pairs(node) {
		if key.Value != "schemas" {
			continue
		}
		value = deref(value)
		if value.Kind != yaml.MappingNode {
			continue
		}
		for sk, sv := range pairs(value) {
			s := new(Schema)
			_ = sv.Decode(s)
			c.Schemas = append(c.Schemas, NamedSchema{Name: sk.Value, Schema: s})
		}
	}
	return nil
}

func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	node = deref(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for key, value := range pairs(node) {
		switch key.Value {
		case "$ref":
			_ = value.Decode(&s.Ref)
		case "type":
			_ = value.Decode(&s.Type)
		case "format":
			_ = value.Decode(&s.Format)
		case "example":
			_ = value.Decode(&s.Example)
			s.HasExample = true
		case "properties":
			value = deref(value)
			if value.Kind != yaml.MappingNode {
				continue
			}
			for pk, pv := range pairs(value) {
				prop := new(Schema)
				_ = pv.Decode(prop)
				s.Properties = append(s.Properties, Property{Name: pk.Value, Schema: prop})
			}
		case "items":
			s.Items = new(Schema)
			_ = value.Decode(s.Items)
		}
	}
	return nil
}

// pairs iterates the key/value node pairs of a mapping node in source order.
func pairs(node *yaml.Node) func(func(*yaml.Node, *yaml.Node) bool) {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := deref(node.Content[i])
			value := deref(node.Content[i+1])
			if key == nil || value == nil {
				continue
			}
			if !yield(key, value) {
				return
			}
		}
	}
}

func deref(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}
