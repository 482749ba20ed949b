package spec

import (
	"bytes"
	"encoding/json"
)

// Normalized request model produced by extraction and consumed by emitters.

type HttpMethod string

const (
	GET     HttpMethod = "get"
	POST    HttpMethod = "post"
	PUT     HttpMethod = "put"
	DELETE  HttpMethod = "delete"
	PATCH   HttpMethod = "patch"
	HEAD    HttpMethod = "head"
	OPTIONS HttpMethod = "options"
)

// RequestDescriptor is the language-agnostic description of one example
// request. Emitters render it into target-language source text; Path is kept
// as the raw template and each emitter substitutes {name} tokens itself.
type RequestDescriptor struct {
	Method      string // uppercase: GET, POST, PUT, DELETE
	Path        string // raw template path, e.g. /users/{id}
	Summary     string
	OperationID string
	Tags        []string
	PathParams  Params
	QueryParams Params
	Body        any
	HasBody     bool
}

// Param is one named example value.
type Param struct {
	Name  string
	Value any
}

// Params is an insertion-ordered parameter list. Order is declared order so
// rendered query strings and substitutions are reproducible; duplicate names
// are last-write-wins.
type Params []Param

// Set replaces the value for name in place, or appends when absent.
func (ps Params) Set(name string, value any) Params {
	for i := range ps {
		if ps[i].Name == name {
			ps[i].Value = value
			return ps
		}
	}
	return append(ps, Param{Name: name, Value: value})
}

// Get returns the value for name and whether it was present.
func (ps Params) Get(name string) (any, bool) {
	for i := range ps {
		if ps[i].Name == name {
			return ps[i].Value, true
		}
	}
	return nil, false
}

// Object is a JSON object value that preserves member insertion order.
// encoding/json sorts plain map keys, which would lose the declared property
// order of the source schema, so resolved object examples use this instead.
type Object []Member

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Set replaces the value for key in place, or appends when absent.
func (o Object) Set(key string, value any) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}
	return append(o, Member{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (o Object) Get(key string) (any, bool) {
	for i := range o {
		if o[i].Key == key {
			return o[i].Value, true
		}
	}
	return nil, false
}

// MarshalJSON writes members in insertion order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
