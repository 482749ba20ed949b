// Package fetchemitter renders a request descriptor as a JavaScript fetch
// snippet.
package fetchemitter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

// Render returns a fetch snippet for d against baseURL.
func Render(d *genspec.RequestDescriptor, baseURL string) string {
	var b strings.Builder
	if d.Summary != "" {
		fmt.Fprintf(&b, "// %s\n", d.Summary)
	}
	fmt.Fprintf(&b, "fetch(%q, {\n", requestURL(d, baseURL))
	fmt.Fprintf(&b, "  method: %q", d.Method)
	if d.HasBody {
		b.WriteString(",\n  headers: { \"Content-Type\": \"application/json\" }")
		fmt.Fprintf(&b, ",\n  body: JSON.stringify(%s)", jsLiteral(d.Body))
	}
	b.WriteString("\n})\n")
	b.WriteString("  .then(response => response.json())\n")
	b.WriteString("  .then(data => console.log(data));")
	return b.String()
}

func requestURL(d *genspec.RequestDescriptor, baseURL string) string {
	u := strings.TrimSuffix(baseURL, "/") + substitutePath(d.Path, d.PathParams)
	if qs := queryString(d.QueryParams); qs != "" {
		u += "?" + qs
	}
	return u
}

func substitutePath(path string, params genspec.Params) string {
	for _, p := range params {
		path = strings.ReplaceAll(path, "{"+p.Name+"}", paramValue(p.Value))
	}
	return path
}

func paramValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func queryString(params genspec.Params) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.Name)+"="+url.QueryEscape(paramValue(p.Value)))
	}
	return strings.Join(parts, "&")
}

// jsLiteral renders a value as a JavaScript literal. JSON is valid JS, and
// the ordered Object type marshals members in declared order.
func jsLiteral(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
