// Package axiosemitter renders a request descriptor as an Axios snippet.
package axiosemitter

import (
	"encoding/json"
	"fmt"
	"strings"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

// Render returns an Axios snippet for d against baseURL. Query parameters go
// through the Axios params option rather than the URL.
func Render(d *genspec.RequestDescriptor, baseURL string) string {
	var b strings.Builder
	if d.Summary != "" {
		fmt.Fprintf(&b, "// %s\n", d.Summary)
	}
	b.WriteString("const axios = require(\"axios\");\n\n")
	b.WriteString("axios({\n")
	fmt.Fprintf(&b, "  method: %q,\n", strings.ToLower(d.Method))
	fmt.Fprintf(&b, "  url: %q", strings.TrimSuffix(baseURL, "/")+substitutePath(d.Path, d.PathParams))
	if len(d.QueryParams) > 0 {
		fmt.Fprintf(&b, ",\n  params: %s", jsParams(d.QueryParams))
	}
	if d.HasBody {
		fmt.Fprintf(&b, ",\n  data: %s", jsLiteral(d.Body))
	}
	b.WriteString("\n})\n")
	b.WriteString("  .then(response => console.log(response.data))\n")
	b.WriteString("  .catch(error => console.error(error));")
	return b.String()
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

func jsParams(params genspec.Params) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("%q: %s", p.Name, jsLiteral(p.Value)))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func jsLiteral(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
