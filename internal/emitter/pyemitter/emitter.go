// Package pyemitter renders a request descriptor as a Python requests
// snippet.
package pyemitter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

// Render returns a Python snippet for d against baseURL, using the requests
// library.
func Render(d *genspec.RequestDescriptor, baseURL string) string {
	var b strings.Builder
	if d.Summary != "" {
		fmt.Fprintf(&b, "# %s\n", d.Summary)
	}
	b.WriteString("import requests\n\n")
	fmt.Fprintf(&b, "url = %s\n", pyLiteral(strings.TrimSuffix(baseURL, "/")+substitutePath(d.Path, d.PathParams)))

	args := []string{"url"}
	if len(d.QueryParams) > 0 {
		fmt.Fprintf(&b, "params = %s\n", pyParams(d.QueryParams))
		args = append(args, "params=params")
	}
	if d.HasBody {
		fmt.Fprintf(&b, "payload = %s\n", pyLiteral(d.Body))
		args = append(args, "json=payload")
	}

	fmt.Fprintf(&b, "\nresponse = requests.%s(%s)\n", strings.ToLower(d.Method), strings.Join(args, ", "))
	b.WriteString("print(response.json())")
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

func pyParams(params genspec.Params) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, pyLiteral(p.Name)+": "+pyLiteral(p.Value))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// pyLiteral renders a resolved example value as a Python literal. JSON and
// Python literals differ only in the spellings of true/false/null, so
// everything scalar goes through encoding/json.
func pyLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case bool:
		if val {
			return "True"
		}
		return "False"
	case genspec.Object:
		parts := make([]string, 0, len(val))
		for _, m := range val {
			parts = append(parts, pyLiteral(m.Key)+": "+pyLiteral(m.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case map[string]any:
		// Explicit example values decode to plain maps; sort for stable output.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, pyLiteral(k)+": "+pyLiteral(val[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, pyLiteral(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%q", fmt.Sprint(v))
		}
		return string(b)
	}
}
