// Package curlemitter renders a request descriptor as a runnable curl
// command.
package curlemitter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

// Render returns a curl command for d against baseURL.
func Render(d *genspec.RequestDescriptor, baseURL string) string {
	var b strings.Builder
	if d.Summary != "" {
		fmt.Fprintf(&b, "# %s\n", d.Summary)
	}
	fmt.Fprintf(&b, "curl -X %s %q", d.Method, requestURL(d, baseURL))
	if d.HasBody {
		b.WriteString(" \\\n  -H \"Content-Type: application/json\" \\\n  -d '")
		b.WriteString(jsonBody(d.Body))
		b.WriteString("'")
	}
	return b.String()
}

func requestURL(d *genspec.RequestDescriptor, baseURL string) string {
	u := strings.TrimSuffix(baseURL, "/") + substitutePath(d.Path, d.PathParams)
	if qs := queryString(d.QueryParams); qs != "" {
		u += "?" + qs
	}
	return u
}

// substitutePath replaces {name} tokens with resolved path parameter values.
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

func jsonBody(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	// Single quotes delimit the -d payload; escape any embedded ones the
	// shell way.
	return strings.ReplaceAll(string(b), "'", `'\''`)
}
