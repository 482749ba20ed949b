// Package javaemitter renders a request descriptor as a java.net.http
// snippet.
package javaemitter

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

// Render returns a Java 11+ HttpClient snippet for d against baseURL.
func Render(d *genspec.RequestDescriptor, baseURL string) string {
	var b strings.Builder
	if d.Summary != "" {
		fmt.Fprintf(&b, "// %s\n", d.Summary)
	}
	b.WriteString("HttpClient client = HttpClient.newHttpClient();\n")
	b.WriteString("HttpRequest request = HttpRequest.newBuilder()\n")
	fmt.Fprintf(&b, "    .uri(URI.create(%s))\n", javaString(requestURL(d, baseURL)))
	if d.HasBody {
		b.WriteString("    .header(\"Content-Type\", \"application/json\")\n")
		fmt.Fprintf(&b, "    .method(%q, HttpRequest.BodyPublishers.ofString(%s))\n", d.Method, javaString(jsonBody(d.Body)))
	} else {
		switch d.Method {
		case "GET":
			b.WriteString("    .GET()\n")
		case "DELETE":
			b.WriteString("    .DELETE()\n")
		default:
			fmt.Fprintf(&b, "    .method(%q, HttpRequest.BodyPublishers.noBody())\n", d.Method)
		}
	}
	b.WriteString("    .build();\n")
	b.WriteString("HttpResponse<String> response = client.send(request, HttpResponse.BodyHandlers.ofString());\n")
	b.WriteString("System.out.println(response.body());")
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

func jsonBody(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// javaString quotes s as a Java string literal. Go's quoting rules are a
// compatible subset for JSON payloads and URLs.
func javaString(s string) string {
	return strconv.Quote(s)
}
