package axiosemitter

import (
	"testing"

	genspec "github.com/mark3labs/spec2snippets/internal/spec"
)

func TestRender_Get(t *testing.T) {
	t.Parallel()
	d := &genspec.RequestDescriptor{
		Method:      "GET",
		Path:        "/users/{id}",
		PathParams:  genspec.Params{{Name: "id", Value: 0}},
		QueryParams: genspec.Params{{Name: "verbose", Value: true}},
	}
	got := Render(d, "https://api.example.com")
	want := "const axios = require(\"axios\");\n\n" +
		"axios({\n" +
		"  method: \"get\",\n" +
		"  url: \"https://api.example.com/users/0\",\n" +
		"  params: { \"verbose\": true }\n" +
		"})\n" +
		"  .then(response => console.log(response.data))\n" +
		"  .catch(error => console.error(error));"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_PostWithBody(t *testing.T) {
	t.Parallel()
	d := &genspec.RequestDescriptor{
		Method:  "POST",
		Path:    "/users",
		Body:    genspec.Object{{Key: "name", Value: "string"}},
		HasBody: true,
	}
	got := Render(d, "https://api.example.com")
	want := "const axios = require(\"axios\");\n\n" +
		"axios({\n" +
		"  method: \"post\",\n" +
		"  url: \"https://api.example.com/users\",\n" +
		"  data: {\"name\":\"string\"}\n" +
		"})\n" +
		"  .then(response => console.log(response.data))\n" +
		"  .catch(error => console.error(error));"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}
