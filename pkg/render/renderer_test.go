package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/vango-dev/inputkit/pkg/attr"
)

// parseFragment parses markup in a <body> context and returns the element nodes.
func parseFragment(t *testing.T, markup string) []*html.Node {
	t.Helper()
	body := &html.Node{Type: html.ElementNode, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	require.NoError(t, err)
	var out []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			out = append(out, n)
		}
	}
	return out
}

func TestVoid(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		attrs *attr.Attributes
		want  string
	}{
		{
			name:  "input",
			tag:   "input",
			attrs: attr.New().Set("type", "text").Set("name", "email"),
			want:  `<input name="email" type="text">`,
		},
		{
			name:  "boolean attribute bare",
			tag:   "input",
			attrs: attr.New().Set("required", true).Set("type", "text"),
			want:  `<input required type="text">`,
		},
		{
			name:  "false boolean omitted",
			tag:   "input",
			attrs: attr.New().Set("disabled", false).Set("type", "hidden"),
			want:  `<input type="hidden">`,
		},
		{
			name:  "no attributes",
			tag:   "br",
			attrs: nil,
			want:  `<br>`,
		},
		{
			name:  "tag normalized",
			tag:   " INPUT ",
			attrs: attr.New().Set("type", "range"),
			want:  `<input type="range">`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Void(tc.tag, tc.attrs))
		})
	}
}

func TestAttributeValuesEscaped(t *testing.T) {
	a := attr.New().Set("value", `"><script>alert('x')</script>`).Set("type", "text")
	out := Void("input", a)

	assert.NotContains(t, out, "<script>")

	nodes := parseFragment(t, out)
	require.Len(t, nodes, 1)
	require.Equal(t, "input", nodes[0].Data)

	got := map[string]string{}
	for _, a := range nodes[0].Attr {
		got[a.Key] = a.Val
	}
	assert.Equal(t, `"><script>alert('x')</script>`, got["value"])
	assert.Equal(t, "text", got["type"])
}

func TestTag(t *testing.T) {
	out := Tag("span", "Volume", attr.New().Set("class", "label"))
	assert.Equal(t, `<span class="label">Volume</span>`, out)

	assert.Equal(t, `<input type="text">`, Tag("input", "ignored", attr.New().Set("type", "text")))
}

func TestBeginEnd(t *testing.T) {
	assert.Equal(t, `<div id="x">`, Begin("div", attr.New().Set("id", "x")))
	assert.Equal(t, `</div>`, End("div"))
	assert.Equal(t, "", End("input"))
}

func TestAttributesDeterministic(t *testing.T) {
	build := func() *attr.Attributes {
		return attr.FromMap(map[string]any{
			"type": "text", "id": "a", "class": "c", "data-x": true, "aria-label": "L",
		})
	}
	first := Attributes(build())
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Attributes(build()))
	}
	assert.Equal(t, ` aria-label="L" class="c" data-x="true" id="a" type="text"`, first)
}

func TestIsVoid(t *testing.T) {
	for _, tag := range []string{"input", "br", "img", "hr", "meta", "wbr", "Input"} {
		assert.True(t, IsVoid(tag), tag)
	}
	for _, tag := range []string{"div", "span", "output", "x-input", ""} {
		assert.False(t, IsVoid(tag), tag)
	}
}

func TestIsKnownTag(t *testing.T) {
	assert.True(t, IsKnownTag("span"))
	assert.True(t, IsKnownTag("my-widget"))
	assert.False(t, IsKnownTag("notatag"))
	assert.False(t, IsKnownTag("my widget-x"))
	assert.False(t, IsKnownTag(""))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a\nb", Join("a", "", "b"))
	assert.Equal(t, "", Join("", ""))
	assert.Equal(t, "x", Join("x"))
}
