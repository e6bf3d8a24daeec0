package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRangeWithoutOutput(t *testing.T) {
	got := NewInputRange().ID("vol").Min(0).Max(11).Value(5).Render()
	assert.Equal(t, `<input id="vol" max="11" min="0" type="range" value="5">`, got)
}

func TestRangeOutput(t *testing.T) {
	el := NewInputRange().ID("vol").Value(5).ShowOutput(true)
	assert.True(t, el.HasOutput())

	want := `<input id="vol" oninput="this.nextElementSibling.value=this.value" type="range" value="5">` +
		"\n" + `<output for="vol" id="vol-output">5</output>`
	assert.Equal(t, want, el.Render())
	assert.Equal(t, want, el.Render())
}

func TestRangeOutputAttrs(t *testing.T) {
	el := NewInputRange().ID("vol").
		ShowOutput(true).
		OutputAttrs(map[string]any{"id": "shown", "class": "badge"}).
		Attr("oninput", "update(this)")

	want := `<input id="vol" oninput="update(this)" type="range">` + "\n" +
		`<output class="badge" for="vol" id="shown"></output>`
	assert.Equal(t, want, el.Render())
}

func TestRangeOutputWithoutID(t *testing.T) {
	got := NewInputRange().ID(nil).Value(`<3`).ShowOutput(true).Render()
	assert.Equal(t,
		`<input oninput="this.nextElementSibling.value=this.value" type="range" value="&lt;3">`+"\n"+`<output>&lt;3</output>`,
		got)
}

func TestRangeOutputCopiesAreIndependent(t *testing.T) {
	base := NewInputRange().ID("r").OutputAttrs(map[string]any{"class": "a"})
	shown := base.ShowOutput(true)

	assert.False(t, base.HasOutput())
	assert.Equal(t, `<input id="r" type="range">`, base.Render())
	assert.Contains(t, shown.Render(), `<output class="a" for="r" id="r-output">`)
}

func TestGenericRangeOutput(t *testing.T) {
	g := MustNew(KindRange).ID("g").ShowOutput(true)
	assert.Contains(t, g.Render(), `<output for="g" id="g-output"></output>`)

	text := MustNew(KindText).ID("g").ShowOutput(true)
	assert.Equal(t, `<input id="g" type="text">`, text.Render())
}

func TestRangeOutputParses(t *testing.T) {
	markup := NewInputRange().Value(3).ShowOutput(true).Render()

	nodes, err := html.ParseFragment(strings.NewReader(markup), &html.Node{Type: html.ElementNode, Data: "div"})
	require.NoError(t, err)

	var elems []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elems = append(elems, n)
		}
	}
	require.Len(t, elems, 2)
	assert.Equal(t, "input", elems[0].Data)
	assert.Equal(t, "output", elems[1].Data)

	attrs := func(n *html.Node) map[string]string {
		m := map[string]string{}
		for _, a := range n.Attr {
			m[a.Key] = a.Val
		}
		return m
	}
	id := attrs(elems[0])["id"]
	assert.NotEmpty(t, id)
	assert.Equal(t, id, attrs(elems[1])["for"])
	assert.Equal(t, id+"-output", attrs(elems[1])["id"])
}
