package preview

import (
	"context"
	"strings"

	"github.com/vango-dev/inputkit/internal/config"
	"github.com/vango-dev/inputkit/pkg/attr"
	"github.com/vango-dev/inputkit/pkg/input"
	"github.com/vango-dev/inputkit/pkg/render"
)

const pageStyle = `<style>
body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 48rem; }
.sample { border-bottom: 1px solid #ddd; padding: 1rem 0; }
.sample pre { background: #f6f6f6; padding: .5rem; overflow-x: auto; }
#inputkit-error { background: #300; color: #fdd; padding: 1rem; white-space: pre-wrap; }
.error { color: #b00; }
</style>`

// samples returns the configured samples, or one per kind when none are set.
func samples(cfg *config.Config) []config.Sample {
	if len(cfg.Preview.Samples) > 0 {
		return cfg.Preview.Samples
	}
	out := make([]config.Sample, 0, len(input.Kinds()))
	for _, k := range input.Kinds() {
		out = append(out, config.Sample{
			Kind:   string(k),
			Attrs:  map[string]any{"name": string(k)},
			Output: k == input.KindRange,
		})
	}
	return out
}

// page renders the full preview document.
func (s *Server) page(ctx context.Context, st *state) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(render.Begin("html", attr.New().Set("lang", "en")))
	b.WriteString("\n<head>\n")
	b.WriteString(render.Void("meta", attr.New().Set("charset", "utf-8")))
	b.WriteString("\n")
	b.WriteString(render.Tag("title", "inputkit preview", nil))
	b.WriteString("\n")
	b.WriteString(pageStyle)
	b.WriteString("\n</head>\n<body>\n")

	heading := "inputkit preview"
	if st.cfg.Theme != "" {
		heading += " · " + st.cfg.Theme
	}
	b.WriteString(render.Tag("h1", render.Text(heading), nil))
	b.WriteString("\n")
	b.WriteString(render.Tag("pre", "", attr.New().Set("id", "inputkit-error").Set("hidden", true)))
	b.WriteString("\n")

	for _, sample := range samples(st.cfg) {
		b.WriteString(s.sample(ctx, st, sample))
		b.WriteString("\n")
	}

	if s.watcher != nil {
		b.WriteString(reloadScript)
		b.WriteString("\n")
	}
	b.WriteString("</body>\n")
	b.WriteString(render.End("html"))
	b.WriteString("\n")
	return b.String()
}

// sample renders one labelled sample with its markup listed below it.
func (s *Server) sample(ctx context.Context, st *state, sample config.Sample) string {
	title := sample.Label
	if title == "" {
		title = sample.Kind
	}

	out, err := s.render(ctx, st, renderRequest{
		Kind:   sample.Kind,
		Attrs:  sample.Attributes(),
		Theme:  st.cfg.Theme,
		Output: sample.Output,
	})

	var body string
	if err != nil {
		body = render.Tag("p", render.Text(err.Error()), attr.New().Set("class", "error"))
	} else {
		label := attr.New()
		if out.ID != "" {
			label.Set("for", out.ID)
		}
		body = render.Join(
			render.Tag("label", render.Text(title), label),
			out.Markup,
			render.Tag("pre", render.Tag("code", render.Text(out.Markup), nil), nil),
		)
	}

	return render.Tag("section", "\n"+body+"\n", attr.New().Set("class", "sample").Set("data-kind", sample.Kind))
}
