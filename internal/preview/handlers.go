package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/vango-dev/inputkit/internal/attrflag"
	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/attr"
	"github.com/vango-dev/inputkit/pkg/input"
)

// attrParamPrefix marks query parameters carrying attributes, e.g.
// /render?kind=text&a.name=email&a.required.
const attrParamPrefix = "a."

// renderRequest describes one element to render.
type renderRequest struct {
	Kind   string
	Attrs  map[string]any
	Theme  string
	Output bool
}

// rendered is a rendered element and the id it was given.
type rendered struct {
	Markup string
	ID     string
}

// render builds and renders one element inside an inputkit.render span.
func (s *Server) render(ctx context.Context, st *state, req renderRequest) (out rendered, err error) {
	names := make([]string, 0, len(req.Attrs))
	for name := range req.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	_, span := startRenderSpan(ctx, s.tracer, req.Kind, req.Theme, names)
	defer func() { endSpan(span, err) }()

	el, err := input.New(input.Kind(req.Kind))
	if err != nil {
		s.metrics.RenderError(ReasonUnknownKind)
		return rendered{}, errors.New(errors.CodeUnknownKind).WithDetail(err.Error())
	}
	el = el.WithRegistry(st.registry).Attrs(req.Attrs)

	if req.Theme != "" {
		if st.theme == nil || !st.theme.HasTheme(req.Theme) {
			s.metrics.RenderError(ReasonUnknownTheme)
			e := errors.New(errors.CodeUnknownTheme).WithDetail("theme " + req.Theme + " is not defined")
			if st.theme != nil {
				e.WithSuggestion("Available themes: " + strings.Join(st.theme.ThemeNames(), ", "))
			}
			return rendered{}, e
		}
		el = el.WithTheme(req.Theme, st.theme)
	}
	if req.Output {
		el = el.ShowOutput(true)
	}

	start := time.Now()
	id, _ := attr.ValueString("id", el.Resolved().Get("id", nil))
	markup := el.Render()
	s.metrics.ObserveRender(string(el.Kind()), time.Since(start))

	s.logger.Debug().
		Str("kind", string(el.Kind())).
		Str("theme", req.Theme).
		Strs("attributes", names).
		Msg("rendered element")
	return rendered{Markup: markup, ID: id}, nil
}

// handleRender serves a single element as an HTML fragment.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	st := s.state.Load()
	q := r.URL.Query()

	req := renderRequest{
		Kind:   q.Get("kind"),
		Attrs:  make(map[string]any),
		Theme:  st.cfg.Theme,
		Output: q.Get("output") == "true" || q.Get("output") == "1",
	}
	if q.Has("theme") {
		req.Theme = q.Get("theme")
	}
	for key, values := range q {
		if !strings.HasPrefix(key, attrParamPrefix) || len(values) == 0 {
			continue
		}
		kv := strings.TrimPrefix(key, attrParamPrefix)
		if v := values[len(values)-1]; v != "" {
			kv += "=" + v
		}
		name, value, err := attrflag.Parse(kv)
		if err != nil {
			s.metrics.RenderError(ReasonBadAttribute)
			writeError(w, err)
			return
		}
		req.Attrs[name] = value
	}

	out, err := s.render(r.Context(), st, req)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(out.Markup))
}

// handleKinds lists the supported kinds as JSON.
func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := input.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"kinds":  names,
		"themes": s.Config().ThemeNames(),
	})
}

// handlePage serves the preview page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	st := s.state.Load()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(s.page(r.Context(), st)))
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, errors.FromError(err, errors.CodeBadAttribute).FormatCompact(), http.StatusBadRequest)
}
