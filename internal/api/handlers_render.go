package api

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/dgallion1/docrender/internal/docjson"
	"github.com/dgallion1/docrender/internal/doctree"
	"github.com/dgallion1/docrender/internal/markdown"
	"github.com/dgallion1/docrender/internal/render"
)

// handleRender renders a docjson (or YAML) document synchronously.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRenderBytes)

	opts, err := s.markdownOptions(r.URL.Query().Get)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var doc *doctree.Document
	if isYAML(r.Header.Get("Content-Type")) {
		doc, err = docjson.DecodeYAML(r.Body)
	} else {
		doc, err = docjson.Decode(r.Body)
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid document: "+err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	f := markdown.New(nil, opts)
	if err := render.Render(doc, f); err != nil {
		s.log.Error("render failed", "error", err)
		jsonError(w, "render failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}
	s.latency.Record("render", time.Since(start))

	s.writeMarkdown(w, r, f.Bytes())
}

func isYAML(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	}
	return false
}

// markdownOptions starts from the configured layout and applies indent and
// margin overrides from the request.
func (s *Server) markdownOptions(get func(string) string) (markdown.Options, error) {
	opts := s.cfg.Markdown()
	if v := get("indent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid indent %q", v)
		}
		opts.Indent = n
	}
	if v := get("margin"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return opts, fmt.Errorf("invalid margin %q", v)
		}
		opts.Margin = n
	}
	return opts, nil
}
