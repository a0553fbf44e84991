// Package site writes the static export of the profile card.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/linkbio/internal/domain"
)

//go:embed templates
var templates embed.FS

// Exporter renders the card into a directory of static files.
type Exporter struct {
	page   *template.Template
	logger logrus.FieldLogger
}

// icons are inline SVG glyphs keyed by domain icon name.
var icons = map[domain.Icon]string{
	domain.IconInstagram: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><rect x="2" y="2" width="20" height="20" rx="5"/><circle cx="12" cy="12" r="4"/><line x1="17.5" y1="6.5" x2="17.51" y2="6.5"/></svg>`,
	domain.IconGitHub:    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M9 19c-5 1.5-5-2.5-7-3m14 6v-3.87a3.37 3.37 0 0 0-.94-2.61c3.14-.35 6.44-1.54 6.44-7A5.44 5.44 0 0 0 20 4.77 5.07 5.07 0 0 0 19.91 1S18.73.65 16 2.48a13.38 13.38 0 0 0-7 0C6.27.65 5.09 1 5.09 1A5.07 5.07 0 0 0 5 4.77a5.44 5.44 0 0 0-1.5 3.78c0 5.42 3.3 6.61 6.44 7A3.37 3.37 0 0 0 9 18.13V22"/></svg>`,
	domain.IconTikTok:    `<svg viewBox="0 0 24 24" fill="currentColor" aria-hidden="true"><path d="M19.59 6.69a4.83 4.83 0 0 1-3.77-4.25V2h-3.45v13.67a2.89 2.89 0 0 1-5.2 1.74 2.89 2.89 0 0 1 2.31-4.64 2.93 2.93 0 0 1 .88.13V9.4a6.84 6.84 0 0 0-1-.05A6.33 6.33 0 0 0 5 20.1a6.34 6.34 0 0 0 10.86-4.43v-7a8.16 8.16 0 0 0 4.77 1.52v-3.4a4.85 4.85 0 0 1-1-.1z"/></svg>`,
	domain.IconGlobe:     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><circle cx="12" cy="12" r="10"/><line x1="2" y1="12" x2="22" y2="12"/><path d="M12 2a15.3 15.3 0 0 1 4 10 15.3 15.3 0 0 1-4 10 15.3 15.3 0 0 1-4-10 15.3 15.3 0 0 1 4-10z"/></svg>`,
}

// NewExporter parses the embedded templates. prefix, e.g. "/social-links", is
// prepended to every asset URL; it is empty in development.
func NewExporter(prefix string, logger logrus.FieldLogger) (*Exporter, error) {
	funcs := template.FuncMap{
		"asset": func(name string) string {
			return path.Join("/", prefix, name)
		},
		"icon": func(i domain.Icon) template.HTML {
			// Glyphs are constants above, never user input.
			return template.HTML(icons[i])
		},
	}
	page, err := template.New("index.html.tmpl").Funcs(funcs).ParseFS(templates, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &Exporter{page: page, logger: logger}, nil
}

// Export writes index.html and assets/style.css under outDir.
func (e *Exporter) Export(outDir string, profile domain.Profile) error {
	var buf bytes.Buffer
	if err := e.page.Execute(&buf, struct{ Profile domain.Profile }{profile}); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err := writeFile(filepath.Join(outDir, "index.html"), buf.Bytes()); err != nil {
		return err
	}
	e.logger.WithField("dir", outDir).Debug("Wrote index.html")

	css, err := templates.ReadFile("templates/style.css")
	if err != nil {
		return fmt.Errorf("failed to read stylesheet: %w", err)
	}
	if err := writeFile(filepath.Join(outDir, "assets", "style.css"), css); err != nil {
		return err
	}
	e.logger.WithField("dir", outDir).Debug("Wrote assets/style.css")
	return nil
}

// writeFile replaces name atomically.
func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), ".linkbio-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", name, err)
	}
	return nil
}
