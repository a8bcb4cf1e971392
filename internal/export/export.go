// Package export renders every site route into a directory of HTML files
// that can be served by any static host.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"alexjohnson.dev/internal/content"
	"alexjohnson.dev/internal/static"
	"alexjohnson.dev/internal/views"
)

// Page is one route to render and the status the router must answer with.
type Page struct {
	Path   string
	Status int
	File   string
}

// Pages lists every route the registry produces, in a stable order.
func Pages(registry *content.Registry) []Page {
	pages := []Page{
		page("/"),
		page(views.JobsPath),
		page(views.ProjectsPath),
	}
	for _, j := range registry.Jobs() {
		pages = append(pages, page(views.KindJob.DetailPath(j.Slug)))
	}
	for _, p := range registry.Projects() {
		pages = append(pages, page(views.KindProject.DetailPath(p.Slug)))
	}
	pages = append(pages, Page{Path: "/404.html", Status: http.StatusNotFound, File: "404.html"})
	return pages
}

func page(p string) Page {
	return Page{Path: p, Status: http.StatusOK, File: path.Join(p, "index.html")[1:]}
}

// Exporter renders pages through an http.Handler and writes them to disk.
type Exporter struct {
	handler http.Handler
	workers int
}

// New creates an Exporter. workers bounds the number of pages rendered at once.
func New(handler http.Handler, workers int) *Exporter {
	if workers < 1 {
		workers = 1
	}
	return &Exporter{handler: handler, workers: workers}
}

// Run writes every page plus the static assets under outDir. The first
// failure cancels the remaining work.
func (e *Exporter) Run(ctx context.Context, outDir string, pages []Page) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, p := range pages {
		g.Go(func() error {
			return e.writePage(ctx, outDir, p)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := copyAssets(static.FS(), outDir); err != nil {
		return err
	}
	slog.Info("export complete", "dir", outDir, "pages", len(pages))
	return nil
}

func (e *Exporter) writePage(ctx context.Context, outDir string, p Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, p.Path, nil)
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	if rec.Code != p.Status {
		return fmt.Errorf("render %s: status %d, want %d", p.Path, rec.Code, p.Status)
	}

	dst := filepath.Join(outDir, filepath.FromSlash(p.File))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", p.Path, err)
	}
	if err := os.WriteFile(dst, rec.Body.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p.Path, err)
	}
	slog.Debug("exported page", "path", p.Path, "file", dst, "bytes", rec.Body.Len())
	return nil
}

// copyAssets mirrors the embedded assets under outDir/static and places the
// image placeholder at the site root where records reference it.
func copyAssets(assets fs.FS, outDir string) error {
	err := fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return copyFile(assets, name, filepath.Join(outDir, "static", filepath.FromSlash(name)))
	})
	if err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}
	if err := copyFile(assets, "placeholder.svg", filepath.Join(outDir, "placeholder.svg")); err != nil {
		return fmt.Errorf("copy placeholder: %w", err)
	}
	return nil
}

func copyFile(src fs.FS, name, dst string) error {
	data, err := fs.ReadFile(src, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
