// Package web serves the portfolio page, the contact hand-off and the visit
// analytics endpoints over gin.
package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"github.com/zmajumder/portfolio/internal/content"
	"github.com/zmajumder/portfolio/internal/visits"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server.
type Options struct {
	// StaticDir is served under /static when it exists.
	StaticDir string
	// AdminToken enables the /admin/api routes when set.
	AdminToken string
	// Retention bounds how long visits are kept by the cleanup endpoint.
	Retention time.Duration
	// FocusOffset is handed to the in-page scroll-spy.
	FocusOffset float64
	Logger      *slog.Logger
}

// highlightView is a highlight with its description rendered to HTML.
type highlightView struct {
	content.Highlight
	HTML template.HTML
}

// page is the pre-rendered view of a Site.
type page struct {
	Site       *content.Site
	Highlights []highlightView
}

// Server is the portfolio web front.
type Server struct {
	opts      Options
	page      atomic.Pointer[page]
	store     *visits.Store
	md        goldmark.Markdown
	engine    *gin.Engine
	scrollSpy bool
	log       *slog.Logger

	// pending counts visit writes still running after their request.
	pending sync.WaitGroup
}

// New builds a server for site. store may be nil, which disables visit
// tracking and the admin routes.
func New(site *content.Site, store *visits.Store, opts Options) (*Server, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		opts:  opts,
		store: store,
		md:    goldmark.New(),
		log:   opts.Logger,
	}
	if err := s.SetSite(site); err != nil {
		return nil, err
	}

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"year": func() int { return time.Now().Year() },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.log))
	r.SetHTMLTemplate(tmpl)

	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err == nil && info.IsDir() {
			r.Static("/static", opts.StaticDir)
			_, err := os.Stat(filepath.Join(opts.StaticDir, "spy.wasm"))
			s.scrollSpy = err == nil
		} else {
			s.log.Warn("static dir not found, assets disabled", "dir", opts.StaticDir)
		}
	}

	if store != nil {
		r.Use(visitTracking(store, &s.pending, s.log))
	}

	s.engine = r
	s.routes()
	return s, nil
}

// SetSite swaps in new page content. Requests in flight keep the page they
// started with.
func (s *Server) SetSite(site *content.Site) error {
	if err := site.Validate(); err != nil {
		return fmt.Errorf("invalid site content: %w", err)
	}
	p := &page{Site: site}
	for _, h := range site.Highlights {
		var buf bytes.Buffer
		src := strings.Join(h.Paragraphs(), "\n\n")
		if err := s.md.Convert([]byte(src), &buf); err != nil {
			return fmt.Errorf("rendering highlight %q: %w", h.Title, err)
		}
		p.Highlights = append(p.Highlights, highlightView{Highlight: h, HTML: template.HTML(buf.String())})
	}
	s.page.Store(p)
	return nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Wait blocks until background visit writes have finished. Call it before
// closing the store.
func (s *Server) Wait() {
	s.pending.Wait()
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
// Visit writes started by served requests are complete when Run returns.
func (s *Server) Run(ctx context.Context, addr string) error {
	defer s.Wait()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/", s.handleIndex)
	r.GET("/privacy", s.handlePrivacy)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/contact", s.handleContact)
	r.GET("/contact/mailto", s.handleMailtoPreview)

	if s.store != nil && s.opts.AdminToken != "" {
		admin := r.Group("/admin/api")
		admin.Use(adminAuth(s.opts.AdminToken))
		admin.GET("/stats", s.handleStats)
		admin.GET("/export", s.handleExport)
		admin.POST("/cleanup", s.handleCleanup)
	}
}
