package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zmajumder/portfolio/internal/compose"
	"github.com/zmajumder/portfolio/internal/content"
)

// indexData is the template context for index.html.
type indexData struct {
	*page
	FocusOffset float64
	ScrollSpy   bool
	Form        compose.Message
	FormError   string
}

// sectionData is the template context for one page section.
type sectionData struct {
	Nav  content.NavItem
	Page indexData
}

// Section pairs a nav item with the page it is rendered into.
func (d indexData) Section(n content.NavItem) sectionData {
	return sectionData{Nav: n, Page: d}
}

func (s *Server) indexData() indexData {
	return indexData{
		page:        s.page.Load(),
		FocusOffset: s.opts.FocusOffset,
		ScrollSpy:   s.scrollSpy,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.indexData())
}

func (s *Server) handlePrivacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"Site":      s.page.Load().Site,
		"Retention": int(s.opts.Retention.Hours() / 24),
	})
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// bindMessage binds the contact form and applies the presence checks.
func bindMessage(bind func(any) error) (compose.Message, error) {
	var msg compose.Message
	bindErr := bind(&msg)
	if err := msg.Validate(); err != nil {
		return msg, err
	}
	if bindErr != nil {
		return msg, bindErr
	}
	return msg, nil
}

func errorText(err error) string {
	var fe *compose.FieldError
	if errors.As(err, &fe) {
		return "Please fill in: " + joinFields(fe.Fields)
	}
	return "Please check the form and try again."
}

// joinFields renders "a", "a and b", "a, b and c".
func joinFields(fields []string) string {
	if len(fields) < 2 {
		return strings.Join(fields, "")
	}
	return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
}

// handleContact hands the visitor off to their own mail client. Nothing is
// sent from the server.
func (s *Server) handleContact(c *gin.Context) {
	msg, err := bindMessage(c.ShouldBind)
	if err != nil {
		s.log.Debug("contact form rejected", "err", err)
		data := s.indexData()
		data.Form = msg
		data.FormError = errorText(err)
		if isHTMX(c) {
			c.HTML(http.StatusUnprocessableEntity, "contact_form", data)
			return
		}
		c.HTML(http.StatusUnprocessableEntity, "index.html", data)
		return
	}

	site := s.page.Load().Site
	link := compose.MailtoURL(compose.Compose(site.Email, msg))

	if isHTMX(c) {
		c.Header("HX-Redirect", link)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusSeeOther, link)
}

func (s *Server) handleMailtoPreview(c *gin.Context) {
	msg, err := bindMessage(c.ShouldBindQuery)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	composed := compose.Compose(s.page.Load().Site.Email, msg)
	c.JSON(http.StatusOK, gin.H{
		"to":      composed.To,
		"subject": composed.Subject,
		"body":    composed.Body,
		"mailto":  compose.MailtoURL(composed),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.Error("loading visit stats", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleExport(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=visit-stats.json")
	s.handleStats(c)
}

func (s *Server) handleCleanup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	n, err := s.store.Cleanup(ctx, s.opts.Retention)
	if err != nil {
		s.log.Error("visit cleanup", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	s.log.Info("visit cleanup", "removed", n)
	c.JSON(http.StatusOK, gin.H{"removed": n})
}
