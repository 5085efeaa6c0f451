package api

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/limbo/forgetmenot/pkg/entity"
)

const flashCookie = "fmn_flash"

var pageNames = []string{
	"home",
	"log_in",
	"sign_up",
	"profile",
	"password",
	"dashboard",
	"add_place_items",
	"remember_items",
	"forgot_items",
	"forgot_something_else",
}

// renderer keeps one parsed base+page template set per page.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer(fsys fs.FS) (*renderer, error) {
	rd := &renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(fsys, "templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		rd.pages[name] = tmpl
	}
	return rd, nil
}

type pageData struct {
	Title  string
	User   *entity.User
	Flash  []string
	Next   string
	Values map[string]string
	Errors map[string][]string

	Places []*entity.Place
	Place  *entity.Place
	Items  []*entity.Item
}

type fieldData struct {
	Name   string
	Label  string
	Type   string
	Value  string
	Errors []string
}

// Field prepares an input for the "field" template. Password inputs are never refilled.
func (p *pageData) Field(name, label, inputType string) fieldData {
	fd := fieldData{
		Name:   name,
		Label:  label,
		Type:   inputType,
		Errors: p.Errors[name],
	}
	if inputType != "password" {
		fd.Value = p.Values[name]
	}
	return fd
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data *pageData) {
	logger := GetLoggerFromCtx(r.Context())
	tmpl, ok := s.pages.pages[page]
	if !ok {
		logger.Error("unknown page template", slog.String("page", page))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if data.User == nil {
		data.User = GetUserFromContext(r)
	}
	data.Flash = append(data.Flash, s.popFlash(w, r)...)
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Error("failed to render template", slog.String("page", page), slog.String("error", err.Error()))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// setFlash stores a one-shot message shown by the next rendered page.
func (s *Server) setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) popFlash(w http.ResponseWriter, r *http.Request) []string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	return []string{message}
}

func (s *Server) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	s.setFlash(w, message)
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) startSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.jwtService.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cfg.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
