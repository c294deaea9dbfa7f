package roadmap

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"career-roadmap/models/career"
	"career-roadmap/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	sessionPathKey   = "career_path"
	sessionMonthsKey = "duration_months"

	defaultMonths = 12
)

type Options struct {
	Catalog *services.Catalog
	// Sessions remembers the last request so the form can be prefilled.
	// Nil disables it.
	Sessions    sessions.Store
	SessionName string
	// MaxMonths caps the requested duration; 0 means no cap.
	MaxMonths int
	Log       zerolog.Logger
}

// Handler serves the roadmap pages and the JSON API.
type Handler struct {
	catalog     *services.Catalog
	sessions    sessions.Store
	sessionName string
	maxMonths   int
	log         zerolog.Logger
	pages       *template.Template
}

func NewHandler(opts Options) (*Handler, error) {
	if opts.Catalog == nil {
		return nil, errors.New("roadmap handler needs a catalog")
	}
	pages, err := template.New("pages").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	name := opts.SessionName
	if name == "" {
		name = "roadmap-session"
	}
	return &Handler{
		catalog:     opts.Catalog,
		sessions:    opts.Sessions,
		sessionName: name,
		maxMonths:   opts.MaxMonths,
		log:         opts.Log,
		pages:       pages,
	}, nil
}

// Limit builds the middleware that throttles roadmap generation. reject
// writes the response once a request is turned away.
type Limit func(reject http.Handler) func(http.Handler) http.Handler

// Register mounts the routes on r. A nil limit leaves generation unthrottled.
func (h *Handler) Register(r chi.Router, limit Limit) {
	page, api := noLimit, noLimit
	if limit != nil {
		page = limit(http.HandlerFunc(tooManyPages))
		api = limit(http.HandlerFunc(tooManyAPI))
	}
	r.Get("/", h.Index)
	r.With(page).Post("/generate", h.Generate)
	r.Route("/api", func(r chi.Router) {
		r.Get("/paths", h.ListPaths)
		r.With(api).Post("/roadmap", h.CreateRoadmap)
	})
}

const tooManyMessage = "Too many roadmap requests, try again shortly"

func noLimit(next http.Handler) http.Handler { return next }

func tooManyPages(w http.ResponseWriter, r *http.Request) {
	http.Error(w, tooManyMessage, http.StatusTooManyRequests)
}

type indexPage struct {
	Paths     []career.CareerPath
	Selected  string
	Months    string
	MaxMonths int
	Error     string
}

// Index renders the selection form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	key, months := h.recall(r)
	if months <= 0 {
		months = defaultMonths
	}
	h.renderIndex(w, http.StatusOK, key, strconv.Itoa(months), "")
}

// Generate builds a roadmap from the submitted form.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderIndex(w, http.StatusBadRequest, "", "", "The form could not be read.")
		return
	}

	key := strings.TrimSpace(r.PostFormValue("career_path"))
	if !h.catalog.Has(key) {
		h.log.Debug().Str("career_path", key).Msg("unknown career path, back to selection")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	rawMonths := r.PostFormValue("duration_months")
	months, err := ParseMonths(rawMonths)
	if err != nil {
		h.rejectForm(w, key, rawMonths, err)
		return
	}

	roadmap, _, err := h.catalog.Roadmap(key, months, h.maxMonths)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDuration) {
			h.rejectForm(w, key, rawMonths, err)
			return
		}
		h.log.Error().Err(err).Str("career_path", key).Msg("building roadmap")
		http.Error(w, "Failed to build roadmap", http.StatusInternalServerError)
		return
	}

	h.remember(w, r, key, months)
	h.log.Info().Str("career_path", key).Int("months", months).Msg("roadmap generated")
	h.render(w, http.StatusOK, "roadmap", roadmap)
}

// rejectForm shows the selection page again with the submitted values.
func (h *Handler) rejectForm(w http.ResponseWriter, key, rawMonths string, err error) {
	h.log.Debug().Err(err).Str("career_path", key).Str("duration_months", rawMonths).Msg("rejected roadmap request")
	h.renderIndex(w, http.StatusBadRequest, key, strings.TrimSpace(rawMonths), userMessage(err))
}

func (h *Handler) renderIndex(w http.ResponseWriter, status int, key, months, msg string) {
	h.render(w, status, "index", indexPage{
		Paths:     h.catalog.Paths(),
		Selected:  key,
		Months:    months,
		MaxMonths: h.maxMonths,
		Error:     msg,
	})
}

func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages.ExecuteTemplate(&buf, name, data); err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("rendering page")
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// remember stores the last successful selection in the session cookie.
func (h *Handler) remember(w http.ResponseWriter, r *http.Request, key string, months int) {
	if h.sessions == nil {
		return
	}
	session, err := h.sessions.Get(r, h.sessionName)
	if err != nil {
		h.log.Debug().Err(err).Msg("replacing unreadable session")
	}
	session.Values[sessionPathKey] = key
	session.Values[sessionMonthsKey] = months
	if err := session.Save(r, w); err != nil {
		h.log.Warn().Err(err).Msg("saving session")
	}
}

func (h *Handler) recall(r *http.Request) (string, int) {
	if h.sessions == nil {
		return "", 0
	}
	session, err := h.sessions.Get(r, h.sessionName)
	if err != nil {
		return "", 0
	}
	key, _ := session.Values[sessionPathKey].(string)
	months, _ := session.Values[sessionMonthsKey].(int)
	return key, months
}
