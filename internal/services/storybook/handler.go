package storybook

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/internal/platform/branding"
	apperrors "github.com/louisbranch/vtnds/internal/platform/errors"
	"github.com/louisbranch/vtnds/internal/platform/httpx"
	"github.com/louisbranch/vtnds/internal/platform/i18n/catalog"
	"github.com/louisbranch/vtnds/internal/platform/otel"
	"github.com/louisbranch/vtnds/internal/platform/requestctx"
	"github.com/louisbranch/vtnds/internal/services/storybook/static"
	"github.com/louisbranch/vtnds/internal/services/storybook/stories"
	"github.com/louisbranch/vtnds/internal/services/storybook/templates"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/louisbranch/vtnds/ui"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	langCookie  = "vtnds_lang"
	themeCookie = "vtnds_theme"
	tracerName  = "github.com/louisbranch/vtnds/internal/services/storybook"
)

type handler struct {
	registry     *stories.Registry
	bundle       *catalog.Bundle
	defaultTheme string
	logger       *log.Logger
	tracer       trace.Tracer
}

func newHandler(cfg Config) *handler {
	return &handler{
		registry:     cfg.Registry,
		bundle:       cfg.Catalog,
		defaultTheme: cfg.DefaultTheme,
		logger:       cfg.Logger,
		tracer:       otel.Tracer(tracerName),
	}
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Title = branding.HarnessName
	body := templates.Index(page, indexEntries(h.registry, page.Loc))
	h.write(w, r, http.StatusOK, templates.Layout(page, body))
}

func (h *handler) story(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	component, story, ok := h.registry.Story(r.PathValue("component"), r.PathValue("story"))
	if !ok {
		h.fail(w, r, page, apperrors.EK(apperrors.KindNotFound, "storybook.error.not_found", "story not found"))
		return
	}
	ctx, span := h.startSpan(r.Context(), "storybook.story", component, story)
	defer span.End()
	r = r.WithContext(ctx)

	args, err := story.ParseArgs(r.URL.Query())
	if err != nil {
		recordError(span, err)
		h.fail(w, r, page, apperrors.Wrap(apperrors.KindInvalidInput, "storybook.error.invalid_arg", err))
		return
	}
	page.ActiveComponent, page.ActiveStory = component.Slug, story.Slug
	page.Title = storyTitle(page.Loc, component, story)
	view := storyView(page.Loc, component, story, args)
	h.write(w, r, http.StatusOK, templates.Layout(page, templates.Story(page, view)))
}

// toggle runs one activation of the story control against the posted state.
// HTMX callers get the re-rendered canvas; plain form posts are redirected
// to the story page carrying the new state.
func (h *handler) toggle(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	component, story, ok := h.registry.Story(r.PathValue("component"), r.PathValue("story"))
	if !ok || story.Toggle == "" {
		h.fail(w, r, page, apperrors.EK(apperrors.KindNotFound, "storybook.error.not_found", "interactive story not found"))
		return
	}
	ctx, span := h.startSpan(r.Context(), "storybook.toggle", component, story)
	defer span.End()
	r = r.WithContext(ctx)

	if err := r.ParseForm(); err != nil {
		recordError(span, err)
		h.fail(w, r, page, apperrors.Wrap(apperrors.KindInvalidInput, "storybook.error.invalid_arg", err))
		return
	}
	args, err := story.ParseArgs(r.PostForm)
	if err != nil {
		recordError(span, err)
		h.fail(w, r, page, apperrors.Wrap(apperrors.KindInvalidInput, "storybook.error.invalid_arg", err))
		return
	}
	next, changed := stories.ApplyToggle(story, args)
	span.SetAttributes(attribute.Bool("vtnds.toggle.changed", changed))

	if !httpx.IsHTMXRequest(r) {
		target := storyPath(component.Slug, story.Slug)
		if query := story.Query(next).Encode(); query != "" {
			target += "?" + query
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	view := storyView(page.Loc, component, story, next)
	h.write(w, r, http.StatusOK, templates.Canvas(page, view))
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	h.fail(w, r, page, apperrors.EK(apperrors.KindNotFound, "storybook.error.not_found", "page not found"))
}

// write renders c inside a fresh id scope.
func (h *handler) write(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	r = r.WithContext(ui.WithScope(r.Context()))
	if err := httpx.WriteComponent(w, r, status, c); err != nil {
		h.logger.Printf("storybook render failed path=%s request_id=%s err=%v", r.URL.Path, requestctx.RequestIDFromContext(r.Context()), err)
		httpx.WriteError(w, apperrors.EK(apperrors.KindUnknown, "storybook.error.internal", http.StatusText(http.StatusInternalServerError)))
	}
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, page templates.PageContext, err error) {
	status := apperrors.HTTPStatus(err)
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = "storybook.error.internal"
	}
	h.logger.Printf(
		"storybook request failed method=%s path=%s status=%d request_id=%s err=%v",
		r.Method, r.URL.Path, status, requestctx.RequestIDFromContext(r.Context()), err,
	)
	msg := templates.T(page.Loc, key)
	if !httpx.AcceptsHTML(r) {
		httpx.WriteError(w, apperrors.EK(apperrors.KindOf(err), key, msg))
		return
	}
	body := templates.ErrorPage(page, status, msg)
	// Swaps into the canvas take the bare fragment; anything else gets a page.
	if httpx.IsHTMXRequest(r) && httpx.HTMXTarget(r) == templates.CanvasID {
		h.write(w, r, status, body)
		return
	}
	page.Title = branding.HarnessName
	h.write(w, r, status, templates.Layout(page, body))
}

func (h *handler) startSpan(ctx context.Context, name string, component stories.Component, story stories.Story) (context.Context, trace.Span) {
	return h.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("vtnds.component", component.Slug),
		attribute.String("vtnds.story", story.Slug),
	))
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// page resolves the language and theme of a request, persisting explicit
// query choices in cookies.
func (h *handler) page(w http.ResponseWriter, r *http.Request) templates.PageContext {
	query := r.URL.Query()

	var langPrefs []string
	if lang := strings.TrimSpace(query.Get("lang")); lang != "" {
		if h.bundle.HasLocale(lang) {
			setCookie(w, langCookie, lang)
		}
		langPrefs = append(langPrefs, lang)
	}
	if c, err := r.Cookie(langCookie); err == nil {
		langPrefs = append(langPrefs, c.Value)
	}
	langPrefs = append(langPrefs, r.Header.Get("Accept-Language"))
	lang := h.bundle.Match(langPrefs...)

	theme := ""
	if requested := normalizeTheme(query.Get("theme"), ""); requested != "" {
		setCookie(w, themeCookie, requested)
		theme = requested
	}
	if theme == "" {
		if c, err := r.Cookie(themeCookie); err == nil {
			theme = normalizeTheme(c.Value, "")
		}
	}
	if theme == "" {
		theme = h.defaultTheme
	}

	loc := h.bundle.Printer(lang)
	return templates.PageContext{
		Lang:      lang,
		Theme:     theme,
		AppName:   branding.AppName,
		Version:   tokens.Version,
		Loc:       loc,
		Links:     serverLinks(r),
		Nav:       navGroups(h.registry, loc),
		Languages: h.bundle.Locales(),
		Nonce:     templ.GetNonce(r.Context()),
	}
}

func setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func normalizeTheme(value, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case templates.ThemeLight:
		return templates.ThemeLight
	case templates.ThemeDark:
		return templates.ThemeDark
	default:
		return fallback
	}
}

func storyPath(component, story string) string {
	return "/stories/" + url.PathEscape(component) + "/" + url.PathEscape(story)
}

func serverLinks(r *http.Request) templates.Links {
	return templates.Links{
		Index: "/",
		Story: storyPath,
		Asset: func(name string) string { return "/static/" + name },
		Toggle: func(component, story string) string {
			return storyPath(component, story) + "/toggle"
		},
		Switch: func(name, value string) string {
			q := r.URL.Query()
			q.Set(name, value)
			return r.URL.Path + "?" + q.Encode()
		},
	}
}

// staticHandler serves the token stylesheet and the embedded harness assets.
func staticHandler() http.Handler {
	files := http.FileServer(http.FS(static.FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == themeAsset {
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
			_, _ = io.WriteString(w, tokens.ThemeCSS())
			return
		}
		files.ServeHTTP(w, r)
	})
}
