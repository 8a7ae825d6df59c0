package storybook

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/internal/platform/branding"
	"github.com/louisbranch/vtnds/internal/platform/timeouts"
	"github.com/louisbranch/vtnds/internal/services/storybook/static"
	"github.com/louisbranch/vtnds/internal/services/storybook/templates"
	"github.com/louisbranch/vtnds/tokens"
	"github.com/louisbranch/vtnds/ui"
)

// ExportResult reports what a static export wrote.
type ExportResult struct {
	Pages  int
	Assets int
}

// Export writes the harness as static files under dir: index.html,
// stories/<component>/<story>.html and static/. Every story renders with its
// default arguments in locale (empty selects the base locale).
func Export(ctx context.Context, dir string, cfg Config, locale string) (ExportResult, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ExportResult{}, fmt.Errorf("export directory is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Export)
	defer cancel()

	cfg = cfg.withDefaults()
	lang := cfg.Catalog.Match(locale)
	loc := cfg.Catalog.Printer(lang)
	nav := navGroups(cfg.Registry, loc)

	var result ExportResult
	base := templates.PageContext{
		Lang:    lang,
		Theme:   cfg.DefaultTheme,
		AppName: branding.AppName,
		Version: tokens.Version,
		Loc:     loc,
		Nav:     nav,
		Static:  true,
	}

	index := base
	index.Title = branding.HarnessName
	index.Links = exportLinks("")
	if err := writePage(ctx, filepath.Join(dir, "index.html"),
		templates.Layout(index, templates.Index(index, indexEntries(cfg.Registry, loc)))); err != nil {
		return result, err
	}
	result.Pages++

	for _, component := range cfg.Registry.Components() {
		for _, story := range component.Stories {
			if err := ctx.Err(); err != nil {
				return result, fmt.Errorf("export interrupted: %w", err)
			}
			page := base
			page.Links = exportLinks("../../")
			page.ActiveComponent, page.ActiveStory = component.Slug, story.Slug
			page.Title = storyTitle(loc, component, story)
			view := storyView(loc, component, story, story.Defaults())
			target := filepath.Join(dir, "stories", component.Slug, story.Slug+".html")
			if err := writePage(ctx, target, templates.Layout(page, templates.Story(page, view))); err != nil {
				return result, err
			}
			result.Pages++
		}
	}

	assets, err := exportAssets()
	if err != nil {
		return result, err
	}
	for name, content := range assets {
		if err := writeFile(filepath.Join(dir, "static", name), content); err != nil {
			return result, err
		}
		result.Assets++
	}
	return result, nil
}

// exportLinks builds relative links from a page prefix levels deep.
func exportLinks(prefix string) templates.Links {
	return templates.Links{
		Index: prefix + "index.html",
		Story: func(component, story string) string {
			return prefix + path.Join("stories", component, story+".html")
		},
		Asset: func(name string) string {
			return prefix + path.Join("static", name)
		},
	}
}

func exportAssets() (map[string][]byte, error) {
	assets := map[string][]byte{themeAsset: []byte(tokens.ThemeCSS())}
	names, err := fs.Glob(static.FS, "*.css")
	if err != nil {
		return nil, fmt.Errorf("list static assets: %w", err)
	}
	for _, name := range names {
		data, err := fs.ReadFile(static.FS, name)
		if err != nil {
			return nil, fmt.Errorf("read static asset %s: %w", name, err)
		}
		assets[name] = data
	}
	if _, ok := assets[harnessAsset]; !ok {
		return nil, fmt.Errorf("static asset %s is missing", harnessAsset)
	}
	return assets, nil
}

func writePage(ctx context.Context, target string, c templ.Component) error {
	var buf strings.Builder
	if err := c.Render(ui.WithScope(ctx), &buf); err != nil {
		return fmt.Errorf("render %s: %w", target, err)
	}
	return writeFile(target, []byte(buf.String()))
}

func writeFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
