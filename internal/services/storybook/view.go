package storybook

import (
	"github.com/louisbranch/vtnds/internal/platform/branding"
	"github.com/louisbranch/vtnds/internal/services/storybook/stories"
	"github.com/louisbranch/vtnds/internal/services/storybook/templates"
)

const (
	themeAsset   = "theme.css"
	harnessAsset = "harness.css"
)

func navGroups(registry *stories.Registry, loc templates.Localizer) []templates.NavGroup {
	components := registry.Components()
	groups := make([]templates.NavGroup, 0, len(components))
	for _, c := range components {
		items := make([]templates.NavItem, 0, len(c.Stories))
		for _, s := range c.Stories {
			items = append(items, templates.NavItem{Slug: s.Slug, Name: s.Name})
		}
		groups = append(groups, templates.NavGroup{
			Slug:    c.Slug,
			Title:   templates.T(loc, c.TitleKey),
			Stories: items,
		})
	}
	return groups
}

func indexEntries(registry *stories.Registry, loc templates.Localizer) []templates.IndexEntry {
	components := registry.Components()
	entries := make([]templates.IndexEntry, 0, len(components))
	for _, c := range components {
		entries = append(entries, templates.IndexEntry{
			Slug:       c.Slug,
			Title:      templates.T(loc, c.TitleKey),
			Summary:    templates.T(loc, c.SummaryKey),
			FirstStory: c.Stories[0].Slug,
			Stories:    len(c.Stories),
		})
	}
	return entries
}

func storyTitle(loc templates.Localizer, component stories.Component, story stories.Story) string {
	return templates.T(loc, component.TitleKey) + " / " + story.Name + " · " + branding.HarnessName
}

// storyView resolves everything a story page shows for args.
func storyView(loc templates.Localizer, component stories.Component, story stories.Story, args stories.Args) templates.StoryView {
	fields := make([]templates.ControlField, 0, len(story.Controls))
	for _, c := range story.Controls {
		fields = append(fields, templates.ControlField{
			Name:    c.Name,
			Kind:    c.Kind.String(),
			Options: c.Options,
			Value:   args.String(c.Name),
		})
	}
	return templates.StoryView{
		ComponentTitle: templates.T(loc, component.TitleKey),
		Summary:        templates.T(loc, component.SummaryKey),
		StoryName:      story.Name,
		ComponentSlug:  component.Slug,
		StorySlug:      story.Slug,
		Controls:       fields,
		Args:           fields,
		Canvas:         story.Render(args),
		Interactive:    story.Toggle != "",
	}
}
