package stories

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/internal/platform/icons"
	"github.com/louisbranch/vtnds/ui"
)

const (
	argLoading   = "loading"
	argFullWidth = "fullWidth"
)

func buttonControls() []Control {
	return []Control{
		selectControl(argVariant, ui.ButtonVariants()),
		selectControl(argSize, ui.ButtonSizes()),
		boolControl(argDisabled),
		boolControl(argLoading),
		boolControl(argFullWidth),
		textControl(argLabel, "Button"),
	}
}

func buttonFromArgs(a Args, left, right templ.Component) templ.Component {
	variant, _ := ui.ParseButtonVariant(a.String(argVariant))
	size, _ := ui.ParseButtonSize(a.String(argSize))
	return ui.Button(ui.ButtonProps{
		Variant:   variant,
		Size:      size,
		Disabled:  a.Bool(argDisabled),
		Loading:   a.Bool(argLoading),
		FullWidth: a.Bool(argFullWidth),
		Label:     a.String(argLabel),
		LeftIcon:  left,
		RightIcon: right,
	})
}

func buttonStory(slug, name string, args Args, left, right templ.Component) Story {
	return Story{
		Slug:     slug,
		Name:     name,
		Controls: buttonControls(),
		Args:     args,
		Render: func(a Args) templ.Component {
			return buttonFromArgs(a, left, right)
		},
	}
}

func iconButton(size ui.ButtonSize, variant ui.ButtonVariant, icon icons.ID, label string) templ.Component {
	class := "h-4 w-4"
	if size == ui.ButtonSizeIconLG {
		class = "h-5 w-5"
	}
	return ui.Button(ui.ButtonProps{
		Variant:  variant,
		Size:     size,
		Children: icons.Lucide(icon, class),
		Attrs:    templ.Attributes{"aria-label": label},
	})
}

func iconOnlyStory(slug, name string, size ui.ButtonSize, icon icons.ID, label string) Story {
	return Story{
		Slug: slug,
		Name: name,
		Controls: []Control{
			selectControl(argVariant, ui.ButtonVariants()),
			boolControl(argDisabled),
		},
		Render: func(a Args) templ.Component {
			variant, _ := ui.ParseButtonVariant(a.String(argVariant))
			return ui.Button(ui.ButtonProps{
				Variant:  variant,
				Size:     size,
				Disabled: a.Bool(argDisabled),
				Children: icons.Lucide(icon, ""),
				Attrs:    templ.Attributes{"aria-label": label},
			})
		},
	}
}

func staticStory(slug, name string, render func() templ.Component) Story {
	return Story{
		Slug:   slug,
		Name:   name,
		Render: func(Args) templ.Component { return render() },
	}
}

func buttonStories() Component {
	return Component{
		Slug:       "button",
		TitleKey:   "storybook.component.button.title",
		SummaryKey: "storybook.component.button.summary",
		Stories: []Story{
			buttonStory("default", "Default", nil, nil, nil),
			buttonStory("secondary", "Secondary", Args{argVariant: "secondary", argLabel: "Secondary"}, nil, nil),
			buttonStory("destructive", "Destructive", Args{argVariant: "destructive", argLabel: "Delete"}, nil, nil),
			buttonStory("outline", "Outline", Args{argVariant: "outline", argLabel: "Outline"}, nil, nil),
			buttonStory("ghost", "Ghost", Args{argVariant: "ghost", argLabel: "Ghost"}, nil, nil),
			buttonStory("link", "Link", Args{argVariant: "link", argLabel: "Learn more"}, nil, nil),
			buttonStory("size-small", "Size small", Args{argSize: "sm", argLabel: "Small"}, nil, nil),
			buttonStory("size-medium", "Size medium", Args{argLabel: "Medium"}, nil, nil),
			buttonStory("size-large", "Size large", Args{argSize: "lg", argLabel: "Large"}, nil, nil),
			buttonStory("with-left-icon", "With left icon", Args{argLabel: "Add item"}, icons.Lucide(icons.Plus, ""), nil),
			buttonStory("with-right-icon", "With right icon", Args{argLabel: "Continue"}, nil, icons.Lucide(icons.ArrowRight, "")),
			buttonStory("with-both-icons", "With both icons", Args{argLabel: "Download"}, icons.Lucide(icons.Download, ""), icons.Lucide(icons.ArrowRight, "")),
			iconOnlyStory("icon-only-small", "Icon only small", ui.ButtonSizeIconSM, icons.Plus, "Add"),
			iconOnlyStory("icon-only-medium", "Icon only medium", ui.ButtonSizeIconMD, icons.Search, "Search"),
			iconOnlyStory("icon-only-large", "Icon only large", ui.ButtonSizeIconLG, icons.Mail, "Send email"),
			buttonStory("disabled", "Disabled", Args{argDisabled: "true", argLabel: "Disabled"}, nil, nil),
			buttonStory("loading", "Loading", Args{argLoading: "true", argLabel: "Saving..."}, nil, nil),
			buttonStory("full-width", "Full width", Args{argFullWidth: "true", argLabel: "Full width button"}, nil, nil),
			staticStory("all-variants", "All variants", allButtonVariants),
			staticStory("all-sizes", "All sizes", func() templ.Component {
				return row(
					ui.Button(ui.ButtonProps{Size: ui.ButtonSizeSM, Label: "Small"}),
					ui.Button(ui.ButtonProps{Size: ui.ButtonSizeMD, Label: "Medium"}),
					ui.Button(ui.ButtonProps{Size: ui.ButtonSizeLG, Label: "Large"}),
				)
			}),
			staticStory("all-icon-sizes", "All icon sizes", func() templ.Component {
				return row(
					iconButton(ui.ButtonSizeIconSM, ui.ButtonVariantDefault, icons.Plus, "Small icon"),
					iconButton(ui.ButtonSizeIconMD, ui.ButtonVariantDefault, icons.Plus, "Medium icon"),
					iconButton(ui.ButtonSizeIconLG, ui.ButtonVariantDefault, icons.Plus, "Large icon"),
				)
			}),
			staticStory("destructive-actions", "Destructive actions", func() templ.Component {
				return row(
					ui.Button(ui.ButtonProps{Variant: ui.ButtonVariantDestructive, Label: "Delete", LeftIcon: icons.Lucide(icons.Trash, "")}),
					iconButton(ui.ButtonSizeIconMD, ui.ButtonVariantDestructive, icons.Trash, "Delete"),
					ui.Button(ui.ButtonProps{
						Variant: ui.ButtonVariantOutline,
						Label:   "Cancel subscription",
						Class:   "text-red-600 border-red-300 hover:bg-red-50",
					}),
				)
			}),
			staticStory("states-matrix", "States matrix", buttonStatesMatrix),
		},
	}
}

func allButtonVariants() templ.Component {
	items := make([]templ.Component, 0, len(ui.ButtonVariants()))
	for _, v := range ui.ButtonVariants() {
		items = append(items, ui.Button(ui.ButtonProps{Variant: v, Label: v.String()}))
	}
	return row(items...)
}

func buttonStatesMatrix() templ.Component {
	variants := []ui.ButtonVariant{ui.ButtonVariantDefault, ui.ButtonVariantSecondary, ui.ButtonVariantOutline}
	line := func(label string, props ui.ButtonProps) templ.Component {
		items := make([]templ.Component, 0, len(variants))
		for _, v := range variants {
			p := props
			p.Variant = v
			items = append(items, ui.Button(p))
		}
		return labelled(label, items...)
	}
	return column(
		line("Default", ui.ButtonProps{Label: "Normal"}),
		line("Disabled", ui.ButtonProps{Label: "Disabled", Disabled: true}),
		line("Loading", ui.ButtonProps{Label: "Loading", Loading: true}),
	)
}
