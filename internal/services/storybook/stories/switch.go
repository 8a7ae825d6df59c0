package stories

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/ui"
)

func switchControls() []Control {
	return []Control{
		selectControl(argSize, ui.ControlSizes()),
		boolControl(argChecked),
		boolControl(argDisabled),
		boolControl(argError),
		textControl(argLabel, "Toggle option"),
		textControl(argDescription, ""),
	}
}

func switchStory(slug, name string, args Args) Story {
	return Story{
		Slug:     slug,
		Name:     name,
		Controls: switchControls(),
		Args:     args,
		Toggle:   ui.KindSwitch,
		Render: func(a Args) templ.Component {
			return ui.Switch(ui.SwitchProps{
				Label:       a.String(argLabel),
				Description: a.String(argDescription),
				Size:        controlSize(a),
				Checked:     a.Bool(argChecked),
				Disabled:    a.Bool(argDisabled),
				Error:       a.Bool(argError),
			})
		},
	}
}

func switchStories() Component {
	return Component{
		Slug:       "switch",
		TitleKey:   "storybook.component.switch.title",
		SummaryKey: "storybook.component.switch.summary",
		Stories: []Story{
			switchStory("default", "Default", nil),
			switchStory("checked", "Checked", Args{argLabel: "Enabled", argChecked: "true"}),
			switchStory("with-description", "With description", Args{argLabel: "Airplane mode", argDescription: "Disable all wireless connections"}),
			switchStory("without-label", "Without label", Args{argLabel: ""}),
			switchStory("size-small", "Size small", Args{argSize: "sm", argLabel: "Small switch"}),
			switchStory("size-medium", "Size medium", Args{argLabel: "Medium switch"}),
			switchStory("size-large", "Size large", Args{argSize: "lg", argLabel: "Large switch"}),
			switchStory("disabled", "Disabled", Args{argLabel: "Disabled", argDisabled: "true"}),
			switchStory("disabled-checked", "Disabled checked", Args{argLabel: "Disabled checked", argDisabled: "true", argChecked: "true"}),
			switchStory("error", "Error", Args{argLabel: "Accept terms", argDescription: "This setting is required", argError: "true"}),
			staticStory("all-sizes", "All sizes", func() templ.Component {
				return column(
					ui.Switch(ui.SwitchProps{Size: ui.SizeSM, Label: "Small"}),
					ui.Switch(ui.SwitchProps{Size: ui.SizeMD, Label: "Medium (default)"}),
					ui.Switch(ui.SwitchProps{Size: ui.SizeLG, Label: "Large"}),
				)
			}),
			staticStory("states-matrix", "States matrix", func() templ.Component {
				pair := func(label string, props ui.SwitchProps) templ.Component {
					off, on := props, props
					off.Label = "Off"
					on.Label, on.Checked = "On", true
					return labelled(label, ui.Switch(off), ui.Switch(on))
				}
				return column(
					pair("Default", ui.SwitchProps{}),
					pair("Disabled", ui.SwitchProps{Disabled: true}),
					pair("Error", ui.SwitchProps{Error: true}),
				)
			}),
			staticStory("settings-example", "Settings example", func() templ.Component {
				return box("max-w-md flex flex-col gap-4 rounded-[var(--radius-lg)] border border-[var(--color-input)] p-6",
					span("text-lg font-semibold text-[var(--color-foreground)]", "Notification settings"),
					ui.Switch(ui.SwitchProps{Name: "email", Label: "Email notifications", Description: "Receive email updates about your account", Checked: true}),
					ui.Switch(ui.SwitchProps{Name: "push", Label: "Push notifications", Description: "Receive push notifications on your device", Checked: true}),
					ui.Switch(ui.SwitchProps{Name: "marketing", Label: "Marketing emails", Description: "Receive emails about new features and offers"}),
					ui.Switch(ui.SwitchProps{Name: "digest", Label: "Weekly digest", Description: "Get a weekly summary of your activity", Disabled: true}),
				)
			}),
		},
	}
}
