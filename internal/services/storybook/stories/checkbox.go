package stories

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/ui"
)

func checkboxControls() []Control {
	return []Control{
		selectControl(argSize, ui.ControlSizes()),
		boolControl(argChecked),
		boolControl(argIndeterminate),
		boolControl(argDisabled),
		boolControl(argError),
		textControl(argLabel, "Checkbox text"),
		textControl(argDescription, ""),
	}
}

func checkboxStory(slug, name string, args Args) Story {
	return Story{
		Slug:     slug,
		Name:     name,
		Controls: checkboxControls(),
		Args:     args,
		Toggle:   ui.KindCheckbox,
		Render: func(a Args) templ.Component {
			return ui.Checkbox(ui.CheckboxProps{
				Label:         a.String(argLabel),
				Description:   a.String(argDescription),
				Size:          controlSize(a),
				Checked:       a.Bool(argChecked),
				Indeterminate: a.Bool(argIndeterminate),
				Disabled:      a.Bool(argDisabled),
				Error:         a.Bool(argError),
			})
		},
	}
}

func checkboxStories() Component {
	return Component{
		Slug:       "checkbox",
		TitleKey:   "storybook.component.checkbox.title",
		SummaryKey: "storybook.component.checkbox.summary",
		Stories: []Story{
			checkboxStory("default", "Default", nil),
			checkboxStory("with-description", "With description", Args{argDescription: "This is a checkbox description."}),
			checkboxStory("no-label", "No label", Args{argLabel: ""}),
			checkboxStory("checked", "Checked", Args{argLabel: "Checked", argChecked: "true"}),
			checkboxStory("indeterminate", "Indeterminate", Args{argLabel: "Indeterminate", argIndeterminate: "true"}),
			checkboxStory("disabled", "Disabled", Args{argLabel: "Disabled", argDisabled: "true"}),
			checkboxStory("disabled-checked", "Disabled checked", Args{argLabel: "Disabled checked", argDisabled: "true", argChecked: "true"}),
			checkboxStory("error", "Error", Args{argLabel: "Accept terms", argDescription: "You must accept the terms to continue.", argError: "true"}),
			checkboxStory("small", "Small", Args{argSize: "sm", argLabel: "Small checkbox"}),
			checkboxStory("medium", "Medium", Args{argLabel: "Medium checkbox"}),
			checkboxStory("large", "Large", Args{argSize: "lg", argLabel: "Large checkbox"}),
			staticStory("all-sizes", "All sizes", func() templ.Component {
				return column(
					ui.Checkbox(ui.CheckboxProps{Size: ui.SizeSM, Label: "Small checkbox", Description: "16px checkbox"}),
					ui.Checkbox(ui.CheckboxProps{Size: ui.SizeMD, Label: "Medium checkbox", Description: "20px checkbox (default)"}),
					ui.Checkbox(ui.CheckboxProps{Size: ui.SizeLG, Label: "Large checkbox", Description: "24px checkbox"}),
				)
			}),
			staticStory("all-states", "All states", func() templ.Component {
				return column(
					ui.Checkbox(ui.CheckboxProps{Label: "Unchecked"}),
					ui.Checkbox(ui.CheckboxProps{Label: "Checked", Checked: true}),
					ui.Checkbox(ui.CheckboxProps{Label: "Indeterminate", Indeterminate: true}),
					ui.Checkbox(ui.CheckboxProps{Label: "Disabled", Disabled: true}),
					ui.Checkbox(ui.CheckboxProps{Label: "Disabled checked", Disabled: true, Checked: true}),
					ui.Checkbox(ui.CheckboxProps{Label: "Error", Error: true}),
				)
			}),
			selectAllStory(),
			staticStory("form-example", "Form example", func() templ.Component {
				return box("flex flex-col gap-4 p-4 border border-[var(--color-input)] rounded-[var(--radius-default)]",
					span("text-sm font-semibold text-[var(--color-foreground)]", "Notification preferences"),
					ui.Checkbox(ui.CheckboxProps{Name: "notify", Value: "email", Label: "Email notifications", Description: "Receive updates via email", Checked: true}),
					ui.Checkbox(ui.CheckboxProps{Name: "notify", Value: "push", Label: "Push notifications", Description: "Receive push notifications on your device"}),
					ui.Checkbox(ui.CheckboxProps{Name: "notify", Value: "sms", Label: "SMS notifications", Description: "Receive text message alerts", Disabled: true}),
				)
			}),
		},
	}
}

var selectAllItems = []string{"alpha", "bravo", "charlie"}

// selectAllStory derives a parent checkbox from its children, which is what
// the indeterminate state exists for.
func selectAllStory() Story {
	controls := make([]Control, 0, len(selectAllItems))
	for _, item := range selectAllItems {
		controls = append(controls, boolControl(item))
	}
	return Story{
		Slug:     "select-all",
		Name:     "Select all",
		Controls: controls,
		Args:     Args{selectAllItems[0]: "true"},
		Render: func(a Args) templ.Component {
			values := make([]bool, len(selectAllItems))
			children := make([]templ.Component, 0, len(selectAllItems))
			for i, item := range selectAllItems {
				values[i] = a.Bool(item)
				children = append(children, ui.Checkbox(ui.CheckboxProps{
					Name:    "items",
					Value:   item,
					Label:   item,
					Checked: values[i],
				}))
			}
			checked, indeterminate := ui.AggregateState(values)
			parent := ui.Checkbox(ui.CheckboxProps{
				Label:         "Select all",
				Checked:       checked,
				Indeterminate: indeterminate,
			})
			return column(parent, box("flex flex-col gap-2 pl-6", children...))
		},
	}
}
