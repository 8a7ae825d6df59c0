package stories

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/ui"
)

const (
	argType         = "type"
	argValue        = "value"
	argPlaceholder  = "placeholder"
	argHelperText   = "helperText"
	argErrorMessage = "errorMessage"
)

var inputTypes = []string{"text", "email", "password", "number", "tel", "url", "search", "file"}

func inputControls() []Control {
	return []Control{
		selectControl(argSize, ui.ControlSizes()),
		{Name: argType, Kind: ControlSelect, Options: inputTypes, Default: "text"},
		boolControl(argDisabled),
		boolControl(argError),
		textControl(argLabel, ""),
		textControl(argPlaceholder, "Placeholder"),
		textControl(argValue, ""),
		textControl(argHelperText, ""),
		textControl(argErrorMessage, ""),
	}
}

func inputStory(slug, name string, args Args) Story {
	return Story{
		Slug:     slug,
		Name:     name,
		Controls: inputControls(),
		Args:     args,
		Render: func(a Args) templ.Component {
			return ui.Input(ui.InputProps{
				Type:         a.String(argType),
				Label:        a.String(argLabel),
				Placeholder:  a.String(argPlaceholder),
				Value:        a.String(argValue),
				HelperText:   a.String(argHelperText),
				ErrorMessage: a.String(argErrorMessage),
				Size:         controlSize(a),
				Disabled:     a.Bool(argDisabled),
				Error:        a.Bool(argError),
			})
		},
	}
}

func inputStories() Component {
	return Component{
		Slug:       "input",
		TitleKey:   "storybook.component.input.title",
		SummaryKey: "storybook.component.input.summary",
		Stories: []Story{
			inputStory("default", "Default", nil),
			inputStory("with-label", "With label", Args{argLabel: "Email", argPlaceholder: "you@example.com"}),
			inputStory("with-helper-text", "With helper text", Args{argLabel: "Email", argPlaceholder: "you@example.com", argHelperText: "We'll never share your email with anyone."}),
			inputStory("password", "Password", Args{argLabel: "Password", argType: "password", argPlaceholder: "Enter password"}),
			inputStory("email", "Email", Args{argLabel: "Email", argType: "email", argPlaceholder: "you@example.com"}),
			inputStory("number", "Number", Args{argLabel: "Quantity", argType: "number", argPlaceholder: "0"}),
			inputStory("file", "File", Args{argLabel: "Upload document", argType: "file", argPlaceholder: ""}),
			inputStory("filled", "Filled", Args{argLabel: "Name", argValue: "John Doe"}),
			inputStory("disabled", "Disabled", Args{argLabel: "Email", argPlaceholder: "you@example.com", argDisabled: "true"}),
			inputStory("disabled-with-value", "Disabled with value", Args{argLabel: "Email", argValue: "john@example.com", argDisabled: "true"}),
			inputStory("error", "Error", Args{argLabel: "Email", argPlaceholder: "you@example.com", argError: "true", argErrorMessage: "Please enter a valid email address"}),
			inputStory("error-with-value", "Error with value", Args{argLabel: "Password", argType: "password", argValue: "123", argError: "true", argErrorMessage: "Password must be at least 8 characters"}),
			inputStory("small", "Small", Args{argSize: "sm", argLabel: "Small input"}),
			inputStory("medium", "Medium", Args{argLabel: "Medium input"}),
			inputStory("large", "Large", Args{argSize: "lg", argLabel: "Large input"}),
			staticStory("all-sizes", "All sizes", func() templ.Component {
				return column(
					ui.Input(ui.InputProps{Size: ui.SizeSM, Label: "Small", Placeholder: "24px height"}),
					ui.Input(ui.InputProps{Size: ui.SizeMD, Label: "Medium (default)", Placeholder: "28px height"}),
					ui.Input(ui.InputProps{Size: ui.SizeLG, Label: "Large", Placeholder: "32px height"}),
				)
			}),
			staticStory("all-states", "All states", func() templ.Component {
				return column(
					ui.Input(ui.InputProps{Label: "Default", Placeholder: "Placeholder"}),
					ui.Input(ui.InputProps{Label: "Filled", Value: "John Doe"}),
					ui.Input(ui.InputProps{Label: "Disabled", Placeholder: "Placeholder", Disabled: true}),
					ui.Input(ui.InputProps{Label: "Error", Placeholder: "Placeholder", Error: true, ErrorMessage: "This field is required"}),
				)
			}),
			staticStory("form-example", "Form example", func() templ.Component {
				return box("flex flex-col gap-4 p-4 border border-[var(--color-input)] rounded-[var(--radius-default)]",
					span("text-sm font-semibold text-[var(--color-foreground)]", "Contact information"),
					ui.Input(ui.InputProps{Name: "name", Label: "Full name", Placeholder: "John Doe"}),
					ui.Input(ui.InputProps{Name: "email", Type: "email", Label: "Email", Placeholder: "john@example.com"}),
					ui.Input(ui.InputProps{Name: "phone", Type: "tel", Label: "Phone", Placeholder: "+1 (555) 000-0000", HelperText: "Include country code"}),
					ui.Input(ui.InputProps{Name: "website", Type: "url", Label: "Website", Placeholder: "https://example.com", Error: true, ErrorMessage: "Please enter a valid URL"}),
				)
			}),
		},
	}
}
