package stories

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/internal/platform/icons"
	"github.com/louisbranch/vtnds/ui"
)

const argFocused = "focused"

func groupControls() []Control {
	return []Control{
		boolControl(argDisabled),
		boolControl(argFocused),
		textControl(argPlaceholder, "Search..."),
	}
}

// groupStory renders a group whose container props come from the controls.
func groupStory(slug, name, width string, args Args, slots func(Args) []templ.Component) Story {
	return Story{
		Slug:     slug,
		Name:     name,
		Controls: groupControls(),
		Args:     args,
		Render: func(a Args) templ.Component {
			return box(width, ui.InputGroup(ui.InputGroupProps{
				Disabled: a.Bool(argDisabled),
				Focused:  a.Bool(argFocused),
			}, slots(a)...))
		},
	}
}

func groupText(text string) templ.Component {
	return ui.InputGroupText(ui.InputGroupTextProps{Text: text})
}

func addon(align ui.AddonAlign, children ...templ.Component) *ui.AddonSlot {
	return ui.InputGroupAddon(ui.AddonProps{Align: align}, children...)
}

func groupInput(a Args, inputType string) *ui.ControlSlot {
	return ui.InputGroupInput(ui.GroupControlProps{Type: inputType, Placeholder: a.String(argPlaceholder)})
}

func inputGroupStories() Component {
	return Component{
		Slug:       "inputgroup",
		TitleKey:   "storybook.component.inputgroup.title",
		SummaryKey: "storybook.component.inputgroup.summary",
		Stories: []Story{
			groupStory("search-icon-end", "Search with icon (end)", "w-[320px]", nil, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, ""), addon(ui.AlignInlineEnd, icons.Lucide(icons.Search, ""))}
			}),
			groupStory("search-icon-start", "Search with icon (start)", "w-[320px]", nil, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, ""), addon(ui.AlignInlineStart, icons.Lucide(icons.Search, ""))}
			}),
			groupStory("username", "Username input", "w-[320px]", Args{argPlaceholder: "Enter username"}, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, ""), addon(ui.AlignInlineStart, icons.Lucide(icons.AtSign, ""))}
			}),
			groupStory("email", "Email input", "w-[320px]", Args{argPlaceholder: "your.email"}, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, "email"), addon(ui.AlignInlineStart, icons.Lucide(icons.Mail, ""))}
			}),
			groupStory("currency-prefix", "Currency prefix", "w-[320px]", Args{argPlaceholder: "0.00"}, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, "number"), addon(ui.AlignInlineStart, groupText("$"))}
			}),
			groupStory("currency-suffix", "Currency suffix", "w-[320px]", Args{argPlaceholder: "0.00"}, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, "number"), addon(ui.AlignInlineEnd, groupText("USD"))}
			}),
			groupStory("currency-both", "Currency both sides", "w-[320px]", Args{argPlaceholder: "0.00"}, func(a Args) []templ.Component {
				return []templ.Component{
					groupInput(a, "number"),
					addon(ui.AlignInlineStart, groupText("$")),
					addon(ui.AlignInlineEnd, groupText("USD")),
				}
			}),
			groupStory("url", "URL input", "w-[400px]", Args{argPlaceholder: "yoursite"}, func(a Args) []templ.Component {
				return []templ.Component{
					ui.InputGroupInput(ui.GroupControlProps{Placeholder: a.String(argPlaceholder), Class: "pl-16 pr-12"}),
					addon(ui.AlignInlineStart, groupText("https://")),
					addon(ui.AlignInlineEnd, groupText(".com")),
				}
			}),
			groupStory("email-domain", "Email with domain", "w-[400px]", Args{argPlaceholder: "username"}, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, ""), addon(ui.AlignInlineEnd, groupText("@company.com"))}
			}),
			groupStory("search-button", "Search button", "w-[400px]", Args{argPlaceholder: "Enter search term..."}, func(a Args) []templ.Component {
				return []templ.Component{
					groupInput(a, ""),
					addon(ui.AlignInlineEnd, ui.InputGroupButton(ui.GroupButtonProps{Variant: ui.GroupButtonDefault, Label: "Search"})),
				}
			}),
			groupStory("url-with-button", "URL with go button", "w-[400px]", Args{argPlaceholder: "Enter URL..."}, func(a Args) []templ.Component {
				return []templ.Component{
					ui.InputGroupInput(ui.GroupControlProps{Placeholder: a.String(argPlaceholder), Class: "pl-16"}),
					addon(ui.AlignInlineStart, groupText("https://")),
					addon(ui.AlignInlineEnd, ui.InputGroupButton(ui.GroupButtonProps{Variant: ui.GroupButtonDefault, Label: "Go"})),
				}
			}),
			groupStory("icon-buttons", "Multiple icon buttons", "w-[400px]", Args{argPlaceholder: "Enter text..."}, func(a Args) []templ.Component {
				button := func(icon icons.ID, label string) templ.Component {
					return ui.InputGroupButton(ui.GroupButtonProps{
						Size:     ui.GroupButtonIconXS,
						Children: icons.Lucide(icon, "h-3.5 w-3.5"),
						Attrs:    templ.Attributes{"aria-label": label},
					})
				}
				return []templ.Component{
					groupInput(a, ""),
					addon(ui.AlignInlineEnd, button(icons.Copy, "Copy"), button(icons.Eye, "Reveal"), button(icons.X, "Clear")),
				}
			}),
			groupStory("header-above", "Header above input", "w-[320px]", Args{argPlaceholder: "John Doe"}, func(a Args) []templ.Component {
				return []templ.Component{addon(ui.AlignBlockStart, groupText("Full name")), groupInput(a, "")}
			}),
			groupStory("footer-below", "Footer below input", "w-[320px]", Args{argPlaceholder: "0.00"}, func(a Args) []templ.Component {
				return []templ.Component{groupInput(a, "number"), addon(ui.AlignBlockEnd, groupText("USD"))}
			}),
			groupStory("textarea", "Textarea with character count", "w-[400px]", Args{argPlaceholder: "Enter your message..."}, func(a Args) []templ.Component {
				return []templ.Component{
					ui.InputGroupTextarea(ui.GroupControlProps{Placeholder: a.String(argPlaceholder), Rows: 4}),
					addon(ui.AlignBlockEnd,
						groupText("0/280"),
						ui.InputGroupButton(ui.GroupButtonProps{Variant: ui.GroupButtonDefault, Size: ui.GroupButtonSM, Label: "Post", Class: "ml-auto"}),
					),
				}
			}),
			groupStory("code-editor", "Code editor style", "w-[500px]", Args{argPlaceholder: "// Enter code..."}, func(a Args) []templ.Component {
				return []templ.Component{
					addon(ui.AlignBlockStart, groupText("script.js")),
					ui.InputGroupTextarea(ui.GroupControlProps{Placeholder: a.String(argPlaceholder), Rows: 8, Class: "font-mono"}),
					addon(ui.AlignBlockEnd,
						groupText("Line 1, Column 1"),
						ui.InputGroupButton(ui.GroupButtonProps{Variant: ui.GroupButtonDefault, Size: ui.GroupButtonSM, Label: "Run", Class: "ml-auto"}),
					),
				}
			}),
			staticStory("complete-example", "Complete examples", completeGroupExample),
			staticStory("disabled-state", "Disabled state", func() templ.Component {
				return box("w-[320px] flex flex-col gap-4",
					ui.InputGroup(ui.InputGroupProps{Disabled: true},
						ui.InputGroupInput(ui.GroupControlProps{Placeholder: "Disabled input"}),
						addon(ui.AlignInlineEnd, icons.Lucide(icons.Search, "")),
					),
					ui.InputGroup(ui.InputGroupProps{},
						ui.InputGroupInput(ui.GroupControlProps{Placeholder: "With disabled button"}),
						addon(ui.AlignInlineEnd, ui.InputGroupButton(ui.GroupButtonProps{Label: "Search", Disabled: true})),
					),
				)
			}),
			staticStory("with-values", "With values", func() templ.Component {
				readOnly := templ.Attributes{"readonly": true}
				return box("w-[400px] flex flex-col gap-4",
					ui.InputGroup(ui.InputGroupProps{},
						ui.InputGroupInput(ui.GroupControlProps{Value: "search query", Attrs: readOnly}),
						addon(ui.AlignInlineStart, icons.Lucide(icons.Search, "")),
					),
					ui.InputGroup(ui.InputGroupProps{},
						ui.InputGroupInput(ui.GroupControlProps{Value: "99.99", Attrs: readOnly}),
						addon(ui.AlignInlineStart, groupText("$")),
						addon(ui.AlignInlineEnd, groupText("USD")),
					),
				)
			}),
		},
	}
}

func fieldLabel(text string) templ.Component {
	return span("block text-sm font-medium mb-2 text-[var(--color-foreground)]", text)
}

func completeGroupExample() templ.Component {
	return box("w-[500px] flex flex-col gap-6",
		box("",
			fieldLabel("Product search"),
			ui.InputGroup(ui.InputGroupProps{},
				ui.InputGroupInput(ui.GroupControlProps{Placeholder: "Search products..."}),
				addon(ui.AlignInlineStart, icons.Lucide(icons.Search, "")),
				addon(ui.AlignInlineEnd, ui.InputGroupButton(ui.GroupButtonProps{Variant: ui.GroupButtonDefault, Label: "Search"})),
			),
		),
		box("",
			fieldLabel("Price"),
			ui.InputGroup(ui.InputGroupProps{},
				ui.InputGroupInput(ui.GroupControlProps{Type: "number", Placeholder: "0.00"}),
				addon(ui.AlignInlineStart, groupText("$")),
				addon(ui.AlignInlineEnd, groupText("USD")),
			),
		),
		box("",
			fieldLabel("Company email"),
			ui.InputGroup(ui.InputGroupProps{},
				ui.InputGroupInput(ui.GroupControlProps{Placeholder: "username"}),
				addon(ui.AlignInlineStart, icons.Lucide(icons.AtSign, "")),
				addon(ui.AlignInlineEnd, groupText("@company.com")),
			),
		),
		box("",
			fieldLabel("Message"),
			ui.InputGroup(ui.InputGroupProps{},
				ui.InputGroupTextarea(ui.GroupControlProps{Placeholder: "Write your message...", Rows: 4}),
				addon(ui.AlignBlockEnd,
					groupText("0/500"),
					ui.InputGroupButton(ui.GroupButtonProps{
						Variant:  ui.GroupButtonDefault,
						Size:     ui.GroupButtonSM,
						Label:    "Send",
						Children: icons.Lucide(icons.Send, "h-3.5 w-3.5"),
						Class:    "ml-auto",
					}),
				),
			),
		),
	)
}
