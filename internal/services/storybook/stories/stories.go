// Package stories holds the story registry of the documentation harness:
// every documented state of every component, the controls a reader may
// change through query parameters, and the render function of each story.
package stories

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/vtnds/ui"
)

// ErrInvalidArg reports a control value outside the control's domain.
var ErrInvalidArg = errors.New("invalid story argument")

const maxTextArg = 200

// ControlKind selects how a control value is validated and edited.
type ControlKind int

const (
	ControlText ControlKind = iota
	ControlSelect
	ControlBool
)

// String returns the control kind name used by the harness markup.
func (k ControlKind) String() string {
	switch k {
	case ControlSelect:
		return "select"
	case ControlBool:
		return "boolean"
	default:
		return "text"
	}
}

// Control is one editable story argument.
type Control struct {
	Name    string
	Kind    ControlKind
	Options []string
	Default string
}

func (c Control) validate(raw string) error {
	switch c.Kind {
	case ControlSelect:
		for _, option := range c.Options {
			if option == raw {
				return nil
			}
		}
		return fmt.Errorf("%s %q: %w", c.Name, raw, ErrInvalidArg)
	case ControlBool:
		if _, err := strconv.ParseBool(raw); err != nil {
			return fmt.Errorf("%s %q: %w", c.Name, raw, ErrInvalidArg)
		}
		return nil
	default:
		if len(raw) > maxTextArg {
			return fmt.Errorf("%s: longer than %d bytes: %w", c.Name, maxTextArg, ErrInvalidArg)
		}
		return nil
	}
}

// Args are resolved story arguments keyed by control name.
type Args map[string]string

// String returns the value of name.
func (a Args) String(name string) string {
	return a[name]
}

// Bool returns the value of name as a boolean; anything unparsable is false.
func (a Args) Bool(name string) bool {
	v, _ := strconv.ParseBool(a[name])
	return v
}

// With returns a copy of a with name set to value.
func (a Args) With(name, value string) Args {
	out := make(Args, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	out[name] = value
	return out
}

// Story is one documented state.
type Story struct {
	Slug     string
	Name     string
	Controls []Control
	// Args override control defaults for this story.
	Args Args
	// Toggle names the control kind (ui.KindCheckbox or ui.KindSwitch)
	// driven by the toggle endpoint; empty for static stories.
	Toggle string
	Render func(Args) templ.Component
}

// Control returns the control called name.
func (s Story) Control(name string) (Control, bool) {
	for _, c := range s.Controls {
		if c.Name == name {
			return c, true
		}
	}
	return Control{}, false
}

// Defaults returns the arguments a story renders with when nothing is set.
func (s Story) Defaults() Args {
	args := make(Args, len(s.Controls))
	for _, c := range s.Controls {
		args[c.Name] = c.Default
	}
	for k, v := range s.Args {
		args[k] = v
	}
	return args
}

// ParseArgs resolves the story arguments from query or form values.
// Parameters that name no control are ignored; an empty value keeps the
// default; a value outside the control's domain fails with ErrInvalidArg.
func (s Story) ParseArgs(values url.Values) (Args, error) {
	args := s.Defaults()
	for _, c := range s.Controls {
		raw, ok := values[c.Name]
		if !ok || len(raw) == 0 {
			continue
		}
		value := strings.TrimSpace(raw[len(raw)-1])
		if value == "" {
			continue
		}
		if err := c.validate(value); err != nil {
			return nil, err
		}
		args[c.Name] = value
	}
	return args, nil
}

// Query encodes the arguments that differ from the story defaults.
func (s Story) Query(args Args) url.Values {
	defaults := s.Defaults()
	values := url.Values{}
	for _, c := range s.Controls {
		if v, ok := args[c.Name]; ok && v != defaults[c.Name] {
			values.Set(c.Name, v)
		}
	}
	return values
}

// Component groups the stories of one component.
type Component struct {
	Slug string
	// TitleKey and SummaryKey are catalog keys.
	TitleKey   string
	SummaryKey string
	Stories    []Story
}

// Story returns the story called slug.
func (c Component) Story(slug string) (Story, bool) {
	for _, s := range c.Stories {
		if s.Slug == slug {
			return s, true
		}
	}
	return Story{}, false
}

// Registry is an ordered, validated set of components.
type Registry struct {
	components []Component
}

// New validates components and builds a registry.
func New(components ...Component) (*Registry, error) {
	seen := map[string]bool{}
	for _, c := range components {
		if strings.TrimSpace(c.Slug) == "" {
			return nil, errors.New("component slug is required")
		}
		if seen[c.Slug] {
			return nil, fmt.Errorf("duplicate component %q", c.Slug)
		}
		seen[c.Slug] = true
		if len(c.Stories) == 0 {
			return nil, fmt.Errorf("component %q has no stories", c.Slug)
		}
		stories := map[string]bool{}
		for _, s := range c.Stories {
			if err := validateStory(s); err != nil {
				return nil, fmt.Errorf("component %q: %w", c.Slug, err)
			}
			if stories[s.Slug] {
				return nil, fmt.Errorf("component %q: duplicate story %q", c.Slug, s.Slug)
			}
			stories[s.Slug] = true
		}
	}
	return &Registry{components: components}, nil
}

func validateStory(s Story) error {
	if strings.TrimSpace(s.Slug) == "" {
		return errors.New("story slug is required")
	}
	if s.Render == nil {
		return fmt.Errorf("story %q: render is required", s.Slug)
	}
	for _, c := range s.Controls {
		if c.Default == "" && c.Kind != ControlText {
			return fmt.Errorf("story %q: control %q needs a default", s.Slug, c.Name)
		}
		if c.Default != "" {
			if err := c.validate(c.Default); err != nil {
				return fmt.Errorf("story %q: %w", s.Slug, err)
			}
		}
	}
	for name, v := range s.Args {
		c, ok := s.Control(name)
		if !ok {
			continue
		}
		if err := c.validate(v); err != nil {
			return fmt.Errorf("story %q: %w", s.Slug, err)
		}
	}
	switch s.Toggle {
	case "":
	case ui.KindCheckbox, ui.KindSwitch:
		if c, ok := s.Control(argChecked); !ok || c.Kind != ControlBool {
			return fmt.Errorf("story %q: toggle needs a boolean %q control", s.Slug, argChecked)
		}
	default:
		return fmt.Errorf("story %q: unsupported toggle kind %q", s.Slug, s.Toggle)
	}
	return nil
}

// Components returns the registered components in order.
func (r *Registry) Components() []Component {
	if r == nil {
		return nil
	}
	out := make([]Component, len(r.components))
	copy(out, r.components)
	return out
}

// Component returns the component called slug.
func (r *Registry) Component(slug string) (Component, bool) {
	if r == nil {
		return Component{}, false
	}
	for _, c := range r.components {
		if c.Slug == slug {
			return c, true
		}
	}
	return Component{}, false
}

// Story returns one story of one component.
func (r *Registry) Story(component, story string) (Component, Story, bool) {
	c, ok := r.Component(component)
	if !ok {
		return Component{}, Story{}, false
	}
	s, ok := c.Story(story)
	if !ok {
		return Component{}, Story{}, false
	}
	return c, s, true
}

// Default returns the registry of every VTNDS component.
func Default() *Registry {
	r, err := New(
		introductionStories(),
		buttonStories(),
		checkboxStories(),
		inputStories(),
		switchStories(),
		inputGroupStories(),
	)
	if err != nil {
		panic(err)
	}
	return r
}

// ApplyToggle runs one user activation of the story's toggle control against
// args in controlled mode and returns the arguments of the next render.
// It reports false when the control ignored the activation.
func ApplyToggle(s Story, args Args) (Args, bool) {
	if s.Toggle == "" {
		return args, false
	}
	control := ui.NewToggleControl(s.Toggle)
	props := ui.ToggleProps{
		Controlled:    true,
		Checked:       args.Bool(argChecked),
		Indeterminate: args.Bool(argIndeterminate),
		Disabled:      args.Bool(argDisabled),
	}
	control.Mount(props)
	event, ok := control.Activate()
	if !ok {
		return args, false
	}
	props.Checked = event.Checked
	control.Update(props)
	state := control.State()
	next := args.With(argChecked, strconv.FormatBool(state.Checked))
	if _, has := s.Control(argIndeterminate); has {
		next = next.With(argIndeterminate, strconv.FormatBool(state.Indeterminate))
	}
	return next, true
}
