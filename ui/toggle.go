package ui

// ToggleProps are the inputs a caller supplies to a Checkbox or Switch
// across renders.
type ToggleProps struct {
	// Controlled makes Checked authoritative; otherwise DefaultChecked seeds
	// the state at mount and activation owns it afterwards.
	Controlled     bool
	Checked        bool
	DefaultChecked bool
	// Indeterminate is honoured for checkboxes only.
	Indeterminate bool
	Disabled      bool
}

// ToggleState is the live state of a control.
type ToggleState struct {
	Checked       bool
	Indeterminate bool
	Disabled      bool
}

// ChangeEvent reports a user activation. Checked is the value the control
// requests; controlled callers decide whether to accept it.
type ChangeEvent struct {
	Kind    string
	Checked bool
}

// ToggleControl models the live behaviour of a checkbox or switch: what the
// browser does on activation and what the indeterminate sync applies after
// each render.
type ToggleControl struct {
	kind    string
	props   ToggleProps
	state   ToggleState
	mounted bool
}

// NewToggleControl returns an unmounted control of kind, KindCheckbox or
// KindSwitch.
func NewToggleControl(kind string) *ToggleControl {
	return &ToggleControl{kind: kind}
}

// Kind returns the control kind.
func (t *ToggleControl) Kind() string {
	return t.kind
}

// Mount applies the initial props.
func (t *ToggleControl) Mount(props ToggleProps) {
	props.Indeterminate = props.Indeterminate && t.kind == KindCheckbox
	checked := props.DefaultChecked
	if props.Controlled {
		checked = props.Checked
	}
	t.props = props
	t.state = ToggleState{
		Checked:       checked,
		Indeterminate: props.Indeterminate,
		Disabled:      props.Disabled,
	}
	t.mounted = true
}

// Update applies props from a later render. Indeterminate is re-applied only
// when its prop value changed, so a user activation that cleared it is not
// undone by an unrelated re-render.
func (t *ToggleControl) Update(props ToggleProps) {
	if !t.mounted {
		t.Mount(props)
		return
	}
	props.Indeterminate = props.Indeterminate && t.kind == KindCheckbox
	if props.Controlled {
		t.state.Checked = props.Checked
	}
	if props.Indeterminate != t.props.Indeterminate {
		t.state.Indeterminate = props.Indeterminate
	}
	t.state.Disabled = props.Disabled
	t.props = props
}

// Activate simulates a click or Space press. A disabled control ignores it
// and reports no event. Otherwise indeterminate clears and the checked value
// flips; in controlled mode the flip is only requested through the event and
// the state follows the next Update.
func (t *ToggleControl) Activate() (ChangeEvent, bool) {
	if !t.mounted || t.state.Disabled {
		return ChangeEvent{}, false
	}
	requested := !t.state.Checked
	t.state.Indeterminate = false
	if !t.props.Controlled {
		t.state.Checked = requested
	}
	return ChangeEvent{Kind: t.kind, Checked: requested}, true
}

// State returns the live state.
func (t *ToggleControl) State() ToggleState {
	return t.state
}

// AggregateState derives a parent "select all" checkbox from its children:
// checked when every child is checked, indeterminate when only some are.
func AggregateState(values []bool) (checked, indeterminate bool) {
	on := 0
	for _, v := range values {
		if v {
			on++
		}
	}
	switch {
	case len(values) == 0 || on == 0:
		return false, false
	case on == len(values):
		return true, false
	default:
		return false, true
	}
}
