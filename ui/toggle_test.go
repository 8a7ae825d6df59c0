package ui

import "testing"

func TestToggleUncontrolled(t *testing.T) {
	t.Parallel()

	ctl := NewToggleControl(KindCheckbox)
	ctl.Mount(ToggleProps{})
	event, ok := ctl.Activate()
	if !ok || !event.Checked || event.Kind != KindCheckbox {
		t.Fatalf("activate = %+v, %v", event, ok)
	}
	if !ctl.State().Checked {
		t.Fatalf("uncontrolled state should follow activation")
	}
	ctl.Activate()
	if ctl.State().Checked {
		t.Fatalf("second activation should uncheck")
	}

	seeded := NewToggleControl(KindSwitch)
	seeded.Mount(ToggleProps{DefaultChecked: true})
	if !seeded.State().Checked {
		t.Fatalf("DefaultChecked should seed the state")
	}
	seeded.Update(ToggleProps{DefaultChecked: false})
	if !seeded.State().Checked {
		t.Fatalf("DefaultChecked only applies at mount")
	}
}

func TestToggleDisabledIgnoresActivation(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{KindCheckbox, KindSwitch} {
		for _, props := range []ToggleProps{
			{Disabled: true},
			{Disabled: true, DefaultChecked: true},
			{Disabled: true, Controlled: true, Checked: true},
			{Disabled: true, Indeterminate: true},
		} {
			ctl := NewToggleControl(kind)
			ctl.Mount(props)
			before := ctl.State()
			if _, ok := ctl.Activate(); ok {
				t.Fatalf("%s %+v: disabled control emitted a change", kind, props)
			}
			if ctl.State() != before {
				t.Fatalf("%s %+v: state changed while disabled", kind, props)
			}
		}
	}

	unmounted := NewToggleControl(KindCheckbox)
	if _, ok := unmounted.Activate(); ok {
		t.Fatalf("unmounted control emitted a change")
	}
}

func TestToggleIndeterminateLifecycle(t *testing.T) {
	t.Parallel()

	ctl := NewToggleControl(KindCheckbox)
	ctl.Mount(ToggleProps{Indeterminate: true})
	if got := ctl.State(); !got.Indeterminate || got.Checked {
		t.Fatalf("mount state = %+v", got)
	}

	event, ok := ctl.Activate()
	if !ok || !event.Checked {
		t.Fatalf("activate = %+v, %v", event, ok)
	}
	if got := ctl.State(); got.Indeterminate || !got.Checked {
		t.Fatalf("activation should clear indeterminate and check: %+v", got)
	}

	ctl.Update(ToggleProps{Indeterminate: true})
	if ctl.State().Indeterminate {
		t.Fatalf("unchanged prop should not re-apply indeterminate")
	}

	ctl.Update(ToggleProps{Indeterminate: false})
	ctl.Update(ToggleProps{Indeterminate: true})
	if !ctl.State().Indeterminate {
		t.Fatalf("changed prop should re-apply indeterminate")
	}
}

func TestToggleSwitchIgnoresIndeterminate(t *testing.T) {
	t.Parallel()

	ctl := NewToggleControl(KindSwitch)
	ctl.Mount(ToggleProps{Indeterminate: true})
	if ctl.State().Indeterminate {
		t.Fatalf("switch cannot be indeterminate")
	}
}

func TestToggleControlled(t *testing.T) {
	t.Parallel()

	ctl := NewToggleControl(KindSwitch)
	ctl.Mount(ToggleProps{Controlled: true, Checked: false})
	event, ok := ctl.Activate()
	if !ok || !event.Checked {
		t.Fatalf("activate = %+v, %v", event, ok)
	}
	if ctl.State().Checked {
		t.Fatalf("controlled state changed before the caller accepted it")
	}

	ctl.Update(ToggleProps{Controlled: true, Checked: true})
	if !ctl.State().Checked {
		t.Fatalf("controlled re-render with checked=true not reflected")
	}

	// A caller may move the value without any user interaction.
	ctl.Update(ToggleProps{Controlled: true, Checked: false})
	if ctl.State().Checked {
		t.Fatalf("controlled re-render with checked=false not reflected")
	}
}

func TestAggregateState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		values        []bool
		checked       bool
		indeterminate bool
	}{
		{nil, false, false},
		{[]bool{false, false}, false, false},
		{[]bool{true, false, true}, false, true},
		{[]bool{true, true}, true, false},
	}
	for _, tc := range cases {
		checked, indeterminate := AggregateState(tc.values)
		if checked != tc.checked || indeterminate != tc.indeterminate {
			t.Fatalf("AggregateState(%v) = %v, %v", tc.values, checked, indeterminate)
		}
	}
}
