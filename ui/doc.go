// Package ui implements the VTNDS primitive controls and the InputGroup
// compound component as templ components.
//
// Every component takes a props struct whose variant axes are typed
// enumerations; the zero value of each axis is its default. Each component
// also exposes the function that resolves its classes so callers can extend
// the styling instead of replacing it.
//
// Controls without a caller-supplied ID receive a generated one. Wrap a
// document render in WithScope to make generated ids deterministic:
//
//	ctx := ui.WithScope(r.Context())
//	_ = ui.Checkbox(ui.CheckboxProps{Label: "Select all", Indeterminate: true}).Render(ctx, w)
package ui
