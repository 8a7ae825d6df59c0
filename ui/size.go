package ui

import "github.com/louisbranch/vtnds/ui/variant"

// ControlSize is the size axis shared by Checkbox, Input and Switch.
type ControlSize int

// Control sizes. The zero value is SizeMD.
const (
	SizeMD ControlSize = iota
	SizeSM
	SizeLG
)

var controlSizeNames = map[ControlSize]string{
	SizeMD: "md",
	SizeSM: "sm",
	SizeLG: "lg",
}

func (s ControlSize) String() string {
	if name, ok := controlSizeNames[s]; ok {
		return name
	}
	return controlSizeNames[SizeMD]
}

// Valid reports whether s is one of the declared sizes.
func (s ControlSize) Valid() bool {
	_, ok := controlSizeNames[s]
	return ok
}

// ControlSizes lists the declared sizes in documentation order.
func ControlSizes() []ControlSize {
	return []ControlSize{SizeSM, SizeMD, SizeLG}
}

// ParseControlSize parses "sm", "md" or "lg". An empty string yields SizeMD.
func ParseControlSize(raw string) (ControlSize, error) {
	return variant.Parse("size", raw, SizeMD, ControlSizes()...)
}

// labelAxis and descriptionAxis are the text scales used next to
// Checkbox and Switch controls.
var labelAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"text-xs"},
		SizeMD: {"text-sm"},
		SizeLG: {"text-base"},
	},
}

var descriptionAxis = variant.Axis[ControlSize]{
	Name:    "size",
	Default: SizeMD,
	Values: map[ControlSize][]string{
		SizeSM: {"text-xs"},
		SizeMD: {"text-sm"},
		SizeLG: {"text-sm"},
	},
}
