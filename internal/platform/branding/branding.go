// Package branding holds the product names shown by the documentation harness.
package branding

// AppName is the design system name.
const AppName = "VTNDS"

// HarnessName is the title of the documentation harness.
const HarnessName = AppName + " Storybook"
