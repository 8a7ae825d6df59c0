package ui

import "github.com/louisbranch/vtnds/tokens"

// tv builds an arbitrary-value utility that points at a design token, for
// example tv("hover:bg", tokens.ColorPrimaryHover).
func tv(utility, token string) string {
	return utility + "-[" + tokens.Var(token) + "]"
}

// tvAlpha is tv with an opacity modifier.
func tvAlpha(utility, token, alpha string) string {
	return tv(utility, token) + "/" + alpha
}
