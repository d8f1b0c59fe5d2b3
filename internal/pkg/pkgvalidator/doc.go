// Package pkgvalidator validates request payloads and single values.
//
// It wraps go-playground/validator, reports field names using their json tag,
// and registers the domain rules shared by feature modules.
package pkgvalidator
