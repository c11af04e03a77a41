// Package owl provides the OWL 2 built-in entity names the translator
// treats specially.
package owl

import "strings"

// Namespace is the OWL namespace.
const Namespace = "http://www.w3.org/2002/07/owl#"

// Prefix is the conventional prefix for Namespace.
const Prefix = "owl:"

// Built-in classes.
const (
	Thing   = Namespace + "Thing"
	Nothing = Namespace + "Nothing"
)

// Built-in properties.
const (
	TopObjectProperty    = Namespace + "topObjectProperty"
	BottomObjectProperty = Namespace + "bottomObjectProperty"
	TopDataProperty      = Namespace + "topDataProperty"
	BottomDataProperty   = Namespace + "bottomDataProperty"
)

// Built-in datatypes, abbreviated.
const (
	Real     = "owl:real"
	Rational = "owl:rational"
)

// Abbreviate rewrites a full OWL IRI into its "owl:" form.
func Abbreviate(name string) string {
	if strings.HasPrefix(name, Namespace) {
		return Prefix + strings.TrimPrefix(name, Namespace)
	}
	return name
}

// Expand rewrites an "owl:" prefixed name into its full IRI.
func Expand(name string) string {
	if strings.HasPrefix(name, Prefix) {
		return Namespace + strings.TrimPrefix(name, Prefix)
	}
	return name
}
