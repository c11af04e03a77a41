// Package xsd provides XML Schema datatype and facet names used by OWL 2
// data ranges.
//
// Datatypes are referred to by their abbreviated form ("xsd:integer"), which
// is how ontology documents and diagnostics spell them. Abbreviate converts a
// full IRI into that form.
package xsd

import "strings"

// Namespace is the XML Schema datatype namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// Prefix is the conventional prefix for Namespace.
const Prefix = "xsd:"

// Real-valued datatypes.
const (
	Double  = "xsd:double"
	Float   = "xsd:float"
	Decimal = "xsd:decimal"
)

// Integer datatypes.
const (
	Integer            = "xsd:integer"
	Int                = "xsd:int"
	Long               = "xsd:long"
	Short              = "xsd:short"
	Byte               = "xsd:byte"
	NonNegativeInteger = "xsd:nonNegativeInteger"
	NonPositiveInteger = "xsd:nonPositiveInteger"
	PositiveInteger    = "xsd:positiveInteger"
	NegativeInteger    = "xsd:negativeInteger"
	UnsignedLong       = "xsd:unsignedLong"
	UnsignedInt        = "xsd:unsignedInt"
	UnsignedShort      = "xsd:unsignedShort"
	UnsignedByte       = "xsd:unsignedByte"
)

// Other datatypes the translator recognizes.
const (
	Boolean  = "xsd:boolean"
	String   = "xsd:string"
	Date     = "xsd:date"
	DateTime = "xsd:dateTime"
	AnyURI   = "xsd:anyURI"
)

// Facet names for datatype restrictions.
const (
	MinInclusive = "minInclusive"
	MinExclusive = "minExclusive"
	MaxInclusive = "maxInclusive"
	MaxExclusive = "maxExclusive"
)

// Abbreviate rewrites a full XML Schema IRI into its "xsd:" form. Names that
// are already abbreviated, or belong to another namespace, are returned
// unchanged.
func Abbreviate(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(strings.TrimPrefix(name, "<"), ">")
	if strings.HasPrefix(name, Namespace) {
		return Prefix + strings.TrimPrefix(name, Namespace)
	}
	return name
}

// FacetName strips an XML Schema namespace or prefix from a facet name.
func FacetName(name string) string {
	name = Abbreviate(name)
	return strings.TrimPrefix(name, Prefix)
}
