// Package tables holds the hand-maintained exception data consulted when the
// country-codes reference table has no usable answer: disputed territories,
// supranational bodies, UK constituent countries and emoji names that differ
// from every reference name column.
//
// All keys are lowercase. Callers lowercase their query before lookup.
package tables
