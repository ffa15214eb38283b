// Package core provides the flag lookup pipeline: loading the two inputs,
// resolving flag names to ISO codes and enriching them with region and TLD.
//
// The package is independent of any transport. The CLI in cmd/cclookup and
// the lookup server in internal/web both drive it through
// internal/application.
//
// # Inputs
//
// [LoadReference] reads the country-codes table into a [Table]. Every row is
// kept as a [Record] keyed by header name, so extra columns and short rows
// are tolerated. [LoadCatalog] reads the emoji catalog into [EmojiEntry]
// values. Both readers pass through [NewSanitizingReader], which strips a
// UTF-8 BOM, replaces invalid bytes and normalizes to NFC.
//
// # Pipeline
//
// [Transformer.Transform] keeps the entries whose name contains "flag: ",
// then for each one:
//
//  1. [Resolver.Resolve] matches the country name against the short name,
//     the short name without its parenthesised suffix, the currency country
//     name and the CLDR display name, in that order, falling back to a
//     fixed exception table.
//  2. [Enricher.RegionFor] looks up region and sub-region by alpha-3.
//  3. [Enricher.TLDFor] looks up the TLD by alpha-2.
//
// Absent values are carried as null [pgtype.Text] and never abort the run.
//
// # Error Handling
//
// Fatal errors wrap one of the package sentinels and are mapped to coded
// operator messages with [MapError].
package core
