// Package pattern compiles vanity prefix patterns into the flat tables a
// matcher consumes.
//
// A compilation expands every case-insensitive pattern into all of its
// upper/lower case spellings, unions the results into a set, drops every
// candidate that is not valid base58 and packs the survivors into a Table:
//
//	Prefixes: concatenated prefix bytes, no separators
//	Lengths:  byte length of each prefix, in the same order
//	Count:    number of prefixes
//	Suffix:   raw suffix bytes, empty for no suffix constraint
//
// Survivors are packed in sorted order, so compiling the same pattern set
// twice yields byte-identical tables.
//
// Compiler additionally writes the audit list of accepted prefixes and, for
// external kernels that embed the table in their source, rewrites the four
// table declarations of that source.
package pattern
