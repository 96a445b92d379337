// Package match finds existing keys that look like a mistyped one.
//
// Similarity is the normalized Levenshtein distance over runes, compared case-insensitively.
package match
