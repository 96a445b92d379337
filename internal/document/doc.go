// Package document loads and writes YAML and JSON documents as dot containers.
//
// Documents are always mapping-rooted. Loading keeps the key order of the file and yields an
// *dot.AutoDict, so loaded documents can be deep-merged with Update.
//
// # Formats
//
//   - yaml: ".yaml" and ".yml" files, written with 2-space indentation
//   - json: ".json" files, written indented
//   - dump: output only, a go-spew dump of the exported plain maps
package document
