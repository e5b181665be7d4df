package api

import "embed"

// JSONSchema all payload schema, schema id is "$id" or file path without extension (ex: meeting/create)
//
//go:embed jsonschema
var JSONSchema embed.FS
