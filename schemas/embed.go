// Package schemas ships the JSON Schema documents that the engine's data
// assets are validated against at load time.
package schemas

import _ "embed"

// Taxonomy is the schema for the skill taxonomy asset.
//
//go:embed taxonomy.schema.json
var Taxonomy string

// Resources is the schema for the learning-resource table asset.
//
//go:embed resources.schema.json
var Resources string

// Prerequisites is the schema for the skill prerequisite table asset.
//
//go:embed prerequisites.schema.json
var Prerequisites string
