package data

import (
	"embed"
)

// Fixtures holds the default seed data read by the fixtures import command
//
//go:embed fixtures/*.json
var Fixtures embed.FS

// FixturesDir is the directory of the seed files inside Fixtures
const FixturesDir = "fixtures"
