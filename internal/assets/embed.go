package assets

import _ "embed"

// Seed is the task list a new session starts with.
//
//go:embed seed.yaml
var Seed []byte
