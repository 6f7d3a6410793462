// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BuildStatus is the outcome of building one deck.
type BuildStatus string

const (
	BuildDone    BuildStatus = "built"
	BuildSkipped BuildStatus = "skipped"
	BuildFailed  BuildStatus = "failed"
)
