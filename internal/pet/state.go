// Package pet loads the virtual pet's on-disk data: the activity state written
// by external tooling and the scene composition (layers, character, sprite
// animations) consumed by the overlay frontend.
package pet

// State mirrors state.json. Optional fields stay pointers so absent values
// serialize as null rather than zero.
type State struct {
	State     string   `json:"state"`
	Detail    *string  `json:"detail"`
	Progress  *float64 `json:"progress"`
	UpdatedAt *string  `json:"updated_at"`
}
