package highlight

import "errors"

// Configuration errors. These indicate a wiring mistake by the caller and are
// never returned for an empty pick.
var (
	ErrNoWorld       = errors.New("highlight: no world configured")
	ErrNoCamera      = errors.New("highlight: no camera configured")
	ErrNoViewport    = errors.New("highlight: no viewport bound")
	ErrNotSetup      = errors.New("highlight: highlighter is not set up")
	ErrGroupExists   = errors.New("highlight: a selection group with that name already exists")
	ErrGroupNotFound = errors.New("highlight: selection group does not exist")
)

// Resolution errors. The scene is inconsistent and picking cannot continue.
var (
	ErrItemNotFound = errors.New("highlight: item ID not found")
	ErrNoModel      = errors.New("highlight: fragment does not belong to a model")
)

// ErrDisposed is returned by every public entry point after Dispose.
var ErrDisposed = errors.New("highlight: highlighter has been disposed")
