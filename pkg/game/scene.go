package game

import (
	"github.com/decker502/factorysim/pkg/render"
)

// Scene represents one animated composition driven frame by frame.
//
// Init draws everything that never changes onto the static layer and may be
// called again when the static layer is rebuilt (e.g. after a resize).
// Update advances the scene by one frame, Draw renders the dynamic content.
type Scene interface {
	// Init draws the static content onto the provided surface.
	Init(static render.Surface)

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the dynamic content to the provided surface.
	Draw(target render.Surface)
}
