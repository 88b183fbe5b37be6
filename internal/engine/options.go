package engine

import (
	"github.com/dshills/listedit/internal/engine/list"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithValues sets the initial content of the list.
// The initial content is not undoable.
func WithValues(values ...int) Option {
	return func(e *Engine) {
		e.initValues = append([]int(nil), values...)
	}
}

// WithRenderOptions sets the text used by Render.
func WithRenderOptions(opts list.RenderOptions) Option {
	return func(e *Engine) {
		e.renderOpts = opts
	}
}
