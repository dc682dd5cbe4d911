package resolve

import (
	"log/slog"

	"github.com/funvibe/syntree/internal/pipeline"
)

// ResolveProcessor binds identifier uses in the lifted program. Units that
// failed to lift pass through untouched.
type ResolveProcessor struct {
	Log *slog.Logger
}

func (rp *ResolveProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot != nil {
		New(rp.Log).Resolve(ctx.AstRoot)
	}
	return ctx
}
