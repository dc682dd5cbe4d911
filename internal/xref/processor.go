package xref

import (
	"context"

	"github.com/funvibe/syntree/internal/diag"
	"github.com/funvibe/syntree/internal/pipeline"
	"github.com/funvibe/syntree/internal/token"
)

// IndexProcessor records the unit's identifier occurrences in the store and
// stamps the unit id on the context. Units without a program pass through.
type IndexProcessor struct {
	Store *Store
}

func (ip *IndexProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ip.Store == nil || ctx.AstRoot == nil {
		return ctx
	}
	id, err := ip.Store.IndexUnit(context.Background(), ctx.AstRoot)
	if err != nil {
		ctx.Diagnose(diag.Errorf(token.Position{File: ctx.FilePath}, "xref/index",
			"indexing failed: %v", err))
		return ctx
	}
	ctx.UnitID = id
	return ctx
}
