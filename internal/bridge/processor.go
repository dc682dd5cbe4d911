package bridge

import (
	"github.com/funvibe/syntree/internal/fuzzy"
	"github.com/funvibe/syntree/internal/pipeline"
)

// ReadProcessor scans the unit's dump text into a bracket forest.
type ReadProcessor struct{}

func (rp *ReadProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	trees, diags := fuzzy.Read(ctx.FilePath, ctx.SourceCode)
	ctx.Trees = trees
	ctx.Diags = append(ctx.Diags, diags...)
	return ctx
}

// LiftProcessor lifts the bracket forest into the typed program. It runs
// regardless of read diagnostics: whatever shape was recovered still lifts.
type LiftProcessor struct{}

func (lp *LiftProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	lifter := NewLifter(ctx.FilePath)
	ctx.AstRoot = lifter.LiftProgram(ctx.Trees)
	ctx.Diags = append(ctx.Diags, lifter.Diags()...)
	return ctx
}
