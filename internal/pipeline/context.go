package pipeline

import (
	"github.com/funvibe/syntree/internal/ast"
	"github.com/funvibe/syntree/internal/diag"
	"github.com/funvibe/syntree/internal/fuzzy"
)

// Processor is one pipeline stage. Stages live next to the feature they
// implement; this package only carries the data between them.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one unit of dump text through the stages: the raw
// source, the bracket forest the reader produced, the typed program the
// bridge lifted, and every diagnostic along the way.
type PipelineContext struct {
	FilePath   string
	SourceCode string
	Trees      []fuzzy.Tree
	AstRoot    *ast.Program
	Diags      diag.List
	UnitID     string // assigned when the unit is indexed
}

func NewPipelineContext(file, source string) *PipelineContext {
	return &PipelineContext{FilePath: file, SourceCode: source}
}

// Diagnose appends a finding.
func (ctx *PipelineContext) Diagnose(d diag.Diagnostic) {
	ctx.Diags = append(ctx.Diags, d)
}
