package pipeline

// Pipeline runs stages in order over a shared context.
type Pipeline struct {
	stages []Processor
}

func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run feeds ctx through every stage. Stages run unconditionally: a failed
// read still flows into lifting, so one pass reports the findings of every
// stage together.
func (p *Pipeline) Run(ctx *PipelineContext) *PipelineContext {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
