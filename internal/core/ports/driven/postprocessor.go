package driven

import "context"

// PostProcessor rewrites recovered text.
// PostProcessors are chained in a pipeline (sanitise, filter, truncate).
type PostProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process returns the rewritten text. Processors must be pure: the same
	// input always yields the same output.
	Process(ctx context.Context, text string) (string, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the text through all processors in order.
	Process(ctx context.Context, text string) (string, error)
}
