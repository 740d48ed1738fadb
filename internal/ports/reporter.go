package ports

// Reporter prints user-facing progress. It is not a logger.
type Reporter interface {
	Step(msg string)
	Done(msg string)
	Warn(msg string)
	Fail(msg string)
}

// NopReporter discards all progress messages.
type NopReporter struct{}

func (NopReporter) Step(string) {}
func (NopReporter) Done(string) {}
func (NopReporter) Warn(string) {}
func (NopReporter) Fail(string) {}
