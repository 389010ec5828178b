package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRound(_ *RoundEvent) error               { return nil }
func (n *NoopRecorder) RecordSignal(_ *SignalEvent) error             { return nil }
func (n *NoopRecorder) RecordResolution(_ *ResolutionEvent) error     { return nil }
func (n *NoopRecorder) RecordFetchFailure(_ *FetchFailureEvent) error { return nil }
func (n *NoopRecorder) Close() error                                  { return nil }
