package order

import "context"

// MockSink is a test implementation of Sink.
type MockSink struct {
	SubmitFunc func(ctx context.Context, sub Submission) (*Confirmation, error)

	// SubmitCalls records every submission for assertions.
	SubmitCalls []Submission
}

// Submit delegates to the configured function or returns an empty confirmation.
func (m *MockSink) Submit(ctx context.Context, sub Submission) (*Confirmation, error) {
	m.SubmitCalls = append(m.SubmitCalls, sub)
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, sub)
	}
	return &Confirmation{}, nil
}
