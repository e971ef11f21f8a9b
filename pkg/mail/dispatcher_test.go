package mail

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio-backend/internal/domain"
)

// fakeTransport records attempts so chain order can be asserted.
type fakeTransport struct {
	name      string
	available bool
	receipt   *Receipt
	err       error
	calls     int
}

func (f *fakeTransport) Name() string    { return f.name }
func (f *fakeTransport) Available() bool { return f.available }

func (f *fakeTransport) Send(ctx context.Context, req *domain.ContactRequest) (*Receipt, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestDispatchFirstSuccessShortCircuits(t *testing.T) {
	primary := &fakeTransport{name: "smtp", available: true, receipt: &Receipt{MessageID: "q1"}}
	secondary := &fakeTransport{name: "gmail", available: true, receipt: &Receipt{MessageID: "q2"}}

	d := newDispatcher(testLogger(), primary, secondary)
	result := d.Dispatch(context.Background(), submission())

	assert.True(t, result.Delivered)
	assert.Empty(t, result.PreviewURL)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestDispatchFallsThroughOnFailure(t *testing.T) {
	primary := &fakeTransport{name: "smtp", available: true, err: fmt.Errorf("smtp auth: 535")}
	secondary := &fakeTransport{name: "gmail", available: true, receipt: &Receipt{MessageID: "q2"}}

	d := newDispatcher(testLogger(), primary, secondary)
	result := d.Dispatch(context.Background(), submission())

	assert.True(t, result.Delivered)
	// Exactly one attempt per transport, in order
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestDispatchSkipsUnavailableTransports(t *testing.T) {
	primary := &fakeTransport{name: "smtp", available: false}
	secondary := &fakeTransport{name: "gmail", available: true, receipt: &Receipt{MessageID: "q2"}}

	d := newDispatcher(testLogger(), primary, secondary)
	result := d.Dispatch(context.Background(), submission())

	assert.True(t, result.Delivered)
	assert.Equal(t, 0, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestDispatchPreviewURLSurfaces(t *testing.T) {
	preview := &fakeTransport{
		name:      "ethereal",
		available: true,
		receipt:   &Receipt{MessageID: "m1", PreviewURL: "https://ethereal.email/message/m1"},
	}

	d := newDispatcher(testLogger(), preview)
	result := d.Dispatch(context.Background(), submission())

	assert.True(t, result.Delivered)
	assert.Equal(t, "https://ethereal.email/message/m1", result.PreviewURL)
}

func TestDispatchExhaustedChainStillHandled(t *testing.T) {
	primary := &fakeTransport{name: "smtp", available: true, err: fmt.Errorf("dial: timeout")}
	secondary := &fakeTransport{name: "gmail", available: false}

	d := newDispatcher(testLogger(), primary, secondary)
	result := d.Dispatch(context.Background(), submission())

	// The chain is exhausted yet the submission counts as handled
	assert.False(t, result.Delivered)
	assert.Empty(t, result.PreviewURL)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}
