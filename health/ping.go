package health

import "context"

// PingIndicator always reports UP. It is useful as a baseline contributor
// so that a group with no real indicators still aggregates to a defined
// status.
type PingIndicator struct{}

// NewPingIndicator creates a new ping indicator.
func NewPingIndicator() *PingIndicator {
	return &PingIndicator{}
}

// Check reports UP.
func (p *PingIndicator) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Down(ctx.Err())
	default:
	}
	return Up()
}
