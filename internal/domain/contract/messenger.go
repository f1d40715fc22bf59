package contract

import "context"

// Messenger is the outbound messaging channel. Implementations own their
// connection lifecycle; the services only send and check readiness.
// This allows mocking in tests while keeping the real implementation simple.
type Messenger interface {
	// Ready reports whether the channel is currently able to deliver
	// messages. The schedulers skip a cycle when it returns false.
	Ready() bool

	// SendMessage delivers a text message to a channel. Any failure
	// (network, auth, rate limit) is returned as an error; callers apply
	// their own retry policy.
	SendMessage(ctx context.Context, channelID, text string) error

	// SendFile uploads a local file to a channel with an optional caption.
	SendFile(ctx context.Context, channelID, filePath, caption string) error
}
