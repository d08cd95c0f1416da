package net


import (
	"time"

	sio "sling/io"
)


// ----------------------------------------------------------------------------


const DefaultHost = "localhost"

const DefaultPort = 10000

// Maximum number of bytes a single receive operation can return.
//
const MaxMessageSize = 65536

const DefaultSendAttempts = 10

const DefaultSendDelay = 1000 * time.Millisecond


// A Channel offers send and receive operations to exchange one payload at a
// time with a remote peer over raw TCP.
//
// A `Channel` is a configuration entity, not a live resource: every
// operation opens and tears down its own sockets and no state is retained
// between calls. Both operations are synchronous and block the calling
// goroutine for their full duration.
//
type Channel interface {
	// Send the given payload to `port` on the default host with the
	// default retry policy.
	// Equivalent to `SendWith(msg, port, nil)`.
	//
	Send(msg Bytes, port int) error

	// Send the given payload to the host and port described by `opts`
	// with a bounded retry loop.
	//
	// If `msg` is empty then return `nil` immediately without any
	// network operation and without consuming a retry attempt.
	// Otherwise attempt up to `opts.Attempts` times to resolve the
	// destination, open a fresh connection and write the whole payload
	// in a single operation, sleeping `opts.Delay` between two attempts.
	//
	// Return `nil` as soon as one attempt succeeds. If every attempt
	// fails, return a `*SendExhaustedError` wrapping the last failure.
	//
	SendWith(msg Bytes, port int, opts *SendOptions) error

	// Send the given text to `port` on the default host.
	// Equivalent to `Send(BytesOfText(text), port)`.
	//
	SendText(text string, port int) error

	// Receive one payload on the configured listening port.
	// Equivalent to `RecvPort(0)`.
	//
	Recv() (Bytes, error)

	// Receive one payload on the given `port`, or on the configured
	// listening port if `port` is outside of [1, 65535].
	//
	// Open a listening endpoint, accept exactly one connection, perform
	// exactly one read of at most `MaxMessageSize` bytes then tear
	// everything down.
	//
	// Return the received payload and `nil` on success. If the peer
	// closed the connection before any byte was delivered, return an
	// empty payload and `io.EOF`. On any other transport failure,
	// return the bytes read so far and the failure.
	//
	// There is no timeout: a call with no incoming connection blocks
	// indefinitely.
	//
	RecvPort(port int) (Bytes, error)

	// Receive one payload on the configured listening port and view it
	// as text.
	//
	RecvText() (string, error)

	// Receive one payload on the given `port` and view it as text.
	//
	RecvTextPort(port int) (string, error)

	// Return the listening port this `Channel` is configured with.
	//
	Port() int
}


type ChannelOptions struct {
	// Logger used for send attempt failures and configuration warnings.
	// Default: a stderr logger at warning level.
	//
	Log sio.Logger

	// If not `nil`, record every successfully sent or received payload.
	//
	History *History
}

// Return a new `Channel` listening on the given `port` when receiving.
// If `port` is outside of [1, 65535] then `DefaultPort` is used instead and
// a warning is emitted.
//
func NewChannel(port int) Channel {
	return NewChannelWith(port, nil)
}

func NewChannelWith(port int, opts *ChannelOptions) Channel {
	if opts == nil {
		opts = &ChannelOptions{}
	}

	if opts.Log == nil {
		opts.Log = sio.NewStderrLogger(sio.LOG_WARN)
	}

	return newTcpChannel(port, opts)
}


// ----------------------------------------------------------------------------


type tcpChannel struct {
	port int
	log sio.Logger
	history *History
}

func newTcpChannel(port int, opts *ChannelOptions) *tcpChannel {
	var this tcpChannel

	if validPort(port) == false {
		opts.Log.Warn("port must be in the range 1-65535, " +
			"using default %d", DefaultPort)
		port = DefaultPort
	}

	this.port = port
	this.log = opts.Log
	this.history = opts.History

	return &this
}

func (this *tcpChannel) Port() int {
	return this.port
}


func validPort(port int) bool {
	return (port >= 1) && (port <= 65535)
}
