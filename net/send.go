package net


import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)


// ----------------------------------------------------------------------------


type SendOptions struct {
	// Remote host to send to.
	// Default: `DefaultHost`.
	//
	Host string

	// Maximum number of resolve-connect-write attempts.
	// Default: `DefaultSendAttempts`.
	//
	Attempts int

	// Fixed delay between two failed attempts.
	// Default: `DefaultSendDelay`.
	//
	Delay time.Duration

	// Context used when dialing the remote host.
	// Default: `context.Background()`.
	//
	Context context.Context
}


// Every send attempt to `Addr` failed.
// `Last` is the failure of the last attempt.
//
type SendExhaustedError struct {
	Addr string
	Attempts int
	Last error
}

func (this *SendExhaustedError) Error() string {
	return fmt.Sprintf("send to %s failed after %d attempts: %s",
		this.Addr, this.Attempts, this.Last.Error())
}

func (this *SendExhaustedError) Unwrap() error {
	return this.Last
}


// ----------------------------------------------------------------------------


func (this *tcpChannel) Send(msg Bytes, port int) error {
	return this.SendWith(msg, port, nil)
}

func (this *tcpChannel) SendText(text string, port int) error {
	return this.SendWith(BytesOfText(text), port, nil)
}

func (this *tcpChannel) SendWith(msg Bytes, port int, opts *SendOptions) error {
	var addr string
	var err error
	var i int

	if opts == nil {
		opts = &SendOptions{}
	}

	if opts.Host == "" {
		opts.Host = DefaultHost
	}

	if opts.Attempts < 1 {
		opts.Attempts = DefaultSendAttempts
	}

	if opts.Delay <= 0 {
		opts.Delay = DefaultSendDelay
	}

	if opts.Context == nil {
		opts.Context = context.Background()
	}

	if len(msg) == 0 {
		return nil
	}

	addr = net.JoinHostPort(opts.Host, strconv.Itoa(port))

	for i = 0; i < opts.Attempts; i++ {
		err = sendOnce(opts.Context, addr, msg)
		if err == nil {
			if this.history != nil {
				this.history.record(msg)
			}

			return nil
		}

		this.log.Warn("send attempt %d of %d to %s failed: %s",
			i + 1, opts.Attempts, addr, err.Error())

		if i < (opts.Attempts - 1) {
			time.Sleep(opts.Delay)
		}
	}

	this.log.Error("send to %s reached maximum attempts", addr)

	return &SendExhaustedError{
		Addr: addr,
		Attempts: opts.Attempts,
		Last: err,
	}
}

// One resolve-connect-write cycle.
// Each call resolves the destination and dials a fresh connection, there is
// no reuse across attempts.
//
func sendOnce(ctx context.Context, addr string, msg Bytes) error {
	var dialer net.Dialer
	var conn net.Conn
	var err error

	conn, err = dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	defer conn.Close()

	_, err = conn.Write(msg)

	return err
}
