package main


import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sling/net"
)


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


var sendHost string
var sendPort int
var sendAttempts int
var sendDelayMs int


var sendCmd = &cobra.Command{
	Use: "send [message]",
	Short: "Send a payload to a remote host",
	Long: `Send a single payload to a remote host:port. The payload is the
message argument, or the standard input if no argument is given.

Each attempt resolves the host, opens a fresh connection and writes the
whole payload in one operation. Failed attempts are retried after a fixed
delay. When every attempt has failed the command exits with status 1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendHost, "host", "",
		"remote host, overrides the configuration")
	sendCmd.Flags().IntVar(&sendPort, "port", 0,
		"remote port, overrides the configuration")
	sendCmd.Flags().IntVar(&sendAttempts, "attempts", 0,
		"maximum number of attempts, overrides the configuration")
	sendCmd.Flags().IntVar(&sendDelayMs, "delay", 0,
		"milliseconds between two attempts, overrides the " +
		"configuration")
}


func runSend(cmd *cobra.Command, args []string) error {
	var opts net.SendOptions
	var channel net.Channel
	var message net.Bytes
	var data []byte
	var port int
	var err error

	if len(args) == 1 {
		message = net.BytesOfText(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}

		message = net.Bytes(data)
	}

	opts.Host = config.Host
	if sendHost != "" {
		opts.Host = sendHost
	}

	port = config.Port
	if sendPort != 0 {
		port = sendPort
	}

	opts.Attempts = config.Attempts
	if sendAttempts != 0 {
		opts.Attempts = sendAttempts
	}

	opts.Delay = config.Delay()
	if sendDelayMs != 0 {
		opts.Delay = time.Duration(sendDelayMs) * time.Millisecond
	}

	channel = net.NewChannelWith(config.Port, &net.ChannelOptions{
		Log: log.WithContext("send"),
	})

	return channel.SendWith(message, port, &opts)
}
