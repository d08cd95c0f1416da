package main


import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sling/net"
)


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


var recvPort int


var recvCmd = &cobra.Command{
	Use: "recv",
	Short: "Receive a payload and print it on the standard output",
	Long: `Listen on the configured port, accept a single inbound connection
and print whatever arrived in a single read on the standard output.

The command blocks until a peer connects. If the peer closes the
connection without sending anything, the command prints nothing and exits
with status 0.`,
	Args: cobra.NoArgs,
	RunE: runRecv,
}

func init() {
	recvCmd.Flags().IntVar(&recvPort, "port", 0,
		"listening port, overrides the configuration")
}


func runRecv(cmd *cobra.Command, args []string) error {
	var channel net.Channel
	var data net.Bytes
	var err error

	channel = net.NewChannelWith(config.Port, &net.ChannelOptions{
		Log: log.WithContext("recv"),
	})

	data, err = channel.RecvPort(recvPort)

	if errors.Is(err, io.EOF) {
		// connection closed cleanly by peer, nothing arrived
		return nil
	}

	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)

	return err
}
