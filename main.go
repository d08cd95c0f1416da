package main


import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sio "sling/io"
)


const ProgramName = "sling"
const ProgramVersion = "0.1.0"


//  - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - - -


var configPath string
var verbosity int

// Shared state set during PersistentPreRunE.
var config Config
var log sio.Logger


var rootCmd = &cobra.Command{
	Use: ProgramName,
	Short: "Push one payload to a remote host or receive one payload",
	Long: `Sling is a minimal point-to-point messaging tool over raw TCP.

The send command pushes a single payload to a remote host:port with a
bounded retry loop. The recv command accepts a single inbound connection
and prints whatever arrived in one read. There is no framing protocol:
one send pairs with one receive.`,
	Version: ProgramVersion,
	SilenceUsage: true,
	SilenceErrors: true,
	PersistentPreRunE: func (cmd *cobra.Command, args []string) error {
		var err error

		config, err = LoadConfig(configPath)
		if err != nil {
			return err
		}

		log = sio.NewStderrLogger(logLevel(verbosity))

		return nil
	},
}


func logLevel(verbosity int) int {
	var level int = sio.LOG_WARN + verbosity

	if level > sio.LOG_TRACE {
		level = sio.LOG_TRACE
	}

	return level
}


func main() {
	var err error = rootCmd.Execute()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", ProgramName, err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path of an optional TOML configuration file")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase the verbosity level by one, can be repeated")

	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(recvCmd)
}
