package fluentargs

import (
	"os"
)

// CommandLine is the default Builder used by Parse.
// Add separators to it before calling Parse to change the defaults.
var CommandLine = Configure()

// Parse parses the command-line arguments (os.Args[1:]) with CommandLine configuration
func Parse() ParsedArgs {
	return CommandLine.ParseArgs(os.Args[1:])
}
