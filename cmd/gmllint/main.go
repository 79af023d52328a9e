// Command gmllint validates, inspects and queries GML 3.1.1 documents.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// Exit statuses
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// commandError is an error returned by a command once its arguments
// were accepted: the document was invalid or could not be processed.
type commandError struct{ err error }

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

// errViolations is returned when diagnostics were written.
var errViolations = errors.New("document has violations")

func failed(err error) error {
	if err == nil {
		return nil
	}
	return &commandError{err: err}
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	glog.Flush()

	var cmdErr *commandError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &cmdErr):
		if !errors.Is(err, errViolations) {
			fmt.Fprintln(stderr, "gmllint:", err)
		}
		return exitFailed
	default:
		fmt.Fprintln(stderr, "gmllint:", err)
		return exitUsage
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gmllint",
		Short:         "Validate, inspect and query GML 3.1.1 documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	// glog's flags, such as -v and -logtostderr
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.AddCommand(
		newValidateCmd(),
		newInspectCmd(),
		newQueryCmd(),
		newIDsCmd(),
	)
	return root
}

func openFile(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}
