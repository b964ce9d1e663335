package main

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/CognitoIQ/go-xsd/xsd"
	"github.com/CognitoIQ/go-xsd/xsdgen"
)

const (
	exitOK = iota
	exitMalformed
	exitUnsupported
	exitIO
)

// logOutput sends xsdgen progress messages to the process logger.
type logOutput struct{}

func (logOutput) Printf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if logger.IsVerbose() {
		logger.Verbose(msg)
		return
	}
	logger.Info(msg)
}

type warnOutput struct{}

func (warnOutput) Printf(format string, v ...interface{}) {
	logger.Warning(fmt.Sprintf(format, v...))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var cfg xsdgen.Config
	cfg.Option(xsdgen.DefaultOptions...)
	cfg.Option(xsdgen.LogOutput(logOutput{}), xsdgen.WarnOutput(warnOutput{}))

	cmd := xsdgen.NewCommand(&cfg)
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if n, _ := cmd.Flags().GetCount("verbose"); n > 0 {
			logger.SetLogLevel(logger.LogLevelVerbose)
		}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	if err := cmd.Execute(); err != nil {
		logger.Error(err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an error to the process exit status. Errors that are
// neither schema errors nor unsupported constructs are reported as
// I/O failures.
func exitCode(err error) int {
	var (
		malformed   *xsd.MalformedSchemaError
		unresolved  *xsd.UnresolvedReferenceError
		cyclic      *xsd.CyclicSubtypeError
		syntax      *xml.SyntaxError
		unsupported *xsd.UnsupportedConstructError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &unsupported):
		return exitUnsupported
	case errors.As(err, &malformed),
		errors.As(err, &unresolved),
		errors.As(err, &cyclic),
		errors.As(err, &syntax):
		return exitMalformed
	}
	return exitIO
}
