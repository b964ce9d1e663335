// Command xsdparse prints the entities built from XML schema
// documents. It is useful for debugging the xsd package.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/CognitoIQ/go-xsd/xsd"
)

type logOutput struct{}

func (logOutput) Printf(format string, v ...interface{}) {
	logger.Warning(fmt.Sprintf(format, v...))
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func main() {
	if err := newCommand().Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		targetNS string
		lenient  bool
		deep     bool
	)
	cmd := &cobra.Command{
		Use:          "xsdparse [--ns xmlns] file.xsd ...",
		Short:        "Print the entities parsed from XML schema",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := make([][]byte, 0, len(args))
			for _, filename := range args {
				data, err := os.ReadFile(filename)
				if err != nil {
					return err
				}
				docs = append(docs, data)
			}
			p := xsd.Parser{Lenient: lenient, Logger: logOutput{}}
			schemas, err := p.Parse(docs...)
			if err != nil {
				return err
			}
			return printSchemas(cmd.OutOrStdout(), schemas, targetNS, deep)
		},
	}
	cmd.Flags().StringVar(&targetNS, "ns", "", "only print schema with this target namespace")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "warn about unsupported constructs instead of failing")
	cmd.Flags().BoolVar(&deep, "spew", false, "print every field of each entity")
	return cmd
}

func printSchemas(w io.Writer, schemas []*xsd.Schema, targetNS string, deep bool) error {
	for _, s := range schemas {
		if targetNS != "" && s.TargetNS != targetNS {
			continue
		}
		if _, err := fmt.Fprintf(w, "schema %q\n", s.TargetNS); err != nil {
			return err
		}
		for _, e := range s.Entities {
			var err error
			if deep {
				dumper.Fdump(w, e)
			} else {
				_, err = io.WriteString(w, xsd.Dump(e))
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
