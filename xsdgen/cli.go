package xsdgen

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CognitoIQ/go-xsd/internal/commandline"
)

// NewCommand returns the xsdgen command. Options already applied to
// cfg are kept unless overridden by a flag. The arguments are the
// same as those passed to the xsdgen command.
func NewCommand(cfg *Config) *cobra.Command {
	var (
		output    string
		namespace string
		prefix    string
		target    string
		pkg       string
		lenient   bool
		fetch     bool
		verbose   int
		replace   commandline.ReplaceRuleList
		reserved  commandline.Strings
	)
	cmd := &cobra.Command{
		Use:   "xsdgen [flags] file.xsd ...",
		Short: "Generate type definitions from XML schema",
		Long: "xsdgen reads XML schema documents and writes a type definition, with\n" +
			"serialization annotations, for every type they declare.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := ParseTarget(target)
			if !ok {
				return fmt.Errorf("unknown target %q; must be rust or go", target)
			}
			cfg.Option(OutputTarget(t), Lenient(lenient))
			if namespace != "" {
				cfg.Option(Namespace(namespace))
			}
			if prefix != "" {
				cfg.Option(Prefix(prefix))
			}
			if pkg != "" {
				cfg.Option(PackageName(pkg))
			}
			if len(reserved) > 0 {
				cfg.Option(Reserved(reserved...))
			}
			if len(replace) > 0 {
				cfg.Option(replaceRules(append(cfg.replace, replace...)))
			}
			if verbose > 0 {
				cfg.Option(LogLevel(verbose))
			}
			if fetch && cfg.loader == nil {
				cfg.Option(ImportLoader(&Loader{Logger: cfg.logger}))
			}

			out, err := cfg.GenSource(args...)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			return os.WriteFile(output, out, 0666)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "name of the output file (default stdout)")
	flags.StringVar(&namespace, "namespace", "", "namespace URI for serialization annotations (default the target namespace)")
	flags.StringVar(&prefix, "prefix", "", "namespace prefix for serialization annotations")
	flags.StringVarP(&target, "target", "t", Rust.String(), "output language, rust or go")
	flags.StringVar(&pkg, "pkg", "", "name of the generated Go package")
	flags.BoolVar(&lenient, "lenient", false, "warn about unsupported constructs instead of failing")
	flags.BoolVar(&fetch, "fetch", true, "fetch imported and included schema")
	flags.CountVarP(&verbose, "verbose", "v", "log more details; may be repeated")
	flags.VarP(&replace, "replace", "r", "replacement rule 'regex -> repl' for type names (can be used multiple times)")
	flags.Var(&reserved, "reserved", "identifiers to suffix with an underscore (default the target's keywords)")
	return cmd
}
