package xsdgen

import (
	"regexp"

	"github.com/CognitoIQ/go-xsd/internal/commandline"
	"github.com/CognitoIQ/go-xsd/internal/gen"
)

// A Target is a language that type definitions can be emitted in.
type Target int

const (
	// Rust structs and enums, annotated for the yaserde crate.
	Rust Target = iota
	// Go types, annotated with encoding/xml struct tags.
	Go
)

func (t Target) String() string {
	switch t {
	case Rust:
		return "rust"
	case Go:
		return "go"
	}
	return "unknown"
}

// ParseTarget returns the Target with the given name, as printed by
// its String method.
func ParseTarget(name string) (Target, bool) {
	switch name {
	case "rust", "rs":
		return Rust, true
	case "go", "golang":
		return Go, true
	}
	return -1, false
}

// placeholder is stamped into serialization annotations when no
// namespace is configured.
const placeholder = "unknown"

// A Config holds user-defined overrides that are used when emitting
// type definitions from the entities of a schema.
type Config struct {
	logger    Logger
	warnings  Logger
	loglevel  int
	target    Target
	namespace string
	prefix    string
	pkgname   string
	lenient   bool
	// nil selects the keywords of the target language
	reserved gen.DenyList
	// applied, in order, to every type name
	replace commandline.ReplaceRuleList
	loader  *Loader
}

func (cfg *Config) errorf(format string, v ...interface{}) {
	if w := cfg.warnLogger(); w != nil {
		w.Printf(format, v...)
	}
}

// warnLogger returns the Logger for warnings, which defaults to the
// LogOutput.
func (cfg *Config) warnLogger() Logger {
	if cfg.warnings != nil {
		return cfg.warnings
	}
	return cfg.logger
}

func (cfg *Config) logf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 0 {
		cfg.logger.Printf(format, v...)
	}
}
func (cfg *Config) debugf(format string, v ...interface{}) {
	if cfg.logger != nil && cfg.loglevel > 3 {
		cfg.logger.Printf(format, v...)
	}
}

// An Option is used to customize a Config.
type Option func(*Config) Option

// DefaultOptions are applied by the xsdgen command before its
// flags are read.
var DefaultOptions = []Option{
	OutputTarget(Rust),
	PackageName("ws"),
}

// Option applies opts in order. The returned Option restores the
// setting changed by the last of them.
func (cfg *Config) Option(opts ...Option) (previous Option) {
	for _, opt := range opts {
		previous = opt(cfg)
	}
	return previous
}

// A Logger receives warnings and progress messages. *log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// LogOutput sets the Logger for warnings and progress messages.
// Without one, nothing is logged.
func LogOutput(l Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.logger
		cfg.logger = l
		return LogOutput(prev)
	}
}

// WarnOutput sends warnings, such as a missing namespace or an
// unsupported construct skipped in lenient mode, to l instead of the
// LogOutput.
func WarnOutput(l Logger) Option {
	return func(cfg *Config) Option {
		prev := cfg.warnings
		cfg.warnings = l
		return WarnOutput(prev)
	}
}

// LogLevel sets the verbosity of messages sent to the LogOutput.
// Warnings are always sent; level 1 adds progress messages and
// level 4 and up adds debugging detail.
func LogLevel(level int) Option {
	return func(cfg *Config) Option {
		prev := cfg.loglevel
		cfg.loglevel = level
		return LogLevel(prev)
	}
}

// OutputTarget selects the language of the emitted code.
func OutputTarget(t Target) Option {
	return func(cfg *Config) Option {
		prev := cfg.target
		cfg.target = t
		return OutputTarget(prev)
	}
}

// Namespace sets the XML namespace stamped into the serialization
// annotations of every emitted type. If no namespace is set, the
// placeholder "unknown" is used, and a warning is logged.
func Namespace(uri string) Option {
	return func(cfg *Config) Option {
		prev := cfg.namespace
		cfg.namespace = uri
		return Namespace(prev)
	}
}

// Prefix sets the namespace prefix used in serialization
// annotations. By default, the prefix the schema declares for
// the namespace is used.
func Prefix(prefix string) Option {
	return func(cfg *Config) Option {
		prev := cfg.prefix
		cfg.prefix = prefix
		return Prefix(prev)
	}
}

// PackageName names the package of Go output.
func PackageName(name string) Option {
	return func(cfg *Config) Option {
		prev := cfg.pkgname
		cfg.pkgname = name
		return PackageName(prev)
	}
}

// Reserved replaces the identifiers that may not be used verbatim
// in the emitted code. Identifiers in the list are given a trailing
// underscore. Without this option, the keywords of the target
// language are reserved.
func Reserved(words ...string) Option {
	return func(cfg *Config) Option {
		prev := cfg.reserved
		cfg.reserved = gen.NewDenyList(words...)
		return restoreReserved(prev)
	}
}

func restoreReserved(d gen.DenyList) Option {
	return func(cfg *Config) Option {
		prev := cfg.reserved
		cfg.reserved = d
		return restoreReserved(prev)
	}
}

// Replace adds a rewrite rule for type names, applied after the
// rules added before it. An invalid pattern is logged and ignored.
func Replace(pat, repl string) Option {
	return func(cfg *Config) Option {
		reg, err := regexp.Compile(pat)
		if err != nil {
			cfg.errorf("invalid regex %q passed to Replace option: %v", pat, err)
			return replaceRules(cfg.replace)
		}
		return replaceRules(append(cfg.replace, commandline.ReplaceRule{From: reg, To: repl}))(cfg)
	}
}

func replaceRules(rules commandline.ReplaceRuleList) Option {
	return func(cfg *Config) Option {
		prev := cfg.replace
		cfg.replace = rules
		return replaceRules(prev)
	}
}

// Lenient downgrades unsupported schema constructs to warnings. The
// declarations containing them are emitted as empty structs.
func Lenient(lenient bool) Option {
	return func(cfg *Config) Option {
		prev := cfg.lenient
		cfg.lenient = lenient
		return Lenient(prev)
	}
}

// ImportLoader sets the Loader used to fetch the schema that an
// input file imports or includes. Without it, only the files named
// on the command line are read.
func ImportLoader(l *Loader) Option {
	return func(cfg *Config) Option {
		prev := cfg.loader
		cfg.loader = l
		return ImportLoader(prev)
	}
}

func (cfg *Config) keywords() gen.DenyList {
	if cfg.reserved != nil {
		return cfg.reserved
	}
	if cfg.target == Go {
		return gen.GoKeywords
	}
	return gen.RustKeywords
}
