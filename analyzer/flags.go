package analyzer

import (
	"flag"
	"strings"

	"github.com/carlosskii/typeglue/internal/diagnostic"
)

// registerFlags binds the run options to command line flag values.
func registerFlags(r *runOptions, flags *flag.FlagSet) {
	flags.BoolVar(&r.recoverable, "recoverable", r.recoverable, "report recoverable diagnostics")
	flags.BoolVar(&r.generated, "generated", r.generated, "check generated files")
	flags.Func("disable", "comma-separated diagnostic codes not to report", func(s string) error {
		for _, c := range strings.Split(s, ",") {
			if c = strings.TrimSpace(c); c != "" {
				r.disabled = append(r.disabled, diagnostic.Code(c))
			}
		}

		return nil
	})
}
