package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// envPrefix prefixes environment variables that provide flag defaults.
const envPrefix = "PALETTEX_"

// lookupEnv is swapped out in tests.
var lookupEnv = os.LookupEnv

// envName returns the environment variable consulted for a flag,
// e.g. "max-iterations" becomes PALETTEX_MAX_ITERATIONS.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// applyEnvDefaults sets every flag that was not given on the command line
// from its environment variable, if present. Explicit flags always win.
func applyEnvDefaults(fs *pflag.FlagSet) error {
	var errs []string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "help" || f.Name == "version" {
			return
		}
		value, ok := lookupEnv(envName(f.Name))
		if !ok {
			return
		}
		if err := fs.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s=%q: %v", envName(f.Name), value, err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
