package cmd

import (
	"fmt"
	"strings"

	"github.com/df07/go-tetra-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("tetra")

// setupLogging applies the global verbosity flags. Precedence, lowest first:
// --quiet, -v, -vv, --log-level. --log-module overrides single modules.
func setupLogging(ctx *cli.Context) error {
	level := log.Notice

	if ctx.GlobalBool("quiet") {
		level = log.Warning
	}
	if ctx.GlobalBool("v") {
		level = log.Info
	}
	if ctx.GlobalBool("vv") {
		level = log.Debug
	}
	if name := ctx.GlobalString("log-level"); name != "" {
		parsed, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		level = parsed
	}
	log.SetLevel(level)

	for _, spec := range ctx.GlobalStringSlice("log-module") {
		module, name, ok := strings.Cut(spec, "=")
		if !ok || module == "" {
			return fmt.Errorf("--log-module expects module=level, got %q", spec)
		}
		moduleLevel, err := log.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("--log-module %s: %w", module, err)
		}
		log.SetModuleLevel(module, moduleLevel)
	}

	return nil
}
