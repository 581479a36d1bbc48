// Command confdump builds the standard configuration layer list, runs the
// environment post-processors against it and prints the effective merged
// configuration as JSON.
//
// It stands in for a host application's startup sequence: system
// properties come from repeatable -D key=value flags, command-line
// arguments from positional key=value pairs, and the process environment
// is snapshotted as the systemEnvironment layer. Inline JSON supplied via
// SPRING_APPLICATION_JSON (or a spring.application.json property) is
// expanded into a high-priority layer before the dump.
//
// Tool settings are read from CONFDUMP_-prefixed environment variables:
//
//	CONFDUMP_LOG_LEVEL    zerolog level for diagnostics (default "info")
//	CONFDUMP_ORDER        override for the JSON post-processor order
//	CONFDUMP_WEB_CONTEXT  treat the process as web-context capable
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-conf-layers/appjson"
	"github.com/MKhiriev/go-conf-layers/bootstrap"
	"github.com/MKhiriev/go-conf-layers/internal/logger"
	"github.com/MKhiriev/go-conf-layers/layers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// settings holds confdump's own configuration, parsed from the
// environment.
type settings struct {
	// LogLevel is the zerolog level name for diagnostic output.
	// Env: CONFDUMP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Order overrides the JSON post-processor's startup order when set.
	// Env: CONFDUMP_ORDER
	Order *int `env:"ORDER"`

	// WebContext marks the process as web-context capable, making the
	// jndiProperties layer a valid insertion anchor.
	// Env: CONFDUMP_WEB_CONTEXT
	WebContext bool `env:"WEB_CONTEXT" envDefault:"false"`
}

func main() {
	printBuildInfo()

	props := propValues{}
	flag.Var(&props, "D", "System property in key=value form (repeatable)")
	flag.Parse()

	var s settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: "CONFDUMP_"}); err != nil {
		logger.NewLogger("confdump", zerolog.InfoLevel).
			Fatal().Err(err).Msg("error getting configs")
	}

	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.NewLogger("confdump", level)

	args, err := parseArgs(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing command-line arguments")
	}

	list := layers.NewStandardList(args, props)
	log.Debug().Strs("layers", list.Names()).Msg("built standard layer list")

	opts := []appjson.Option{
		appjson.WithLogger(log.Logger),
		appjson.WithWebCapability(func() bool { return s.WebContext }),
	}
	if s.Order != nil {
		opts = append(opts, appjson.WithOrder(*s.Order))
	}
	bootstrap.Run(list, appjson.New(opts...))

	log.Debug().Strs("layers", list.Names()).Msg("layer list after post-processing")

	merged, err := list.Merged()
	if err != nil {
		log.Fatal().Err(err).Msg("error merging layers")
	}

	out, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error rendering effective config")
	}
	fmt.Println(string(out))
}

// propValues collects repeated -D key=value flags. It implements the
// flag.Value interface.
type propValues map[string]any

func (p propValues) String() string {
	pairs := make([]string, 0, len(p))
	for k, v := range p {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (p propValues) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("property %q is not in key=value form", s)
	}
	p[k] = v
	return nil
}

// parseArgs converts positional key=value arguments into the
// commandLineArgs layer content.
func parseArgs(args []string) (map[string]any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	parsed := make(map[string]any, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("argument %q is not in key=value form", arg)
		}
		parsed[k] = v
	}
	return parsed, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
