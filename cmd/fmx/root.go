package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/maxima/format"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.1.0"
)

// demoScript sets up a small function, looks up and updates some values and
// erases two arguments.
const demoScript = `# demo
set 5 1
set 6 2
set 4 3
set 3 4
set 2 5
get 3
get 5
set 5 7
erase 2
erase 3
print
maxima
`

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "fmx",
		Short: "functions with local maxima",
		Long: fmt.Sprintf(`fmx (v%s)

Runs scripts against a function from integers to integers and
reports the function's local maxima.`, Version),
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fmx",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fmx v%s\n", Version)
		},
	}
	runCmd = &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script of function commands, '-' reads from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var script io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				script = file
			}
			return runScript(cmd, script)
		},
	}
	demoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Run a built-in demo script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, strings.NewReader(demoScript))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.AddCommand(versionCmd)
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(demoCmd)

	// Add Flags
	key := "color"
	RootCmd.PersistentFlags().String(key, "auto", "use colors (auto, always, never)")
	key = "html"
	RootCmd.PersistentFlags().Bool(key, false, "print tables as HTML")
	key = "watch"
	RootCmd.PersistentFlags().Bool(key, false, "report every committed change")
	key = "trace"
	RootCmd.PersistentFlags().String(key, "error", "trace level (error, info, debug)")
}

// initConfig initializes configuration from environment variables
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("fmx")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// setup binds command flags to viper and configures tracing.
func setup(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(viper.GetString("trace")))
	gtrace.CoreTracer = tracer
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
	return nil
}

// consoleConfig creates the formatting configuration from flag "color".
func consoleConfig() (*format.Config, error) {
	config := format.ConfigFromTerminal()
	switch mode := strings.ToLower(viper.GetString("color")); mode {
	case "auto":
	case "always":
		config.Color = true
	case "never":
		config.Color = false
	default:
		return nil, fmt.Errorf("invalid color mode %q", mode)
	}
	return config, nil
}

func runScript(cmd *cobra.Command, script io.Reader) error {
	config, err := consoleConfig()
	if err != nil {
		return err
	}
	opts := options{
		html:   viper.GetBool("html"),
		watch:  viper.GetBool("watch"),
		config: config,
	}
	ip, teardown, err := newInterpreter(cmd.Context(), cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}
	defer teardown()
	return ip.run(script)
}
