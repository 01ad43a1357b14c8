package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/specialistvlad/uaschema/internal/app"
	"github.com/specialistvlad/uaschema/internal/bootstrap"
	"github.com/specialistvlad/uaschema/internal/registry"
)

// Exit codes returned through ExitError.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

const (
	envPrefix      = "UASCHEMA"
	configFileName = "uaschema"
)

// Configuration keys. Flags, environment variables (UASCHEMA_LOG_LEVEL, ...)
// and the config file all use them.
const (
	keyPaths      = "paths"
	keyLogLevel   = "log-level"
	keyLogFormat  = "log-format"
	keyWorkers    = "workers"
	keyNoBuiltins = "no-builtins"
	keyPort       = "healthcheck-port"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

func failure(err error) error {
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

// runtime carries what every command needs: the layered configuration and
// the writers for results and logs.
type runtime struct {
	v       *viper.Viper
	cfgFile string
	out     io.Writer
	logW    io.Writer
	modules []registry.Module
}

// Option customizes the command tree, mostly for tests.
type Option func(*runtime)

// WithModules replaces the compiled-in declaration modules.
func WithModules(modules ...registry.Module) Option {
	return func(rt *runtime) {
		rt.modules = modules
	}
}

// Execute runs the uaschema command tree with args. Results go to out, logs
// and diagnostics to errOut. Usage errors are returned as an ExitError with
// ExitUsage, everything else that fails as an ExitError with ExitFailure.
func Execute(ctx context.Context, args []string, out, errOut io.Writer, opts ...Option) error {
	root := NewRootCommand(out, errOut, opts...)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Cobra reports unknown commands and bad arguments as plain errors.
	return usageError(err)
}

// NewRootCommand builds the uaschema command tree. Each call returns an
// independent tree with its own configuration state.
func NewRootCommand(out, errOut io.Writer, opts ...Option) *cobra.Command {
	rt := &runtime{v: viper.New(), out: out, logW: errOut}
	for _, opt := range opts {
		opt(rt)
	}

	root := &cobra.Command{
		Use:   "uaschema",
		Short: "Load and resolve OPC UA structure and enumeration declarations.",
		Long: `uaschema loads enumeration and structure declarations from HCL and YAML
files, together with the compiled-in OPC UA namespace 0 types, registers them
in one registry and resolves every structure field type.

Configuration is read from flags, then UASCHEMA_* environment variables, then
uaschema.yaml in the working directory (or the file given with --config).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.readConfig()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	defaults := app.DefaultConfig()
	flags := root.PersistentFlags()
	flags.StringVarP(&rt.cfgFile, "config", "c", "", "config file (default: ./uaschema.yaml)")
	flags.StringSliceP(keyPaths, "p", nil, "declaration file or directory (repeatable)")
	flags.String(keyLogLevel, defaults.LogLevel, "log level: debug, info, warn or error")
	flags.String(keyLogFormat, defaults.LogFormat, "log format: text or json")
	flags.Int(keyWorkers, defaults.WorkerCount, "number of files decoded concurrently")
	flags.Bool(keyNoBuiltins, false, "skip the compiled-in declaration modules")
	rt.bindFlags(flags)

	root.AddCommand(
		newCheckCommand(rt),
		newResolveCommand(rt),
		newDumpCommand(rt),
		newServeCommand(rt),
	)
	return root
}

func (rt *runtime) bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = rt.v.BindPFlag(f.Name, f)
	})
}

// readConfig layers the environment and the config file under the flags.
func (rt *runtime) readConfig() error {
	v := rt.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if rt.cfgFile != "" {
		v.SetConfigFile(rt.cfgFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if rt.cfgFile != "" || !errors.As(err, &notFound) {
			return usageError(fmt.Errorf("failed to read config file: %w", err))
		}
	}
	return nil
}

// appConfig builds the validated application config. Positional paths win
// over configured ones.
func (rt *runtime) appConfig(paths []string) (*app.Config, error) {
	if len(paths) == 0 {
		paths = rt.v.GetStringSlice(keyPaths)
	}
	cfg, err := app.NewConfig(app.Config{
		Paths:           paths,
		LogLevel:        strings.ToLower(rt.v.GetString(keyLogLevel)),
		LogFormat:       strings.ToLower(rt.v.GetString(keyLogFormat)),
		WorkerCount:     rt.v.GetInt(keyWorkers),
		NoBuiltins:      rt.v.GetBool(keyNoBuiltins),
		HealthcheckPort: rt.v.GetInt(keyPort),
	})
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

// load builds the application for paths and loads it.
func (rt *runtime) load(ctx context.Context, paths []string) (*app.App, *bootstrap.Result, error) {
	cfg, err := rt.appConfig(paths)
	if err != nil {
		return nil, nil, err
	}
	a := app.NewApp(rt.logW, cfg, rt.modules...)
	res, err := a.Load(ctx)
	if err != nil {
		return nil, nil, failure(fmt.Errorf("failed to load declarations: %w", err))
	}
	return a, res, nil
}
