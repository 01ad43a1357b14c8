package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/specialistvlad/uaschema/internal/app"
	"github.com/specialistvlad/uaschema/internal/config"
	"github.com/specialistvlad/uaschema/internal/hcl_adapter"
	"github.com/specialistvlad/uaschema/internal/registry"
	"github.com/specialistvlad/uaschema/internal/yaml_adapter"
)

var (
	outputFormats = []string{"text", "json"}
	dumpFormats   = []string{"hcl", "yaml"}
)

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func oneOf(flag, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return usageError(fmt.Errorf("invalid %s %q, expected one of %v", flag, value, allowed))
	}
	return nil
}

func newCheckCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "check [PATH...]",
		Short: "Load every declaration and report problems",
		Long: `Load the compiled-in modules and every declaration file under PATH, resolve
all structure field types and report either the totals or every error found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := rt.load(cmd.Context(), args)
			if err != nil {
				return err
			}
			fmt.Fprintf(rt.out, "OK: %d files, %d modules, %d enumerations, %d structures\n",
				len(res.Files), res.Modules, res.Enumerations, res.Structures)
			return nil
		},
	}
}

func newResolveCommand(rt *runtime) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "resolve REF",
		Short: "Print one descriptor",
		Long: `Print the descriptor REF refers to. REF is an identity such as ns=0;i=852,
a qualified name such as 2:BoilerState or a namespace 0 name.`,
		Example: `  uaschema resolve ns=0;i=862
  uaschema resolve ServerState -o json
  uaschema resolve 2:BoilerState -p ./declarations`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oneOf("output", output, outputFormats); err != nil {
				return err
			}
			_, res, err := rt.load(cmd.Context(), nil)
			if err != nil {
				return err
			}
			d, err := res.Catalog.Lookup(args[0])
			if err != nil {
				if errors.Is(err, registry.ErrNotFound) {
					return failure(fmt.Errorf("%q: %w", args[0], err))
				}
				return usageError(err)
			}

			view := app.Describe(d)
			if output == "json" {
				enc := json.NewEncoder(rt.out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			return writeView(rt.out, view)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}

func newDumpCommand(rt *runtime) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump [PATH...]",
		Short: "Write every registered declaration",
		Long: `Load and resolve every declaration, then write them all in identity order as
one HCL or YAML document that loads back into the same registry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oneOf("format", format, dumpFormats); err != nil {
				return err
			}
			_, res, err := rt.load(cmd.Context(), args)
			if err != nil {
				return err
			}

			var enc config.Encoder = hcl_adapter.NewEncoder()
			if format == "yaml" {
				enc = yaml_adapter.NewEncoder()
			}
			if err := enc.Encode(cmd.Context(), rt.out, res.Catalog.Descriptors()); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "hcl", "output format: hcl or yaml")
	return cmd
}

func newServeCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [PATH...]",
		Short: "Serve health and descriptor lookups over HTTP",
		Long: `Load every declaration, then serve GET /health, GET /descriptors and
GET /descriptors/{ref} as JSON until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rt.appConfig(args)
			if err != nil {
				return err
			}
			if cfg.HealthcheckPort == 0 {
				return usageError(errors.New("serve needs --healthcheck-port"))
			}
			if err := app.NewApp(rt.logW, cfg, rt.modules...).Run(cmd.Context()); err != nil {
				return failure(err)
			}
			return nil
		},
	}
	cmd.Flags().Int(keyPort, 0, "port for the HTTP server")
	rt.bindFlags(cmd.Flags())
	return cmd
}
