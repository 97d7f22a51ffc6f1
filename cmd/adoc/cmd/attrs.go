package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	adocerror "github.com/msto63/adoc/foundation/core/error"
	adocast "github.com/msto63/adoc/foundation/markup/ast"
	"github.com/msto63/adoc/internal/dump"
)

var attrsFormat string

var attrsCmd = &cobra.Command{
	Use:   "attrs <list>",
	Short: "Parse a bracketed attribute list",
	Long: `Parses an attribute list such as [width=100,height=50] or
[left,top] and prints the result.

Examples:
  adoc attrs "[width=100,height=50]"
  adoc attrs --format json "[left,top]"`,
	Args: cobra.ExactArgs(1),
	RunE: runAttrs,
}

func init() {
	rootCmd.AddCommand(attrsCmd)

	attrsCmd.Flags().StringVarP(&attrsFormat, "format", "f", "", "Output format (tree, json, yaml; default from config)")
}

func runAttrs(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(attrsFormat)
	if err != nil {
		return err
	}
	engine, err := newEngine(logger)
	if err != nil {
		return err
	}
	attrs, err := engine.ParseAttributes(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	value := attributesValue(attrs)
	switch format {
	case dump.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(value)
	case dump.FormatYAML:
		err = yaml.NewEncoder(out).Encode(value)
	default:
		err = printAttributes(cmd, attrs)
	}
	if err != nil {
		return adocerror.Wrap(err, "failed to write attributes").
			WithCode(adocerror.CodeIOError)
	}
	return nil
}

func attributesValue(attrs adocast.Attributes) map[string]interface{} {
	switch a := attrs.(type) {
	case adocast.Named:
		return map[string]interface{}{"type": "named", "values": map[string]string(a)}
	case adocast.Positional:
		return map[string]interface{}{"type": "positional", "values": []string(a)}
	}
	return nil
}

func printAttributes(cmd *cobra.Command, attrs adocast.Attributes) error {
	out := cmd.OutOrStdout()
	switch a := attrs.(type) {
	case adocast.Named:
		keys := make([]string, 0, len(a))
		for k := range a {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if _, err := fmt.Fprintf(out, "named (%d)\n", len(a)); err != nil {
			return err
		}
		for _, k := range keys {
			if _, err := fmt.Fprintf(out, "  %s = %s\n", k, a[k]); err != nil {
				return err
			}
		}
	case adocast.Positional:
		if _, err := fmt.Fprintf(out, "positional (%d)\n", len(a)); err != nil {
			return err
		}
		for i, v := range a {
			if _, err := fmt.Fprintf(out, "  %d: %s\n", i+1, v); err != nil {
				return err
			}
		}
	}
	return nil
}
