package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gql/conformance"
	"gql/language"
	"gql/types"
)

func main() {
	root := &cobra.Command{
		Use:           "gql",
		Short:         "Tools for query-language input values and literals",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newLiteralCmd(), newFmtCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLiteralCmd converts a JSON value into literal syntax for a type
func newLiteralCmd() *cobra.Command {
	var (
		typeRef    string
		valueJSON  string
		schemaPath string
	)

	cmd := &cobra.Command{
		Use:   "literal",
		Short: "Convert a JSON value into a literal for the given input type",
		Example: `  gql literal --type '[Int!]' --value '[1, 2, 3]'
  gql literal --type Point --schema shapes.yaml --value '{"x": 1}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(schemaPath)
			if err != nil {
				return err
			}

			typ, err := reg.ParseRef(typeRef)
			if err != nil {
				return err
			}

			value, err := types.DecodeJSON([]byte(valueJSON))
			if err != nil {
				return err
			}

			node, err := language.FromValue(value, typ)
			if err != nil {
				return err
			}
			if node == nil {
				return fmt.Errorf("value has no literal representation as %s", typ)
			}

			fmt.Fprintln(cmd.OutOrStdout(), language.Print(node))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeRef, "type", "", "input type notation, e.g. '[Int!]'")
	cmd.Flags().StringVar(&valueJSON, "value", "", "value as a JSON document")
	cmd.Flags().StringVar(&schemaPath, "schema", "", "YAML file with extra enum and input declarations")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("value")
	return cmd
}

// newFmtCmd parses a literal and reprints it canonically
func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <literal>",
		Short: "Parse a literal and reprint it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := language.ParseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), language.Print(node))
			return nil
		},
	}
}

// buildRegistry returns the built-in registry, extended with the type
// declarations of a suite file when one is given
func buildRegistry(schemaPath string) (*types.Registry, error) {
	if schemaPath == "" {
		return types.NewRegistry(), nil
	}
	suite, err := conformance.LoadSuiteFile(schemaPath)
	if err != nil {
		return nil, err
	}
	runner, err := conformance.NewRunner(suite)
	if err != nil {
		return nil, err
	}
	return runner.Registry(), nil
}
