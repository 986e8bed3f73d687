package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FrenchMajesty/synapsecx/pkg/lexicon"
)

func newLexiconCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "lexicon [taxonomy]",
		Short:     "Print the active lexicons as YAML",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: taxonomyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			lexicons, err := loadLexicons(viper.GetViper())
			if err != nil {
				return err
			}

			if len(args) == 0 {
				data, err := lexicons.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			lex, ok := lexicons.Taxonomy(lexicon.Taxonomy(args[0]))
			if !ok {
				return fmt.Errorf("unknown taxonomy %q (want one of %v)", args[0], taxonomyNames())
			}
			return writeOutput(cmd.OutOrStdout(), FormatYAML, map[string][]lexicon.Entry{args[0]: lex.Entries()})
		},
	}
}

func taxonomyNames() []string {
	names := make([]string, 0, len(lexicon.Taxonomies))
	for _, t := range lexicon.Taxonomies {
		names = append(names, string(t))
	}
	slices.Sort(names)
	return names
}
