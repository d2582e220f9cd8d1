package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/trakhound/entitystore/internal/fixture"
	"github.com/trakhound/entitystore/pkg/collection"
	"github.com/trakhound/entitystore/pkg/query"
)

func newInspectCmd() *cobra.Command {
	var (
		dump bool
		path string
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Load a YAML or JSON fixture and print what it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			c := collection.NewEntityCollection(collection.Options{})
			report, err := fixture.LoadFile(args[0], c)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "decoded %d, added %d, skipped %d, targets %d\n",
				report.Decoded, report.Added, report.Skipped, c.TargetCount())

			counts := c.Stats().ByName()
			names := make([]string, 0, len(counts))
			for name := range counts {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "%-32s %d\n", name, counts[name])
			}

			if path != "" {
				objects := query.NewEngine(c).ObjectsByPath(path)
				fmt.Fprintf(out, "\n%d objects match %s\n", len(objects), path)
				for _, o := range objects {
					fmt.Fprintf(out, "%s:%s %s\n", o.Namespace, o.Path, o.UUID)
				}
			}

			if dump {
				data, err := fixture.FromCollection(c).Marshal()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s", data)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "arrays", false, "print the stored entities as wire arrays")
	cmd.Flags().StringVar(&path, "path", "", "list objects matching a path or expression")
	return cmd
}
