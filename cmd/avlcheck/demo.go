package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajwerner/avlmap"
)

func newDemoCmd(config *baseConfiguration) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the reference scenario and print every step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, config)
		},
	}
}

func runDemo(cmd *cobra.Command, config *baseConfiguration) error {
	out := cmd.OutOrStdout()
	m := avlmap.New[int, string]()
	for _, e := range []struct {
		k int
		v string
	}{{3, "l"}, {1, "H"}, {2, "e"}, {5, "o"}, {4, "l"}} {
		m.Insert(e.k, e.v)
		config.log.Debug().Int("key", e.k).Str("tree", m.String()).Msg("inserted")
	}
	for it := m.Begin(); it != m.End(); it.Next() {
		fmt.Fprintf(out, "(%d,%q)\n", it.Key(), it.Value())
	}
	fmt.Fprintf(out, "count(5)=%d count(7)=%d\n", m.Count(5), m.Count(7))
	m.Erase(5)
	fmt.Fprintf(out, "erase(5): size=%d found=%t\n", m.Len(), m.Find(5) != m.End())
	v := m.Index(7)
	fmt.Fprintf(out, "m[7]=%q size=%d\n", *v, m.Len())
	fmt.Fprintln(out, m)
	if err := m.Verify(); err != nil {
		return err
	}
	config.log.Info().Int("size", m.Len()).Int("height", m.Height()).Msg("demo complete")
	return nil
}
