package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andaru/gml/codec"
	"github.com/andaru/gml/query"
)

func newQueryCmd() *cobra.Command {
	var (
		expr   string
		decode bool
	)
	cmd := &cobra.Command{
		Use:   "query --xpath <expr> <file>",
		Short: "Print the elements an XPath expression selects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := openFile(args[0])
			if err != nil {
				return failed(err)
			}
			defer f.Close()
			doc, err := query.Parse(f)
			if err != nil {
				return failed(err)
			}
			w := cmd.OutOrStdout()
			if !decode {
				nodes, err := doc.Find(expr)
				if err != nil {
					return failed(err)
				}
				for _, n := range nodes {
					fmt.Fprintln(w, n.OutputXML(true))
				}
				return nil
			}
			values, err := doc.Decode(expr)
			if err != nil {
				return failed(err)
			}
			for _, v := range values {
				b, err := codec.Marshal(v, codec.WithIndent("  "))
				if err != nil {
					return failed(err)
				}
				fmt.Fprintf(w, "%s\n", b)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&expr, "xpath", "", "XPath expression; gml and xlink prefixes are bound")
	cmd.Flags().BoolVar(&decode, "decode", false, "decode each element and print it re-encoded")
	_ = cmd.MarkFlagRequired("xpath")
	return cmd
}
