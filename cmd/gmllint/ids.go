package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andaru/gml/codec"
	"github.com/andaru/gml/resolve"
)

func newIDsCmd() *cobra.Command {
	var (
		prefix string
		output string
		indent string
	)
	cmd := &cobra.Command{
		Use:   "ids [--prefix p] <file>",
		Short: "Give every object without a gml:id one and write the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := openFile(args[0])
			if err != nil {
				return failed(err)
			}
			doc, err := codec.DecodeDocument(f)
			f.Close()
			if err != nil {
				return failed(err)
			}
			ids, err := resolve.AssignIDs(doc.Root, prefix)
			if err != nil {
				return failed(err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				out, cerr := os.Create(output)
				if cerr != nil {
					return failed(cerr)
				}
				defer func() {
					if cerr := out.Close(); cerr != nil && err == nil {
						err = failed(cerr)
					}
				}()
				w = out
			}
			opts := []codec.Option{codec.WithHeader()}
			if indent != "" {
				opts = append(opts, codec.WithIndent(indent))
			}
			if err := codec.EncodeDocument(w, doc, opts...); err != nil {
				return failed(err)
			}
			if output == "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "assigned %d ids\n", len(ids))
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "id-", "prefix of the assigned ids")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the document to this file instead of standard output")
	cmd.Flags().StringVar(&indent, "indent", "", "indent elements by this string")
	return cmd
}
