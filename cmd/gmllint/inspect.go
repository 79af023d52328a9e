package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/andaru/gml/codec"
	"github.com/andaru/gml/model"
)

func newInspectCmd() *cobra.Command {
	var (
		format string
		paths  bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print the decoded model of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, "yaml", "json"); err != nil {
				return err
			}
			f, err := openFile(args[0])
			if err != nil {
				return failed(err)
			}
			defer f.Close()
			v, err := codec.Decode(f)
			if err != nil {
				return failed(err)
			}
			if paths {
				return failed(writePaths(cmd.OutOrStdout(), v))
			}
			return failed(dump(cmd.OutOrStdout(), format, v))
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().BoolVar(&paths, "paths", false, "print the path and type of each element instead")
	return cmd
}

// dump writes v in format. The YAML form is the JSON form as YAML, so
// both follow the model's JSON encoding.
func dump(w io.Writer, format string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if format == "json" {
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	}
	var tree any
	if err := json.Unmarshal(b, &tree); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return err
	}
	return enc.Close()
}

func writePaths(w io.Writer, v any) error {
	return model.Walk(v, func(path string, v any) error {
		line := fmt.Sprintf("%s\t%T", path, v)
		if o, ok := v.(model.Object); ok && o.GML().ID != "" {
			line += "\t" + o.GML().ID
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
}
