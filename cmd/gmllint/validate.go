package main

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andaru/gml/codec"
	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/resolve"
	"github.com/andaru/gml/schema"
)

func newValidateCmd() *cobra.Command {
	var (
		format           string
		maxErrors        int
		warningsAsErrors bool
		lenient          bool
	)
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a document against the GML schema constraints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format, "text", "json", "xml"); err != nil {
				return err
			}
			var opts []schema.Option
			if maxErrors > 0 {
				opts = append(opts, schema.WithMaxErrors(maxErrors))
			}
			if warningsAsErrors {
				opts = append(opts, schema.WithWarningsAsErrors())
			}
			list, err := validateFile(args[0], lenient, maxErrors, opts...)
			if err != nil {
				return failed(err)
			}
			if err := writeDiagnostics(cmd.OutOrStdout(), format, list); err != nil {
				return failed(err)
			}
			if list.Count(gmlerr.SeverityError) > 0 {
				return failed(errViolations)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "diagnostic format: text, json or xml")
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, "stop after this many diagnostics (0 for no limit)")
	cmd.Flags().BoolVar(&warningsAsErrors, "warnings-as-errors", false, "report warnings as errors")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "accept documents that are not well-formed XML")
	return cmd
}

// validateFile returns at most maxErrors diagnostics for the document in
// name, all of them when maxErrors is 0. A document which does not
// decode yields its decode diagnostic.
func validateFile(name string, lenient bool, maxErrors int, opts ...schema.Option) (gmlerr.List, error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var copts []codec.Option
	if lenient {
		copts = append(copts, codec.WithLenient())
	}
	v, err := codec.Decode(f, copts...)
	if err != nil {
		if e, ok := gmlerr.As(err); ok {
			return gmlerr.List{e}, nil
		}
		return nil, err
	}

	var list gmlerr.List
	if err := schema.Validate(v, opts...); err != nil {
		l, ok := gmlerr.AsList(err)
		if !ok {
			return nil, err
		}
		list = append(list, l...)
	}
	ix, err := resolve.NewIndex(v)
	if err != nil {
		// duplicate ids are reported by schema.Validate
		if _, ok := gmlerr.AsList(err); !ok {
			return nil, err
		}
	}
	if l, ok := gmlerr.AsList(ix.Check()); ok {
		list = append(list, l...)
	}
	if maxErrors > 0 && len(list) > maxErrors {
		list = list[:maxErrors]
	}
	return list, nil
}

type diagnostics struct {
	XMLName xml.Name        `xml:"diagnostics"`
	Errors  []*gmlerr.Error `xml:"diagnostic"`
}

func writeDiagnostics(w io.Writer, format string, list gmlerr.List) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if list == nil {
			list = gmlerr.List{}
		}
		return enc.Encode(list)
	case "xml":
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(diagnostics{Errors: list}); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	for _, e := range list {
		if _, err := fmt.Fprintln(w, e.Error()); err != nil {
			return err
		}
	}
	return nil
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q", format)
}
