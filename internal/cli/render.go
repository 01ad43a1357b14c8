package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/specialistvlad/uaschema/internal/app"
)

// writeView renders a descriptor for people:
//
//	ServerState  enumeration  ns=0;i=852  module core
//	  Running          0
//	  Failed           1
func writeView(w io.Writer, v app.DescriptorView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := fmt.Sprintf("%s\t%s\t%s", v.Name, v.Kind, v.Identity)
	if v.Source != "" {
		header += "\t" + v.Source
	}
	fmt.Fprintln(tw, header)
	if v.Description != "" {
		fmt.Fprintf(tw, "  # %s\n", v.Description)
	}
	if v.Encoding != "" {
		fmt.Fprintf(tw, "  encoding\t%s\n", v.Encoding)
	}

	for _, ev := range v.Values {
		fmt.Fprintf(tw, "  %s\t%d\t%s\n", ev.Name, ev.Value, ev.Description)
	}
	for _, f := range v.Fields {
		typ := f.Type
		if f.Array {
			typ = "[]" + typ
		}
		target := f.Target
		if target == "" {
			target = "unresolved"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", f.Name, typ, target, f.Description)
	}
	return tw.Flush()
}
