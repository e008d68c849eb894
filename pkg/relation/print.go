package relation

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Print renders the relation as a human-readable table.
func (r *Relation) Print(w io.Writer) {
	fmt.Fprintf(w, "\nRelation %s\n", r.name)

	table := tablewriter.NewWriter(w)
	table.SetHeader(r.desc.FieldNames)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, t := range r.tuples {
		row := make([]string, r.desc.NumFields())
		for i := range row {
			field, err := t.GetField(i)
			if err != nil || field == nil {
				row[i] = "null"
				continue
			}
			row[i] = field.String()
		}
		table.Append(row)
	}
	table.Render()
}

// PrintIndex writes a key-to-tuple dump of the active index, in the
// backend's iteration order.
func (r *Relation) PrintIndex(w io.Writer) {
	fmt.Fprintf(w, "\nIndex for %s\n", r.name)
	fmt.Fprintln(w, "-------------------")
	if r.idx != nil {
		for _, e := range r.idx.All() {
			fmt.Fprintf(w, "%s -> %s\n", e.Key, e.Value)
		}
	}
	fmt.Fprintln(w, "-------------------")
}
