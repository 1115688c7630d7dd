package reporting

import (
	"fmt"
	"html"
	"math"
	"strings"

	"cytb_buddy_go/dataset"
	common "cytb_buddy_go/utils"
)

// WriteHTMLReport writes a single page with the column summary, the merged
// table and every chart. Charts that failed to render are marked unavailable.
func WriteHTMLReport(path string, ds *dataset.Dataset, charts []Chart) error {
	stats, err := Describe(ds)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html>
<head>
	<title>Cytochrome b Species Report</title>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; padding: 20px; background-color: #f9f9f9; }
		h1 { color: #333; }
		table { border-collapse: collapse; margin-top: 20px; }
		th, td { padding: 8px 12px; border: 1px solid #ccc; text-align: left; }
		th { background-color: #eee; }
	</style>
</head>
<body>
	<h1>Cytochrome b Species Report</h1>
	<h2>Summary</h2>
	<table>
		<tr><th>Metric</th><th>N</th><th>Mean</th><th>Std Dev</th><th>Min</th><th>Max</th></tr>
`)
	for _, s := range stats {
		fmt.Fprintf(&b, "\t\t<tr><td>%s</td><td>%d</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(s.Name), s.Count, cell(s.Mean), cell(s.StdDev), cell(s.Min), cell(s.Max))
	}
	b.WriteString("\t</table>\n\t<h2>Species</h2>\n\t<table>\n\t\t<tr>")
	for _, name := range append([]string{dataset.SpeciesColumn}, dataset.NumericColumns...) {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(name))
	}
	b.WriteString("</tr>\n")
	for _, r := range ds.Records {
		length := "&ndash;"
		if v, ok := r.SequenceLength.Get(); ok {
			length = fmt.Sprintf("%d", v)
		}
		fmt.Fprintf(&b, "\t\t<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(r.Species), optionalCell(r.Mass), optionalCell(r.MolecularWeight), optionalCell(r.GCContent), length)
	}
	b.WriteString("\t</table>\n")

	for _, c := range charts {
		fmt.Fprintf(&b, "\t<h2>%s</h2>\n", html.EscapeString(c.Title))
		if c.Err != nil {
			b.WriteString("\t<div><p>Graph unavailable</p></div>\n")
			continue
		}
		fmt.Fprintf(&b, "\t<div>%s</div>\n", c.SVG)
	}
	b.WriteString("</body>\n</html>\n")

	f, err := common.CreateOutput(path)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteSVGFiles writes each rendered chart to <prefix>_<name>.svg and returns the paths written.
func WriteSVGFiles(prefix string, charts []Chart) ([]string, error) {
	var written []string
	for _, c := range charts {
		if c.Err != nil {
			continue
		}
		path := fmt.Sprintf("%s_%s.svg", prefix, c.Name)
		f, err := common.CreateOutput(path)
		if err != nil {
			return written, err
		}
		if _, err := f.WriteString(c.SVG); err != nil {
			f.Close()
			return written, err
		}
		if err := f.Close(); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func cell(v float64) string {
	if math.IsNaN(v) {
		return "&ndash;"
	}
	return fmt.Sprintf("%.2f", v)
}

func optionalCell(o dataset.Optional[float64]) string {
	v, ok := o.Get()
	if !ok {
		return "&ndash;"
	}
	return fmt.Sprintf("%.2f", v)
}
