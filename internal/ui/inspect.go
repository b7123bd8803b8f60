package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/gridline/internal/cells"
	"github.com/javiermolinar/gridline/internal/importer"
)

const (
	maxPreviewColWidth = 20
	minPreviewColWidth = 3
)

func (a *App) inspectCmd() *cobra.Command {
	var opts importer.Options
	var preview int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Summarize an import source without opening the grid",
		Long: `Parse a JSON, XLSX or SQLite file the way the grid would load it and
print its layout: headers, record count, populated cells and a preview
of the first records.

Example:
  gridline inspect people.json
  gridline inspect book.xlsx --sheet Q3 --preview 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			res, err := importer.LoadFile(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			parts, err := sourceParts(cmd.Context(), args[0], res.Format)
			if err != nil {
				return err
			}
			printInspect(cmd.OutOrStdout(), res, parts, preview, termWidth())
			return nil
		},
	}

	addImportFlags(cmd, &opts)
	cmd.Flags().IntVarP(&preview, "preview", "p", 5, "Number of records to preview")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// sourceParts lists the sheets or tables a multi-part source offers.
func sourceParts(ctx context.Context, path string, format importer.Format) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	switch format {
	case importer.FormatSQLite:
		tables, err := importer.Tables(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("listing tables: %w", err)
		}
		return tables, nil
	case importer.FormatXLSX:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer func() { _ = f.Close() }()
		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		sheets, err := importer.SheetNames(f, info.Size())
		if err != nil {
			return nil, fmt.Errorf("listing sheets: %w", err)
		}
		return sheets, nil
	default:
		return nil, nil
	}
}

func printInspect(out io.Writer, res *importer.Result, parts []string, preview, width int) {
	fmt.Fprintf(out, "=== %s ===\n\n", formatHeader(filepath.Base(res.Source)))
	fmt.Fprintf(out, "Format:  %s\n", res.Format)
	if len(parts) > 0 {
		label := "Tables:"
		if res.Format == importer.FormatXLSX {
			label = "Sheets:"
		}
		fmt.Fprintf(out, "%-8s %s\n", label, strings.Join(parts, ", "))
	}
	fmt.Fprintf(out, "Columns: %s  |  Records: %s  |  Cells: %s\n",
		formatStats(strconv.Itoa(res.Cols)),
		formatStats(strconv.Itoa(res.Records())),
		formatStats(strconv.Itoa(len(res.Entries))))
	if res.Cols > 0 {
		fmt.Fprintf(out, "Range:   %s\n", formatMuted(
			cells.Key{Col: 1, Row: 1}.Name()+":"+cells.Key{Col: res.Cols, Row: max(1, res.Rows)}.Name()))
	}

	if len(res.Headers) == 0 {
		fmt.Fprintln(out, "\nNo data.")
		return
	}

	rows := min(preview, res.Records())
	if rows <= 0 {
		return
	}
	fmt.Fprintf(out, "\nPreview (%d of %d records):\n", rows, res.Records())
	for _, line := range previewLines(res, rows, width) {
		fmt.Fprintln(out, line)
	}
}

// previewLines lays out the header row and the first records as a table
// that fits width terminal columns. Columns that do not fit are elided.
func previewLines(res *importer.Result, records, width int) []string {
	store := cells.NewStore()
	store.Load(res.Entries)

	lastRow := records + 1
	labelW := len(strconv.Itoa(lastRow))

	widths := make([]int, 0, res.Cols)
	used := labelW
	shown := 0
	for col := 1; col <= res.Cols; col++ {
		w := len(cells.ColumnName(col))
		for row := 1; row <= lastRow; row++ {
			w = max(w, runewidth.StringWidth(store.Value(col, row)))
		}
		w = min(max(w, minPreviewColWidth), maxPreviewColWidth)
		if used+3+w > width && shown > 0 {
			break
		}
		widths = append(widths, w)
		used += 3 + w
		shown++
	}

	lines := make([]string, 0, lastRow+1)
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelW))
	for i, w := range widths {
		b.WriteString(" | ")
		b.WriteString(formatColumn(runewidth.FillRight(cells.ColumnName(i+1), w)))
	}
	if shown < res.Cols {
		b.WriteString(formatWarning(fmt.Sprintf(" +%d", res.Cols-shown)))
	}
	lines = append(lines, b.String())

	for row := 1; row <= lastRow; row++ {
		b.Reset()
		label := runewidth.FillLeft(strconv.Itoa(row), labelW)
		b.WriteString(formatMuted(label))
		for i, w := range widths {
			b.WriteString(" | ")
			text := runewidth.Truncate(store.Value(i+1, row), w, "…")
			text = runewidth.FillRight(text, w)
			if row == 1 {
				text = formatHeader(text)
			}
			b.WriteString(text)
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}
