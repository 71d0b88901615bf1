package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/tasklist/internal/column"
	"github.com/oakwood-commons/tasklist/internal/formatter"
	"github.com/oakwood-commons/tasklist/internal/i18n"
)

func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the report columns and their formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnvironment(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			noColor := !colorOutput(runSettings(cmd).NoColor, out)
			fmt.Fprint(out, columnsTable(env.registry, env.catalog, noColor))
			if note := defaultNote(env.registry, env.catalog); note != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, note)
			}
			return nil
		},
	}
}

// columnsTable lists one row per column format. The default format carries
// a trailing "*".
func columnsTable(reg *column.Registry, cat *i18n.Catalog, noColor bool) string {
	nameH := cat.Get(i18n.HeaderColumns)
	typeH := cat.Get(i18n.HeaderType)
	styleH := cat.Get(i18n.HeaderStyles)
	exampleH := cat.Get(i18n.HeaderExample)

	var rows [][]string
	for _, name := range reg.Names() {
		col, err := reg.New(name)
		if err != nil {
			continue
		}
		def := col.Style()
		examples := col.Examples()
		for i, style := range col.Styles() {
			row := []string{"", "", style, ""}
			if i == 0 {
				row[0] = name
				row[1] = col.Type()
			}
			if style == def {
				row[2] += "*"
			}
			if i < len(examples) {
				row[3] = examples[i]
			}
			rows = append(rows, row)
		}
	}

	return formatter.RenderColumnarTable(
		[]string{nameH, typeH, styleH, exampleH},
		rows,
		formatter.ColumnarOptions{
			NoColor:     noColor,
			ColumnHints: map[string]formatter.ColumnHint{nameH: {Key: true}},
		},
	)
}

func defaultNote(reg *column.Registry, cat *i18n.Catalog) string {
	names := reg.Names()
	if len(names) == 0 {
		return ""
	}
	col, err := reg.New(names[0])
	if err != nil {
		return ""
	}
	return cat.Sprintf(i18n.DefaultNote, col.Name(), col.Name(), col.Style())
}
