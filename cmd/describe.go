package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"
	"github.com/zooyer/shaper"
	"github.com/zooyer/shaper/entities"
	"github.com/zooyer/shaper/utils"
)

func newDescribeCmd(a *app) *cobra.Command {
	var csvFile string

	cmd := &cobra.Command{
		Use:   "describe <file.svg>",
		Short: "列出每个图形的尺寸和 shaper 属性",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.describe(cmd.OutOrStdout(), args[0], csvFile)
		},
	}
	cmd.Flags().StringVar(&csvFile, "csv", "", "also write a CSV report to this file")

	return cmd
}

func (a *app) describe(w io.Writer, file, csvFile string) error {
	doc, err := a.open(file)
	if err != nil {
		return err
	}

	s := a.settings
	printf(w, "%s: %d 个图形\n", file, len(doc.IDs))

	for i, id := range doc.IDs {
		m := doc.Measurements[id]
		printf(w, "[%02d] %s | %s\n", i+1, id, utils.Describe(m, s))

		attrs := utils.GetAttrs(m, s)
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			printf(w, "     |-- %s: %s\n", k, attrs[k])
		}
	}

	if box := doc.Bounds(); !box.IsEmpty() {
		printf(w, "范围: %s x %s\n",
			s.FormatDisplayNumber(s.ConvertPixelsToCurrentUnit(box.Width()))+s.Unit.String(),
			s.FormatDisplayNumber(s.ConvertPixelsToCurrentUnit(box.Height()))+s.Unit.String(),
		)
	}

	if csvFile != "" {
		if err = a.writeCSV(csvFile, doc); err != nil {
			return err
		}
		printf(w, "写入文件: %s\n", csvFile)
	}

	return nil
}

const header = "id,type,width,height,diameter,cutType,cutDepth,cutOffset,toolDia\n"

// writeCSV 每个图形一行，数值按当前单位输出，固定使用 '.'
func (a *app) writeCSV(filename string, doc *shaper.Document) error {
	if err := os.WriteFile(filename, []byte(header), 0644); err != nil {
		return err
	}

	s := a.settings
	length := func(px *float64) string {
		if px == nil {
			return ""
		}
		return s.FormatWithUnits(s.ConvertPixelsToCurrentUnit(*px), s.Unit.ExportPrecision())
	}

	for _, id := range doc.IDs {
		var (
			m    = doc.Measurements[id]
			set  = m.Attributes()
			w, h = m.WidthPx, m.HeightPx
		)

		line := fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			quote(id), m.TagName,
			length(&w), length(&h), length(m.DiameterPx),
			quote(set.CutType),
			length(set.Get(entities.CutDepth)), length(set.Get(entities.CutOffset)), length(set.Get(entities.ToolDia)),
		)

		if err := xos.AppendFile(filename, []byte(line), 0644); err != nil {
			return err
		}
	}

	return nil
}

func quote(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
