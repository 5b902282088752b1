package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
	"github.com/zooyer/shaper/form"
	"github.com/zooyer/shaper/utils"
	"go.uber.org/zap"
)

func newSetCmd(a *app) *cobra.Command {
	var (
		id      string
		output  string
		cutType string
		values  = make(map[entities.MeasureName]*string)
	)

	cmd := &cobra.Command{
		Use:   "set <file.svg>",
		Short: "修改一个图形的 shaper 属性并保存",
		Long: `修改一个图形的 shaper 属性并保存。
长度不带单位时按当前单位解释，也可以写 "15mm"、"0.5in"；传 0 或空串清除该属性。`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}

			f := form.New(doc, &a.settings, a.log)
			if err = f.Open(id); err != nil {
				return err
			}

			if cmd.Flags().Changed("cut-type") {
				if !entities.KnownCutType(cutType) {
					a.log.Warn("unknown cut type, kept as is",
						zap.String("cutType", cutType), zap.Strings("known", entities.CutTypes))
				}
				f.SetCutType(cutType)
			}
			for _, name := range entities.MeasureNames {
				if !cmd.Flags().Changed(flagName(name)) {
					continue
				}
				text := *values[name]
				if _, _, ok := core.SplitValue(text); !ok && !core.IsEmptyValue(text) {
					return fmt.Errorf("--%s: invalid length %q", flagName(name), text)
				}
				f.Type(name, text)
				f.Blur(name)
			}

			if err = f.Save(); err != nil {
				return err
			}

			if output == "" {
				output = args[0]
			}
			if err = doc.Save(output, a.settings); err != nil {
				return err
			}
			if err = a.saveState(doc); err != nil {
				return err
			}

			m, _ := doc.Measurement(id)
			out := cmd.OutOrStdout()
			printf(out, "%s | %s\n", id, utils.Describe(m, a.settings))
			for _, name := range entities.MeasureNames {
				if v := f.Value(name); v != "" {
					printf(out, "     |-- %s: %s%s\n", name, v, a.settings.Unit)
				}
			}
			if ct := f.CutType(); ct != "" {
				printf(out, "     |-- cutType: %s\n", ct)
			}
			printf(out, "写入文件: %s\n", output)

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&id, "id", "", "element id")
	flags.StringVarP(&output, "output", "o", "", "output file (default overwrites the input)")
	flags.StringVar(&cutType, "cut-type", "", "cut type: online, outside, inside, pocket, guide")
	for _, name := range entities.MeasureNames {
		values[name] = flags.String(flagName(name), "", name.String()+" length")
	}
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

// flagName cutDepth -> cut-depth
func flagName(name entities.MeasureName) string {
	switch name {
	case entities.CutDepth:
		return "cut-depth"
	case entities.CutOffset:
		return "cut-offset"
	case entities.ToolDia:
		return "tool-dia"
	}
	return name.String()
}
