package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zooyer/shaper/core"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "convert <value>",
		Short:   "单位换算，例如 convert 10in --to mm",
		Args:    cobra.ExactArgs(1),
		Example: "  shaper convert 0,5in --to mm\n  shaper convert 96 --units mm --to px",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := a.settings.Unit
			if to != "" {
				u, ok := core.ParseUnit(to)
				if !ok {
					return fmt.Errorf("invalid unit %q", to)
				}
				target = u
			}

			_, suffix, ok := core.SplitValue(args[0])
			if !ok {
				return fmt.Errorf("invalid value %q", args[0])
			}
			if _, known := core.ParseUnit(suffix); suffix != "" && !known {
				return fmt.Errorf("unknown unit %q", suffix)
			}

			value, _ := a.settings.ParseValueWithUnits(args[0], core.WithTarget(target))
			if suffix == "" {
				value = core.Convert(value, a.settings.Unit, target)
			}

			out := core.Settings{Unit: target, Separator: a.settings.Separator}
			printf(cmd.OutOrStdout(), "%s%s\n", out.FormatDisplayNumber(value), target)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target unit: mm, in or px (default is the display unit)")

	return cmd
}
