package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"
	"github.com/zooyer/shaper"
	"github.com/zooyer/shaper/config"
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/logger"
	"github.com/zooyer/shaper/store"
	"go.uber.org/zap"
)

type app struct {
	cfgFile   string
	units     string
	separator string
	restore   bool

	cfg      *config.Config
	settings core.Settings
	log      *zap.Logger
	state    *store.State
}

func newRootCmd() *cobra.Command {
	var a = &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "shaper [file.svg]",
		Short:         "测量 SVG 图形并编辑 shaper 切割属性",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// 拖拽文件到程序上或双击运行，结束前暂停
			defer xos.PauseExit()

			var file string
			if len(args) > 0 {
				file = args[0]
			} else {
				var err error
				if file, err = pickFile(); errors.Is(err, zenity.ErrCanceled) {
					return nil
				} else if err != nil {
					return err
				}
			}

			return a.describe(cmd.OutOrStdout(), file, "")
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ~/.shaper.yaml)")
	flags.StringVarP(&a.units, "units", "u", "", "display units: mm or in")
	flags.StringVar(&a.separator, "separator", "", `decimal separator: "." or ","`)
	flags.BoolVar(&a.restore, "restore", false, "apply element data saved by the previous session")

	root.AddCommand(
		newDescribeCmd(a),
		newSetCmd(a),
		newConvertCmd(a),
	)

	return root
}

// setup 依次应用配置文件、上次保存的状态、命令行参数
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(cfg.Logger)
	a.settings = cfg.Settings()

	state, err := store.LoadState(cfg.StateFile)
	switch {
	case err == nil:
		state.Restore(&a.settings)
		a.state = state
	case errors.Is(err, fs.ErrNotExist):
	default:
		a.log.Warn("ignore saved state", zap.String("file", cfg.StateFile), zap.Error(err))
	}

	if cmd.Flags().Changed("units") {
		u, ok := core.ParseUnit(a.units)
		if !ok || u == core.Pixel {
			return fmt.Errorf("invalid units %q", a.units)
		}
		a.settings.Unit = u
	}
	if cmd.Flags().Changed("separator") {
		sep, ok := core.ParseSeparator(a.separator)
		if !ok {
			return fmt.Errorf("invalid separator %q", a.separator)
		}
		a.settings.Separator = sep
	}

	a.log.Debug("settings",
		zap.Stringer("units", a.settings.Unit),
		zap.String("separator", string(a.settings.DecimalSeparator())),
	)
	return nil
}

// open 打开文档，需要时恢复上次保存的元素数据
func (a *app) open(file string) (*shaper.Document, error) {
	doc, err := shaper.Open(file, shaper.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	if a.restore && a.state != nil {
		n := doc.Restore(a.state.Measurements())
		a.log.Info("state restored", zap.Int("elements", n))
	}

	return doc, nil
}

func (a *app) saveState(doc *shaper.Document) error {
	st := store.NewState(a.settings, doc.IDs, doc.Measurements)
	if err := store.SaveState(a.cfg.StateFile, st); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func pickFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("选择 SVG 文件"),
		zenity.FileFilters{
			{Name: "SVG", Patterns: []string{"*.svg"}, CaseFold: true},
		},
	)
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
