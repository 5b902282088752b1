// Package form 实现单个元素的属性编辑表单：打开时从元素数据重新初始化原始值，
// 输入在失去焦点时生效，切换单位只从原始值换算，保存时写回像素值。
package form

import (
	"errors"

	"github.com/zooyer/shaper"
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
	"github.com/zooyer/shaper/store"
	"go.uber.org/zap"
)

var ErrNotOpen = errors.New("form is not open")

type Form struct {
	doc      *shaper.Document
	settings *core.Settings
	store    *store.Store
	log      *zap.Logger

	id      string
	cutType string
	display map[entities.MeasureName]string
	dirty   map[entities.MeasureName]bool
}

func New(doc *shaper.Document, settings *core.Settings, log *zap.Logger) *Form {
	if log == nil {
		log = zap.NewNop()
	}
	return &Form{
		doc:      doc,
		settings: settings,
		store:    store.New(settings),
		log:      log,
	}
}

func field(name entities.MeasureName) string {
	return name.String()
}

// Open 打开元素，用元素上的像素值重新初始化各字段
func (f *Form) Open(id string) error {
	m, err := f.doc.Measurement(id)
	if err != nil {
		return err
	}

	f.store.Reset()
	f.id = id
	f.display = make(map[entities.MeasureName]string)
	f.dirty = make(map[entities.MeasureName]bool)

	set := m.Attributes()
	f.cutType = set.CutType
	for _, name := range entities.MeasureNames {
		if px := set.Get(name); px != nil {
			f.store.Set(field(name), core.Convert(*px, core.Pixel, core.Millimeter))
		}
		f.display[name] = f.store.Display(field(name), f.settings.Unit)
	}

	return nil
}

// ID 当前打开的元素
func (f *Form) ID() string {
	return f.id
}

// Value 字段当前显示的文字
func (f *Form) Value(name entities.MeasureName) string {
	return f.display[name]
}

// Raw 字段的原始毫米值，未设置为 NaN
func (f *Form) Raw(name entities.MeasureName) float64 {
	return f.store.Get(field(name))
}

func (f *Form) CutType() string {
	return f.cutType
}

func (f *Form) SetCutType(cutType string) {
	f.cutType = cutType
}

// Type 模拟输入，原始值在 Blur 时才更新
func (f *Form) Type(name entities.MeasureName, text string) {
	if f.display == nil {
		return
	}
	f.display[name] = text
	f.dirty[name] = true
}

// Blur 根据输入更新原始值。空值清除该字段；无法解析时保留原值并恢复显示
func (f *Form) Blur(name entities.MeasureName) {
	if f.display == nil || !f.dirty[name] || f.store.Converting() {
		return
	}
	f.dirty[name] = false

	text := f.display[name]
	if core.IsEmptyValue(text) {
		f.store.Delete(field(name))
		f.display[name] = ""
		return
	}

	f.store.UpdateFromDisplay(field(name), text, f.settings.Unit)
	f.display[name] = f.store.Display(field(name), f.settings.Unit)
}

// ToggleUnit 切换显示单位，所有字段从原始值重新换算
func (f *Form) ToggleUnit(to core.Unit) {
	from := f.settings.Unit
	if from == to || !to.Valid() {
		return
	}

	f.store.SetConverting(true)
	defer f.store.SetConverting(false)

	for name, text := range f.display {
		f.display[name] = f.store.Redisplay(field(name), text, from, to)
	}
	f.settings.Unit = to

	f.log.Debug("unit toggled", zap.Stringer("from", from), zap.Stringer("to", to))
}

// Save 提交未生效的输入，并把各字段以像素写回元素，失败时元素不变
func (f *Form) Save() error {
	if f.display == nil {
		return ErrNotOpen
	}

	for name := range f.dirty {
		f.Blur(name)
	}

	var attrs = []entities.Attribute{entities.CutType(f.cutType)}
	for _, name := range entities.MeasureNames {
		var px float64
		if f.store.Has(field(name)) {
			px = core.Convert(f.store.Get(field(name)), core.Millimeter, core.Pixel)
		}
		attrs = append(attrs, entities.Measure{Name: name, Pixels: px})
	}

	// 任何一个字段非法时整体不保存
	return f.doc.Apply(f.id, attrs...)
}
