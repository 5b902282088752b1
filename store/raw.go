// Package store 保存表单字段的原始毫米值，以及需要持久化的会话状态。
//
// 原始值是唯一可信的数据：显示字符串总是由它换算、格式化得到，
// 切换单位时从原始值重新换算，不会因为显示精度反复舍入而漂移。
// Store 不是并发安全的。
package store

import (
	"math"
	"strings"

	"github.com/zooyer/shaper/core"
)

// Store 按字段 id 保存原始毫米值
type Store struct {
	settings   *core.Settings
	raw        map[string]float64
	converting bool
}

func New(settings *core.Settings) *Store {
	return &Store{
		settings: settings,
		raw:      make(map[string]float64),
	}
}

// Get 返回原始毫米值，未设置时为 NaN
func (s *Store) Get(field string) float64 {
	if v, ok := s.raw[field]; ok {
		return v
	}
	return math.NaN()
}

// Has 字段是否已有原始值
func (s *Store) Has(field string) bool {
	_, ok := s.raw[field]
	return ok
}

// Set 无条件覆盖
func (s *Store) Set(field string, mm float64) {
	s.raw[field] = mm
}

// Delete 清除单个字段
func (s *Store) Delete(field string) {
	delete(s.raw, field)
}

// Reset 清除全部字段，加载新文件时调用
func (s *Store) Reset() {
	clear(s.raw)
	s.converting = false
}

// SetConverting 批量切换单位期间置为 true，此时 UpdateFromDisplay 不生效
func (s *Store) SetConverting(converting bool) {
	s.converting = converting
}

func (s *Store) Converting() bool {
	return s.converting
}

// Initialize 字段还没有原始值时，用显示值初始化。
// 返回当前原始值，解析失败返回 NaN
func (s *Store) Initialize(field, display string, unit core.Unit) float64 {
	if v, ok := s.raw[field]; ok {
		return v
	}

	value, ok := s.settings.ParseValueWithUnits(display, core.WithTarget(unit))
	if !ok {
		return math.NaN()
	}

	mm := core.Convert(value, unit, core.Millimeter)
	s.raw[field] = mm
	return mm
}

// UpdateFromDisplay 根据输入框里的文字重新计算原始值(失去焦点时调用)。
// 输入带 mm/in 后缀时以后缀为准，否则按 unit 解释。
// 批量换算期间或解析失败时保持原值不变
func (s *Store) UpdateFromDisplay(field, display string, unit core.Unit) float64 {
	if s.converting {
		return s.Get(field)
	}

	value, suffix, ok := core.SplitValue(display)
	if !ok {
		return s.Get(field)
	}

	from := unit
	if u, known := core.ParseUnit(suffix); known && u != core.Pixel {
		from = u
	}

	mm := core.Convert(value, from, core.Millimeter)
	s.raw[field] = mm
	return mm
}

// Redisplay 把字段从 from 单位切换到 to 单位，返回新的显示字符串。
// 有原始值时只从原始值换算；没有时先用显示值初始化。
// 空值保持为空
func (s *Store) Redisplay(field, display string, from, to core.Unit) string {
	if !s.Has(field) {
		if strings.TrimSpace(display) == "" {
			return display
		}
		if math.IsNaN(s.Initialize(field, display, from)) {
			return display
		}
	}

	return s.settings.FormatDisplayNumber(core.Convert(s.raw[field], core.Millimeter, to))
}

// Display 按 unit 格式化字段的原始值，未设置返回空串
func (s *Store) Display(field string, unit core.Unit) string {
	v, ok := s.raw[field]
	if !ok {
		return ""
	}
	return s.settings.FormatDisplayNumber(core.Convert(v, core.Millimeter, unit))
}
