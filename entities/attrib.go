package entities

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/zooyer/shaper/core"
)

const (
	Namespace = "http://www.shapertools.com/namespaces/shaper"
	Prefix    = "shaper"

	CutTypeKey = Prefix + ":cutType"
)

// CutTypes 已知的切割类型，其他字符串原样保留
var CutTypes = []string{"online", "outside", "inside", "pocket", "guide"}

// KnownCutType 是否为已知的切割类型，空串视为已知(表示清除)
func KnownCutType(cutType string) bool {
	cutType = strings.TrimSpace(cutType)
	return cutType == "" || slices.Contains(CutTypes, cutType)
}

var ErrNegativeValue = errors.New("value must not be negative")

// MeasureName 是以长度表示的 shaper 属性
type MeasureName int

const (
	CutDepth MeasureName = iota
	CutOffset
	ToolDia
)

var measureNames = [...]string{
	CutDepth:  "cutDepth",
	CutOffset: "cutOffset",
	ToolDia:   "toolDia",
}

// MeasureNames 按导出顺序列出所有长度属性
var MeasureNames = []MeasureName{CutDepth, CutOffset, ToolDia}

func (n MeasureName) String() string {
	if n < 0 || int(n) >= len(measureNames) {
		return ""
	}
	return measureNames[n]
}

// Key 带命名空间前缀的属性名，如 "shaper:cutDepth"
func (n MeasureName) Key() string {
	return Prefix + ":" + n.String()
}

// AllowNegative 只有 cutOffset 可以为负(内切偏移)
func (n MeasureName) AllowNegative() bool {
	return n == CutOffset
}

// Attribute 是 shaper 属性，只有 CutType 和 Measure 两种
type Attribute interface {
	Key() string
	attribute()
}

// CutType 切割类型
type CutType string

func (CutType) Key() string { return CutTypeKey }

func (CutType) attribute() {}

// Measure 长度属性，值为像素
type Measure struct {
	Name   MeasureName
	Pixels float64
}

func (m Measure) Key() string { return m.Name.Key() }

func (Measure) attribute() {}

// AttributeSet 是一个元素上的全部 shaper 属性，nil 表示未设置
type AttributeSet struct {
	CutType   string
	CutDepth  *float64
	CutOffset *float64
	ToolDia   *float64
}

// Get 按名称取长度属性
func (s AttributeSet) Get(name MeasureName) *float64 {
	switch name {
	case CutDepth:
		return s.CutDepth
	case CutOffset:
		return s.CutOffset
	case ToolDia:
		return s.ToolDia
	}
	return nil
}

// List 按导出顺序列出已设置的属性
func (s AttributeSet) List() []Attribute {
	var attrs []Attribute
	if s.CutType != "" {
		attrs = append(attrs, CutType(s.CutType))
	}
	for _, name := range MeasureNames {
		if v := s.Get(name); v != nil {
			attrs = append(attrs, Measure{Name: name, Pixels: *v})
		}
	}
	return attrs
}

func parseAttributeSet(attrs map[string]string) AttributeSet {
	var set = AttributeSet{
		CutType: strings.TrimSpace(attrs[CutTypeKey]),
	}

	for _, name := range MeasureNames {
		raw := attrs[name.Key()]
		if core.IsEmptyValue(raw) {
			continue
		}
		px, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		switch name {
		case CutDepth:
			set.CutDepth = &px
		case CutOffset:
			set.CutOffset = &px
		case ToolDia:
			set.ToolDia = &px
		}
	}

	return set
}

// Validate 检查属性能否写入，不修改任何数据
func Validate(attr Attribute) error {
	switch a := attr.(type) {
	case CutType:
		return nil
	case Measure:
		if a.Name.String() == "" {
			return fmt.Errorf("unknown measure %d", a.Name)
		}
		if a.Pixels < 0 && !a.Name.AllowNegative() {
			return fmt.Errorf("%s: %w", a.Name, ErrNegativeValue)
		}
		return nil
	}
	return fmt.Errorf("unsupported attribute %T", attr)
}

// Apply 写入一个属性。空的切割类型和 0 值视为未设置，会删除该属性
func (m *Measurement) Apply(attr Attribute) error {
	if err := Validate(attr); err != nil {
		return err
	}
	if m.ShaperAttributes == nil {
		m.ShaperAttributes = make(map[string]string)
	}

	switch a := attr.(type) {
	case CutType:
		if v := strings.TrimSpace(string(a)); v != "" {
			m.ShaperAttributes[a.Key()] = v
		} else {
			delete(m.ShaperAttributes, a.Key())
		}
	case Measure:
		if a.Pixels == 0 {
			delete(m.ShaperAttributes, a.Key())
		} else {
			m.ShaperAttributes[a.Key()] = strconv.FormatFloat(a.Pixels, 'g', -1, 64)
		}
	}

	return nil
}

// ReadAttributes 读取元素上的 shaper 属性，长度统一换算为像素字符串，
// 空值和无法解析的值被忽略
func ReadAttributes(e *etree.Element) map[string]string {
	var attrs = make(map[string]string)

	if v := strings.TrimSpace(e.SelectAttrValue(CutTypeKey, "")); v != "" {
		attrs[CutTypeKey] = v
	}

	for _, name := range MeasureNames {
		raw := e.SelectAttrValue(name.Key(), "")
		if core.IsEmptyValue(raw) {
			continue
		}
		// 和用户输入一致，允许数值和单位之间有空格，如 "15 mm"
		value := strings.Join(strings.Fields(core.NormalizeSeparators(raw)), "")
		px, ok := core.Attr{Name: name.Key(), Value: value}.AsPixels()
		if !ok || px == 0 {
			continue
		}
		attrs[name.Key()] = strconv.FormatFloat(px, 'g', -1, 64)
	}

	return attrs
}
