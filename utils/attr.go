package utils

import (
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
)

// GetAttrs 按当前单位格式化元素上已设置的 shaper 属性，键为带前缀的属性名
func GetAttrs(m *entities.Measurement, s core.Settings) map[string]string {
	var (
		attrs = make(map[string]string)
		set   = m.Attributes()
	)

	if set.CutType != "" {
		attrs[entities.CutTypeKey] = set.CutType
	}
	for _, name := range entities.MeasureNames {
		if px := set.Get(name); px != nil {
			attrs[name.Key()] = s.FormatDisplayNumber(s.ConvertPixelsToCurrentUnit(*px)) + s.Unit.String()
		}
	}

	return attrs
}

func GetAttr(m *entities.Measurement, key string, s core.Settings) string {
	return GetAttrs(m, s)[key]
}
