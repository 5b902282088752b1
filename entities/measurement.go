package entities

// LineEnds 直线的两个端点(像素)
type LineEnds struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Measurement 是一个元素的测量结果，所有长度均为像素
type Measurement struct {
	TagName          string            `json:"tagName"`
	WidthPx          float64           `json:"widthPx"`
	HeightPx         float64           `json:"heightPx"`
	DiameterPx       *float64          `json:"diameterPx,omitempty"`
	RadiusPx         *float64          `json:"radiusPx,omitempty"`
	IsCircle         bool              `json:"isCircle,omitempty"`
	Line             *LineEnds         `json:"line,omitempty"`
	ShaperAttributes map[string]string `json:"shaperAttributes"`
}

// Attributes 把字符串形式的 shaper 属性整理成结构
func (m *Measurement) Attributes() AttributeSet {
	return parseAttributeSet(m.ShaperAttributes)
}
