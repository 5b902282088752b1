package entities

import (
	"github.com/beevik/etree"
	"github.com/zooyer/shaper/core"
)

// Entity 是一切可测量 SVG 元素的接口
type Entity interface {
	Parse(e *etree.Element) error
	Type() string
	ID() string
	BBox() core.BBox
	Measure() *Measurement
}

// BaseEntity 存放所有元素通用的属性（标签名、id、shaper 属性）
type BaseEntity struct {
	TypeName   string
	Id         string
	Attributes map[string]string // shaper 属性，测量值已换算为像素
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) ID() string { return b.Id }

// parseBase 读取 id 和 shaper 命名空间下的属性
func (b *BaseEntity) parseBase(e *etree.Element) {
	b.Id = e.SelectAttrValue("id", "")
	b.Attributes = ReadAttributes(e)
}

// measure 以包围盒为基础生成测量结果
func (b *BaseEntity) measure(box core.BBox) *Measurement {
	attrs := make(map[string]string, len(b.Attributes))
	for k, v := range b.Attributes {
		attrs[k] = v
	}

	return &Measurement{
		TagName:          b.TypeName,
		WidthPx:          box.Width(),
		HeightPx:         box.Height(),
		ShaperAttributes: attrs,
	}
}

// EntityFactory 定义了如何根据标签名创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的元素类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据标签名生产对应的结构体，未注册返回 nil
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}
