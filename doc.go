package shaper

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
	"github.com/zooyer/shaper/utils"
	"go.uber.org/zap"
)

var (
	ErrNotSVG         = errors.New("not an svg document")
	ErrUnknownElement = errors.New("unknown element")
)

// 这些容器里的图形不直接绘制，不参与测量
var skipContainers = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"symbol":   true,
	"pattern":  true,
	"marker":   true,
}

type Document struct {
	svg          *etree.Document
	elements     map[string]*etree.Element
	IDs          []string // 文档顺序
	Entities     map[string]entities.Entity
	Measurements map[string]*entities.Measurement
	log          *zap.Logger
}

type Option func(d *Document)

func WithLogger(log *zap.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

func Open(filename string, opts ...Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file, opts...)
}

// Load 读取 SVG 并测量其中所有图形元素
func Load(reader io.Reader, opts ...Option) (*Document, error) {
	var (
		svg      = etree.NewDocument()
		document = &Document{
			svg:          svg,
			elements:     make(map[string]*etree.Element),
			Entities:     make(map[string]entities.Entity),
			Measurements: make(map[string]*entities.Measurement),
			log:          zap.NewNop(),
		}
	)
	for _, opt := range opts {
		opt(document)
	}

	if _, err := svg.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("read svg: %w", err)
	}

	root := svg.Root()
	if root == nil || root.Tag != "svg" {
		return nil, ErrNotSVG
	}

	document.analyze(root)
	document.log.Debug("svg analyzed", zap.Int("elements", len(document.IDs)))

	return document, nil
}

func (d *Document) analyze(parent *etree.Element) {
	for _, e := range parent.ChildElements() {
		if skipContainers[e.Tag] {
			continue
		}

		if ent := entities.CreateEntity(e.Tag); ent != nil {
			if err := ent.Parse(e); err != nil {
				// 解析失败的元素保留，测量结果为空，显示为复杂几何
				d.log.Warn("parse element", zap.String("tag", e.Tag), zap.String("path", e.GetPath()), zap.Error(err))
			}
			d.add(ent, e)
		}

		d.analyze(e)
	}
}

func (d *Document) add(ent entities.Entity, e *etree.Element) {
	id := ent.ID()
	if _, exists := d.elements[id]; id == "" || exists {
		id = uuid.NewString()
	}

	d.IDs = append(d.IDs, id)
	d.elements[id] = e
	d.Entities[id] = ent
	d.Measurements[id] = ent.Measure()
}

// Measurement 按 id 查找测量结果
func (d *Document) Measurement(id string) (*entities.Measurement, error) {
	m, ok := d.Measurements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, id)
	}
	return m, nil
}

// Apply 修改元素的 shaper 属性。先检查全部属性，任何一个非法时元素保持不变
func (d *Document) Apply(id string, attrs ...entities.Attribute) error {
	m, err := d.Measurement(id)
	if err != nil {
		return err
	}

	var errs []error
	for _, attr := range attrs {
		if err = entities.Validate(attr); err != nil {
			errs = append(errs, err)
		}
	}
	if err = errors.Join(errs...); err != nil {
		return fmt.Errorf("element %q: %w", id, err)
	}

	for _, attr := range attrs {
		if err = m.Apply(attr); err != nil {
			return fmt.Errorf("element %q: %w", id, err)
		}
		d.log.Debug("attribute applied", zap.String("id", id), zap.String("key", attr.Key()))
	}

	return nil
}

// Restore 用持久化的测量结果替换同 id、同标签的元素
func (d *Document) Restore(measurements map[string]*entities.Measurement) int {
	var restored int
	for id, m := range measurements {
		if cur, ok := d.Measurements[id]; ok && m != nil && cur.TagName == m.TagName {
			d.Measurements[id] = m
			restored++
		}
	}
	return restored
}

// Bounds 所有可测量元素的总范围
func (d *Document) Bounds() core.BBox {
	var ents = make([]entities.Entity, 0, len(d.IDs))
	for _, id := range d.IDs {
		ents = append(ents, d.Entities[id])
	}
	return utils.UnionBBox(ents)
}

// Export 把 shaper 属性写回元素，长度按当前单位输出，空值省略
func (d *Document) Export(w io.Writer, s core.Settings) error {
	var annotated bool

	for _, id := range d.IDs {
		e := d.elements[id]

		e.RemoveAttr(entities.CutTypeKey)
		for _, name := range entities.MeasureNames {
			e.RemoveAttr(name.Key())
		}

		for _, attr := range d.Measurements[id].Attributes().List() {
			switch a := attr.(type) {
			case entities.CutType:
				e.CreateAttr(a.Key(), string(a))
			case entities.Measure:
				e.CreateAttr(a.Key(), s.FormatWithUnits(s.ConvertPixelsToCurrentUnit(a.Pixels), s.Unit.ExportPrecision()))
			}
			annotated = true
		}
	}

	if annotated {
		d.svg.Root().CreateAttr("xmlns:"+entities.Prefix, entities.Namespace)
	}

	_, err := d.svg.WriteTo(w)
	return err
}

func (d *Document) Save(filename string, s core.Settings) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return d.Export(file, s)
}
