package utils

import (
	"github.com/zooyer/shaper/core"
	"github.com/zooyer/shaper/entities"
)

// UnionBBox 合并多个元素的包围盒，忽略测量失败(宽高为 0)的元素
func UnionBBox(ents []entities.Entity) core.BBox {
	box := core.EmptyBBox()
	for _, ent := range ents {
		b := ent.BBox()
		if b.Width() == 0 && b.Height() == 0 {
			continue
		}
		box = box.Extend(b.Min).Extend(b.Max)
	}
	return box
}
