package entities

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
	"github.com/zooyer/shaper/core"
)

var ErrPathData = errors.New("invalid path data")

// 每个命令需要的参数个数(大写)
var pathArgs = map[byte]int{
	'M': 2, 'L': 2, 'T': 2,
	'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4,
	'A': 7,
	'Z': 0,
}

type Path struct {
	BaseEntity
	Data string
	box  core.BBox
}

func init() {
	Register("path", func() Entity { return &Path{BaseEntity: BaseEntity{TypeName: "path"}} })
}

// Parse 只统计各段端点的范围，曲线的控制点和弧线的凸起部分不计入
func (p *Path) Parse(e *etree.Element) error {
	p.parseBase(e)
	p.Data = e.SelectAttrValue("d", "")
	p.box = core.BBox{}

	var (
		s          = core.NewScanner(p.Data)
		box        = core.EmptyBBox()
		cmd        byte
		args       []float64
		cur, start core.Point
	)

	for {
		// 圆弧的第 4、5 个参数是标志位
		var ok bool
		if upper(cmd) == 'A' && (len(args) == 3 || len(args) == 4) {
			ok = s.NextFlag()
		} else {
			ok = s.Next()
		}
		if !ok {
			break
		}

		t := s.LastToken
		if t.IsCommand() {
			cmd, args = t.Cmd, args[:0]
			if upper(cmd) == 'Z' {
				cur = start
			}
			continue
		}

		n := pathArgs[upper(cmd)]
		if cmd == 0 || n == 0 {
			return fmt.Errorf("%w: number without command", ErrPathData)
		}
		if args = append(args, t.Value); len(args) < n {
			continue
		}

		var (
			rel  = cmd >= 'a'
			next = cur
		)
		switch upper(cmd) {
		case 'H':
			next.X = args[0]
			if rel {
				next.X += cur.X
			}
		case 'V':
			next.Y = args[0]
			if rel {
				next.Y += cur.Y
			}
		default:
			next = core.Point{X: args[n-2], Y: args[n-1]}
			if rel {
				next.X += cur.X
				next.Y += cur.Y
			}
		}

		// moveto 之后的坐标对按 lineto 处理
		if upper(cmd) == 'M' {
			start = next
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		}

		cur = next
		box = box.Extend(cur)
		args = args[:0]
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPathData, err)
	}
	if len(args) > 0 {
		return fmt.Errorf("%w: %c needs %d numbers, got %d", ErrPathData, cmd, pathArgs[upper(cmd)], len(args))
	}

	if !box.IsEmpty() {
		p.box = box
	}

	return nil
}

func (p *Path) BBox() core.BBox {
	return p.box
}

func (p *Path) Measure() *Measurement {
	return p.measure(p.BBox())
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
