package core

import (
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// Token 是路径数据中的一项：命令字母或者数值
type Token struct {
	Cmd   byte // 0 表示数值
	Value float64
}

// IsCommand 是否为命令字母
func (t Token) IsCommand() bool {
	return t.Cmd != 0
}

// Scanner 逐项读取 SVG path 的 d 属性
type Scanner struct {
	data      []byte
	pos       int
	LastToken Token
	err       error
}

func NewScanner(d string) *Scanner {
	return &Scanner{
		data: []byte(d),
	}
}

func isPathCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	// 1. 跳过空白和逗号
	s.skip()
	if s.pos >= len(s.data) {
		return false
	}

	// 2. 命令字母
	if c := s.data[s.pos]; isPathCommand(c) {
		s.LastToken = Token{Cmd: c}
		s.pos++
		return true
	}

	// 3. 数值，"1.5.5" 这样的写法会拆成 1.5 和 .5
	n := parse.Number(s.data[s.pos:])
	if n == 0 {
		s.err = fmt.Errorf("invalid path data at offset %d: %q", s.pos, s.data[s.pos])
		return false
	}

	f, _ := strconv.ParseFloat(s.data[s.pos : s.pos+n])
	s.LastToken = Token{Value: f}
	s.pos += n
	return true
}

// NextFlag 读取圆弧命令的标志位。标志只占一个字符，可以和后面的数值连写，
// 如 "A50 50 0 11100 0" 中的 "11100" 是两个标志和数值 100
func (s *Scanner) NextFlag() bool {
	if s.err != nil {
		return false
	}

	s.skip()
	if s.pos < len(s.data) && (s.data[s.pos] == '0' || s.data[s.pos] == '1') {
		s.LastToken = Token{Value: float64(s.data[s.pos] - '0')}
		s.pos++
		return true
	}

	return s.Next()
}

func (s *Scanner) skip() {
	for s.pos < len(s.data) && (parse.IsWhitespace(s.data[s.pos]) || s.data[s.pos] == ',') {
		s.pos++
	}
}

func (s *Scanner) Err() error {
	return s.err
}
