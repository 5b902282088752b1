package core

import (
	"strings"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DetectSeparator 用系统区域设置格式化 1.1，根据结果决定小数分隔符
func DetectSeparator() byte {
	tag, err := locale.GetLocale()
	if err != nil || tag == "" {
		return '.'
	}

	lang, err := language.Parse(tag)
	if err != nil {
		return '.'
	}

	return SeparatorFor(lang)
}

// SeparatorFor 返回指定语言格式化小数时使用的分隔符
func SeparatorFor(lang language.Tag) byte {
	formatted := message.NewPrinter(lang).Sprint(number.Decimal(1.1))
	if strings.Contains(formatted, ",") {
		return ','
	}
	return '.'
}
