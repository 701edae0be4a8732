package parser

import (
	"regexp"
	"strings"
)

// OCR常见误读的固定替换表：长短横线当连字符用
var dashReplacer = strings.NewReplacer(
	"—", "-",
	"–", "-",
)

var (
	// 竖线紧贴字母时基本都是字母I的误读
	pipeAfterLetter  = regexp.MustCompile(`([A-Za-z])\|`)
	pipeBeforeLetter = regexp.MustCompile(`\|([A-Za-z])`)

	// 行内水平空白（含不换行空格与全角空格）
	horizontalSpaceRe = regexp.MustCompile(`[ \t\x{00a0}\x{3000}]+`)
)

// Normalize 清洗原始文本：统一换行、修正OCR误读、折叠行内空白。
// 纯函数且幂等，换行保留——竖向结构是后续小节/条目切分的依据。
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = dashReplacer.Replace(text)
	text = pipeAfterLetter.ReplaceAllString(text, "${1}I")
	text = pipeBeforeLetter.ReplaceAllString(text, "I${1}")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalSpaceRe.ReplaceAllString(line, " "))
	}
	return strings.Join(lines, "\n")
}
