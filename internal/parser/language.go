package parser

import (
	"regexp"

	"resume-builder-go/internal/types"
)

var cjkRe = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]`)

// DetectLanguage 内容语言检测：出现任意CJK表意文字即判为zh，否则en。
// 只影响默认标题与标签文案，不影响提取行为本身。
func DetectLanguage(text string) string {
	if cjkRe.MatchString(text) {
		return types.LanguageZH
	}
	return types.LanguageEN
}
