package parser

import (
	"regexp"
	"strings"

	"resume-builder-go/internal/constants"
	"resume-builder-go/internal/types"
)

// skillRes 词表每项预编译一条整词模式。
// \b 只在词表项首尾是ASCII词字符时追加，否则 C++ 这类词永远匹配不上。
var skillRes = buildSkillPatterns()

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(constants.SkillKeywords))
	for _, kw := range constants.SkillKeywords {
		expr := regexp.QuoteMeta(kw)
		if isWordChar(kw[0]) {
			expr = `\b` + expr
		}
		if isWordChar(kw[len(kw)-1]) {
			expr += `\b`
		}
		patterns[kw] = regexp.MustCompile(`(?i)` + expr)
	}
	return patterns
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// ExtractSkills 产出技能区块内容（HTML）。
// 显式切分出的技能小节优先、原样保留（换行转段落）；没有时退回
// 词表整词匹配，按词表的规范写法去重，拼成一句带标签的文本。
// 两者都没有就返回空串，不是错误。
func ExtractSkills(fullText, sectionText, language string) string {
	if strings.TrimSpace(sectionText) != "" {
		var sb strings.Builder
		for _, line := range splitLines(sectionText) {
			sb.WriteString(paragraph(line))
		}
		return sb.String()
	}

	var found []string
	for _, kw := range constants.SkillKeywords {
		if skillRes[kw].MatchString(fullText) {
			found = append(found, kw)
		}
	}
	if len(found) == 0 {
		return ""
	}

	label := "Extracted Skills"
	if language == types.LanguageZH {
		label = "自动提取技能"
	}
	return "<p>" + label + ": " + strings.Join(found, ", ") + "</p>"
}
