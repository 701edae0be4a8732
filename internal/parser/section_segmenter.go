package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-builder-go/internal/constants"
)

// SectionBlocks 小节键到该小节累计原始文本的映射，未出现的键为空串
type SectionBlocks map[string]string

// headerRes 每个小节一条前缀模式：英文同义词带词边界，中文同义词纯前缀。
// 静态表+固定遍历顺序，行为可审计（见constants.SectionOrder）。
var headerRes = buildHeaderPatterns()

func buildHeaderPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(constants.SectionHeaders))
	for key, synonyms := range constants.SectionHeaders {
		var ascii, cjk []string
		for _, s := range synonyms {
			if utf8.RuneCountInString(s) == len(s) {
				ascii = append(ascii, regexp.QuoteMeta(s))
			} else {
				cjk = append(cjk, regexp.QuoteMeta(s))
			}
		}
		var alts []string
		if len(ascii) > 0 {
			alts = append(alts, fmt.Sprintf(`^(?i:(?:%s)\b)`, strings.Join(ascii, "|")))
		}
		if len(cjk) > 0 {
			alts = append(alts, fmt.Sprintf(`^(?:%s)`, strings.Join(cjk, "|")))
		}
		patterns[key] = regexp.MustCompile(strings.Join(alts, "|"))
	}
	return patterns
}

// SegmentSections 单次从左到右扫描，按标题关键词把行归入当前小节。
// 标题行本身被消费不入块；标题行冒号后的内容保留为小节首行；
// 出现在任何标题之前的行不入块（联系字段提取独立作用于全文）。
// 状态只存在于本次调用内，不做回溯。
func SegmentSections(text string) SectionBlocks {
	blocks := make(SectionBlocks, len(constants.SectionOrder))
	for _, key := range constants.SectionOrder {
		blocks[key] = ""
	}

	current := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if key, rest, ok := matchHeader(line); ok {
			current = key
			if rest != "" {
				blocks[key] += rest + "\n"
			}
			continue
		}

		if current != "" {
			blocks[current] += line + "\n"
		}
	}
	return blocks
}

// matchHeader 判断一行是否为小节标题；过长的行不可能是标题。
// 返回标题命中的小节键，以及标题前缀和冒号之后残留的内容。
func matchHeader(line string) (key, rest string, ok bool) {
	if utf8.RuneCountInString(line) >= constants.HeaderMaxLen {
		return "", "", false
	}
	for _, k := range constants.SectionOrder {
		loc := headerRes[k].FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest = strings.TrimSpace(strings.TrimLeft(line[loc[1]:], ":： \t"))
		return k, rest, true
	}
	return "", "", false
}
