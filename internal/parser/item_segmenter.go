package parser

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-builder-go/internal/constants"
)

// ExtractedItem 条目切分的中间产物，随后由装配层映射为领域实体
type ExtractedItem struct {
	Title       string
	Date        string // 日期锚点行的完整原文
	Description string // HTML转义后的段落文本
}

// dateLineRe 日期锚点：19xx/20xx年份，或中英文"至今"类标记。
// 日期在简历里近乎无处不在且语法特征明显，是纯文本里最稳的切分信号。
var dateLineRe = regexp.MustCompile(`(19|20)\d{2}|(?i:present|current)|至今|目前|现在`)

// SegmentItems 把一个小节文本块切成离散条目。
//
// 典型版式是"标题/机构行，下一行日期"，算法据此做单次前向扫描加一行回看：
//   - 日期行给已有标题而无日期的在建条目补上日期；否则结清在建条目、
//     以该日期行开启新条目，并回看上一行（足够短时）作为新条目标题
//   - 非日期行在有标题时作为描述段落追加；尚无标题时直接当标题，
//     这一弱回退可能把描述文本误判为标题，属于已接受的精度取舍
//
// 整块找不到任何日期锚点时，合成单个兜底条目：标题用占位文案，
// 描述为整块文本（换行转段落）。非空输入保证至少产出一条。
func SegmentItems(block string, fallbackTitle string) []ExtractedItem {
	lines := splitLines(block)
	if len(lines) == 0 {
		return nil
	}

	hasAnchor := false
	for _, line := range lines {
		if dateLineRe.MatchString(line) {
			hasAnchor = true
			break
		}
	}
	if !hasAnchor {
		return []ExtractedItem{catchAllItem(lines, fallbackTitle)}
	}

	var items []ExtractedItem
	var cur *ExtractedItem

	for i, line := range lines {
		if dateLineRe.MatchString(line) {
			switch {
			case cur == nil:
				cur = &ExtractedItem{Date: line}
			case cur.Date == "":
				cur.Date = line
			default:
				items = append(items, *cur)
				cur = &ExtractedItem{Date: line}
				if prev := lines[i-1]; utf8.RuneCountInString(prev) < constants.TitleLookbackMaxLen {
					cur.Title = prev
				}
			}
			continue
		}

		switch {
		case cur == nil:
			// 块的第一行，当作首个条目的标题
			cur = &ExtractedItem{Title: line}
		case cur.Title != "":
			cur.Description += paragraph(line)
		default:
			cur.Title = line
		}
	}

	if cur != nil && (cur.Title != "" || cur.Date != "") {
		items = append(items, *cur)
	}

	if len(items) == 0 {
		return []ExtractedItem{catchAllItem(lines, fallbackTitle)}
	}
	return items
}

func catchAllItem(lines []string, fallbackTitle string) ExtractedItem {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(paragraph(line))
	}
	return ExtractedItem{Title: fallbackTitle, Description: sb.String()}
}

func paragraph(line string) string {
	return "<p>" + html.EscapeString(line) + "</p>"
}

func splitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
