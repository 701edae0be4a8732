package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"resume-builder-go/internal/constants"
	"resume-builder-go/internal/types"
)

// 联系方式的固定模式，均取首个匹配。
// 模式顺序有意义：先窄后宽，避免宽模式抢走已被认领的token。
// 首匹配策略可能错过文本后部更好的候选，这是记录在案的已知局限。
var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`)

	// 依次：可带国家码的11位手机号、区号式座机、3-3-4分组、3-4-4分组
	phoneRe = regexp.MustCompile(`(\+?86[- ]?)?1[3-9]\d{9}|\d{3,4}-\d{7,8}|\d{3}-\d{3}-\d{4}|\d{3}-\d{4}-\d{4}`)

	linkRe = regexp.MustCompile(`(?i)https?://[^\s]+|github\.com/[^\s]+|linkedin\.com/in/[^\s]+`)

	digitRe = regexp.MustCompile(`\d`)
)

// ExtractFields 从整篇文本提取单值联系字段并猜测姓名。
// 确定性、每字段首匹配即停，永不失败；提取不到就留空。
func ExtractFields(text string) types.Profile {
	var profile types.Profile

	if m := emailRe.FindString(text); m != "" {
		profile.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		profile.Phone = m
	}
	if m := linkRe.FindString(text); m != "" {
		profile.Link = m
	}

	profile.FullName = guessName(text)
	return profile
}

// guessName 扫描开头若干非空行，取第一条"像姓名"的行：
// 长度2~29字符、不含数字、不含@、不是标题词。找不到属于正常结果。
func guessName(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
		if len(lines) >= constants.NameScanLines {
			break
		}
	}

	for _, line := range lines {
		n := utf8.RuneCountInString(line)
		if n < constants.NameMinLen || n > constants.NameMaxLen {
			continue
		}
		if digitRe.MatchString(line) || strings.Contains(line, "@") {
			continue
		}
		if isDeniedHeading(line) {
			continue
		}
		return line
	}
	return ""
}

func isDeniedHeading(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range constants.NameDenylist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
