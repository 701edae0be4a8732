// Package suggest 提供离线启发式的文案改进建议。
// 不依赖外部模型服务，规则简单但足以驱动确认界面的建议列表。
package suggest

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	googleuuid "github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-builder-go/internal/logger"
)

// 建议类型
const (
	KindGrammar = "grammar"
	KindTone    = "tone"
	KindClarity = "clarity"
)

// Suggestion 单条改进建议
type Suggestion struct {
	ID          string `json:"id"`
	Original    string `json:"original"`
	Improved    string `json:"improved"`
	Explanation string `json:"explanation"`
}

// Suggester 基于规则的文案分析器
type Suggester struct {
	logger zerolog.Logger
}

// NewSuggester 创建分析器
func NewSuggester() *Suggester {
	return &Suggester{
		logger: logger.Logger.With().Str("component", "suggester").Logger(),
	}
}

var (
	// 被动语态：was/were + 过去分词
	passiveRe = regexp.MustCompile(`(?i)\b(was|were)\s+(\w+ed)\b`)
	wasWereRe = regexp.MustCompile(`(?i)was|were`)

	// 弱动词，建议换成更有力的表达
	weakWords = []string{"helped", "worked on", "responsible for", "tried"}
)

// Analyze 分析一段文本并返回改进建议。
// 没有命中任何规则时返回一条占位建议，保证列表非空。
func (s *Suggester) Analyze(text, kind string) []Suggestion {
	if kind == "" {
		kind = KindGrammar
	}
	suggestions := make([]Suggestion, 0, 4)

	// 被动语态
	for _, match := range passiveRe.FindAllString(text, -1) {
		suggestions = append(suggestions, Suggestion{
			ID:          newSuggestionID(),
			Original:    match,
			Improved:    wasWereRe.ReplaceAllString(match, "successfully"),
			Explanation: "Consider using active voice for stronger impact.",
		})
	}

	// 弱动词
	lowered := strings.ToLower(text)
	for _, word := range weakWords {
		if strings.Contains(lowered, word) {
			suggestions = append(suggestions, Suggestion{
				ID:          newSuggestionID(),
				Original:    word,
				Improved:    "spearheaded",
				Explanation: fmt.Sprintf(`Replace weak verb %q with action-oriented words like "spearheaded", "orchestrated", or "executed".`, word),
			})
		}
	}

	// 句首大写
	for _, sentence := range strings.Split(text, ". ") {
		runes := []rune(sentence)
		if len(runes) == 0 {
			continue
		}
		first := runes[0]
		if unicode.IsLetter(first) && unicode.IsLower(first) {
			suggestions = append(suggestions, Suggestion{
				ID:          newSuggestionID(),
				Original:    snippet(sentence, 10),
				Improved:    snippet(string(unicode.ToUpper(first))+string(runes[1:]), 10),
				Explanation: "Start sentences with a capital letter.",
			})
		}
	}

	// 兜底占位建议
	if len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{
			ID:          newSuggestionID(),
			Original:    snippet(text, 20),
			Improved:    snippet(text, 20) + " (Enhanced)",
			Explanation: "No issues detected by offline rules. Connect a language model for context-aware improvements.",
		})
	}

	s.logger.Debug().
		Str("kind", kind).
		Int("suggestion_count", len(suggestions)).
		Msg("文案分析完成")

	return suggestions
}

// snippet 截取前max个字符并追加省略号
func snippet(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s + "..."
	}
	return string(runes[:max]) + "..."
}

func newSuggestionID() string {
	return googleuuid.NewString()
}
