package handler

import (
	"context"
	"fmt"

	"resume-builder-go/internal/suggest"
)

// SuggestionHandler 文案改进建议接口
type SuggestionHandler struct {
	suggester *suggest.Suggester
}

// NewSuggestionHandler 创建建议处理器
func NewSuggestionHandler(suggester *suggest.Suggester) *SuggestionHandler {
	return &SuggestionHandler{suggester: suggester}
}

// HandleAnalyze 分析文本并返回建议列表
func (h *SuggestionHandler) HandleAnalyze(ctx context.Context, text string, kind string) ([]suggest.Suggestion, error) {
	if text == "" {
		return nil, fmt.Errorf("待分析文本不能为空")
	}
	return h.suggester.Analyze(text, kind), nil
}
