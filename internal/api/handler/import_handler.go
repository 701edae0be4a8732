package handler

import (
	"context"
	"fmt"
	"io"

	"resume-builder-go/internal/logger"
	"resume-builder-go/internal/processor"
	"resume-builder-go/internal/types"
)

// ImportHandler 导入接口的协调者：接文件、跑流水线、返回部分简历。
// 解析结果只回给确认界面，这里不落库。
type ImportHandler struct {
	importer *processor.ResumeImporter
}

// NewImportHandler 创建导入处理器
func NewImportHandler(importer *processor.ResumeImporter) *ImportHandler {
	return &ImportHandler{importer: importer}
}

// HandleImportPDF 处理PDF导入请求
func (h *ImportHandler) HandleImportPDF(ctx context.Context, reader io.Reader, filename string, uiLang string) (*types.Resume, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("读取上传文件内容失败: %w", err)
	}

	logger.Info().
		Str("filename", filename).
		Int("size_bytes", len(data)).
		Str("ui_lang", uiLang).
		Msg("收到PDF导入请求")

	return h.importer.ImportPDF(ctx, data, uiLang)
}

// HandleImportText 处理手动粘贴文本的导入请求。
// 文本路径跳过文本获取阶段，永不失败。
func (h *ImportHandler) HandleImportText(ctx context.Context, text string, uiLang string) *types.Resume {
	logger.Debug().
		Int("text_len", len(text)).
		Str("ui_lang", uiLang).
		Msg("收到文本导入请求")

	return h.importer.ParseText(text, uiLang)
}
