package processor

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"resume-builder-go/internal/constants"
	"resume-builder-go/internal/logger"
	"resume-builder-go/internal/parser"
	"resume-builder-go/internal/types"
)

// ResumeImporter 导入流水线的编排者：
// 文本获取 → 清洗 → 字段提取/小节切分 → 条目切分 → 结果装配。
// 各阶段严格串行，后一阶段依赖前一阶段的完整输出。
// 自身不持有跨调用的可变状态，并发导入互不影响。
type ResumeImporter struct {
	pdfExtractor PDFExtractor
	timeout      time.Duration
	logger       zerolog.Logger
}

// NewResumeImporter 创建导入器
func NewResumeImporter(extractor PDFExtractor, options ...Option) *ResumeImporter {
	ri := &ResumeImporter{
		pdfExtractor: extractor,
		timeout:      constants.ImportTimeout,
		logger:       logger.Logger.With().Str("component", "resume_importer").Logger(),
	}
	for _, option := range options {
		option(ri)
	}
	return ri
}

// ImportPDF 从PDF字节流走完整导入流水线。
// 返回的部分简历只交给确认界面，本方法不做任何持久化。
// 调用方拿到错误后用 errors.Is 区分三条恢复路径。
func (ri *ResumeImporter) ImportPDF(ctx context.Context, data []byte, uiLang string) (*types.Resume, error) {
	importID := newImportID()
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, ri.timeout)
	defer cancel()

	text, err := ri.pdfExtractor.ExtractFromBytes(ctx, data)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
			ri.logger.Warn().Str("import_id", importID).Dur("elapsed", time.Since(startTime)).Msg("导入超时")
			return nil, NewTimeoutError(importID, err.Error())
		case errors.Is(err, parser.ErrEmptyText):
			ri.logger.Info().Str("import_id", importID).Msg("文档无有效文本")
			return nil, NewEmptyTextError(importID, err.Error())
		default:
			ri.logger.Warn().Str("import_id", importID).Err(err).Msg("文档读取失败")
			return nil, NewDocumentReadError(importID, err.Error())
		}
	}

	result := ri.ParseText(text, uiLang)

	ri.logger.Info().
		Str("import_id", importID).
		Str("language", result.Language).
		Int("educations", len(result.Educations)).
		Int("experiences", len(result.Experiences)).
		Int("custom_sections", len(result.CustomSections)).
		Dur("elapsed", time.Since(startTime)).
		Msg("导入解析完成")
	return result, nil
}

// ParseText 从已有文本解析简历，手动粘贴路径从这里进入（跳过文本获取）。
// 纯尽力而为：提取不到的字段是空值，永不失败。
func (ri *ResumeImporter) ParseText(text string, uiLang string) *types.Resume {
	clean := parser.Normalize(text)

	detectedLang := parser.DetectLanguage(clean)
	profile := parser.ExtractFields(clean)
	blocks := parser.SegmentSections(clean)

	eduItems := parser.SegmentItems(blocks[constants.SectionEducation], catchAllTitle(constants.SectionEducation, detectedLang))
	expItems := parser.SegmentItems(blocks[constants.SectionExperience], catchAllTitle(constants.SectionExperience, detectedLang))
	projItems := parser.SegmentItems(blocks[constants.SectionProjects], catchAllTitle(constants.SectionProjects, detectedLang))

	skillsContent := parser.ExtractSkills(clean, blocks[constants.SectionSkills], detectedLang)

	return AssembleResult(profile, eduItems, expItems, projItems, skillsContent, detectedLang, uiLang)
}

// catchAllTitle 兜底条目的占位标题，跟随内容语言
func catchAllTitle(sectionKey, language string) string {
	zh := language == types.LanguageZH
	switch sectionKey {
	case constants.SectionEducation:
		if zh {
			return "提取的教育经历"
		}
		return "Extracted Education"
	case constants.SectionExperience:
		if zh {
			return "提取的工作经历"
		}
		return "Extracted Experience"
	case constants.SectionProjects:
		if zh {
			return "提取的项目经历"
		}
		return "Extracted Projects"
	}
	if zh {
		return "提取的内容"
	}
	return "Extracted Content"
}

// newImportID 本次导入的标识，用于日志与错误关联
func newImportID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return "unknown"
	}
	return id.String()
}
