package processor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder-go/internal/parser"
	"resume-builder-go/internal/types"
)

// stubExtractor 预设文本或错误的PDFExtractor桩
type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	return s.ExtractFromBytes(ctx, nil)
}

func (s *stubExtractor) ExtractFromBytes(ctx context.Context, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

// blockingExtractor 一直阻塞到上下文取消
type blockingExtractor struct{}

func (b *blockingExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	return b.ExtractFromBytes(ctx, nil)
}

func (b *blockingExtractor) ExtractFromBytes(ctx context.Context, data []byte) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

const sampleResume = "John Smith\njohn@x.com\n+1 555-123-4567\nEducation\nMIT\n2018 - 2020\nExperience\nAcme Corp\n2020 - Present\nBuilt things"

func TestImportPDFEndToEnd(t *testing.T) {
	importer := NewResumeImporter(&stubExtractor{text: sampleResume})

	result, err := importer.ImportPDF(context.Background(), []byte("pdf"), "en")
	require.NoError(t, err)

	assert.Equal(t, "john@x.com", result.Profile.Email)
	assert.Equal(t, "John Smith", result.Profile.FullName)

	require.Len(t, result.Educations, 1)
	assert.Equal(t, "MIT", result.Educations[0].School)
	assert.Equal(t, "2018", result.Educations[0].StartDate)
	assert.Equal(t, "2020", result.Educations[0].EndDate)

	require.Len(t, result.Experiences, 1)
	assert.Equal(t, "Acme Corp", result.Experiences[0].Company)
	assert.Equal(t, "2020", result.Experiences[0].StartDate)
	assert.Equal(t, "Present", result.Experiences[0].EndDate)
	assert.Contains(t, result.Experiences[0].Description, "Built things")

	assert.Equal(t, types.LanguageEN, result.Language)
}

func TestImportPDFEmptyTextError(t *testing.T) {
	importer := NewResumeImporter(&stubExtractor{err: parser.ErrEmptyText})

	_, err := importer.ImportPDF(context.Background(), []byte("pdf"), "en")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestImportPDFDocumentReadError(t *testing.T) {
	importer := NewResumeImporter(&stubExtractor{err: parser.ErrDocumentRead})

	_, err := importer.ImportPDF(context.Background(), []byte("zz"), "en")
	assert.ErrorIs(t, err, ErrDocumentRead)
}

func TestImportPDFTimeout(t *testing.T) {
	importer := NewResumeImporter(&blockingExtractor{}, WithTimeout(20*time.Millisecond))

	_, err := importer.ImportPDF(context.Background(), []byte("pdf"), "en")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestParseTextExplicitSkillsSection(t *testing.T) {
	importer := NewResumeImporter(nil)

	result := importer.ParseText("张三\n技能: Java, Python\n", "zh")

	// 显式技能小节，原文进入内容，不经词表
	assert.Contains(t, result.Skills.Content, "Java, Python")
	assert.Equal(t, types.LanguageZH, result.Language)
}

func TestParseTextManualPasteFullShape(t *testing.T) {
	importer := NewResumeImporter(nil)

	result := importer.ParseText("", "en")

	// 结果永远是完整形状：空值而非缺字段
	require.NotNil(t, result)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.Title)
	assert.NotNil(t, result.Educations)
	assert.NotNil(t, result.Experiences)
	assert.NotNil(t, result.CustomSections)
	assert.Empty(t, result.Educations)
	assert.Empty(t, result.Profile.Email)
}

func TestParseTextCatchAllSection(t *testing.T) {
	importer := NewResumeImporter(nil)

	// 教育小节没有任何日期锚点：单个兜底条目，描述为整块内容
	result := importer.ParseText("Education\nSelf taught\nLots of reading\n", "en")

	require.Len(t, result.Educations, 1)
	assert.Equal(t, "Extracted Education", result.Educations[0].School)
	assert.Equal(t, "<p>Self taught</p><p>Lots of reading</p>", result.Educations[0].Description)
	assert.Empty(t, result.Educations[0].StartDate)
}

func TestParseTextProjectsBecomeCustomSection(t *testing.T) {
	importer := NewResumeImporter(nil)

	result := importer.ParseText("项目经历\n聊天机器人\n2021 - 2022\n", "zh")

	assert.Empty(t, result.Projects)
	require.Len(t, result.CustomSections, 1)
	assert.Equal(t, "项目经历", result.CustomSections[0].Title)
	assert.Contains(t, result.CustomSections[0].Content, "聊天机器人")
	assert.Contains(t, result.CustomSections[0].Content, "2021 - 2022")
}

func TestParseTextEntityIDsUnique(t *testing.T) {
	importer := NewResumeImporter(nil)

	text := "Education\nMIT\n2018 - 2019\nStanford\n2019 - 2020\nExperience\nAcme\n2020 - 2021\nGlobex\n2021 - 2022\n"
	result := importer.ParseText(text, "en")

	seen := map[string]bool{result.ID: true}
	var ids []string
	for _, e := range result.Educations {
		ids = append(ids, e.ID)
	}
	for _, e := range result.Experiences {
		ids = append(ids, e.ID)
	}
	for _, id := range ids {
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "实体标识重复: %s", id)
		seen[id] = true
	}
}

func TestParseTextConcurrentCallsIndependent(t *testing.T) {
	importer := NewResumeImporter(nil)

	done := make(chan *types.Resume, 2)
	go func() { done <- importer.ParseText(sampleResume, "en") }()
	go func() { done <- importer.ParseText("工作经历\n某公司\n2019 - 至今\n", "zh") }()

	a, b := <-done, <-done
	// 两次调用互不污染：各自形状完整且标识不同
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, a.ID, b.ID)
}
