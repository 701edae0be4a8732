package handler

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder-go/internal/parser"
	"resume-builder-go/internal/processor"
)

// fakeExtractor 固定返回预设文本或错误
type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	return f.ExtractFromBytes(ctx, nil)
}

func (f *fakeExtractor) ExtractFromBytes(ctx context.Context, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestHandleImportPDF(t *testing.T) {
	importer := processor.NewResumeImporter(&fakeExtractor{
		text: "Jane Doe\njane@x.com\nExperience\nAcme\n2020 - Present\n",
	})
	h := NewImportHandler(importer)

	result, err := h.HandleImportPDF(context.Background(), bytes.NewReader([]byte("pdf")), "resume.pdf", "en")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", result.Profile.Email)
	require.Len(t, result.Experiences, 1)
	assert.Equal(t, "Acme", result.Experiences[0].Company)
}

func TestHandleImportPDFEmptyTextPassthrough(t *testing.T) {
	importer := processor.NewResumeImporter(&fakeExtractor{err: parser.ErrEmptyText})
	h := NewImportHandler(importer)

	_, err := h.HandleImportPDF(context.Background(), bytes.NewReader([]byte("pdf")), "scan.pdf", "en")
	assert.ErrorIs(t, err, processor.ErrEmptyText)
}

func TestHandleImportText(t *testing.T) {
	h := NewImportHandler(processor.NewResumeImporter(nil))

	result := h.HandleImportText(context.Background(), "李四\nlisi@x.com\n", "zh")
	require.NotNil(t, result)
	assert.Equal(t, "lisi@x.com", result.Profile.Email)
	assert.Contains(t, result.Title, "导入的简历")
}
