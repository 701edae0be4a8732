package parser

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blankPagePDF 单页空白PDF（无内嵌文本），内嵌文本提取结果必然低于阈值
const blankPagePDF = "%PDF-1.4\n" +
	"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
	"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
	"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] >>\nendobj\n" +
	"xref\n0 4\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000058 00000 n \n" +
	"0000000115 00000 n \n" +
	"trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n186\n%%EOF\n"

// stubOCREngine 固定返回预设文本或错误，并记录调用次数
type stubOCREngine struct {
	text  string
	err   error
	calls int
}

func (s *stubOCREngine) RecognizeImage(ctx context.Context, img image.Image) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestFitzExtractorOCRFallbackReturnsRecognizedText(t *testing.T) {
	ocrText := strings.Repeat("recognized resume text 识别文本 ", 5)
	stub := &stubOCREngine{text: ocrText}
	extractor := NewFitzPDFExtractor(WithOCREngine(stub))

	text, err := extractor.ExtractFromBytes(context.Background(), []byte(blankPagePDF))
	require.NoError(t, err)

	// 空白页触发回退，结果来自OCR引擎
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, text, "recognized resume text")
}

func TestFitzExtractorOCRStillTooShort(t *testing.T) {
	stub := &stubOCREngine{text: "短"}
	extractor := NewFitzPDFExtractor(WithOCREngine(stub))

	_, err := extractor.ExtractFromBytes(context.Background(), []byte(blankPagePDF))
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Equal(t, 1, stub.calls)
}

func TestFitzExtractorNoOCREngineConfigured(t *testing.T) {
	extractor := NewFitzPDFExtractor()

	// 文本不足且没有OCR引擎：直接报无有效文本，而非读取失败
	_, err := extractor.ExtractFromBytes(context.Background(), []byte(blankPagePDF))
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.NotErrorIs(t, err, ErrDocumentRead)
}

func TestFitzExtractorOCRErrorsSkippedPerPage(t *testing.T) {
	stub := &stubOCREngine{err: errors.New("engine crashed")}
	extractor := NewFitzPDFExtractor(WithOCREngine(stub))

	// 单页识别失败被跳过，整体产出不足阈值时归为无有效文本
	_, err := extractor.ExtractFromBytes(context.Background(), []byte(blankPagePDF))
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Equal(t, 1, stub.calls)
}

func TestFitzExtractorThresholdConfigurable(t *testing.T) {
	stub := &stubOCREngine{text: "x"}
	extractor := NewFitzPDFExtractor(WithOCREngine(stub), WithMinTextLength(1))

	// 阈值降到1后，OCR产出单个字符也算足够
	text, err := extractor.ExtractFromBytes(context.Background(), []byte(blankPagePDF))
	require.NoError(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, text, "x")
}
