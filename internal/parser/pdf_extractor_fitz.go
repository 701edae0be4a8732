package parser

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
	"github.com/rs/zerolog"

	"resume-builder-go/internal/constants"
	"resume-builder-go/internal/logger"
)

// baseRenderDPI go-fitz的基准渲染分辨率，放大倍数以此为底
const baseRenderDPI = 72

// FitzPDFExtractor 基于go-fitz(MuPDF)的文本获取器。
// 先走内嵌文本提取；结果过短（疑似扫描件）时逐页渲染位图交给OCR引擎。
// 数字生成的PDF走快路径，扫描件才付OCR的时间成本。
type FitzPDFExtractor struct {
	minTextLength int
	scaleFactor   float64
	ocr           OCREngine // 为nil时关闭OCR回退
	logger        zerolog.Logger
}

// FitzOption 提取器的配置选项
type FitzOption func(*FitzPDFExtractor)

// WithOCREngine 配置OCR回退引擎
func WithOCREngine(engine OCREngine) FitzOption {
	return func(e *FitzPDFExtractor) {
		e.ocr = engine
	}
}

// WithMinTextLength 覆盖触发OCR回退的最小文本长度
func WithMinTextLength(n int) FitzOption {
	return func(e *FitzPDFExtractor) {
		if n > 0 {
			e.minTextLength = n
		}
	}
}

// WithScaleFactor 覆盖OCR前的页面放大倍数
func WithScaleFactor(f float64) FitzOption {
	return func(e *FitzPDFExtractor) {
		if f > 0 {
			e.scaleFactor = f
		}
	}
}

// WithFitzLogger 配置自定义日志记录器
func WithFitzLogger(l zerolog.Logger) FitzOption {
	return func(e *FitzPDFExtractor) {
		e.logger = l
	}
}

// NewFitzPDFExtractor 创建PDF文本获取器
func NewFitzPDFExtractor(options ...FitzOption) *FitzPDFExtractor {
	e := &FitzPDFExtractor{
		minTextLength: constants.MinTextLength,
		scaleFactor:   constants.OCRScaleFactor,
		logger:        logger.Logger.With().Str("component", "pdf_extractor").Logger(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// ExtractFromFile 从PDF文件路径提取文本
func (e *FitzPDFExtractor) ExtractFromFile(ctx context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: 打开文件 %s: %v", ErrDocumentRead, filePath, err)
	}
	return e.ExtractFromBytes(ctx, data)
}

// ExtractFromBytes 从PDF字节流提取文本。
// 返回错误只会是 ErrDocumentRead / ErrEmptyText，或上下文取消/超时。
func (e *FitzPDFExtractor) ExtractFromBytes(ctx context.Context, data []byte) (string, error) {
	startTime := time.Now()

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentRead, err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	e.logger.Debug().Int("pages", numPages).Int("bytes", len(data)).Msg("开始提取PDF内嵌文本")

	var sb strings.Builder
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		pageText, err := doc.Text(i)
		if err != nil {
			// 单页失败不中断，继续后面的页
			e.logger.Warn().Int("page", i).Err(err).Msg("页面文本提取失败")
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	text := sb.String()
	if visibleLength(text) >= e.minTextLength {
		e.logger.Debug().
			Int("chars", len(text)).
			Dur("elapsed", time.Since(startTime)).
			Msg("内嵌文本提取完成")
		return text, nil
	}

	// 文本近乎为空，大概率是纯图像扫描件
	if e.ocr == nil {
		return "", fmt.Errorf("%w: 内嵌文本仅 %d 个有效字符且OCR未启用", ErrEmptyText, visibleLength(text))
	}

	e.logger.Info().
		Int("visible_chars", visibleLength(text)).
		Msg("内嵌文本过短，回退OCR识别")

	ocrText, err := e.ocrPages(ctx, doc, numPages)
	if err != nil {
		return "", err
	}
	if visibleLength(ocrText) < e.minTextLength {
		return "", fmt.Errorf("%w: OCR后仍仅 %d 个有效字符", ErrEmptyText, visibleLength(ocrText))
	}

	e.logger.Info().
		Int("chars", len(ocrText)).
		Dur("elapsed", time.Since(startTime)).
		Msg("OCR回退提取完成")
	return ocrText, nil
}

// ocrPages 逐页渲染并识别。有意串行：并发渲染会同时持有多页位图，
// 内存无上界。单页位图在本轮循环结束后即可被回收。
func (e *FitzPDFExtractor) ocrPages(ctx context.Context, doc *fitz.Document, numPages int) (string, error) {
	var sb strings.Builder
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		img, err := doc.ImageDPI(i, baseRenderDPI*e.scaleFactor)
		if err != nil {
			e.logger.Warn().Int("page", i).Err(err).Msg("页面渲染失败，跳过")
			continue
		}

		pageText, err := e.ocr.RecognizeImage(ctx, img)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			e.logger.Warn().Int("page", i).Err(err).Msg("页面OCR失败，跳过")
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// visibleLength 折叠空白后的字符数，用于判断提取是否"近乎为空"
func visibleLength(text string) int {
	return utf8.RuneCountInString(strings.Join(strings.Fields(text), " "))
}
