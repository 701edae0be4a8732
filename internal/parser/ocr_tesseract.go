package parser

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"resume-builder-go/internal/logger"
)

// Runner 包装外部命令执行，测试中可打桩替换
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		logger.Error().
			Str("cmd", name).
			Str("args", strings.Join(args, " ")).
			Int64("duration_ms", dur.Milliseconds()).
			Err(err).
			Str("stderr", truncateForLog(errb.String(), 8<<10)).
			Msg("外部命令执行失败")
	} else {
		logger.Debug().
			Str("cmd", name).
			Int64("duration_ms", dur.Milliseconds()).
			Int("stdout_bytes", out.Len()).
			Msg("外部命令执行完成")
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

// OCREngine 位图文字识别引擎
type OCREngine interface {
	RecognizeImage(ctx context.Context, img image.Image) (string, error)
}

// TesseractOCR 调用tesseract命令行的OCR引擎，语言包覆盖拉丁+简中
type TesseractOCR struct {
	binary    string
	languages string
	runner    Runner
	logger    zerolog.Logger
}

// TesseractOption TesseractOCR的配置选项
type TesseractOption func(*TesseractOCR)

// WithTesseractRunner 替换命令执行器（测试用）
func WithTesseractRunner(r Runner) TesseractOption {
	return func(t *TesseractOCR) {
		t.runner = r
	}
}

// NewTesseractOCR 创建tesseract引擎；binary为空用PATH中的tesseract，
// languages为空默认 "eng+chi_sim"
func NewTesseractOCR(binary, languages string, options ...TesseractOption) *TesseractOCR {
	if binary == "" {
		binary = "tesseract"
	}
	if languages == "" {
		languages = "eng+chi_sim"
	}
	t := &TesseractOCR{
		binary:    binary,
		languages: languages,
		runner:    execRunner{},
		logger:    logger.Logger.With().Str("component", "tesseract_ocr").Logger(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// RecognizeImage 把页面位图写入临时PNG后交给tesseract识别。
// 临时文件在返回前删除，位图本身随调用结束释放。
func (t *TesseractOCR) RecognizeImage(ctx context.Context, img image.Image) (string, error) {
	tmp, err := os.CreateTemp("", "resume-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("创建OCR临时文件失败: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return "", fmt.Errorf("编码页面位图失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("写入OCR临时文件失败: %w", err)
	}

	// tesseract <img> stdout -l eng+chi_sim
	out, errb, err := t.runner.Run(ctx, t.binary, tmpPath, "stdout", "-l", t.languages)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("tesseract识别失败: %w (%s)", err, truncateForLog(string(errb), 512))
	}
	return string(out), nil
}
