package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"resume-builder-go/internal/config"
	"resume-builder-go/internal/logger"
	"resume-builder-go/internal/parser"
	"resume-builder-go/internal/processor"
	"resume-builder-go/internal/storage"
	"resume-builder-go/internal/types"
	"resume-builder-go/pkg/utils"
)

// 命令行参数定义
var (
	pdfFilePath  = flag.String("pdf", "", "PDF简历文件路径")
	textFilePath = flag.String("text", "", "纯文本简历文件路径（跳过文本获取阶段）")
	command      = flag.String("cmd", "parse", "执行的命令: extract=仅提取文本, parse=完整解析")
	maxLen       = flag.Int("maxlen", 1000, "显示的文本最大长度，设为-1显示全部")
	uiLang       = flag.String("ui-lang", types.LanguageEN, "界面语言 (en/zh)，决定默认标题")
	savePath     = flag.String("save", "", "解析结果保存到该SQLite文件，空则只打印")
	disableOCR   = flag.Bool("no-ocr", false, "关闭OCR回退")
)

func main() {
	flag.Parse()
	logger.Init(logger.Config{Level: "warn", Format: "pretty"})

	switch *command {
	case "extract":
		handleExtractCommand()
	case "parse":
		handleParseCommand()
	default:
		fmt.Printf("错误: 未知命令 '%s'。支持的命令: extract, parse\n", *command)
		flag.Usage()
		os.Exit(1)
	}
}

// handleExtractCommand 仅提取文本并打印，不做解析
func handleExtractCommand() {
	if *pdfFilePath == "" {
		fmt.Println("错误: extract命令需要 -pdf 参数")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	text, err := buildExtractor().ExtractFromFile(ctx, *pdfFilePath)
	if err != nil {
		fmt.Printf("提取失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("提取到 %d 字符:\n", len(text))
	if *maxLen >= 0 {
		fmt.Println(utils.TruncateString(text, *maxLen))
	} else {
		fmt.Println(text)
	}
}

// handleParseCommand 走完整导入流水线并打印结构化结果
func handleParseCommand() {
	var (
		result *types.Resume
		err    error
	)

	switch {
	case *textFilePath != "":
		data, readErr := os.ReadFile(*textFilePath)
		if readErr != nil {
			fmt.Printf("读取文本文件失败: %v\n", readErr)
			os.Exit(1)
		}
		importer := processor.NewResumeImporter(nil)
		result = importer.ParseText(string(data), *uiLang)
	case *pdfFilePath != "":
		data, readErr := os.ReadFile(*pdfFilePath)
		if readErr != nil {
			fmt.Printf("读取PDF文件失败: %v\n", readErr)
			os.Exit(1)
		}
		importer := processor.NewResumeImporter(buildExtractor())
		result, err = importer.ImportPDF(context.Background(), data, *uiLang)
		if err != nil {
			fmt.Printf("导入失败: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Println("错误: parse命令需要 -pdf 或 -text 参数")
		os.Exit(1)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("序列化结果失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(output))

	if *savePath != "" {
		saveResult(result)
	}
}

// saveResult 把解析结果写入本地简历库
func saveResult(result *types.Resume) {
	store, err := storage.NewSQLite(&config.SQLiteConfig{Path: *savePath})
	if err != nil {
		fmt.Printf("打开简历库失败: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.SaveResume(context.Background(), result); err != nil {
		fmt.Printf("保存失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("已保存: %s (%s)\n", result.ID, result.Title)
}

func buildExtractor() *parser.FitzPDFExtractor {
	options := []parser.FitzOption{}
	if !*disableOCR {
		options = append(options, parser.WithOCREngine(parser.NewTesseractOCR("", "")))
	}
	return parser.NewFitzPDFExtractor(options...)
}
