package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/spf13/pflag"

	"resume-builder-go/internal/api/handler"
	"resume-builder-go/internal/api/router"
	"resume-builder-go/internal/config"
	"resume-builder-go/internal/logger"
	"resume-builder-go/internal/parser"
	"resume-builder-go/internal/processor"
	"resume-builder-go/internal/storage"
	"resume-builder-go/internal/suggest"
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "配置文件路径")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logger)
	// Hertz框架日志也走zerolog
	glog.SetLogger(hertzadapter.From(logger.Logger))
	logger.Info().Str("config", configPath).Msg("配置加载成功")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化存储失败")
	}
	defer storageManager.Close()

	importer := buildImporter(cfg)
	importHandler := handler.NewImportHandler(importer)
	resumeHandler := handler.NewResumeHandler(storageManager)
	suggestionHandler := handler.NewSuggestionHandler(suggest.NewSuggester())

	h := server.New(
		server.WithHostPorts(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		server.WithHandleMethodNotAllowed(true),
	)

	router.RegisterRoutes(h, importHandler, resumeHandler, suggestionHandler)
	logger.Info().Str("host", cfg.Server.Host).Int("port", cfg.Server.Port).Msg("HTTP路由注册成功，服务器启动中")

	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("服务器关闭失败")
	}
	logger.Info().Msg("优雅退出完成")
}

// buildImporter 按配置组装导入流水线：
// OCR开启时挂Tesseract回退引擎，关闭时短文本直接报无有效文本。
func buildImporter(cfg *config.Config) *processor.ResumeImporter {
	extractorOptions := []parser.FitzOption{
		parser.WithMinTextLength(cfg.Import.MinTextLength),
		parser.WithScaleFactor(cfg.OCR.ScaleFactor),
	}
	if cfg.OCR.Enabled {
		ocr := parser.NewTesseractOCR(cfg.OCR.Tesseract, cfg.OCR.Languages)
		extractorOptions = append(extractorOptions, parser.WithOCREngine(ocr))
	}
	extractor := parser.NewFitzPDFExtractor(extractorOptions...)

	return processor.NewResumeImporter(
		extractor,
		processor.WithTimeout(time.Duration(cfg.Import.TimeoutSeconds)*time.Second),
	)
}
