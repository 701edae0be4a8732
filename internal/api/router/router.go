package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-builder-go/internal/api/handler"
	"resume-builder-go/internal/processor"
	"resume-builder-go/internal/storage"
	"resume-builder-go/internal/types"
)

// importTextRequest 文本导入请求体
type importTextRequest struct {
	Text   string `json:"text"`
	UILang string `json:"ui_lang"`
}

// suggestionRequest 文案建议请求体
type suggestionRequest struct {
	Text string `json:"text"`
	Kind string `json:"type"`
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(
	h *server.Hertz,
	importHandler *handler.ImportHandler,
	resumeHandler *handler.ResumeHandler,
	suggestionHandler *handler.SuggestionHandler,
) {
	api := h.Group("/api/v1")

	api.POST("/import/pdf", func(c context.Context, ctx *app.RequestContext) {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}
		uiLang := ctx.PostForm("ui_lang")
		if uiLang == "" {
			uiLang = types.LanguageEN
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		result, err := importHandler.HandleImportPDF(c, file, fileHeader.Filename, uiLang)
		if err != nil {
			writeImportError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, result)
	})

	api.POST("/import/text", func(c context.Context, ctx *app.RequestContext) {
		var req importTextRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		if req.UILang == "" {
			req.UILang = types.LanguageEN
		}
		ctx.JSON(consts.StatusOK, importHandler.HandleImportText(c, req.Text, req.UILang))
	})

	api.POST("/resumes", func(c context.Context, ctx *app.RequestContext) {
		var resume types.Resume
		if err := ctx.BindJSON(&resume); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		saved, err := resumeHandler.HandleSaveResume(c, &resume)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, saved)
	})

	api.PUT("/resumes/:id", func(c context.Context, ctx *app.RequestContext) {
		var resume types.Resume
		if err := ctx.BindJSON(&resume); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		// 路径里的ID为准，防止请求体改写别的简历
		resume.ID = ctx.Param("id")
		saved, err := resumeHandler.HandleSaveResume(c, &resume)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, saved)
	})

	api.GET("/resumes", func(c context.Context, ctx *app.RequestContext) {
		list, err := resumeHandler.HandleListResumes(c)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"resumes": list})
	})

	api.GET("/resumes/:id", func(c context.Context, ctx *app.RequestContext) {
		resume, err := resumeHandler.HandleGetResume(c, ctx.Param("id"))
		if err != nil {
			writeStorageError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, resume)
	})

	api.DELETE("/resumes/:id", func(c context.Context, ctx *app.RequestContext) {
		if err := resumeHandler.HandleDeleteResume(c, ctx.Param("id")); err != nil {
			writeStorageError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"status": "deleted"})
	})

	api.GET("/resumes/:id/versions", func(c context.Context, ctx *app.RequestContext) {
		versions, err := resumeHandler.HandleListVersions(c, ctx.Param("id"))
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"versions": versions})
	})

	api.GET("/versions/:versionId", func(c context.Context, ctx *app.RequestContext) {
		snapshot, err := resumeHandler.HandleGetVersion(c, ctx.Param("versionId"))
		if err != nil {
			writeStorageError(ctx, err)
			return
		}
		ctx.JSON(consts.StatusOK, snapshot)
	})

	api.POST("/suggestions", func(c context.Context, ctx *app.RequestContext) {
		var req suggestionRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}
		suggestions, err := suggestionHandler.HandleAnalyze(c, req.Text, req.Kind)
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"suggestions": suggestions})
	})

	// 健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// writeImportError 导入失败按三类恢复路径映射响应码：
// 超时、无有效文本、读取失败各自对应前端不同的提示文案。
func writeImportError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, processor.ErrTimeout):
		ctx.JSON(consts.StatusGatewayTimeout, utils.H{
			"code":  "IMPORT_TIMEOUT",
			"error": "解析超时，请尝试手动粘贴文本",
		})
	case errors.Is(err, processor.ErrEmptyText):
		ctx.JSON(consts.StatusUnprocessableEntity, utils.H{
			"code":  "EMPTY_TEXT",
			"error": "未能从文档中提取到有效文本，请尝试手动粘贴",
		})
	case errors.Is(err, processor.ErrDocumentRead):
		ctx.JSON(consts.StatusBadRequest, utils.H{
			"code":  "DOCUMENT_READ_FAILED",
			"error": "文件无法读取，请确认是有效的PDF文件",
		})
	default:
		ctx.JSON(consts.StatusInternalServerError, utils.H{
			"code":  "INTERNAL_ERROR",
			"error": err.Error(),
		})
	}
}

func writeStorageError(ctx *app.RequestContext, err error) {
	if errors.Is(err, storage.ErrResumeNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": err.Error()})
		return
	}
	ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
}
