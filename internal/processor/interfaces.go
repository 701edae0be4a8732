package processor

import "context"

//
// 文本获取相关接口
//

// PDFExtractor PDF文本获取接口。
// 实现负责内嵌文本提取与（可选的）OCR回退，返回的错误应可用
// errors.Is 对 parser 包的哨兵错误做区分。
type PDFExtractor interface {
	// ExtractFromFile 从PDF文件路径提取文本
	ExtractFromFile(ctx context.Context, filePath string) (string, error)

	// ExtractFromBytes 从PDF字节流提取文本
	ExtractFromBytes(ctx context.Context, data []byte) (string, error)
}
