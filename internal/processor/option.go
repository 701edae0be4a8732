package processor

import (
	"time"

	"github.com/rs/zerolog"
)

// Option ResumeImporter的配置选项
type Option func(*ResumeImporter)

// WithTimeout 覆盖单次导入的总超时预算
func WithTimeout(d time.Duration) Option {
	return func(ri *ResumeImporter) {
		if d > 0 {
			ri.timeout = d
		}
	}
}

// WithLogger 配置自定义日志记录器
func WithLogger(l zerolog.Logger) Option {
	return func(ri *ResumeImporter) {
		ri.logger = l
	}
}
