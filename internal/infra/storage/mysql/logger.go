package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/blockarchive/internal/pkg/logger"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold marks queries worth a warning.
const slowQueryThreshold = 200 * time.Millisecond

// logWriter forwards gorm's printf-style output to the structured logger.
type logWriter struct{}

func (logWriter) Printf(format string, args ...any) {
	logger.Debug(context.Background(), fmt.Sprintf(format, args...), "component", "gorm")
}

func newLogger() gormlogger.Interface {
	return gormlogger.New(logWriter{}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
