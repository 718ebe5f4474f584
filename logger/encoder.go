package logger

import (
	"go.uber.org/zap/zapcore"
)

// newMinimalEncoder returns the human-readable console encoder:
//
//	15:04:05 INFO  resolve  synthesized missing parent  class=WorldSpace
func newMinimalEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(minimalEncoderConfig())
}

func minimalEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "component",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: "  ",
	}
}
