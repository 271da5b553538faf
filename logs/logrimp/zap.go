package logrimp

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-numerics/commonerrors"
)

// NewZapLogger returns a zap development logger writing to w.
func NewZapLogger(w io.Writer) (logr.Logger, error) {
	if w == nil {
		return logr.Discard(), commonerrors.New(commonerrors.ErrUndefined, "missing log destination")
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(w), zapcore.DebugLevel)
	return zapr.NewLogger(zap.New(core)), nil
}
