package logrimp

import (
	"io"

	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/hashicorp/go-hclog"
)

// NewHclogLogger returns a new HCLog logger writing to w.
func NewHclogLogger(w io.Writer) logr.Logger {
	return hclogr.Wrap(hclog.New(&hclog.LoggerOptions{
		Output: w,
		Level:  hclog.Debug,
	}))
}
