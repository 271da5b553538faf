package logrimp

import (
	"bytes"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numerics/commonerrors"
	"github.com/ARM-software/golang-numerics/commonerrors/errortest"
)

func TestLoggerImplementations(t *testing.T) {
	tests := []struct {
		newLogger func(buf *bytes.Buffer) logr.Logger
		name      string
	}{
		{
			newLogger: func(buf *bytes.Buffer) logr.Logger {
				l, err := NewZapLogger(buf)
				require.NoError(t, err)
				return l
			},
			name: "Zap",
		},
		{
			newLogger: func(buf *bytes.Buffer) logr.Logger { return NewWriterLogr(buf) },
			name:      "Writer",
		},
		{
			newLogger: func(buf *bytes.Buffer) logr.Logger { return NewStdLogger(buf) },
			name:      "Standard library",
		},
		{
			newLogger: func(buf *bytes.Buffer) logr.Logger { return NewHclogLogger(buf) },
			name:      "HClog",
		},
		{
			newLogger: func(buf *bytes.Buffer) logr.Logger { return NewLogrusLogger(buf) },
			name:      "Logrus",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := test.newLogger(buf)
			message := faker.Sentence()
			logger.WithName(faker.Name()).WithValues("foo", "bar").Info(message)
			logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
			assert.Contains(t, buf.String(), message)
		},
		)
	}
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.WithValues("foo", "bar").Info(faker.Sentence())
	assert.False(t, logger.Enabled())
}

func TestZapLoggerWithoutWriter(t *testing.T) {
	_, err := NewZapLogger(nil)
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestQuietLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewQuietLogger(NewWriterLogr(buf)).WithName("quiet").WithValues("foo", "bar")
	info := faker.Sentence()
	logger.Info(info)
	assert.Empty(t, buf.String())
	logger.Error(commonerrors.ErrUnexpected, "failure")
	assert.Contains(t, buf.String(), "failure")
	assert.Contains(t, buf.String(), "quiet")
	assert.NotContains(t, buf.String(), info)
}
