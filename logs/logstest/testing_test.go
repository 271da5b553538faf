package logstest

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-numerics/commonerrors"
)

func TestNewNullTestLogger(t *testing.T) {
	logger, hook := NewNullTestLogger()
	message := faker.Sentence()
	logger.WithValues("foo", "bar").Info(message)
	logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, message, hook.AllEntries()[0].Message)
	assert.Equal(t, "bar", hook.AllEntries()[0].Data["foo"])
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger(t)
	logger.Info(faker.Sentence())
	logger.Info(faker.Sentence(), "foo", "bar")
	logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
}

func TestNewStdTestLogger(t *testing.T) {
	logger := NewStdTestLogger()
	logger.WithValues("foo", "bar").Info(faker.Sentence())
	logger.Error(commonerrors.ErrUnexpected, faker.Sentence(), faker.Word(), faker.Name())
}
