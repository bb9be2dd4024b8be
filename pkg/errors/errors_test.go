package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrTopicNotFound, "no such topic")

	assert.Equal(t, ErrTopicNotFound, err.Code)
	assert.Equal(t, "no such topic", err.Message)
	assert.Equal(t, "[TOPIC_NOT_FOUND] no such topic", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrUnsupportedKind, "no handler for %s", "chan int")

	assert.Equal(t, "[UNSUPPORTED_KIND] no handler for chan int", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		inner := fmt.Errorf("boom")
		err := Wrap(inner, ErrConfigLoad, "loading config")

		require.NotNil(t, err)
		assert.Equal(t, "[CONFIG_LOAD] loading config: boom", err.Error())
		assert.Equal(t, inner, errors.Unwrap(err))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrConfigLoad, "loading config"))
		assert.Nil(t, Wrapf(nil, ErrConfigLoad, "loading %s", "config"))
	})
}

func TestIs(t *testing.T) {
	err := Newf(ErrUnsupportedKind, "no handler for chan int")

	assert.True(t, errors.Is(err, New(ErrUnsupportedKind, "")))
	assert.False(t, errors.Is(err, New(ErrTopicNotFound, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrap(fmt.Errorf("bad yaml"), ErrListingParse, "parsing listings")

	assert.True(t, IsErrorCode(err, ErrListingParse))
	assert.False(t, IsErrorCode(err, ErrRender))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrListingParse))
	assert.False(t, IsErrorCode(nil, ErrListingParse))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrRender, GetErrorCode(New(ErrRender, "render failed")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrUnsupportedKind, "no handler").WithDetail("go_type", "chan int")

	assert.Equal(t, "chan int", err.Details["go_type"])
}
