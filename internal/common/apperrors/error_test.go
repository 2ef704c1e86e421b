package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("TestError", func(t *testing.T) {
		ErrBaseErr := New("base error")
		assert.Equal(t, "base error", ErrBaseErr.Error())
		assert.Equal(t, "msg", ErrBaseErr.New("msg").Error())
		assert.ErrorIs(t, ErrBaseErr, ErrBaseErr)

		ErrFirstLevel := ErrBaseErr.New("first level")
		assert.Equal(t, "first level", ErrFirstLevel.Error())
		assert.ErrorIs(t, ErrFirstLevel, ErrBaseErr)

		ErrAnotherErr := New("another error")
		ErrWrappedErr := ErrFirstLevel.Err(ErrAnotherErr)
		assert.Equal(t, "first level", ErrWrappedErr.Error())
		assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
		assert.ErrorIs(t, ErrWrappedErr, ErrAnotherErr)

		err := errors.New("error")
		ErrWrappedErr = ErrFirstLevel.Err(err)
		assert.Equal(t, "first level", ErrWrappedErr.Error())
		assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
		assert.ErrorIs(t, ErrWrappedErr, err)

		ErrWrappedErr = ErrFirstLevel.MsgErr("msg", err)
		assert.Equal(t, "msg", ErrWrappedErr.Error())
		assert.ErrorIs(t, ErrWrappedErr, ErrBaseErr)
		assert.ErrorIs(t, ErrWrappedErr, err)
	})

	t.Run("TestSentinelNotMutated", func(t *testing.T) {
		ErrBase := New("base").SetStatusCode(http.StatusNotFound)
		derived := ErrBase.Msg("with detail").SetCtx(map[string]any{"id": "abc"})

		assert.Equal(t, "base", ErrBase.Error())
		assert.Nil(t, ErrBase.Ctx())
		assert.Equal(t, "with detail", derived.Error())
		assert.Equal(t, "abc", derived.Ctx()["id"])
		assert.Equal(t, http.StatusNotFound, derived.StatusCode())
		assert.ErrorIs(t, derived, ErrBase)
	})

	t.Run("TestErrorAll", func(t *testing.T) {
		errA := errors.New("cause a")
		errB := errors.New("cause b")
		wrapped := New("top").Err(errA, errB)
		assert.Equal(t, "top: cause a; cause b", wrapped.ErrorAll())
		assert.Equal(t, "top", wrapped.Error())
	})
}
