package capture

import (
	"errors"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func divide(a, b int) int {
	return a / b
}

func TestDoReturnsRuntimeError(t *testing.T) {
	err := Do(func() { _ = divide(1, 0) })
	require.Error(t, err)

	var rerr runtime.Error
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, err.Error(), "divide by zero")
}

func TestDoWrapsNonErrorPanics(t *testing.T) {
	err := Do(func() { panic("boom") })

	var perr *PanicError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "boom", perr.Value)
	assert.Equal(t, "panic", perr.Kind())
	assert.Equal(t, "panic: boom", perr.Error())
	assert.NotEmpty(t, perr.Stack)
}

func TestDoWithoutPanic(t *testing.T) {
	ran := false
	require.NoError(t, Do(func() { ran = true }))
	assert.True(t, ran)
}

func TestCallPassesThroughResults(t *testing.T) {
	n, err := Call(func() (int, error) { return strconv.Atoi("12") })
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = Call(func() (int, error) { return strconv.Atoi("x") })
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
}

func TestCallRecoversPanics(t *testing.T) {
	n, err := Call(func() (int, error) { return divide(4, 0), nil })
	require.Error(t, err)
	assert.Zero(t, n)
}
