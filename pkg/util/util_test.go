package util

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("path not found")
	err := WrapErrorf(orig, ErrNotFound, "no path found from %s to %s", "A", "B")

	require.Error(t, err)
	assert.Equal(t, "no path found from A to B", err.Error())
	assert.ErrorIs(t, err, orig)

	var ierr *Error
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, ErrNotFound, ierr.Code())
}

func TestReadLine(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("A|B|1|2\r\nB|C|3|4"))

	line, err := ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "A|B|1|2", line)

	line, err = ReadLine(br)
	require.NoError(t, err)
	assert.Equal(t, "B|C|3|4", line)

	_, err = ReadLine(br)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReverseG(t *testing.T) {
	arr := []int{1, 2, 3}
	got := ReverseG(arr)
	assert.Equal(t, []int{3, 2, 1}, got)
	assert.Equal(t, []int{1, 2, 3}, arr)
}

func TestStopConcurrentOperation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, StopConcurrentOperation(ctx))
	cancel()
	assert.True(t, StopConcurrentOperation(ctx))
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 20.13, RoundFloat(20.125001, 2))
}
