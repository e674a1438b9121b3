package testx

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProducerCountsCalls(t *testing.T) {
	var calls int
	p := Producer(&calls, "x")
	require.Equal(t, 0, calls)
	require.Equal(t, "x", p())
	require.Equal(t, "x", p())
	require.Equal(t, 2, calls)
}

func TestCounted(t *testing.T) {
	var calls int
	f := Counted(&calls, strconv.Itoa)
	require.Equal(t, "7", f(7))
	require.Equal(t, 1, calls)
}

func TestMust(t *testing.T) {
	require.Equal(t, 3, Must(3, nil)(t))
	require.Equal(t, "ok", Must(strconv.Unquote(`"ok"`))(t))
}
