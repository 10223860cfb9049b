package observe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueNotifiesOnChange(t *testing.T) {
	v := NewValue(1, func(a, b int) bool { return a == b })
	var got [][2]int
	v.OnChange(func(old, new int) { got = append(got, [2]int{old, new}) })

	require.True(t, v.Set(2))
	require.False(t, v.Set(2))
	require.True(t, v.Set(3))
	require.Equal(t, 3, v.Get())
	require.Equal(t, [][2]int{{1, 2}, {2, 3}}, got)
}

func TestValueWithoutEqualAlwaysNotifies(t *testing.T) {
	v := NewValue[any](nil, nil)
	hits := 0
	v.OnChange(func(_, _ any) { hits++ })
	v.Set("x")
	v.Set("x")
	require.Equal(t, 2, hits)
}

func TestValueCancelRemovesHook(t *testing.T) {
	v := NewValue("", func(a, b string) bool { return a == b })
	hits := 0
	cancel := v.OnChange(func(_, _ string) { hits++ })
	require.Equal(t, 1, v.Hooks())

	cancel()
	cancel()
	v.Set("changed")
	require.Zero(t, hits)
	require.Zero(t, v.Hooks())
}
