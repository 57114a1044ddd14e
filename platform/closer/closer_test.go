package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	for _, name := range []string{"pool", "producer", "tracer"} {
		c.AddNamed(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"tracer", "producer", "pool"}, order)
}

func TestCloseAllJoinsErrorsAndRunsOnce(t *testing.T) {
	t.Parallel()

	c := New()
	errBoom := errors.New("boom")
	calls := 0
	c.AddNamed("broken", func(context.Context) error {
		calls++
		return errBoom
	})
	c.AddNamed("fine", func(context.Context) error {
		calls++
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, 2, calls)
}
