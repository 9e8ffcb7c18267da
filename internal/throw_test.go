package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleMixPanicRecover(t *testing.T) {
	testFn := func(throw func()) (err error) {
		defer func() {
			recoveredErr := HandleMixPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if throw != nil {
			throw()
		}
		return nil
	}

	t.Run("with fatalf", func(t *testing.T) {
		err := testFn(func() { fatalf("kaboom %d", 3) })
		assert.EqualError(t, err, "kaboom 3")
		assert.False(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("with invalidf", func(t *testing.T) {
		err := testFn(func() { invalidf("bad point %d", 7) })
		assert.EqualError(t, err, "bad point 7: invalid input")
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(func() { panic("true panic") })
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(func() {
				var points []Point
				_ = points[1]
			})
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(nil)
		assert.NoError(t, err)
	})
}
