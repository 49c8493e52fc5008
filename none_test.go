// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/option"
)

func TestNoneQueries(t *testing.T) {
	o := option.None[int]()

	assert.False(t, o.IsDefined())
	assert.True(t, o.IsEmpty())
	assert.Equal(t, 7, o.GetOrElse(7))
	assert.Equal(t, 8, o.GetOrCall(func() int { return 8 }))

	v, ok := o.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestNoneGet(t *testing.T) {
	requireFails(t, option.ErrEmptyValue, func() { option.None[string]().Get() })
}

func TestNoneGetOrCall(t *testing.T) {
	requireFails(t, option.ErrInvalidArgument, func() { option.None[int]().GetOrCall(nil) })
}

func TestNoneGetOrThrow(t *testing.T) {
	errMissing := errors.New("missing")
	_, err := option.None[int]().GetOrThrow(errMissing)
	assert.Same(t, errMissing, err)

	_, err = option.None[int]().GetOrThrow(nil)
	require.ErrorIs(t, err, option.ErrInvalidArgument)
}

func TestNoneOrElse(t *testing.T) {
	alt := option.Some("alt")
	assert.Equal(t, alt, option.None[string]().OrElse(alt))
	assert.True(t, option.None[string]().OrElse(option.None[string]()).IsEmpty())

	requireFails(t, option.ErrInvalidArgument, func() { option.None[string]().OrElse(nil) })
}

func TestNoneAbsorbs(t *testing.T) {
	var s spy
	o := option.None[int]()

	assert.True(t, o.Map(s.mapInt).IsEmpty())
	assert.True(t, o.FlatMap(s.bind).IsEmpty())
	assert.True(t, o.Filter(s.pred).IsEmpty())
	assert.True(t, o.FilterNot(s.pred).IsEmpty())
	assert.True(t, o.ForAll(s.each).IsEmpty())
	assert.True(t, o.Select(0).IsEmpty())
	assert.True(t, o.Reject(0).IsEmpty())
	assert.Equal(t, 5, option.FoldLeft(o, 5, func(a, x int) int { s.calls++; return a + x }))
	assert.Equal(t, 5, option.FoldRight(o, 5, func(x, a int) int { s.calls++; return a + x }))
	assert.Equal(t, 0, s.calls)
}

func TestNoneIgnoresNilCallbacks(t *testing.T) {
	o := option.None[int]()
	assert.NotPanics(t, func() {
		o.Map(nil)
		o.FlatMap(nil)
		o.Filter(nil)
		o.FilterNot(nil)
		o.ForAll(nil)
	})
}

func TestNoneAll(t *testing.T) {
	o := option.None[int]()
	assert.Empty(t, slices.Collect(o.All()))
	assert.Empty(t, slices.Collect(o.All()))
}

func TestNoneString(t *testing.T) {
	assert.Equal(t, "None()", option.None[int]().String())
}

func TestNoneInterchangeable(t *testing.T) {
	assert.Equal(t, option.None[int](), option.None[int]())
	assert.Equal(t, option.None[int](), option.Some(1).Filter(func(int) bool { return false }))
}

func TestNoneOrElseTypedNil(t *testing.T) {
	var p *option.Lazy[string]
	requireFails(t, option.ErrInvalidArgument, func() { option.None[string]().OrElse(p) })
}
