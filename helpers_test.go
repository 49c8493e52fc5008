// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/option"
)

// requireFails asserts that f panics with an *option.Error wrapping target.
func requireFails(t *testing.T, target error, f func()) {
	t.Helper()
	_, err := option.Try(func() struct{} {
		f()
		return struct{}{}
	})
	require.ErrorIs(t, err, target)
}

// spy counts calls to the callbacks it hands out.
type spy struct {
	calls int
}

func (s *spy) mapInt(x int) int {
	s.calls++
	return x + 1
}

func (s *spy) pred(int) bool {
	s.calls++
	return true
}

func (s *spy) each(int) {
	s.calls++
}

func (s *spy) bind(x int) option.Option[int] {
	s.calls++
	return option.Some(x)
}
