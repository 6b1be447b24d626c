package cli

import (
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"ezgit.dev/ezgit/internal/errors"
	"ezgit.dev/ezgit/testhelpers"
)

func TestFinish(t *testing.T) {
	t.Run("success passes through", func(t *testing.T) {
		ctx := testhelpers.NewTestContext(testhelpers.NewFakeRunner(), &testhelpers.FakePrompter{})
		require.NoError(t, finish(ctx, nil))
	})

	t.Run("a canceled prompt becomes a clean exit", func(t *testing.T) {
		ctx := testhelpers.NewTestContext(testhelpers.NewFakeRunner(), &testhelpers.FakePrompter{})
		require.NoError(t, finish(ctx, errors.ErrCanceled))
	})

	t.Run("a wrapped cancellation is still clean", func(t *testing.T) {
		ctx := testhelpers.NewTestContext(testhelpers.NewFakeRunner(), &testhelpers.FakePrompter{})
		wrapped := fmt.Errorf("selecting a branch: %w", errors.ErrCanceled)
		require.NoError(t, finish(ctx, wrapped))
	})

	t.Run("other errors propagate unchanged", func(t *testing.T) {
		ctx := testhelpers.NewTestContext(testhelpers.NewFakeRunner(), &testhelpers.FakePrompter{})
		cause := goerrors.New("boom")
		require.Equal(t, cause, finish(ctx, cause))
	})
}
