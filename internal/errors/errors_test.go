package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder(t *testing.T) {
	t.Parallel()

	base := NewStd("file vanished")
	ee := New(base).
		Component("dataset").
		Category(CategoryFileIO).
		Context("file_path", "data/count_data.csv").
		Build()

	assert.Equal(t, "file vanished", ee.Error())
	assert.Equal(t, "dataset", ee.Component)
	assert.Equal(t, CategoryFileIO, ee.Category)
	assert.Equal(t, "data/count_data.csv", ee.Context["file_path"])
	assert.False(t, ee.Timestamp.IsZero())
	assert.True(t, Is(ee, base))
}

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	ee := Newf("row %d: bad month", 7).Build()
	assert.Equal(t, ComponentUnknown, ee.Component)
	assert.Equal(t, CategoryGeneric, ee.Category)
	assert.Equal(t, "row 7: bad month", ee.Error())
}

func TestUnwrapChain(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading geometry: %w", io.ErrUnexpectedEOF)
	ee := New(wrapped).Category(CategoryFileParsing).Build()

	assert.True(t, Is(ee, io.ErrUnexpectedEOF))
	assert.Equal(t, wrapped, Unwrap(ee))
}

func TestCategoryMatching(t *testing.T) {
	t.Parallel()

	a := New(NewStd("a")).Category(CategoryValidation).Build()
	b := New(NewStd("b")).Category(CategoryValidation).Build()
	c := New(NewStd("c")).Category(CategoryNotFound).Build()

	assert.True(t, Is(a, b), "same category should match")
	assert.False(t, Is(a, c), "different category should not match")
}

func TestGetContextCopy(t *testing.T) {
	t.Parallel()

	ee := New(NewStd("x")).Context("row", 3).Build()
	ctx := ee.GetContext()
	require.NotNil(t, ctx)
	ctx["row"] = 99

	assert.Equal(t, 3, ee.Context["row"], "mutating the copy must not affect the error")
}
