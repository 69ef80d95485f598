package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *XaheenError
		want []string
	}{
		{
			name: "not found carries template id",
			err:  NewNotFoundError("component"),
			want: []string{"[not_found]", "template:component"},
		},
		{
			name: "compile wraps cause",
			err:  NewCompileError("page", fmt.Errorf("unexpected token")),
			want: []string{"[compile]", "template:page", "unexpected token"},
		},
		{
			name: "validation carries field path",
			err:  NewValidationError("project.name", "must not be empty"),
			want: []string{"[validation]", "field:project.name", "must not be empty"},
		},
		{
			name: "cycle carries chain",
			err:  NewCyclicInheritanceError([]string{"a", "b", "a"}),
			want: []string{"[cyclic_inheritance]", "chain:a -> b -> a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewIOError("writing output", cause)

	assert.ErrorIs(t, err, cause)
}

func TestMatchers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.True(t, IsCompile(NewCompileError("x", nil)))
	assert.True(t, IsRender(NewRenderError("x", nil)))
	assert.True(t, IsValidation(NewValidationError("f", "m")))
	assert.True(t, IsCycle(NewCyclicInheritanceError(nil)))

	assert.False(t, IsNotFound(NewCompileError("x", nil)))
	assert.False(t, IsCompile(stderrors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestMatchersSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading template: %w", NewNotFoundError("base"))
	assert.True(t, IsNotFound(err))
}

func TestIsComparesByType(t *testing.T) {
	assert.ErrorIs(t, NewNotFoundError("a"), NewNotFoundError("b"))
	assert.NotErrorIs(t, NewNotFoundError("a"), NewCompileError("a", nil))
}

func TestWithTemplate(t *testing.T) {
	err := NewIOError("reading sidecar", nil).WithTemplate("child")
	assert.Contains(t, err.Error(), "template:child")
}

func TestValidationErrors(t *testing.T) {
	var v ValidationErrors
	assert.NoError(t, v.OrNil())

	v.Add("project.name", "must not be empty")
	v.Add("templates.dir", "must not be empty")

	err := v.OrNil()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project.name")
	assert.Contains(t, err.Error(), "templates.dir")
	assert.True(t, IsValidation(err))
}
