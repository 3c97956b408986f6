package clierr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode_MapsCategoriesPerSpec(t *testing.T) {
	assert.Equal(t, 2, CategoryConfig.ExitCode())
	assert.Equal(t, 2, CategoryInput.ExitCode())
	assert.Equal(t, 3, CategoryIO.ExitCode())
	assert.Equal(t, 1, CategoryPolicy.ExitCode())
}

func TestError_MessageIncludesCategoryAndIdent(t *testing.T) {
	err := Config("(unclosed", "invalid regex", errors.New("missing )"))
	assert.Contains(t, err.Error(), "config")
	assert.Contains(t, err.Error(), "(unclosed")
	assert.Contains(t, err.Error(), "missing )")
}

func TestPolicy_HasNoDetail(t *testing.T) {
	err := Policy("--fail-none", "no in-scope match occurred")
	assert.Equal(t, "policy: no in-scope match occurred (--fail-none)", err.Error())
}
