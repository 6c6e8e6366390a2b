package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facile/pkg/validator"
)

// requireCause asserts err is a failure outcome with cause and args.
func requireCause(t *testing.T, err error, cause string, args ...string) {
	t.Helper()
	var re *validator.RuleError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, cause, re.Cause)
	if len(args) == 0 {
		assert.Empty(t, re.Args)
		return
	}
	assert.Equal(t, args, re.Args)
}

func TestRequired(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"", " ", "\t\n", "   "} {
		requireCause(t, validator.Required(v, ""), validator.CauseRequired)
	}
	for _, v := range []string{"a", " a ", "0", "checked"} {
		assert.NoError(t, validator.Required(v, ""), v)
	}
}

func TestRequiredIf(t *testing.T) {
	t.Parallel()

	t.Run("other value set", func(t *testing.T) {
		t.Parallel()
		requireCause(t, validator.RequiredIf("", "yes"), validator.CauseRequired)
		assert.NoError(t, validator.RequiredIf("x", "yes"))
	})

	t.Run("other value empty", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.RequiredIf("", ""))
		assert.NoError(t, validator.RequiredIf("", "   "))
	})
}

func TestAccepted(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Accepted(validator.CheckedValue, ""))
	requireCause(t, validator.Accepted("", ""), validator.CauseAccepted)
	requireCause(t, validator.Accepted("on", ""), validator.CauseAccepted)
}

func TestStartsWithEndsWith(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.StartsWith("https://x", "https://"))
	requireCause(t, validator.StartsWith("http://x", "https://"), validator.CauseStartsWith, "https://")
	assert.ErrorIs(t, validator.StartsWith("x", ""), validator.ErrMissingArgument)

	assert.NoError(t, validator.EndsWith("photo.png", ".png"))
	requireCause(t, validator.EndsWith("photo.jpg", ".png"), validator.CauseEndsWith, ".png")
	assert.ErrorIs(t, validator.EndsWith("x", ""), validator.ErrMissingArgument)
}
