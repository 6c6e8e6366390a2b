package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facile/pkg/i18n"
)

func TestDictionary_Format(t *testing.T) {
	t.Parallel()

	d := i18n.Dictionary{
		"between": "between $1 and $2",
		"twice":   "$1/$1",
	}

	tests := []struct {
		name string
		key  string
		args []string
		want string
	}{
		{"positional args", "between", []string{"1", "5"}, "between 1 and 5"},
		{"missing arg renders empty", "between", []string{"1"}, "between 1 and "},
		{"repeated placeholder", "twice", []string{"x"}, "x/x"},
		{"unknown key is the template", "Value $1 is bad", []string{"7"}, "Value 7 is bad"},
		{"zero placeholder renders empty", "$0!", nil, "!"},
		{"extra args ignored", "twice", []string{"a", "b"}, "a/a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Format(tt.key, tt.args...))
		})
	}
}

func TestBuiltinDictionaries(t *testing.T) {
	t.Parallel()

	t.Run("english covers every cause", func(t *testing.T) {
		t.Parallel()
		en := i18n.En()
		for _, cause := range i18n.Causes {
			assert.True(t, en.Has(cause), cause)
		}
	})

	t.Run("complete dictionaries cover every cause", func(t *testing.T) {
		t.Parallel()
		for _, d := range []i18n.Dictionary{i18n.Fr(), i18n.De(), i18n.It(), i18n.Zh(), i18n.Cs(), i18n.Nl()} {
			for _, cause := range i18n.Causes {
				assert.True(t, d.Has(cause), cause)
			}
		}
	})

	t.Run("english templates", func(t *testing.T) {
		t.Parallel()
		en := i18n.En()
		assert.Equal(t, "Min length is 3", en.Format(i18n.CauseMinLength, "3"))
		assert.Equal(t, "Please enter a number between 1 and 10", en.Format(i18n.CauseBetweenNumber, "1", "10"))
		assert.Equal(t, `The value must start with "ab"`, en.Format(i18n.CauseStartsWith, "ab"))
	})

	t.Run("persian falls back to the key", func(t *testing.T) {
		t.Parallel()
		fa := i18n.Fa()
		assert.Equal(t, "این فیلد الزامی است", fa.Format(i18n.CauseRequired))
		assert.Equal(t, i18n.CauseAlpha, fa.Format(i18n.CauseAlpha))
	})

	t.Run("copies are independent", func(t *testing.T) {
		t.Parallel()
		en := i18n.En()
		en[i18n.CauseRequired] = "changed"
		assert.Equal(t, "This field is required", i18n.En()[i18n.CauseRequired])
	})

	t.Run("lookup by tag", func(t *testing.T) {
		t.Parallel()
		d, ok := i18n.Builtin("de")
		assert.True(t, ok)
		assert.Equal(t, "Dieses Feld ist erforderlich", d[i18n.CauseRequired])

		_, ok = i18n.Builtin("xx")
		assert.False(t, ok)
		assert.Len(t, i18n.Builtins(), 8)

		for lang, want := range map[string]string{
			i18n.LangItalian: "Questo campo è obbligatorio",
			i18n.LangChinese: "此项为必填项",
			i18n.LangCzech:   "Toto pole je povinné",
			i18n.LangDutch:   "Dit veld is verplicht",
		} {
			d, ok := i18n.Builtin(lang)
			require.True(t, ok, lang)
			assert.Equal(t, want, d[i18n.CauseRequired], lang)
		}
		assert.Equal(t, "Voer een getal tussen 1 en 5 in", i18n.Nl().Format(i18n.CauseBetweenNumber, "1", "5"))
	})
}

func TestCreateLang(t *testing.T) {
	t.Parallel()

	base := i18n.Dictionary{"a": "A", "b": "B"}
	out := i18n.CreateLang(base, i18n.Dictionary{"b": "bee", "c": "C"})

	assert.Equal(t, i18n.Dictionary{"a": "A", "b": "bee", "c": "C"}, out)
	assert.Equal(t, "B", base["b"])
	assert.Equal(t, i18n.Dictionary{"x": "X"}, i18n.CreateLang(nil, i18n.Dictionary{"x": "X"}))
}

// Mutates process-wide state; not parallel.
func TestSetCurrent(t *testing.T) {
	t.Cleanup(func() { i18n.SetCurrent(nil) })

	assert.Equal(t, "This field is required", i18n.Format(i18n.CauseRequired))

	i18n.SetCurrent(i18n.Fr())
	assert.Equal(t, "Ce champ est obligatoire", i18n.Format(i18n.CauseRequired))

	i18n.SetCurrent(nil)
	assert.Equal(t, "Max length is 2", i18n.Current().Format(i18n.CauseMaxLength, "2"))
}
