package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Next(t *testing.T) {
	tests := []struct {
		current  Theme
		expected Theme
	}{
		{ThemeSystem, ThemeLight},
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeSystem},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"->"+tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.current.Next())
		})
	}
}

func TestTheme_NextPeriodThree(t *testing.T) {
	// three cycles return to the start, no two consecutive states equal
	for _, start := range []Theme{ThemeSystem, ThemeLight, ThemeDark} {
		t.Run(start.String(), func(t *testing.T) {
			cur := start
			for i := 0; i < 3; i++ {
				next := cur.Next()
				assert.NotEqual(t, cur, next)
				cur = next
			}
			assert.Equal(t, start, cur)
		})
	}
}

func TestTheme_Resolve(t *testing.T) {
	tests := []struct {
		theme    Theme
		osDark   bool
		expected Mode
	}{
		{ThemeLight, false, ModeLight},
		{ThemeLight, true, ModeLight},
		{ThemeDark, false, ModeDark},
		{ThemeDark, true, ModeDark},
		{ThemeSystem, false, ModeLight},
		{ThemeSystem, true, ModeDark},
	}

	for _, tc := range tests {
		t.Run(tc.theme.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.theme.Resolve(tc.osDark))
		})
	}
}

func TestParseTheme(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, tc := range []struct {
			in       string
			expected Theme
		}{
			{"system", ThemeSystem},
			{"light", ThemeLight},
			{"dark", ThemeDark},
		} {
			parsed, err := ParseTheme(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		}
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		_, err := ParseTheme("solarized")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown theme")
	})

	t.Run("empty value rejected", func(t *testing.T) {
		_, err := ParseTheme("")
		require.Error(t, err)
	})
}

func TestTheme_UnmarshalText(t *testing.T) {
	var th Theme
	require.NoError(t, th.UnmarshalText([]byte("dark")))
	assert.Equal(t, ThemeDark, th)

	require.Error(t, th.UnmarshalText([]byte("bogus")))
	assert.Equal(t, ThemeDark, th, "failed unmarshal must not modify the value")
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "light", ModeLight.String())
	assert.Equal(t, "dark", ModeDark.String())
}

func TestParseMode(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		for _, tc := range []struct {
			in       string
			expected Mode
		}{
			{"light", ModeLight},
			{"dark", ModeDark},
		} {
			parsed, err := ParseMode(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		}
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		_, err := ParseMode("system")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mode")
	})
}

func TestMode_TextRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeLight, ModeDark} {
		t.Run(mode.String(), func(t *testing.T) {
			text, err := mode.MarshalText()
			require.NoError(t, err)

			var decoded Mode
			require.NoError(t, decoded.UnmarshalText(text))
			assert.Equal(t, mode, decoded)
		})
	}

	var m Mode = ModeDark
	require.Error(t, m.UnmarshalText([]byte("bogus")))
	assert.Equal(t, ModeDark, m, "failed unmarshal must not modify the value")
}
