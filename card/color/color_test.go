package color_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    color.Color
		valid       bool
	}{
		{"lowercase_name", "red", color.Red, true},
		{"uppercase_name", "GREEN", color.Green, true},
		{"mixed_case_with_spaces", "  Blue ", color.Blue, true},
		{"yellow", "yellow", color.Yellow, true},
		{"none_is_not_selectable", "none", color.None, false},
		{"unknown_name", "purple", color.None, false},
		{"empty_input", "", color.None, false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result, err := color.ByName(scenario.input)
			require.Equal(t, scenario.expected, result)
			if scenario.valid {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, consts.ErrorsInvalidColorChoice))
		})
	}
}

func TestSelectable(t *testing.T) {
	for _, c := range color.Selectable {
		require.True(t, c.Selectable())
	}
	require.False(t, color.None.Selectable())
	require.False(t, color.Color(42).Selectable())
}

func TestPaintWithoutColor(t *testing.T) {
	color.Disable()
	require.Equal(t, "[5]", color.Red.Paintf("[%d]", 5))
	require.Equal(t, "blue", color.Blue.String())
	require.Equal(t, "color(42)", color.Color(42).Name())
}
