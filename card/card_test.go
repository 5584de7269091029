package card_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/action"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/consts"
	"github.com/stretchr/testify/require"
)

func init() {
	color.Disable()
}

func TestString(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    string
	}{
		{"number_card", card.NewNumberCard(color.Blue, 7), "[7](blue)"},
		{"skip_card", card.NewSkipCard(color.Red), "(/)(red)"},
		{"reverse_card", card.NewReverseCard(color.Green), "<=>(green)"},
		{"draw_two_card", card.NewDrawTwoCard(color.Yellow), "+2!(yellow)"},
		{"wild_card", card.NewWildCard(), "(*)"},
		{"wild_draw_four_card", card.NewWildDrawFourCard(), "+4!"},
		{"colored_wild_card", card.NewWildCard().WithColor(color.Red), "(*)(red)"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.String())
		})
	}
}

func TestNumber(t *testing.T) {
	require.Equal(t, 4, card.NewNumberCard(color.Green, 4).Number())
	require.Equal(t, consts.NoNumber, card.NewSkipCard(color.Green).Number())
	require.Equal(t, consts.NoNumber, card.NewWildCard().Number())
}

func TestWithColor(t *testing.T) {
	wild := card.NewWildDrawFourCard()
	colored := wild.WithColor(color.Yellow)

	require.Equal(t, color.None, wild.Color())
	require.Equal(t, color.Yellow, colored.Color())
	require.Equal(t, card.WildDrawFour, colored.Kind())
	require.Equal(t, wild, colored.Uncolored())
}

func TestUncolored(t *testing.T) {
	numberCard := card.NewNumberCard(color.Red, 3)
	require.Equal(t, numberCard, numberCard.Uncolored())
}

func TestActions(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    []action.Action
	}{
		{
			description: "number_card_has_no_effect",
			card:        card.NewNumberCard(color.Blue, 1),
			expected:    nil,
		},
		{
			description: "skip_card_skips",
			card:        card.NewSkipCard(color.Blue),
			expected:    []action.Action{action.SkipTurn{}},
		},
		{
			description: "reverse_card_reverses",
			card:        card.NewReverseCard(color.Blue),
			expected:    []action.Action{action.ReverseTurns{}},
		},
		{
			description: "draw_two_card_skips_then_draws_two",
			card:        card.NewDrawTwoCard(color.Blue),
			expected:    []action.Action{action.SkipTurn{}, action.DrawCards{Amount: 2}},
		},
		{
			description: "wild_card_picks_color",
			card:        card.NewWildCard(),
			expected:    []action.Action{action.PickColor{}},
		},
		{
			description: "wild_draw_four_card_picks_color_skips_then_draws_four",
			card:        card.NewWildDrawFourCard(),
			expected:    []action.Action{action.PickColor{}, action.SkipTurn{}, action.DrawCards{Amount: 4}},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Actions())
		})
	}
}

func TestActionsReturnsCopy(t *testing.T) {
	actions := card.NewDrawTwoCard(color.Red).Actions()
	actions[0] = action.ReverseTurns{}
	require.Equal(t, action.SkipTurn{}, card.NewDrawTwoCard(color.Red).Actions()[0])
}
