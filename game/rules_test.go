package game_test

import (
	"testing"

	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/game"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		lastPlayedCard card.Card
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(),
			lastPlayedCard: card.NewSkipCard(color.Red),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "same_kind_action_cards_with_different_color",
			candidateCard:  card.NewReverseCard(color.Red),
			lastPlayedCard: card.NewReverseCard(color.Blue),
			expectedResult: true,
		},
		{
			description:    "different_kind_action_cards_with_different_color",
			candidateCard:  card.NewSkipCard(color.Red),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue),
			expectedResult: false,
		},
		{
			description:    "different_kind_action_cards_with_same_color",
			candidateCard:  card.NewReverseCard(color.Blue),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue),
			expectedResult: true,
		},
		{
			description:    "action_card_on_number_card_with_different_color",
			candidateCard:  card.NewReverseCard(color.Red),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			expectedResult: false,
		},
		{
			description:    "number_card_on_action_card_with_different_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			lastPlayedCard: card.NewSkipCard(color.Red),
			expectedResult: false,
		},
		{
			description:    "colored_wild_then_card_with_chosen_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			lastPlayedCard: card.NewWildCard().WithColor(color.Blue),
			expectedResult: true,
		},
		{
			description:    "colored_wild_then_card_with_other_color",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			lastPlayedCard: card.NewWildDrawFourCard().WithColor(color.Blue),
			expectedResult: false,
		},
		{
			description:    "wild_on_uncolored_wild",
			candidateCard:  card.NewWildDrawFourCard(),
			lastPlayedCard: card.NewWildCard(),
			expectedResult: true,
		},
		{
			description:    "action_card_on_uncolored_wild",
			candidateCard:  card.NewSkipCard(color.Green),
			lastPlayedCard: card.NewWildCard(),
			expectedResult: false,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.lastPlayedCard)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}

func TestRulesReflexive(t *testing.T) {
	for _, c := range game.StandardCards() {
		require.True(t, game.Playable(c, c), "%s on itself", c)
	}
}

func TestRulesWildsBeatEveryTop(t *testing.T) {
	for _, top := range game.StandardCards() {
		require.True(t, game.Playable(card.NewWildCard(), top))
		require.True(t, game.Playable(card.NewWildDrawFourCard(), top))
	}
}
