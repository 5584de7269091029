package game

import (
	"fmt"
	"strings"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/consts"
)

// Roster seats players in the order they were given and looks them up by name.
type Roster struct {
	players []*Player
	lookup  func(name string) (*Player, bool)
}

func NewRoster(names []string) (*Roster, error) {
	if len(names) < consts.MinPlayers || len(names) > consts.MaxPlayers {
		return nil, fmt.Errorf("%d players, want %d to %d: %w",
			len(names), consts.MinPlayers, consts.MaxPlayers, consts.ErrorsGamePlayersInvalid)
	}

	index := hashmap.New()
	players := make([]*Player, 0, len(names))
	for seat, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("seat %d has no name: %w", seat+1, consts.ErrorsGamePlayersInvalid)
		}
		if _, taken := index.Get(name); taken {
			return nil, fmt.Errorf("name '%s' is taken: %w", name, consts.ErrorsGamePlayersInvalid)
		}
		player := NewPlayer(name, seat)
		index.Set(name, player)
		players = append(players, player)
	}

	return &Roster{
		players: players,
		lookup: func(name string) (*Player, bool) {
			if v, ok := index.Get(name); ok {
				return v.(*Player), true
			}
			return nil, false
		},
	}, nil
}

func (r *Roster) At(seat int) *Player {
	return r.players[seat]
}

func (r *Roster) ByName(name string) (*Player, bool) {
	return r.lookup(name)
}

func (r *Roster) ForEach(function func(player *Player)) {
	for _, player := range r.players {
		function(player)
	}
}

func (r *Roster) Players() []*Player {
	players := make([]*Player, len(r.players))
	copy(players, r.players)
	return players
}

func (r *Roster) Size() int {
	return len(r.players)
}
