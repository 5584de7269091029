package state

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/msg"
)

type welcome struct{}

// Next seats the configured names first and asks for the rest.
func (*welcome) Next(session *Session) (consts.StateID, error) {
	session.output.Announce(msg.Message.Welcome())

	names := make([]string, 0, session.config.Players)
	names = append(names, session.config.Names...)
	taken := make(map[string]bool, session.config.Players)
	for _, name := range names {
		taken[name] = true
	}

	for seat := len(names); seat < session.config.Players; {
		name, err := session.input.RequestPlayerName(seat)
		if err != nil {
			return 0, err
		}
		if taken[name] {
			err = fmt.Errorf("name '%s' is taken: %w", name, consts.ErrorsGamePlayersInvalid)
			session.output.Announce(err.Error() + "\n")
			continue
		}
		taken[name] = true
		names = append(names, name)
		seat++
	}

	session.names = names
	return consts.StateDeal, nil
}
