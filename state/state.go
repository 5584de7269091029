package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/game"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateDeal, &deal{})
	register(consts.StateTurn, &turn{})
	register(consts.StateGameOver, &gameOver{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// State is one step of the table loop. Next returns 0 once the session is finished.
type State interface {
	Next(session *Session) (consts.StateID, error)
}

// Session is everything a table needs between states: who sits there, how they talk
// and the game once it is dealt.
type Session struct {
	config    *config.Config
	input     game.Input
	output    game.Output
	listeners []interface{}
	options   []game.Option

	state consts.StateID
	names []string
	game  *game.Game
}

// NewSession seats a table. Every listener is subscribed to the events of the dealt game,
// and so is output when it listens to any of them.
func NewSession(cfg *config.Config, input game.Input, output game.Output, listeners ...interface{}) *Session {
	return &Session{
		config:    cfg,
		input:     input,
		output:    output,
		listeners: append([]interface{}{output}, listeners...),
		state:     Root(),
	}
}

// WithGameOptions passes extra options to game.New when the table is dealt.
func (s *Session) WithGameOptions(options ...game.Option) *Session {
	s.options = append(s.options, options...)
	return s
}

func (s *Session) Names() []string {
	return s.names
}

func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) State() consts.StateID {
	return s.state
}

func Root() consts.StateID {
	return consts.StateWelcome
}

// Load runs the session until a state finishes it or fails.
func Load(session *Session) error {
	for {
		state, ok := states[session.state]
		if !ok {
			return consts.ErrorsEmptyState
		}
		stateID, err := state.Next(session)
		if err != nil {
			log.Error(err)
			return err
		}
		if stateID == 0 {
			return nil
		}
		session.state = stateID
	}
}

// writeError shows a recoverable error at the table and hands fatal ones back.
func (s *Session) writeError(err error) error {
	if consts.IsExit(err) {
		return err
	}
	s.output.Announce(err.Error() + "\n")
	return nil
}
