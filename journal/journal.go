package journal

import (
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/ratel-online/uno/card"
	"github.com/ratel-online/uno/event"
	"github.com/sirupsen/logrus"
)

// Journal writes one structured entry per game event. Every entry carries the game id.
type Journal struct {
	logger *logrus.Logger
	gameID uuid.UUID
}

func New(logger *logrus.Logger) (*Journal, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &Journal{logger: logger, gameID: id}, nil
}

// Open builds a JSON logger appending to path. An empty path discards everything.
func Open(path string, level string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(parsed)

	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(file)
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger, file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (j *Journal) GameID() uuid.UUID {
	return j.gameID
}

// Begin records the seating and deal before the first card is turned.
func (j *Journal) Begin(players []string, handSize int, seed int64) {
	j.logger.WithFields(logrus.Fields{
		"game":    j.gameID.String(),
		"players": players,
		"count":   handSize,
		"seed":    seed,
	}).Info("Game started")
}

func (j *Journal) entry(turn int, playerName string) *logrus.Entry {
	return j.logger.WithFields(logrus.Fields{
		"game":   j.gameID.String(),
		"turn":   turn,
		"player": playerName,
	})
}

func cardFields(c card.Card) logrus.Fields {
	label := c.Kind().String()
	if c.Kind() == card.Number {
		label = strconv.Itoa(c.Number())
	}
	return logrus.Fields{
		"card":  label,
		"color": c.Color().Name(),
	}
}

func (j *Journal) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	j.logger.WithField("game", j.gameID.String()).
		WithFields(cardFields(payload.Card)).
		Info("First card turned")
}

func (j *Journal) OnCardPlayed(payload event.CardPlayedPayload) {
	j.entry(payload.Turn, payload.PlayerName).
		WithFields(cardFields(payload.Card)).
		WithFields(logrus.Fields{"seat": payload.Seat, "count": payload.HandSize}).
		Info("Card played")
}

func (j *Journal) OnCardsDrawn(payload event.CardsDrawnPayload) {
	fields := logrus.Fields{"seat": payload.Seat, "count": len(payload.Cards)}
	if payload.Forced {
		fields["forced"] = true
	}
	j.entry(payload.Turn, payload.PlayerName).WithFields(fields).Info("Cards drawn")
}

func (j *Journal) OnColorPicked(payload event.ColorPickedPayload) {
	j.entry(payload.Turn, payload.PlayerName).
		WithField("color", payload.Color.Name()).
		Info("Color picked")
}

func (j *Journal) OnPlayerPassed(payload event.PlayerPassedPayload) {
	j.entry(payload.Turn, payload.PlayerName).
		WithField("drew", payload.Drew).
		Debug("Player passed")
}

func (j *Journal) OnTurnSkipped(payload event.TurnSkippedPayload) {
	j.entry(payload.Turn, payload.PlayerName).Info("Turn skipped")
}

func (j *Journal) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	j.entry(payload.Turn, payload.PlayerName).
		WithField("clockwise", payload.Clockwise).
		Info("Turn order reversed")
}

func (j *Journal) OnGameWon(payload event.GameWonPayload) {
	j.entry(payload.Turn, payload.PlayerName).
		WithField("seat", payload.Seat).
		Info("Game won")
}
