package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/minaorangina/hanabi/game"
	"github.com/minaorangina/hanabi/protocol"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionEnded = errors.New("session has ended")
	ErrUnknownPhase = errors.New("unknown phase")
)

// Phase is the top level state of a session
// AwaitingStart -> only a new game command is accepted
// Playing -> a game is in progress
// Ended -> nothing more will be accepted
type Phase int

const (
	AwaitingStart Phase = iota
	Playing
	Ended
	numPhases
)

var phaseNames = [numPhases]string{"awaitingStart", "playing", "ended"}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return ""
	}
	return phaseNames[p]
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a phase from its name
func (p *Phase) UnmarshalText(text []byte) error {
	for i, name := range phaseNames {
		if name == string(text) {
			*p = Phase(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPhase, text)
}

type state struct {
	phase Phase
	game  *game.Hanabi
}

// transition computes the next state of a session from a single command
type transition func(state, protocol.Command) (state, []protocol.Report, error)

var transitions = [numPhases]transition{
	AwaitingStart: awaitingStart,
	Playing:       playing,
	Ended:         ended,
}

func awaitingStart(st state, cmd protocol.Command) (state, []protocol.Report, error) {
	if cmd.Cmd != protocol.NewGame {
		return state{phase: Ended}, nil, nil
	}

	g, err := game.New(cmd.Deck)
	if err != nil {
		return state{phase: Ended}, nil, err
	}

	return state{phase: Playing, game: g}, []protocol.Report{g.Status()}, nil
}

func playing(st state, cmd protocol.Command) (state, []protocol.Report, error) {
	switch {
	case cmd.InGame():
		reports, err := st.game.Apply(cmd)
		if err != nil {
			return state{phase: Ended}, nil, err
		}
		if st.game.Over() {
			return state{phase: AwaitingStart}, reports, nil
		}
		return st, reports, nil

	case cmd.Cmd == protocol.NewGame:
		// the new game command is handed straight to AwaitingStart
		reports := st.game.Conclude()
		next, started, err := awaitingStart(state{phase: AwaitingStart}, cmd)
		return next, append(reports, started...), err
	}

	return state{phase: Ended}, nil, nil
}

func ended(st state, _ protocol.Command) (state, []protocol.Report, error) {
	return st, nil, nil
}

// Session routes command lines to the game in progress and decides when a
// game restarts or the whole session ends. A session is not safe for
// concurrent use.
type Session struct {
	id  string
	st  state
	log logrus.FieldLogger
}

type SessionOpts struct {
	ID     string
	Logger logrus.FieldLogger
}

// NewSession constructs a session awaiting a new game
func NewSession(opts SessionOpts) *Session {
	if opts.ID == "" {
		opts.ID = NewID()
	}
	if opts.Logger == nil {
		logger := logrus.New()
		logger.Out = io.Discard
		opts.Logger = logger
	}

	return &Session{
		id:  opts.ID,
		st:  state{phase: AwaitingStart},
		log: opts.Logger.WithField("session", opts.ID),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() Phase {
	return s.st.phase
}

// Game returns the game in progress, if there is one
func (s *Session) Game() *game.Hanabi {
	return s.st.game
}

// Done reports whether the session has ended
func (s *Session) Done() bool {
	return s.st.phase == Ended
}

// Step handles a single line of input. Any error is fatal: the session
// has ended by the time it is returned.
func (s *Session) Step(line string) ([]protocol.Report, error) {
	if s.Done() {
		return nil, ErrSessionEnded
	}

	cmd := protocol.Parse(line)
	from := s.st.phase

	next, reports, err := transitions[from](s.st, cmd)
	if err != nil {
		s.st = state{phase: Ended}
		s.log.WithError(err).WithField("command", cmd.Cmd).Error("ending session")
		return reports, err
	}
	s.st = next

	for _, r := range reports {
		if r.Kind == protocol.Summary {
			s.log.WithFields(logrus.Fields{
				"turn":  r.Turn,
				"cards": r.Cards,
			}).Info("game concluded")
		}
	}
	if from != next.phase {
		s.log.WithFields(logrus.Fields{
			"from":    from,
			"to":      next.phase,
			"command": cmd.Cmd,
		}).Debug("phase transition")
	}

	return reports, nil
}

// End ends the session, e.g. when there is no more input
func (s *Session) End() {
	if s.Done() {
		return
	}
	s.log.WithField("from", s.st.phase).Debug("input closed")
	s.st = state{phase: Ended}
}
