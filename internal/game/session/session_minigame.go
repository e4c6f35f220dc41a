package session

import (
	"log"

	"github.com/louisbranch/molehunt/internal/errors"
	"github.com/louisbranch/molehunt/internal/game/board"
	"github.com/louisbranch/molehunt/internal/game/clue"
	"github.com/louisbranch/molehunt/internal/game/minigame"
	"github.com/louisbranch/molehunt/internal/game/turn"
)

// triggerMinigame starts an unstarted round on the field the pawn stopped
// on. The hosting player sees the solution word; everyone else waits for the
// host to start the timer.
func (s *Session) triggerMinigame(field board.Field) {
	round, err := minigame.NewRound(s.rng, s.usage, field.Kind, field.Difficulty)
	if err != nil {
		log.Printf("minigame setup failed token=%s field=%d err=%v", s.token, field.Index, err)
		s.endTurn(true)
		return
	}
	s.round = round
	if field.Kind == board.MinigameDrawing {
		s.phase = turn.PhaseDrawing
	} else {
		s.phase = turn.PhasePantomime
	}

	active := s.activePlayer()
	guess := GuessMinigamePayload{
		Kind:     round.Kind.String(),
		Words:    round.Words,
		Category: round.Category,
	}
	s.notifier.ToDisplay(EventGuessMinigame, guess)
	for _, p := range s.registry.All() {
		if !p.Connected {
			continue
		}
		if p.ID == active.ID {
			s.notifier.ToPlayer(p.Conn, EventHostMinigame, HostMinigamePayload{
				Kind:         round.Kind.String(),
				SolutionWord: round.SolutionWord,
				Words:        round.Words,
				Category:     round.Category,
			})
		} else {
			s.notifier.ToPlayer(p.Conn, EventGuessMinigame, guess)
		}
	}
}

func (s *Session) applyStartMinigame(a StartMinigame) error {
	if !s.inMinigame() || s.round == nil {
		return errors.New(errors.CodeWrongPhase, "no minigame is waiting to start")
	}
	p, ok := s.registry.ByConn(a.Conn)
	if !ok {
		return errors.New(errors.CodeUnknownConnection, "connection is not part of this game")
	}
	if p.ID != s.activeIndex {
		return errors.New(errors.CodeNotMinigameHost, "only the hosting player may start the round")
	}

	var ignored *int
	if a.IgnoredPlayerID != nil {
		if *a.IgnoredPlayerID == p.ID {
			return errors.New(errors.CodeIgnoreSelf, "the hosting player cannot ignore themselves")
		}
		if _, ok := s.registry.ByID(*a.IgnoredPlayerID); !ok {
			return errors.Newf(errors.CodeUnknownPlayer, "no player with id %d", *a.IgnoredPlayerID)
		}
		id := *a.IgnoredPlayerID
		ignored = &id
	}

	s.round.Start(s.now())
	s.round.IgnoredPlayer = ignored

	for _, other := range s.registry.All() {
		if !other.Connected || other.ID == p.ID {
			continue
		}
		s.notifier.ToPlayer(other.Conn, EventGuessMinigame, GuessMinigamePayload{
			Kind:     s.round.Kind.String(),
			Words:    s.round.Words,
			Category: s.round.Category,
			Start:    true,
			Ignored:  s.round.Ignores(other.ID),
		})
	}
	s.notifier.ToDisplay(EventMinigameStarted, MinigameStartedPayload{
		Kind:       s.round.Kind.String(),
		PlayerID:   p.ID,
		PlayerName: p.Name,
	})
	return nil
}

func (s *Session) applyMinigameGuess(a MinigameGuess) error {
	if !s.inMinigame() || s.round == nil {
		return errors.New(errors.CodeWrongPhase, "no minigame is running")
	}
	if !s.round.Started() {
		return errors.New(errors.CodeMinigameNotStarted, "round has not started")
	}
	p, ok := s.registry.ByConn(a.Conn)
	if !ok {
		return errors.New(errors.CodeUnknownConnection, "connection is not part of this game")
	}
	if p.ID == s.activeIndex {
		return errors.New(errors.CodeHostMayNotGuess, "the hosting player may not guess")
	}
	if !s.round.ValidWord(a.Word) {
		return errors.Newf(errors.CodeGuessNotInWords, "guess %q is not in the word group", a.Word)
	}
	if s.round.Ignores(p.ID) {
		log.Printf("guess from ignored player dropped token=%s player=%s", s.token, p.Name)
		return nil
	}

	s.round.RecordGuess(p.ID, a.Word)
	if s.round.AllGuessed(s.guesserIDs()) {
		s.evaluateMinigame()
	}
	return nil
}

func (s *Session) applyForwardDrawingData(a ForwardDrawingData) error {
	if s.phase != turn.PhaseDrawing || s.round == nil {
		return errors.New(errors.CodeWrongPhase, "no drawing round is running")
	}
	if !s.round.Started() {
		return errors.New(errors.CodeMinigameNotStarted, "round has not started")
	}
	p, ok := s.registry.ByConn(a.Conn)
	if !ok {
		return errors.New(errors.CodeUnknownConnection, "connection is not part of this game")
	}
	if p.ID != s.activeIndex {
		return errors.New(errors.CodeNotMinigameHost, "only the drawing player may send strokes")
	}

	s.notifier.ToDisplay(EventDrawingUpdate, a.Payload)
	return nil
}

// guesserIDs returns the connected players expected to guess this round.
func (s *Session) guesserIDs() []int {
	var ids []int
	for _, p := range s.registry.All() {
		if !p.Connected || p.ID == s.activeIndex {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids
}

// evaluateMinigame scores the round and applies its outcome: a won
// pantomime takes the shortcut, a won drawing yields a clue, a lost drawing
// hides the pursuer for a while.
func (s *Session) evaluateMinigame() {
	round := s.round
	results, success := round.Evaluate(s.guesserIDs())

	s.notifier.Broadcast(EventMinigameResult, MinigameResultPayload{
		Kind:          round.Kind.String(),
		Success:       success,
		PlayerResults: playerResultPayloads(results),
		SolutionWord:  round.SolutionWord,
	})
	s.round = nil

	if round.Kind == board.MinigamePantomime {
		if success {
			s.phase = turn.PhaseChoosing
			field := s.board.At(s.teamPos)
			s.resolveMovement(field.ShortcutTarget - s.teamPos)
			return
		}
		s.endTurn(true)
		return
	}

	// Drawing round.
	if success {
		active := s.activePlayer()
		if found, ok := s.randomMissingClue(active); ok {
			stored, _ := active.AddClue(clue.NoSender, found)
			s.notifier.ToPlayer(active.Conn, EventReceiveClue, receiveCluePayload(stored))
		}
	} else {
		s.notifier.ToDisplay(EventPursuerVisibility, PursuerVisibilityPayload{Visible: false})
		s.pursuerHidden = true
		s.pursuerHiddenAt = s.now()
	}
	s.endTurn(true)
}
