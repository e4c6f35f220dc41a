// Package session implements the server-side game engine: turn order,
// movement, clue flow, pursuer pacing, occasions, minigames and win
// evaluation for one running game.
package session

import (
	"log"
	"math/rand"
	"time"

	"github.com/louisbranch/molehunt/internal/catalog"
	"github.com/louisbranch/molehunt/internal/errors"
	"github.com/louisbranch/molehunt/internal/game/board"
	"github.com/louisbranch/molehunt/internal/game/clue"
	"github.com/louisbranch/molehunt/internal/game/minigame"
	"github.com/louisbranch/molehunt/internal/game/occasion"
	"github.com/louisbranch/molehunt/internal/game/player"
	"github.com/louisbranch/molehunt/internal/game/pursuer"
	"github.com/louisbranch/molehunt/internal/game/turn"
	"github.com/louisbranch/molehunt/internal/random"
)

// MoleProofsToWin is how many categories the mole must verify to win.
const MoleProofsToWin = 2

// TeamProofsToWin is how many categories the team must verify to win.
const TeamProofsToWin = 4

// Config tunes one session. The zero value is a sensible default game.
type Config struct {
	// StartPosition overrides where the team pawn begins.
	StartPosition *int
	// PursuerStart is the pursuer's initial field.
	PursuerStart int
	// TestChoices fixes the occasion offers instead of drawing them.
	TestChoices []occasion.Choice
	// AllPlayersAllClues deals the full solution to every player.
	AllPlayersAllClues bool
	// MinigamesEnabled turns shortcut fields into minigame rounds.
	MinigamesEnabled bool
	Difficulty       board.Difficulty
}

// PlayerInfo registers one player at session start.
type PlayerInfo struct {
	Name string
	Conn string
}

// Session is one running game. It is not safe for concurrent use; the actor
// wrapper serializes access.
type Session struct {
	token    string
	cfg      Config
	notifier Notifier
	rng      *rand.Rand
	now      func() time.Time

	board    *board.Board
	registry *player.Registry
	chase    *pursuer.Pursuer
	teamPos  int

	solution   []clue.Clue
	teamProofs []clue.Proof
	moleProofs []clue.Proof

	phase           turn.Phase
	activeIndex     int
	occasionChoices []occasion.Choice
	moveModifier    turn.MoveModifier

	round *minigame.Round
	usage *minigame.Usage

	nextPursuerMove time.Time
	pursuerAuto     bool
	pursuerHiddenAt time.Time
	pursuerHidden   bool
}

// Option adjusts session construction, mainly for tests.
type Option func(*Session)

// WithRand fixes the session's randomness source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// WithClock fixes the session's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New deals the solution, assigns roles and announces the initial state to
// every player.
func New(token string, notifier Notifier, snapshot *catalog.Snapshot, infos []PlayerInfo, cfg Config, opts ...Option) (*Session, error) {
	if len(infos) == 0 {
		return nil, errors.New(errors.CodeEmptyRoster, "at least one player is required")
	}

	s := &Session{
		token:    token,
		cfg:      cfg,
		notifier: notifier,
		now:      time.Now,
		board:    board.Build(),
		usage:    minigame.NewUsage(),
		phase:    turn.PhaseChoosing,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			return nil, err
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	evidence, err := snapshot.DrawSolution(s.rng)
	if err != nil {
		return nil, errors.Newf(errors.CodeCatalogExhausted, "draw solution: %v", err)
	}
	s.solution = make([]clue.Clue, len(evidence))
	for i, e := range evidence {
		s.solution[i] = clue.FromEvidence(e)
	}

	names := make([]string, len(infos))
	conns := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
		conns[i] = info.Conn
	}
	s.registry, err = player.NewRegistry(names, conns)
	if err != nil {
		return nil, err
	}

	s.dealInitialClues()
	s.registry.ChooseMole(s.rng)

	s.teamPos = board.DefaultStartPosition
	if cfg.StartPosition != nil {
		s.teamPos = *cfg.StartPosition
	}
	s.chase = pursuer.New(cfg.PursuerStart)

	if interval, ok := pursuer.AutoMoveInterval(s.rng, cfg.Difficulty); ok {
		s.pursuerAuto = true
		s.nextPursuerMove = s.now().Add(interval)
	}

	s.announceStart()
	return s, nil
}

// dealInitialClues hands each player their starting inventory. By default
// every player receives one distinct solution clue; the full deal mirrors
// the solution to everyone.
func (s *Session) dealInitialClues() {
	if s.cfg.AllPlayersAllClues {
		for _, p := range s.registry.All() {
			for _, c := range s.solution {
				p.AddClue(clue.NoSender, c)
			}
		}
		return
	}

	remaining := make([]clue.Clue, len(s.solution))
	copy(remaining, s.solution)
	for _, p := range s.registry.All() {
		if len(remaining) == 0 {
			break
		}
		i := s.rng.Intn(len(remaining))
		p.AddClue(clue.NoSender, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
}

func (s *Session) announceStart() {
	s.notifier.Broadcast(EventPlayerInfos, s.playerInfoPayloads())
	if s.chase.Position() != 0 {
		s.notifier.Broadcast(EventPursuerMove, s.chase.Position())
	}
	for _, p := range s.registry.All() {
		s.notifier.ToPlayer(p.Conn, EventInit, s.initPayload(p, false))
	}
	s.sendPlayersTurn()
}

func (s *Session) playerInfoPayloads() []PlayerInfoPayload {
	infos := make([]PlayerInfoPayload, 0, s.registry.Len())
	for _, p := range s.registry.All() {
		infos = append(infos, PlayerInfoPayload{PlayerID: p.ID, Name: p.Name})
	}
	return infos
}

func (s *Session) initPayload(p *player.Player, rejoin bool) InitPayload {
	clues := make([]CluePayload, 0, len(p.Inventory))
	for _, c := range p.Inventory {
		clues = append(clues, cluePayload(c))
	}
	return InitPayload{
		PlayerID:          p.ID,
		IsMole:            p.IsMole,
		Clues:             clues,
		Rejoin:            rejoin,
		ProofedCategories: s.proofPayloads(),
	}
}

func (s *Session) proofPayloads() []ProofPayload {
	proofs := make([]ProofPayload, 0, len(s.teamProofs)+len(s.moleProofs))
	for _, p := range s.teamProofs {
		proofs = append(proofs, ProofPayload{Category: string(p.Category), From: p.PlayerID})
	}
	for _, p := range s.moleProofs {
		proofs = append(proofs, ProofPayload{Category: string(p.Category), From: p.PlayerID})
	}
	return proofs
}

// Token returns the session's join token.
func (s *Session) Token() string {
	return s.token
}

// Over reports whether the game has ended.
func (s *Session) Over() bool {
	return s.phase == turn.PhaseGameOver
}

// Apply runs one client action against the session state.
func (s *Session) Apply(action Action) error {
	if s.phase == turn.PhaseGameOver {
		if _, ok := action.(Disconnect); ok {
			return s.applyDisconnect(action.(Disconnect))
		}
		return errors.New(errors.CodeSessionEnded, "game is over")
	}

	switch a := action.(type) {
	case DiceRoll:
		return s.applyDiceRoll(a)
	case ShareClue:
		return s.applyShareClue(a)
	case ValidateClues:
		return s.applyValidateClues(a)
	case SearchClue:
		return s.applySearchClue(a)
	case ChooseOccasion:
		return s.applyChooseOccasion(a)
	case StartMinigame:
		return s.applyStartMinigame(a)
	case MinigameGuess:
		return s.applyMinigameGuess(a)
	case ForwardDrawingData:
		return s.applyForwardDrawingData(a)
	case Disconnect:
		return s.applyDisconnect(a)
	case Rejoin:
		return s.applyRejoin(a)
	}
	return errors.New(errors.CodeMalformedPayload, "unknown action")
}

func (s *Session) activePlayer() *player.Player {
	p, _ := s.registry.ByID(s.activeIndex)
	return p
}

// requireActive resolves the sender and checks it is their turn in the given
// phase.
func (s *Session) requireActive(conn string, phase turn.Phase) (*player.Player, error) {
	p, ok := s.registry.ByConn(conn)
	if !ok {
		return nil, errors.New(errors.CodeUnknownConnection, "connection is not part of this game")
	}
	if p.ID != s.activeIndex {
		return nil, errors.New(errors.CodeNotYourTurn, "it is not this player's turn").
			WithMeta("player", p.Name)
	}
	if s.phase != phase {
		return nil, errors.Newf(errors.CodeWrongPhase, "action not allowed during %s", s.phase)
	}
	return p, nil
}

func (s *Session) applyDiceRoll(a DiceRoll) error {
	p, err := s.requireActive(a.Conn, turn.PhaseChoosing)
	if err != nil {
		return err
	}
	if a.Value < 0 {
		return errors.New(errors.CodeMalformedPayload, "dice value must not be negative")
	}

	distance := a.Value
	switch s.moveModifier {
	case turn.ModifierHinder:
		distance /= 2
		s.notifier.ToDisplay(EventOccasionInfo, OccasionInfoPayload{Type: "unhinder_dicing", PlayerID: p.ID})
	case turn.ModifierSimplify:
		distance *= 2
		s.notifier.ToDisplay(EventOccasionInfo, OccasionInfoPayload{Type: "unsimplify_dicing", PlayerID: p.ID})
	}
	s.moveModifier = turn.ModifierNormal

	s.resolveMovement(distance)
	return nil
}

// resolveMovement advances the team pawn and resolves the landing field.
// A zero-distance move still ends the turn.
func (s *Session) resolveMovement(distance int) {
	if distance == 0 {
		s.notifier.Broadcast(EventMove, s.teamPos)
		s.endTurn(true)
		return
	}

	s.moveTeam(distance)
	s.notifier.Broadcast(EventMove, s.teamPos)
	if s.phase == turn.PhaseGameOver {
		return
	}

	field := s.board.At(s.teamPos)
	switch {
	case field.Type == board.FieldMinigame && s.cfg.MinigamesEnabled:
		s.triggerMinigame(field)
	case field.Type == board.FieldOccasion:
		s.offerOccasion()
	case field.Type == board.FieldGoal:
		s.gameOver(turn.ReasonReachedMapEnd)
	default:
		s.endTurn(true)
	}
}

// moveTeam walks the pawn one field at a time. Crossing an enabled minigame
// field stops the move there; reaching the goal ends the game.
func (s *Session) moveTeam(distance int) {
	for i := 0; i < distance; i++ {
		if s.teamPos >= s.board.GoalIndex() {
			s.gameOver(turn.ReasonReachedMapEnd)
			return
		}
		s.teamPos++
		field := s.board.At(s.teamPos)
		if field.Type == board.FieldMinigame && s.cfg.MinigamesEnabled {
			return
		}
	}
}

func (s *Session) offerOccasion() {
	choices := s.cfg.TestChoices
	if len(choices) == 0 {
		choices = occasion.RandomChoices(s.rng)
	}
	s.occasionChoices = choices
	s.phase = turn.PhaseChoosingOccasion

	active := s.activePlayer()
	payloads := make([]ChoicePayload, 0, len(choices))
	for _, c := range choices {
		payloads = append(payloads, choicePayload(c))
	}
	for _, p := range s.registry.All() {
		if !p.Connected {
			continue
		}
		if p.ID == active.ID {
			s.notifier.ToPlayer(p.Conn, EventOccasion, OccasionPayload{PlayerID: active.ID, Choices: payloads})
		} else {
			s.notifier.ToPlayer(p.Conn, EventOccasion, OccasionPayload{PlayerID: active.ID})
		}
	}
}

func (s *Session) applyChooseOccasion(a ChooseOccasion) error {
	p, err := s.requireActive(a.Conn, turn.PhaseChoosingOccasion)
	if err != nil {
		return err
	}

	var offer *occasion.Choice
	for i := range s.occasionChoices {
		if s.occasionChoices[i].Matches(a.Choice) {
			offer = &s.occasionChoices[i]
			break
		}
	}
	if offer == nil {
		return errors.Newf(errors.CodeUnknownOccasion, "choice %q was not offered", a.Choice.Kind)
	}
	chosen := *offer
	s.occasionChoices = nil
	s.phase = turn.PhaseChoosing

	s.notifier.ToDisplay(EventOccasionInfo, OccasionInfoPayload{
		Type:     string(chosen.Kind),
		Value:    chosen.Value,
		PlayerID: p.ID,
	})

	switch chosen.Kind {
	case occasion.KindFoundClue:
		if a.Success {
			if found, ok := s.randomMissingClue(p); ok {
				stored, _ := p.AddClue(clue.NoSender, found)
				s.notifier.ToPlayer(p.Conn, EventReceiveClue, receiveCluePayload(stored))
			} else {
				// Nothing left to find; a null clue reports the empty result.
				s.notifier.ToPlayer(p.Conn, EventReceiveClue, ReceiveCluePayload{})
			}
		}
		s.endTurn(true)
	case occasion.KindMoveForwards:
		s.resolveMovement(chosen.Value)
	case occasion.KindSimplifyDicing:
		s.moveModifier = turn.ModifierSimplify
		s.endTurn(true)
	case occasion.KindSkipPlayer:
		target, ok := s.registry.ByID(a.TargetPlayerID)
		if !ok {
			return errors.Newf(errors.CodeUnknownPlayer, "no player with id %d", a.TargetPlayerID)
		}
		target.Disabled = true
		s.endTurn(true)
	case occasion.KindHinderDicing:
		s.moveModifier = turn.ModifierHinder
		s.endTurn(true)
	default:
		return errors.Newf(errors.CodeUnknownOccasion, "unknown occasion kind %q", chosen.Kind)
	}
	return nil
}

func (s *Session) applyShareClue(a ShareClue) error {
	p, err := s.requireActive(a.Conn, turn.PhaseChoosing)
	if err != nil {
		return err
	}
	target, ok := s.registry.ByID(a.TargetPlayerID)
	if !ok {
		return errors.Newf(errors.CodeUnknownPlayer, "no player with id %d", a.TargetPlayerID)
	}
	held, ok := p.Clue(a.ClueName)
	if !ok {
		return errors.Newf(errors.CodeClueNotOwned, "player does not hold clue %q", a.ClueName)
	}

	p.MarkSent(a.ClueName, target.ID)
	stored, _ := target.AddClue(p.ID, held)

	s.notifier.ToPlayer(target.Conn, EventReceiveClue, receiveCluePayload(stored))
	if own, ok := p.Clue(a.ClueName); ok {
		s.notifier.ToPlayer(p.Conn, EventUpdatedClue, receiveCluePayload(own))
	}
	s.notifier.ToDisplay(EventSecretMove, SecretMovePayload{PlayerID: p.ID, MoveName: "share_clue"})

	s.endTurn(true)
	return nil
}

func (s *Session) applyValidateClues(a ValidateClues) error {
	p, err := s.requireActive(a.Conn, turn.PhaseChoosing)
	if err != nil {
		return err
	}
	if len(a.ClueNames) == 0 {
		return errors.New(errors.CodeMalformedPayload, "at least one clue is required")
	}

	status, category, err := s.validationStatus(p, a.ClueNames)
	if err != nil {
		return err
	}
	success := false
	if status == StatusValidationAllowed && s.cluesMatchSolution(category, a.ClueNames) {
		success = true
		status = StatusNewValidation
		proof := clue.Proof{Category: category, PlayerID: p.ID}
		if p.IsMole {
			s.moleProofs = append(s.moleProofs, proof)
		} else {
			s.teamProofs = append(s.teamProofs, proof)
		}
	}

	s.notifier.Broadcast(EventValidationResult, ValidationResultPayload{
		SuccessfulValidation: success,
		ValidationStatus:     status,
		PlayerID:             p.ID,
		Clues:                a.ClueNames,
		ProofedCategories:    s.proofPayloads(),
	})

	s.endTurn(true)
	return nil
}

// validationStatus checks ownership and prior verification. All submitted
// clues must belong to one category.
func (s *Session) validationStatus(p *player.Player, names []string) (string, catalog.Category, error) {
	var category catalog.Category
	for i, name := range names {
		held, ok := p.Clue(name)
		if !ok {
			return StatusNotInInventory, "", nil
		}
		if i == 0 {
			category = held.Category
		} else if held.Category != category {
			return "", "", errors.New(errors.CodeMixedClueCategory, "clues must share one category")
		}
	}
	if s.categoryVerified(category) {
		return StatusAlreadyVerified, category, nil
	}
	return StatusValidationAllowed, category, nil
}

func (s *Session) categoryVerified(category catalog.Category) bool {
	for _, proof := range append(append([]clue.Proof{}, s.teamProofs...), s.moleProofs...) {
		if proof.Category == category {
			return true
		}
	}
	return false
}

// cluesMatchSolution reports whether names cover the full solution group of
// the category, no guessing with partial sets.
func (s *Session) cluesMatchSolution(category catalog.Category, names []string) bool {
	missing := make(map[string]bool)
	for _, c := range s.solution {
		if c.Category == category {
			missing[c.Name] = true
		}
	}
	for _, name := range names {
		delete(missing, name)
	}
	return len(missing) == 0
}

func (s *Session) applySearchClue(a SearchClue) error {
	p, err := s.requireActive(a.Conn, turn.PhaseChoosing)
	if err != nil {
		return err
	}

	draws := 0
	if a.DoubleSuccess {
		draws = 2
	} else if a.Success {
		draws = 1
	}
	for i := 0; i < draws; i++ {
		found, ok := s.randomMissingClue(p)
		if !ok {
			break
		}
		stored, _ := p.AddClue(clue.NoSender, found)
		s.notifier.ToPlayer(p.Conn, EventReceiveClue, receiveCluePayload(stored))
	}

	s.notifier.ToDisplay(EventSecretMove, SecretMovePayload{PlayerID: p.ID, MoveName: "search_clue"})
	s.endTurn(true)
	return nil
}

// randomMissingClue draws a solution clue the player lacks from a category
// that is not yet verified. Clues nobody holds are weighted four to one.
func (s *Session) randomMissingClue(p *player.Player) (clue.Clue, bool) {
	var candidates []clue.Clue
	var weights []int
	for _, c := range s.solution {
		if s.categoryVerified(c.Category) {
			continue
		}
		if _, held := p.Clue(c.Name); held {
			continue
		}
		weight := 4
		for _, other := range s.registry.All() {
			if _, held := other.Clue(c.Name); held {
				weight = 1
				break
			}
		}
		candidates = append(candidates, c)
		weights = append(weights, weight)
	}
	if len(candidates) == 0 {
		return clue.Clue{}, false
	}
	picked, err := random.WeightedChoice(s.rng, candidates, weights)
	if err != nil {
		return clue.Clue{}, false
	}
	return picked, true
}

// endTurn optionally advances the pursuer once, then hands the turn to the
// next eligible player. Disabled players are re-enabled and skipped;
// disconnected players are skipped silently.
func (s *Session) endTurn(chargePursuer bool) {
	if s.phase == turn.PhaseGameOver {
		return
	}
	if chargePursuer {
		s.advancePursuer(true)
		if s.phase == turn.PhaseGameOver {
			return
		}
	}

	// Each player can be re-enabled at most once, so 2*Len bounds the scan
	// while still letting it revisit a player whose skip was just cleared.
	for attempts := 0; attempts < 2*s.registry.Len() && s.registry.HasConnected(); attempts++ {
		s.activeIndex = (s.activeIndex + 1) % s.registry.Len()
		current := s.activePlayer()
		if current.Disabled {
			current.Disabled = false
			s.notifier.ToDisplay(EventOccasionInfo, OccasionInfoPayload{Type: "unskip_player", PlayerID: current.ID})
			continue
		}
		if !current.Connected {
			continue
		}
		break
	}

	s.phase = turn.PhaseChoosing
	s.sendPlayersTurn()
}

func (s *Session) sendPlayersTurn() {
	modifier := "normal"
	switch s.moveModifier {
	case turn.ModifierHinder:
		modifier = "hinder"
	case turn.ModifierSimplify:
		modifier = "simplify"
	}
	s.notifier.Broadcast(EventPlayersTurn, PlayersTurnPayload{
		PlayerID:         s.activeIndex,
		MovementModifier: modifier,
	})
}

// advancePursuer draws a pursuer move and resolves catches and overruns.
func (s *Session) advancePursuer(allowZero bool) {
	steps, outcome, err := s.chase.Advance(s.rng, s.board, s.teamPos, allowZero)
	if err != nil {
		log.Printf("pursuer advance failed token=%s err=%v", s.token, err)
		return
	}
	if steps > 0 {
		s.notifier.Broadcast(EventPursuerMove, s.chase.Position())
	}
	switch outcome {
	case pursuer.OutcomeCaught:
		s.gameOver(turn.ReasonPursuerCaught)
	case pursuer.OutcomeReachedEnd:
		s.gameOver(turn.ReasonPursuerReachedEnd)
	}
}

func (s *Session) gameOver(reason turn.GameOverReason) {
	s.phase = turn.PhaseGameOver
	s.round = nil
	s.occasionChoices = nil

	winner := WinnerMole
	message := ReasonHinderedTeam
	switch {
	case reason == turn.ReasonPursuerCaught:
		message = ReasonPursuerCaughtTeam
	case len(s.moleProofs) >= MoleProofsToWin:
		message = ReasonDestroyedEnoughProofs
	case len(s.teamProofs) >= TeamProofsToWin:
		winner = WinnerTeam
		message = ReasonValidatedEnoughProofs
	}

	moleID := -1
	if mole, ok := s.registry.Mole(); ok {
		moleID = mole.ID
	}

	log.Printf("game over token=%s reason=%s winner=%s", s.token, reason, winner)
	s.notifier.Broadcast(EventGameOver, GameOverPayload{Winner: winner, Reason: message, MoleID: moleID})
}

func (s *Session) applyDisconnect(a Disconnect) error {
	p, ok := s.registry.ByConn(a.Conn)
	if !ok {
		return errors.New(errors.CodeUnknownConnection, "connection is not part of this game")
	}

	p.Connected = false
	if p.ID == s.activeIndex && s.phase != turn.PhaseGameOver {
		s.occasionChoices = nil
		s.round = nil
		s.endTurn(false)
	}
	s.notifier.ToDisplay(EventPlayerDisconnected, p.ID)
	log.Printf("player disconnected token=%s player=%s", s.token, p.Name)
	return nil
}

func (s *Session) applyRejoin(a Rejoin) error {
	p, ok := s.registry.ByName(a.Name)
	if !ok {
		return errors.Newf(errors.CodeUnknownRejoin, "no player named %q in this game", a.Name)
	}
	if p.Connected {
		return errors.Newf(errors.CodeRejoinConflict, "player %q is still connected", a.Name)
	}

	p.Conn = a.Conn
	p.Connected = true

	s.notifier.ToDisplay(EventPlayerRejoined, p.ID)
	s.notifier.ToPlayer(p.Conn, EventPlayerInfos, s.playerInfoPayloads())
	s.notifier.ToPlayer(p.Conn, EventInit, s.initPayload(p, true))
	log.Printf("player rejoined token=%s player=%s", s.token, p.Name)
	return nil
}

// Tick drives time-based behavior: minigame timeouts, automatic pursuer
// movement and pursuer re-show after the hide cooldown.
func (s *Session) Tick(now time.Time) {
	if s.phase == turn.PhaseGameOver {
		return
	}

	if s.inMinigame() && s.round != nil && s.round.TimedOut(now) {
		s.evaluateMinigame()
	}

	if s.pursuerAuto && now.After(s.nextPursuerMove) {
		if !s.inMinigame() && s.phase != turn.PhaseGameOver {
			s.advancePursuer(false)
		}
		if interval, ok := pursuer.AutoMoveInterval(s.rng, s.cfg.Difficulty); ok {
			s.nextPursuerMove = s.nextPursuerMove.Add(interval)
		}
	}

	if s.pursuerHidden && now.Sub(s.pursuerHiddenAt) > pursuer.HideCooldown {
		s.pursuerHidden = false
		s.notifier.ToDisplay(EventPursuerVisibility, PursuerVisibilityPayload{Visible: true})
	}
}

func (s *Session) inMinigame() bool {
	return s.phase == turn.PhasePantomime || s.phase == turn.PhaseDrawing
}
