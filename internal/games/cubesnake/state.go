// Package cubesnake implements a snake that crawls over the six faces of a
// cube. State is the pure, tick-driven state machine; Game adapts it to the
// platform's registry.Game contract.
package cubesnake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/cubesnake/internal/cube"
	"github.com/vovakirdan/cubesnake/internal/random"
)

// ErrInvalidGridSize is returned by New for a grid size below 1.
var ErrInvalidGridSize = errors.New("cubesnake: grid size must be at least 1")

// Event is the outcome of one Update.
type Event int

const (
	EventNone Event = iota
	EventEat
	EventEatPrize
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventEat:
		return "eat"
	case EventEatPrize:
		return "eat_prize"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

const (
	defaultFoodPoints   = 1
	defaultPrizePoints  = 5
	defaultPrizeEvery   = 5
	defaultSpawnRetries = 64
)

type options struct {
	src          Source
	highScore    int
	foodPoints   int
	prizePoints  int
	prizeEvery   int
	spawnRetries int
}

// Option configures a State.
type Option func(*options)

// WithSource sets the random source used for food placement.
func WithSource(src Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed uses a math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.src = rand.New(rand.NewSource(seed))
	}
}

// WithHighScore seeds the high score, e.g. from the score store.
func WithHighScore(score int) Option {
	return func(o *options) {
		o.highScore = max(score, 0)
	}
}

// WithScoring sets the points for ordinary and prize food, and the prize
// cadence: every prizeEvery-th food spawned is a prize.
func WithScoring(foodPoints, prizePoints, prizeEvery int) Option {
	return func(o *options) {
		o.foodPoints = foodPoints
		o.prizePoints = prizePoints
		o.prizeEvery = max(prizeEvery, 1)
	}
}

// WithSpawnRetries caps the random food placement attempts before falling
// back to picking among the free cells.
func WithSpawnRetries(n int) Option {
	return func(o *options) {
		o.spawnRetries = max(n, 0)
	}
}

// Snake is the ordered body (head first) and heading of the snake.
type Snake struct {
	body []cube.Position
	dir  cube.Direction
	next cube.Direction
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []cube.Position {
	out := make([]cube.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head segment.
func (s *Snake) Head() cube.Position {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction of the last move.
func (s *Snake) Direction() cube.Direction {
	return s.dir
}

// NextDirection returns the buffered direction for the next move.
func (s *Snake) NextDirection() cube.Direction {
	return s.next
}

// Contains reports whether a segment occupies p.
func (s *Snake) Contains(p cube.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// State is one game of cube snake.
// It is not safe for concurrent use; the owner calls Update once per tick.
type State struct {
	n    int
	opts options

	snake   Snake
	food    cube.Position
	hasFood bool
	prize   bool

	score     int
	highScore int
	eaten     int
	gameOver  bool
	won       bool
}

// New starts a game on a cube with gridSize cells per edge. The snake has
// length 1 at the centre of the front face heading up, and the first food is
// already placed.
func New(gridSize int, opts ...Option) (*State, error) {
	if gridSize < 1 {
		return nil, ErrInvalidGridSize
	}

	o := options{
		foodPoints:   defaultFoodPoints,
		prizePoints:  defaultPrizePoints,
		prizeEvery:   defaultPrizeEvery,
		spawnRetries: defaultSpawnRetries,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.New(rand.NewSource(random.Seed()))
	}

	return newState(gridSize, o), nil
}

func newState(n int, o options) *State {
	s := &State{
		n:         n,
		opts:      o,
		highScore: o.highScore,
		snake: Snake{
			body: []cube.Position{cube.Center(cube.Front, n)},
			dir:  cube.DirUp,
			next: cube.DirUp,
		},
	}
	s.spawnFood()
	return s
}

// Restart returns a fresh game with the same size and options. The high
// score carries over and the random source keeps advancing.
func (s *State) Restart() *State {
	o := s.opts
	o.highScore = s.highScore
	return newState(s.n, o)
}

// SetDirection buffers the direction for the next move. A direction that
// reverses the current heading is rejected and false is returned. The last
// accepted direction before a tick wins.
func (s *State) SetDirection(d cube.Direction) bool {
	if d.IsOpposite(s.snake.dir) {
		return false
	}
	s.snake.next = d
	return true
}

// Update advances the game by one move and reports what happened.
// Once the game is over Update does nothing and returns EventNone.
func (s *State) Update() Event {
	if s.gameOver {
		return EventNone
	}

	if !s.snake.next.IsOpposite(s.snake.dir) {
		s.snake.dir = s.snake.next
	}

	head, dir := cube.Next(s.snake.body[0], s.snake.dir, s.n)
	growing := s.hasFood && head == s.food

	if s.collides(head, growing) {
		s.gameOver = true
		return EventGameOver
	}

	s.snake.body = append(s.snake.body, cube.Position{})
	copy(s.snake.body[1:], s.snake.body)
	s.snake.body[0] = head
	s.snake.dir = dir
	s.snake.next = dir

	if !growing {
		s.snake.body = s.snake.body[:len(s.snake.body)-1]
		return EventNone
	}

	ev := EventEat
	points := s.opts.foodPoints
	if s.prize {
		ev = EventEatPrize
		points = s.opts.prizePoints
	}
	s.score += points
	s.highScore = max(s.highScore, s.score)
	s.eaten++

	s.spawnFood()
	if !s.hasFood {
		s.won = true
		s.gameOver = true
	}
	return ev
}

// collides reports whether moving the head to p hits the body. The tail
// is about to move away unless the snake is growing, so it does not count.
func (s *State) collides(p cube.Position, growing bool) bool {
	last := len(s.snake.body) - 1
	for i, seg := range s.snake.body {
		if seg != p {
			continue
		}
		if i == last && !growing {
			continue
		}
		return true
	}
	return false
}

// spawnFood places the next food on a free cell, or clears it when the
// snake fills the whole cube.
func (s *State) spawnFood() {
	s.hasFood = false
	s.prize = false

	if len(s.snake.body) >= 6*s.n*s.n {
		return
	}

	src := s.opts.src
	for range s.opts.spawnRetries {
		p := cube.Position{
			Face: cube.Faces[src.Intn(len(cube.Faces))],
			U:    src.Intn(s.n),
			V:    src.Intn(s.n),
		}
		if !s.snake.Contains(p) {
			s.placeFood(p)
			return
		}
	}

	free := s.freeCells()
	if len(free) == 0 {
		return
	}
	s.placeFood(free[src.Intn(len(free))])
}

func (s *State) placeFood(p cube.Position) {
	s.food = p
	s.hasFood = true
	s.prize = (s.eaten+1)%s.opts.prizeEvery == 0
}

func (s *State) freeCells() []cube.Position {
	occupied := make(map[cube.Position]bool, len(s.snake.body))
	for _, seg := range s.snake.body {
		occupied[seg] = true
	}
	var free []cube.Position
	for _, c := range cube.Cells(s.n) {
		if !occupied[c] {
			free = append(free, c)
		}
	}
	return free
}

// Snake returns the snake. The returned value must not be modified.
func (s *State) Snake() *Snake { return &s.snake }

// Body returns a copy of the snake segments, head first.
func (s *State) Body() []cube.Position { return s.snake.Body() }

// Head returns the head position.
func (s *State) Head() cube.Position { return s.snake.Head() }

// Len returns the snake length.
func (s *State) Len() int { return s.snake.Len() }

// Direction returns the current heading.
func (s *State) Direction() cube.Direction { return s.snake.dir }

// NextDirection returns the buffered heading.
func (s *State) NextDirection() cube.Direction { return s.snake.next }

// Food returns the food position. Only meaningful when HasFood is true.
func (s *State) Food() cube.Position { return s.food }

// HasFood reports whether food is on the board.
func (s *State) HasFood() bool { return s.hasFood }

// IsPrize reports whether the current food is a prize.
func (s *State) IsPrize() bool { return s.prize }

// Score returns the current score.
func (s *State) Score() int { return s.score }

// HighScore returns the best score seen, including the current game.
func (s *State) HighScore() int { return s.highScore }

// Eaten returns how many foods were eaten this game.
func (s *State) Eaten() int { return s.eaten }

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool { return s.gameOver }

// Won reports whether the game ended with the snake covering every cell.
func (s *State) Won() bool { return s.won }

// GridSize returns the number of cells per cube edge.
func (s *State) GridSize() int { return s.n }

// Occupied reports whether the snake covers p.
func (s *State) Occupied(p cube.Position) bool { return s.snake.Contains(p) }
