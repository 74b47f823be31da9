package cubesnake

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/cubesnake/internal/cube"
)

// scripted returns queued values in order, then zeros.
type scripted struct {
	vals  []int
	calls int
}

func (s *scripted) Intn(n int) int {
	s.calls++
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

// place queues the three draws that put food at p on the first attempt.
func (s *scripted) place(p cube.Position) {
	s.vals = append(s.vals, int(p.Face), p.U, p.V)
}

// withBody replaces the snake of s and puts the food at food.
func withBody(s *State, dir cube.Direction, food cube.Position, body ...cube.Position) {
	s.snake.body = body
	s.snake.dir = dir
	s.snake.next = dir
	s.food = food
	s.hasFood = true
	s.prize = false
}

func TestNewInvalidGridSize(t *testing.T) {
	for _, n := range []int{0, -3} {
		s, err := New(n)
		if !errors.Is(err, ErrInvalidGridSize) {
			t.Errorf("New(%d) error = %v, expected ErrInvalidGridSize", n, err)
		}
		if s != nil {
			t.Errorf("New(%d) returned a state", n)
		}
	}
}

func TestNewInitialState(t *testing.T) {
	s, err := New(10, WithSeed(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Len() != 1 {
		t.Errorf("Expected length 1, got %d", s.Len())
	}
	if s.Head() != cube.At(cube.Front, 5, 5) {
		t.Errorf("Expected head at front(5,5), got %v", s.Head())
	}
	if s.Direction() != cube.DirUp || s.NextDirection() != cube.DirUp {
		t.Errorf("Expected heading up, got %v/%v", s.Direction(), s.NextDirection())
	}
	if !s.HasFood() || s.Occupied(s.Food()) {
		t.Errorf("Expected food on a free cell, got %v (has=%v)", s.Food(), s.HasFood())
	}
	if !cube.Valid(s.Food(), 10) {
		t.Errorf("Food %v is off the cube", s.Food())
	}
	if s.IsPrize() {
		t.Error("First food should not be a prize")
	}
	if s.Score() != 0 || s.Eaten() != 0 || s.GameOver() || s.Won() {
		t.Errorf("Unexpected initial state: score=%d eaten=%d over=%v won=%v",
			s.Score(), s.Eaten(), s.GameOver(), s.Won())
	}
	if s.GridSize() != 10 {
		t.Errorf("Expected grid size 10, got %d", s.GridSize())
	}
}

func TestGrowthAndLengthConservation(t *testing.T) {
	src := &scripted{}
	src.place(cube.At(cube.Front, 5, 6))
	src.place(cube.At(cube.Back, 0, 0))

	s, err := New(10, WithSource(src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if ev := s.Update(); ev != EventEat {
		t.Fatalf("Expected EventEat, got %v", ev)
	}
	if s.Len() != 2 || s.Score() != 1 || s.Eaten() != 1 {
		t.Errorf("After eating: len=%d score=%d eaten=%d, expected 2/1/1", s.Len(), s.Score(), s.Eaten())
	}
	if s.Food() != cube.At(cube.Back, 0, 0) {
		t.Errorf("Expected new food at back(0,0), got %v", s.Food())
	}

	for range 3 {
		if ev := s.Update(); ev != EventNone {
			t.Fatalf("Expected EventNone, got %v", ev)
		}
		if s.Len() != 2 {
			t.Fatalf("Length changed on a plain move: %d", s.Len())
		}
	}

	want := []cube.Position{cube.At(cube.Front, 5, 9), cube.At(cube.Front, 5, 8)}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Errorf("Body = %v, expected %v", got, want)
	}
}

func TestBodyIsACopy(t *testing.T) {
	s, _ := New(5, WithSeed(1))
	body := s.Body()
	body[0] = cube.At(cube.Back, 0, 0)

	if s.Head() != cube.At(cube.Front, 2, 2) {
		t.Errorf("Mutating Body() changed the head to %v", s.Head())
	}
}

func TestTailChaseIsLegal(t *testing.T) {
	s, _ := New(10, WithSeed(1))
	withBody(s, cube.DirUp, cube.At(cube.Back, 0, 0),
		cube.At(cube.Front, 5, 5),
		cube.At(cube.Front, 5, 4),
		cube.At(cube.Front, 4, 4),
		cube.At(cube.Front, 4, 5),
	)

	if !s.SetDirection(cube.DirLeft) {
		t.Fatal("SetDirection(left) rejected")
	}
	if ev := s.Update(); ev != EventNone {
		t.Fatalf("Expected EventNone moving onto the tail, got %v", ev)
	}
	if s.GameOver() {
		t.Fatal("Moving onto the vacating tail should not end the game")
	}

	want := []cube.Position{
		cube.At(cube.Front, 4, 5),
		cube.At(cube.Front, 5, 5),
		cube.At(cube.Front, 5, 4),
		cube.At(cube.Front, 4, 4),
	}
	if got := s.Body(); !slices.Equal(got, want) {
		t.Errorf("Body = %v, expected %v", got, want)
	}
}

func TestTailIsSolidWhenGrowing(t *testing.T) {
	s, _ := New(10, WithSeed(1))
	tail := cube.At(cube.Front, 4, 5)
	withBody(s, cube.DirUp, tail,
		cube.At(cube.Front, 5, 5),
		cube.At(cube.Front, 5, 4),
		cube.At(cube.Front, 4, 4),
		tail,
	)

	s.SetDirection(cube.DirLeft)
	if ev := s.Update(); ev != EventGameOver {
		t.Errorf("Expected EventGameOver, got %v", ev)
	}
}

func TestSelfCollisionAndStickiness(t *testing.T) {
	s, _ := New(10, WithSeed(1))
	withBody(s, cube.DirUp, cube.At(cube.Back, 0, 0),
		cube.At(cube.Front, 5, 5),
		cube.At(cube.Front, 5, 4),
		cube.At(cube.Front, 4, 4),
		cube.At(cube.Front, 4, 5),
		cube.At(cube.Front, 4, 6),
	)
	before := s.Body()

	s.SetDirection(cube.DirLeft)
	if ev := s.Update(); ev != EventGameOver {
		t.Fatalf("Expected EventGameOver, got %v", ev)
	}
	if !s.GameOver() || s.Won() {
		t.Fatalf("Expected game over without win, got over=%v won=%v", s.GameOver(), s.Won())
	}
	if got := s.Body(); !slices.Equal(got, before) {
		t.Errorf("Collision mutated the body: %v", got)
	}

	for range 5 {
		if ev := s.Update(); ev != EventNone {
			t.Errorf("Expected EventNone after game over, got %v", ev)
		}
	}
	if got := s.Body(); !slices.Equal(got, before) {
		t.Errorf("Update after game over mutated the body: %v", got)
	}
	if s.Score() != 0 {
		t.Errorf("Score changed after game over: %d", s.Score())
	}
}

func TestScoreAndPrizeCadence(t *testing.T) {
	const n = 10
	src := &scripted{}

	// Every food appears right in front of the head.
	ahead, _ := cube.Next(cube.Center(cube.Front, n), cube.DirUp, n)
	src.place(ahead)

	s, err := New(n, WithSource(src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	score := 0
	for i := 1; i <= 12; i++ {
		h1, d1 := cube.Next(s.Head(), s.Direction(), n)
		h2, _ := cube.Next(h1, d1, n)
		src.place(h2)

		wantPrize := i%5 == 0
		if s.IsPrize() != wantPrize {
			t.Fatalf("food %d: IsPrize() = %v, expected %v", i, s.IsPrize(), wantPrize)
		}

		ev := s.Update()
		if wantPrize {
			score += 5
			if ev != EventEatPrize {
				t.Fatalf("food %d: expected EventEatPrize, got %v", i, ev)
			}
		} else {
			score++
			if ev != EventEat {
				t.Fatalf("food %d: expected EventEat, got %v", i, ev)
			}
		}

		if s.Score() != score {
			t.Fatalf("food %d: score = %d, expected %d", i, s.Score(), score)
		}
		if s.HighScore() != score {
			t.Fatalf("food %d: high score = %d, expected %d", i, s.HighScore(), score)
		}
		if s.Eaten() != i || s.Len() != i+1 {
			t.Fatalf("food %d: eaten=%d len=%d", i, s.Eaten(), s.Len())
		}
	}

	// 12 foods: 10 ordinary + 2 prizes
	if score != 20 {
		t.Errorf("Expected total score 20, got %d", score)
	}
}

func TestCustomScoring(t *testing.T) {
	src := &scripted{}
	src.place(cube.At(cube.Front, 2, 3))
	src.place(cube.At(cube.Front, 2, 4))

	s, _ := New(5, WithSource(src), WithScoring(2, 10, 1))
	if !s.IsPrize() {
		t.Fatal("prizeEvery=1 should make every food a prize")
	}
	if ev := s.Update(); ev != EventEatPrize {
		t.Fatalf("Expected EventEatPrize, got %v", ev)
	}
	if s.Score() != 10 {
		t.Errorf("Expected score 10, got %d", s.Score())
	}
}

func TestHighScoreCarriesOver(t *testing.T) {
	src := &scripted{}
	src.place(cube.At(cube.Front, 5, 6))

	s, _ := New(10, WithSource(src), WithHighScore(100))
	if s.HighScore() != 100 {
		t.Fatalf("Expected high score 100, got %d", s.HighScore())
	}

	s.Update()
	if s.Score() != 1 || s.HighScore() != 100 {
		t.Errorf("Expected score 1 high 100, got %d/%d", s.Score(), s.HighScore())
	}

	r := s.Restart()
	if r.HighScore() != 100 || r.Score() != 0 || r.Eaten() != 0 || r.Len() != 1 {
		t.Errorf("Restart: high=%d score=%d eaten=%d len=%d",
			r.HighScore(), r.Score(), r.Eaten(), r.Len())
	}
	if r.Head() != cube.At(cube.Front, 5, 5) || r.Direction() != cube.DirUp {
		t.Errorf("Restart: head %v heading %v", r.Head(), r.Direction())
	}
	if r.GameOver() || !r.HasFood() {
		t.Error("Restart should produce a live game with food")
	}
}

func TestRestartRaisesHighScore(t *testing.T) {
	src := &scripted{}
	src.place(cube.At(cube.Front, 5, 6))

	s, _ := New(10, WithSource(src), WithHighScore(0))
	s.Update()
	if r := s.Restart(); r.HighScore() != 1 {
		t.Errorf("Expected high score 1 after restart, got %d", r.HighScore())
	}
}

func TestReversalGuard(t *testing.T) {
	s, _ := New(10, WithSeed(3))

	if s.SetDirection(cube.DirDown) {
		t.Error("Reversal should be rejected")
	}
	if s.NextDirection() != cube.DirUp {
		t.Errorf("Rejected reversal changed the buffer to %v", s.NextDirection())
	}

	// Latest accepted direction wins
	if !s.SetDirection(cube.DirLeft) || !s.SetDirection(cube.DirRight) {
		t.Fatal("Perpendicular directions should be accepted")
	}
	if s.NextDirection() != cube.DirRight {
		t.Errorf("Expected buffered right, got %v", s.NextDirection())
	}
}

func TestUpdateIgnoresBufferedReversal(t *testing.T) {
	s, _ := New(10, WithSeed(3))
	withBody(s, cube.DirUp, cube.At(cube.Back, 0, 0),
		cube.At(cube.Front, 5, 5),
		cube.At(cube.Front, 5, 4),
	)
	s.snake.next = cube.DirDown

	if ev := s.Update(); ev != EventNone {
		t.Fatalf("Expected EventNone, got %v", ev)
	}
	if s.Head() != cube.At(cube.Front, 5, 6) {
		t.Errorf("Expected to keep moving up to front(5,6), got %v", s.Head())
	}
}

func TestCrossingSeams(t *testing.T) {
	const n = 16
	s, _ := New(n, WithSeed(9))

	withBody(s, cube.DirUp, cube.At(cube.Bottom, 0, 0), cube.At(cube.Front, 5, 15))
	s.Update()
	if s.Head() != cube.At(cube.Top, 5, 0) || s.Direction() != cube.DirUp {
		t.Errorf("Front(5,15) up: got %v %v, expected top(5,0) up", s.Head(), s.Direction())
	}

	withBody(s, cube.DirUp, cube.At(cube.Bottom, 0, 0), cube.At(cube.Top, 5, 15))
	s.Update()
	if s.Head() != cube.At(cube.Back, 10, 15) {
		t.Errorf("Top(5,15) up: got %v, expected back(10,15)", s.Head())
	}
	if s.Direction() != cube.DirDown || s.NextDirection() != cube.DirDown {
		t.Errorf("Expected heading down after the seam, got %v/%v", s.Direction(), s.NextDirection())
	}

	// The new heading is what reversals are judged against.
	if s.SetDirection(cube.DirUp) {
		t.Error("Up reverses the post-seam heading and should be rejected")
	}
}

func TestFullBoardWins(t *testing.T) {
	// Unit cube, free-cell placement only. Free cells are listed in face
	// order: front, back, left, right, top, bottom.
	src := &scripted{vals: []int{3, 0, 2, 0, 0}}
	s, err := New(1, WithSource(src), WithSpawnRetries(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Food() != cube.At(cube.Top, 0, 0) {
		t.Fatalf("Expected food on top, got %v", s.Food())
	}

	steps := []struct {
		turn cube.Direction
		want Event
	}{
		{cube.DirUp, EventEat},         // front -> top
		{cube.DirUp, EventEat},         // top -> back, heading down
		{cube.DirDown, EventEat},       // back -> bottom, heading up
		{cube.DirLeft, EventEat},       // bottom -> left
		{cube.DirRight, EventNone},     // left -> front, onto the tail
		{cube.DirRight, EventEatPrize}, // front -> right, the last cell
	}
	for i, st := range steps {
		s.SetDirection(st.turn)
		if ev := s.Update(); ev != st.want {
			t.Fatalf("step %d: got %v, expected %v (head %v)", i, ev, st.want, s.Head())
		}
	}

	if !s.Won() || !s.GameOver() {
		t.Errorf("Expected a won game, got won=%v over=%v", s.Won(), s.GameOver())
	}
	if s.HasFood() {
		t.Error("Full board should leave no food")
	}
	if s.Len() != 6 {
		t.Errorf("Expected length 6, got %d", s.Len())
	}
	if s.Score() != 9 {
		t.Errorf("Expected score 9, got %d", s.Score())
	}
	if ev := s.Update(); ev != EventNone {
		t.Errorf("Expected EventNone after winning, got %v", ev)
	}
}

func TestSpawnFallsBackToFreeCells(t *testing.T) {
	src := &scripted{} // always 0: front(0,0), which is occupied
	s, _ := New(2, WithSource(src), WithSpawnRetries(8))

	withBody(s, cube.DirUp, cube.Position{},
		cube.At(cube.Front, 0, 0),
		cube.At(cube.Front, 1, 0),
		cube.At(cube.Front, 1, 1),
	)
	src.calls = 0
	s.spawnFood()

	if !s.HasFood() {
		t.Fatal("Expected food to be placed")
	}
	if s.Food() != cube.At(cube.Front, 0, 1) {
		t.Errorf("Expected the first free cell front(0,1), got %v", s.Food())
	}
	if src.calls != 8*3+1 {
		t.Errorf("Expected %d draws, got %d", 8*3+1, src.calls)
	}
}

func TestSpawnNeverOnBody(t *testing.T) {
	s, _ := New(3, WithSeed(42))
	withBody(s, cube.DirUp, cube.Position{}, cube.Cells(3)[:40]...)

	for range 200 {
		s.spawnFood()
		if !s.HasFood() {
			t.Fatal("Expected food on a board with free cells")
		}
		if s.Occupied(s.Food()) {
			t.Fatalf("Food spawned on the snake at %v", s.Food())
		}
	}
}

// Random play keeps the body connected and only grows on eating.
func TestRandomPlayInvariants(t *testing.T) {
	const n = 6
	s, _ := New(n, WithSeed(2024))
	turns := rand.New(rand.NewSource(99))

	games := 0
	for range 5000 {
		if s.GameOver() {
			games++
			s = s.Restart()
		}
		if turns.Intn(4) == 0 {
			s.SetDirection(cube.Directions[turns.Intn(4)])
		}

		before := s.Len()
		high := s.HighScore()
		ev := s.Update()

		switch ev {
		case EventNone:
			if s.Len() != before {
				t.Fatalf("Length changed from %d to %d on a plain move", before, s.Len())
			}
		case EventEat, EventEatPrize:
			if s.Len() != before+1 {
				t.Fatalf("Length %d after eating, expected %d", s.Len(), before+1)
			}
			if s.HasFood() && s.Occupied(s.Food()) {
				t.Fatalf("New food %v is on the snake", s.Food())
			}
		}
		if s.HighScore() < high {
			t.Fatalf("High score dropped from %d to %d", high, s.HighScore())
		}

		body := s.Body()
		for i := 1; i < len(body); i++ {
			if !cube.Adjacent(body[i-1], body[i], n) {
				t.Fatalf("Segments %v and %v are not neighbours", body[i-1], body[i])
			}
		}
	}
	if games == 0 {
		t.Log("no game ended during random play")
	}
}

func TestEventString(t *testing.T) {
	if EventEatPrize.String() != "eat_prize" {
		t.Errorf("EventEatPrize.String() = %q", EventEatPrize.String())
	}
	if Event(99).String() != "unknown" {
		t.Errorf("Event(99).String() = %q", Event(99).String())
	}
}
