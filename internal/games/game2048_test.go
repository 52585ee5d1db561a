package games

import "testing"

func TestSlideLine(t *testing.T) {
	tests := []struct {
		name   string
		in     [boardSize]int64
		want   [boardSize]int64
		gained int64
	}{
		{"empty", [4]int64{0, 0, 0, 0}, [4]int64{0, 0, 0, 0}, 0},
		{"compact", [4]int64{0, 2, 0, 4}, [4]int64{2, 4, 0, 0}, 0},
		{"merge pair", [4]int64{2, 2, 0, 0}, [4]int64{4, 0, 0, 0}, 4},
		{"merge once per move", [4]int64{2, 2, 2, 2}, [4]int64{4, 4, 0, 0}, 8},
		{"no double merge", [4]int64{4, 2, 2, 0}, [4]int64{4, 4, 0, 0}, 4},
		{"gap merge", [4]int64{2, 0, 2, 4}, [4]int64{4, 4, 0, 0}, 4},
		{"no merge", [4]int64{2, 4, 2, 4}, [4]int64{2, 4, 2, 4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gained := slideLine(tt.in)
			if got != tt.want {
				t.Errorf("slideLine(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if gained != tt.gained {
				t.Errorf("gained = %d, want %d", gained, tt.gained)
			}
		})
	}
}

func TestGame2048NoChangeMoveIgnored(t *testing.T) {
	var over []Result
	g := NewGame2048(fixedOptions(&over))
	g.Start()

	// Pin the board to a layout where sliding left changes nothing.
	g.board = [boardSize][boardSize]int64{
		{2, 4, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	before := g.board
	g.Move(DirLeft)
	if g.board != before {
		t.Fatalf("no-op move spawned a tile or mutated the board")
	}
	if g.Score() != 0 {
		t.Fatalf("no-op move changed score: %d", g.Score())
	}
}

func TestGame2048MergeScoresAndSpawns(t *testing.T) {
	var over []Result
	g := NewGame2048(fixedOptions(&over))
	g.Start()

	g.board = [boardSize][boardSize]int64{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g.Move(DirLeft)
	if g.board[0][0] != 4 {
		t.Fatalf("board[0][0] = %d, want 4", g.board[0][0])
	}
	if g.Score() != 4 {
		t.Fatalf("score = %d, want 4", g.Score())
	}
	count := 0
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			if g.board[y][x] != 0 {
				count++
			}
		}
	}
	if count != 2 {
		t.Fatalf("tile count = %d, want merged tile plus one spawn", count)
	}
}

func TestGame2048EndsWhenBoardLocked(t *testing.T) {
	var over []Result
	g := NewGame2048(fixedOptions(&over))
	g.Start()

	// After the last merge the only empty cell borders 8s, so whichever
	// tile spawns (2 or 4) the board is locked.
	g.board = [boardSize][boardSize]int64{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{8, 16, 8, 16},
		{8, 64, 256, 256},
	}
	g.Move(DirRight)
	if g.State() != StateGameOver {
		t.Fatalf("board should be locked, state=%v board=%v", g.State(), g.board)
	}
	if len(over) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(over))
	}
	if over[0].Score != 512 {
		t.Fatalf("final score = %d, want 512 from the 256 merge", over[0].Score)
	}
}

func TestGame2048DirectionalSlides(t *testing.T) {
	var over []Result
	g := NewGame2048(fixedOptions(&over))
	g.Start()

	g.board = [boardSize][boardSize]int64{
		{0, 0, 0, 2},
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g.Move(DirDown)
	if g.board[boardSize-1][boardSize-1] != 4 {
		t.Fatalf("down slide should merge into bottom row, board=%v", g.board)
	}
	if g.Score() != 4 {
		t.Fatalf("score = %d, want 4", g.Score())
	}
}
