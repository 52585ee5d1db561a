package games

import "math/rand"

const (
	boardSize      = 4
	fourTileChance = 0.1
)

type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Game2048 is the sliding-tile merge game. Each merge adds the merged
// tile's value to the score. A move that changes nothing is ignored and
// spawns no tile; the session ends when no move can change the board.
type Game2048 struct {
	session
	rng *rand.Rand

	board [boardSize][boardSize]int64
	score int64
}

func NewGame2048(o Options) *Game2048 {
	o = o.withDefaults()
	return &Game2048{session: newSession(o), rng: o.Rand}
}

func (g *Game2048) Start() {
	if g.state == StatePlaying {
		return
	}
	g.begin()
	g.board = [boardSize][boardSize]int64{}
	g.score = 0
	g.spawnTile()
	g.spawnTile()
}

// Move slides all tiles in the given direction.
func (g *Game2048) Move(dir Direction) {
	if g.state != StatePlaying {
		return
	}
	moved := false
	for i := 0; i < boardSize; i++ {
		line := g.readLine(dir, i)
		merged, gained := slideLine(line)
		if merged != line {
			moved = true
		}
		g.score += gained
		g.writeLine(dir, i, merged)
	}
	if !moved {
		return
	}
	g.spawnTile()
	if !g.hasMoves() {
		g.finish(g.score)
	}
}

func (g *Game2048) Score() int64                       { return g.score }
func (g *Game2048) Board() [boardSize][boardSize]int64 { return g.board }

// readLine extracts row or column i oriented so that sliding moves tiles
// toward index 0.
func (g *Game2048) readLine(dir Direction, i int) [boardSize]int64 {
	var line [boardSize]int64
	for j := 0; j < boardSize; j++ {
		switch dir {
		case DirLeft:
			line[j] = g.board[i][j]
		case DirRight:
			line[j] = g.board[i][boardSize-1-j]
		case DirUp:
			line[j] = g.board[j][i]
		case DirDown:
			line[j] = g.board[boardSize-1-j][i]
		}
	}
	return line
}

func (g *Game2048) writeLine(dir Direction, i int, line [boardSize]int64) {
	for j := 0; j < boardSize; j++ {
		switch dir {
		case DirLeft:
			g.board[i][j] = line[j]
		case DirRight:
			g.board[i][boardSize-1-j] = line[j]
		case DirUp:
			g.board[j][i] = line[j]
		case DirDown:
			g.board[boardSize-1-j][i] = line[j]
		}
	}
}

// slideLine compacts a line toward index 0, merging equal neighbours once
// per move. Returns the new line and the score gained.
func slideLine(line [boardSize]int64) ([boardSize]int64, int64) {
	var out [boardSize]int64
	n := 0
	for _, v := range line {
		if v != 0 {
			out[n] = v
			n++
		}
	}
	var gained int64
	for j := 0; j < n-1; j++ {
		if out[j] != 0 && out[j] == out[j+1] {
			out[j] *= 2
			gained += out[j]
			copy(out[j+1:], out[j+2:])
			out[boardSize-1] = 0
			n--
		}
	}
	return out, gained
}

func (g *Game2048) spawnTile() {
	var empty []Point
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			if g.board[y][x] == 0 {
				empty = append(empty, Point{X: x, Y: y})
			}
		}
	}
	if len(empty) == 0 {
		return
	}
	p := empty[g.rng.Intn(len(empty))]
	value := int64(2)
	if g.rng.Float64() < fourTileChance {
		value = 4
	}
	g.board[p.Y][p.X] = value
}

func (g *Game2048) hasMoves() bool {
	for y := 0; y < boardSize; y++ {
		for x := 0; x < boardSize; x++ {
			v := g.board[y][x]
			if v == 0 {
				return true
			}
			if x+1 < boardSize && g.board[y][x+1] == v {
				return true
			}
			if y+1 < boardSize && g.board[y+1][x] == v {
				return true
			}
		}
	}
	return false
}
