package logs

import (
	"fmt"
	"time"

	"github.com/checkers-go/checkers/checkers"
	"github.com/checkers-go/checkers/notation"
	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // repository assumes sqlite
)

const (
	WinnerOne = "one"
	WinnerTwo = "two"

	ResultOne        = "1-0"
	ResultTwo        = "0-1"
	ResultUnfinished = "*"
)

type Repository struct {
	db *sqlx.DB

	insert *sqlx.NamedStmt
}

// Game is the summary of one finished or abandoned game.
type Game struct {
	ID               string    `db:"id"`
	Timestamp        time.Time `db:"time"`
	Player1          string    `db:"player1"`
	Player2          string    `db:"player2"`
	Result           string    `db:"result"`
	Winner           string    `db:"winner"`
	Moves            int       `db:"moves"`
	Position         string    `db:"position"`
	MandatoryCapture bool      `db:"mandatory_capture"`
}

type PlayerStats struct {
	Player     string `db:"player"`
	Games      int    `db:"games"`
	Wins       int    `db:"wins"`
	Losses     int    `db:"losses"`
	Unfinished int    `db:"unfinished"`
}

// Summarize builds the summary of the game played in s. g is the
// final state and moves the number of moves made.
func Summarize(s *checkers.Session, g *checkers.Game, moves int) *Game {
	ps := g.Players()
	out := &Game{
		ID:               s.ID,
		Timestamp:        s.Started,
		Player1:          ps[0].String(),
		Player2:          ps[1].String(),
		Result:           ResultUnfinished,
		Moves:            moves,
		Position:         notation.FormatPosition(g),
		MandatoryCapture: g.Rules().MandatoryCapture,
	}
	if over, winner := g.GameOver(); over {
		if winner.ID == 0 {
			out.Winner, out.Result = WinnerOne, ResultOne
		} else {
			out.Winner, out.Result = WinnerTwo, ResultTwo
		}
	}
	return out
}

func Open(db string) (*Repository, error) {
	sql, err := sqlx.Open("sqlite3", db)
	if err != nil {
		return nil, err
	}
	_, err = sql.Exec(createGameTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create game table: %w", err)
	}
	_, err = sql.Exec(createPlayerTable)
	if err != nil {
		sql.Close()
		return nil, fmt.Errorf("create player_games view: %w", err)
	}

	repo := &Repository{db: sql}
	repo.insert, err = sql.PrepareNamed(insertStmt)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("prepare: %w", err)
	}
	return repo, nil
}

func (r *Repository) InsertGame(g *Game) error {
	_, err := r.insert.Exec(g)
	return err
}

func (r *Repository) InsertGames(gs []*Game) error {
	txn, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer txn.Rollback()
	stmt := txn.NamedStmt(r.insert)
	for _, g := range gs {
		if _, e := stmt.Exec(g); e != nil {
			return e
		}
	}
	return txn.Commit()
}

// Games returns the games player took part in, oldest first.
func (r *Repository) Games(player string) ([]Game, error) {
	var out []Game
	if err := r.db.Select(&out, selectGames, player, player); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats returns win and loss counts for every player, best first.
func (r *Repository) Stats() ([]PlayerStats, error) {
	var out []PlayerStats
	if err := r.db.Select(&out, selectStats); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository) Close() {
	if r.insert != nil {
		r.insert.Close()
	}
	r.db.Close()
}
