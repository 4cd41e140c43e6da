package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meara/drumfall/internal/game"
)

type DefaultScorer struct {
	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	db, err := sql.Open("sqlite3", "./scores.db")
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists sessions
	  (
		  id integer not null primary key,
		  sum text,
		  rate real,
		  results bytearray
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// hashBeatmap identifies a chart by its note content rather than its
// file path, so moving a song directory keeps its history.
func (s *DefaultScorer) hashBeatmap(b *game.Beatmap) string {
	var sb strings.Builder
	sb.WriteString(b.Title)
	sb.WriteString("|")
	sb.WriteString(b.Artist)
	for _, n := range b.Notes {
		sb.WriteString("|")
		sb.WriteString(strconv.FormatInt(int64(n.Time), 10))
		sb.WriteString(",")
		sb.WriteString(n.Component)
	}
	sum := sha256.Sum256([]byte(sb.String()))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func (s *DefaultScorer) Save(b *game.Beatmap, rate float64, results []NoteResult) error {
	data, err := json.Marshal(results)
	if nil != err {
		return err
	}
	_, err = s.db.Exec(
		"insert into sessions(sum, rate, results) values(?, ?, ?)",
		s.hashBeatmap(b), rate, data,
	)
	return err
}

func (s *DefaultScorer) Load(b *game.Beatmap) []Session {
	sessions := []Session{}
	rows, err := s.db.Query(
		"select sum, rate, results from sessions where sum = ?",
		s.hashBeatmap(b),
	)
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load sessions", err)
		return sessions
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var rate float64
		var data []byte
		rows.Scan(&sum, &rate, &data)
		var results []NoteResult
		if err := json.Unmarshal(data, &results); nil != err {
			log.Println("unable to unmarshal session results")
			continue
		}
		sessions = append(sessions, Session{
			Sum:     sum,
			Rate:    rate,
			Results: results,
		})
	}
	return sessions
}
