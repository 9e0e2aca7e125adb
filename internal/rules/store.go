// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rules

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store persists rulesets in a local SQLite database. It is the seam
// where a future literature-search integration would maintain its
// tables: the pipeline consumes whatever Ruleset the store loads, with
// no knowledge of where the rows came from.
type Store struct {
	db *sql.DB
}

// Open opens or creates the rule database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening rule database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS vocabulary (
			pos INTEGER PRIMARY KEY,
			term TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS typos (
			pos INTEGER PRIMARY KEY,
			wrong TEXT NOT NULL,
			right TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS confusions (
			pos INTEGER PRIMARY KEY,
			pattern TEXT NOT NULL,
			description TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS theory_classes (
			pos INTEGER PRIMARY KEY,
			term TEXT NOT NULL,
			class TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS classics (
			pos INTEGER PRIMARY KEY,
			title TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS translations (
			pos INTEGER PRIMARY KEY,
			foreign_name TEXT NOT NULL,
			standard_name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS suggestions (
			pos INTEGER PRIMARY KEY,
			body TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

const academicPositionKey = "academic_position"

// Import replaces the stored tables with the contents of rs. The write
// is transactional: a failed import leaves the previous tables intact.
func (s *Store) Import(rs *Ruleset) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	tables := []string{
		"vocabulary", "typos", "confusions", "theory_classes",
		"classics", "translations", "suggestions", "meta",
	}
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for i, term := range rs.TheoryVocabulary {
		if _, err := tx.Exec(`INSERT INTO vocabulary (pos, term) VALUES (?, ?)`, i, term); err != nil {
			return fmt.Errorf("inserting vocabulary term: %w", err)
		}
	}
	for i, fix := range rs.Typos {
		if _, err := tx.Exec(`INSERT INTO typos (pos, wrong, right) VALUES (?, ?, ?)`, i, fix.Wrong, fix.Right); err != nil {
			return fmt.Errorf("inserting typo fix: %w", err)
		}
	}
	for i, rule := range rs.Confusions {
		if _, err := tx.Exec(`INSERT INTO confusions (pos, pattern, description) VALUES (?, ?, ?)`, i, rule.Pattern, rule.Description); err != nil {
			return fmt.Errorf("inserting confusion rule: %w", err)
		}
	}
	pos := 0
	for _, term := range rs.WesternCanon {
		if _, err := tx.Exec(`INSERT INTO theory_classes (pos, term, class) VALUES (?, ?, ?)`, pos, term, "western"); err != nil {
			return fmt.Errorf("inserting theory class: %w", err)
		}
		pos++
	}
	for _, term := range rs.ChineseCanon {
		if _, err := tx.Exec(`INSERT INTO theory_classes (pos, term, class) VALUES (?, ?, ?)`, pos, term, "china-specific"); err != nil {
			return fmt.Errorf("inserting theory class: %w", err)
		}
		pos++
	}
	for i, title := range rs.Classics {
		if _, err := tx.Exec(`INSERT INTO classics (pos, title) VALUES (?, ?)`, i, title); err != nil {
			return fmt.Errorf("inserting classic title: %w", err)
		}
	}
	for i, tr := range rs.Translations {
		if _, err := tx.Exec(`INSERT INTO translations (pos, foreign_name, standard_name) VALUES (?, ?, ?)`, i, tr.Foreign, tr.Standard); err != nil {
			return fmt.Errorf("inserting translation: %w", err)
		}
	}
	for i, suggestion := range rs.Restructuring {
		if _, err := tx.Exec(`INSERT INTO suggestions (pos, body) VALUES (?, ?)`, i, suggestion); err != nil {
			return fmt.Errorf("inserting suggestion: %w", err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, academicPositionKey, rs.AcademicPosition); err != nil {
		return fmt.Errorf("inserting academic position: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// Load reads the stored tables back into a Ruleset, preserving table
// order. The result is not compiled.
func (s *Store) Load() (*Ruleset, error) {
	rs := &Ruleset{}

	if err := s.loadStrings(`SELECT term FROM vocabulary ORDER BY pos`, &rs.TheoryVocabulary); err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}

	rows, err := s.db.Query(`SELECT wrong, right FROM typos ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("loading typos: %w", err)
	}
	for rows.Next() {
		var fix TypoFix
		if err := rows.Scan(&fix.Wrong, &fix.Right); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning typo fix: %w", err)
		}
		rs.Typos = append(rs.Typos, fix)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("loading typos: %w", err)
	}

	rows, err = s.db.Query(`SELECT pattern, description FROM confusions ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("loading confusions: %w", err)
	}
	for rows.Next() {
		var rule ConfusionRule
		if err := rows.Scan(&rule.Pattern, &rule.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning confusion rule: %w", err)
		}
		rs.Confusions = append(rs.Confusions, rule)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("loading confusions: %w", err)
	}

	rows, err = s.db.Query(`SELECT term, class FROM theory_classes ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("loading theory classes: %w", err)
	}
	for rows.Next() {
		var term, class string
		if err := rows.Scan(&term, &class); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning theory class: %w", err)
		}
		switch class {
		case "western":
			rs.WesternCanon = append(rs.WesternCanon, term)
		case "china-specific":
			rs.ChineseCanon = append(rs.ChineseCanon, term)
		default:
			rows.Close()
			return nil, fmt.Errorf("unknown theory class %q for term %q", class, term)
		}
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("loading theory classes: %w", err)
	}

	if err := s.loadStrings(`SELECT title FROM classics ORDER BY pos`, &rs.Classics); err != nil {
		return nil, fmt.Errorf("loading classics: %w", err)
	}

	rows, err = s.db.Query(`SELECT foreign_name, standard_name FROM translations ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("loading translations: %w", err)
	}
	for rows.Next() {
		var tr Translation
		if err := rows.Scan(&tr.Foreign, &tr.Standard); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning translation: %w", err)
		}
		rs.Translations = append(rs.Translations, tr)
	}
	if err := closeRows(rows); err != nil {
		return nil, fmt.Errorf("loading translations: %w", err)
	}

	if err := s.loadStrings(`SELECT body FROM suggestions ORDER BY pos`, &rs.Restructuring); err != nil {
		return nil, fmt.Errorf("loading suggestions: %w", err)
	}

	err = s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, academicPositionKey).Scan(&rs.AcademicPosition)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading academic position: %w", err)
	}

	return rs, nil
}

// loadStrings runs a single-column query and appends the results to dst.
func (s *Store) loadStrings(query string, dst *[]string) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			rows.Close()
			return err
		}
		*dst = append(*dst, v)
	}
	return closeRows(rows)
}

// closeRows closes rows and surfaces any iteration error.
func closeRows(rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	return rows.Close()
}
