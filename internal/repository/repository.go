// Package repository is the relational data-access layer. Every read that
// feeds a response joins batch and actor names upfront so callers receive
// fully-materialized rows.
package repository

import "github.com/jmoiron/sqlx"

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }
