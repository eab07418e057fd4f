package postgres

import "time"

type playerTableModel struct {
	ID         int64     `db:"id"`
	Name       string    `db:"name"`
	Team       string    `db:"team"`
	Position   string    `db:"position"`
	Price      float64   `db:"price"`
	SelectedBy float64   `db:"selected_by"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
