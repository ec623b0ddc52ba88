package models

// Todo is the row shape of the todos table.
type Todo struct {
	TodoID      string `db:"todo_id"`
	UserID      string `db:"user_id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	AuditFields
}
