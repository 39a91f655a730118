package db

import (
	"fmt"
	"strings"
)

// update collects the SET clause of an UPDATE from the fields that are present.
type update struct {
	columns []string
	args    []any
}

func (u *update) set(column string, value any) {
	u.columns = append(u.columns, column)
	u.args = append(u.args, value)
}

func (u *update) empty() bool {
	return len(u.columns) == 0
}

// build renders `UPDATE table SET a = ?, b = ? WHERE id = ?` and its arguments.
func (u *update) build(table string, id int64) (string, []any) {
	sets := make([]string, 0, len(u.columns))
	for _, c := range u.columns {
		sets = append(sets, c+" = ?")
	}

	args := make([]any, 0, len(u.args)+1)
	args = append(args, u.args...)
	args = append(args, id)

	return fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", ")), args
}
