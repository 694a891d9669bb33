package schedule

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/ecoweek/internal/models"
)

var (
	ErrDuplicateAssignment = errors.New("challenge already scheduled for this day")
	ErrEntryNotFound       = errors.New("challenge not scheduled for this day")
	ErrNoDaySelected       = errors.New("no day selected")
	ErrInvalidDateKey      = errors.New("invalid date key")
)

// OpError records which store command failed and for which day and challenge.
type OpError struct {
	Op   string
	Date models.DateKey
	ID   int
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s challenge %d: %v", e.Op, e.Date, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Date, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapOpErr(op string, date models.DateKey, id int, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Date: date, ID: id, Err: err}
}
