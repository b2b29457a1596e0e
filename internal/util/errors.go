package util

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTutor        = errors.New("invalid tutor ID")
	ErrBadCredentials      = errors.New("invalid password")
	ErrPlanNotFound        = errors.New("plan ID not found")
	ErrScheduleRowNotFound = errors.New("no schedule entry for that student and date")
)

// ConnectionError wraps a failed round-trip to the spreadsheet backend. It is
// fatal for the current operation only; nothing retries.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("spreadsheet %s failed: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TableNotFoundError reports the requested logical worksheet along with every
// physical title the spreadsheet actually has, so schema drift can be diagnosed
// from the error text alone.
type TableNotFoundError struct {
	Requested string
	Available []string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found (available: %s)",
		e.Requested, strings.Join(e.Available, ", "))
}

type ColumnNotFoundError struct {
	Table     string
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q has no column %q (available: %s)",
		e.Table, e.Column, strings.Join(e.Available, ", "))
}

// PartialWriteError means a multi-cell update stopped partway, leaving the row
// inconsistent in the sheet. No rollback is attempted; callers surface it as a
// distinct recoverable failure.
type PartialWriteError struct {
	Table   string
	Written []string
	Failed  string
	Err     error
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("partial write to %s: wrote [%s], failed on %s: %v",
		e.Table, strings.Join(e.Written, ", "), e.Failed, e.Err)
}

func (e *PartialWriteError) Unwrap() error { return e.Err }
