package repository

import (
	"strings"

	"tutor_dashboard_backend/internal/util"
)

// ResolveWorksheet maps a logical table name to the physical worksheet title.
// Exact matches win; otherwise a trimmed comparison catches titles like
// "Students " that drifted a trailing space. Anything else is schema drift and
// comes back as a TableNotFoundError listing what the spreadsheet does have.
func ResolveWorksheet(requested string, available []string) (string, error) {
	for _, title := range available {
		if title == requested {
			return title, nil
		}
	}

	want := strings.TrimSpace(requested)
	for _, title := range available {
		if strings.TrimSpace(title) == want {
			return title, nil
		}
	}

	return "", &util.TableNotFoundError{Requested: requested, Available: available}
}
