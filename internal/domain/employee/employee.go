package employee

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
)

type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewID(now time.Time) string {
	return fmt.Sprintf("emp-%d", now.UnixMilli())
}

// Add appends a new employee. Appointments reference employees by name, so
// nothing else needs to change.
func Add(list []Employee, name string, now time.Time) ([]Employee, Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Employee{}, httperr.ErrBusiness("invalid_employee_name")
	}

	emp := Employee{ID: uniqueID(list, now), Name: name}

	out := make([]Employee, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, emp)

	return out, emp, nil
}

// Remove drops the employee. Appointments keep the old name snapshot.
func Remove(list []Employee, id string) ([]Employee, error) {
	out := make([]Employee, 0, len(list))
	found := false
	for _, e := range list {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	if !found {
		return nil, httperr.ErrBusiness("employee_not_found")
	}
	return out, nil
}

// uniqueID bumps the clock until the id is free, so two employees added
// within the same millisecond still get distinct ids.
func uniqueID(list []Employee, now time.Time) string {
	for {
		id := NewID(now)
		if _, ok := Find(list, id); !ok {
			return id
		}
		now = now.Add(time.Millisecond)
	}
}

func Find(list []Employee, id string) (Employee, bool) {
	for _, e := range list {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}
