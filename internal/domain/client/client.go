package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
)

type Client struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	DeletedAt  *time.Time      `json:"deleted_at,omitempty"`
}

func (c Client) IsDeleted() bool {
	return c.DeletedAt != nil
}

// NormalizeName is the comparison key for client names: trimmed and case folded.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func SameName(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

func NewID(now time.Time) string {
	return fmt.Sprintf("new-client-%d", now.UnixMilli())
}

func uniqueID(list []Client, now time.Time) string {
	for {
		id := NewID(now)
		if _, ok := FindByID(list, id); !ok {
			return id
		}
		now = now.Add(time.Millisecond)
	}
}

func FindByID(list []Client, id string) (Client, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// FindActiveByName ignores soft deleted clients.
func FindActiveByName(list []Client, name string) (Client, bool) {
	key := NormalizeName(name)
	for _, c := range list {
		if !c.IsDeleted() && NormalizeName(c.Name) == key {
			return c, true
		}
	}
	return Client{}, false
}

// ResolveOrCreate returns the active client with the given name, creating one
// when none exists. An existing client gets phone only when it has none yet.
// The returned slice is always a fresh copy.
func ResolveOrCreate(
	list []Client,
	name string,
	phone string,
	now time.Time,
) (Client, []Client, error) {

	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Client{}, nil, httperr.ErrBusiness("invalid_client_name")
	}

	if existing, ok := FindActiveByName(list, name); ok {
		if phone != "" && existing.Phone == "" {
			updated, err := UpdatePhone(list, existing.ID, phone)
			if err != nil {
				return Client{}, nil, err
			}
			existing.Phone = phone
			return existing, updated, nil
		}
		return existing, clone(list), nil
	}

	created := Client{
		ID:         uniqueID(list, now),
		Name:       name,
		Phone:      phone,
		TotalSpent: decimal.Zero,
	}

	out := make([]Client, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, created)

	return created, out, nil
}

func UpdatePhone(list []Client, id, phone string) ([]Client, error) {
	return replace(list, id, func(c *Client) error {
		c.Phone = strings.TrimSpace(phone)
		return nil
	})
}

func Rename(list []Client, id, name string) ([]Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_client_name")
	}
	return replace(list, id, func(c *Client) error {
		if c.IsDeleted() {
			return httperr.ErrBusiness("client_deleted")
		}
		c.Name = name
		return nil
	})
}

// SoftDelete marks the client as deleted. Appointments keep pointing at it.
func SoftDelete(list []Client, id string, now time.Time) ([]Client, error) {
	return replace(list, id, func(c *Client) error {
		if c.IsDeleted() {
			return httperr.ErrBusiness("client_deleted")
		}
		at := now
		c.DeletedAt = &at
		return nil
	})
}

func Active(list []Client) []Client {
	out := make([]Client, 0, len(list))
	for _, c := range list {
		if !c.IsDeleted() {
			out = append(out, c)
		}
	}
	return out
}

// Suggest returns up to limit active clients whose name contains query.
// Queries shorter than two characters return nothing.
func Suggest(list []Client, query string, limit int) []Client {
	q := NormalizeName(query)
	if len([]rune(q)) < 2 {
		return []Client{}
	}

	out := []Client{}
	for _, c := range list {
		if c.IsDeleted() {
			continue
		}
		if strings.Contains(NormalizeName(c.Name), q) {
			out = append(out, c)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func replace(list []Client, id string, fn func(*Client) error) ([]Client, error) {
	out := clone(list)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if err := fn(&out[i]); err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, httperr.ErrBusiness("client_not_found")
}

func clone(list []Client) []Client {
	out := make([]Client, len(list))
	copy(out, list)
	return out
}
