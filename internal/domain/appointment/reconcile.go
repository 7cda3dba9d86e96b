package appointment

import "github.com/BruksfildServices01/barber-frontdesk/internal/domain/client"

type FlagType string

const (
	FlagMismatch FlagType = "mismatch"
	FlagDeleted  FlagType = "deleted"
)

// Flag reports a drift between an appointment and its linked client.
// ClientName is the client's current registered name.
type Flag struct {
	Type       FlagType `json:"type"`
	ClientName string   `json:"client_name"`
}

// Reconcile compares the appointment's client name snapshot with the linked
// client. A missing link or an unknown client id yields no flag. A name
// mismatch is reported before a soft deletion.
func Reconcile(ap Appointment, clients []client.Client) *Flag {
	if ap.ClientID == "" {
		return nil
	}

	c, ok := client.FindByID(clients, ap.ClientID)
	if !ok {
		return nil
	}

	if !client.SameName(ap.ClientName, c.Name) {
		return &Flag{Type: FlagMismatch, ClientName: c.Name}
	}
	if c.IsDeleted() {
		return &Flag{Type: FlagDeleted, ClientName: c.Name}
	}
	return nil
}
