package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
)

var now = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func fixtures() []Client {
	deleted := now.Add(-24 * time.Hour)
	return []Client{
		{ID: "c1", Name: "João Silva", Phone: ""},
		{ID: "c2", Name: "Pedro Alves", Phone: "11 9999-0000"},
		{ID: "c3", Name: "Carlos Lima", DeletedAt: &deleted},
	}
}

func TestSameName(t *testing.T) {
	assert.True(t, SameName("  joão silva ", "JOÃO SILVA"))
	assert.False(t, SameName("João", "Joao"))
}

func TestResolveOrCreate_ExistingBackfillsPhone(t *testing.T) {
	list := fixtures()

	c, out, err := ResolveOrCreate(list, " joão SILVA", "11 1234-5678", now)
	require.NoError(t, err)

	assert.Equal(t, "c1", c.ID)
	assert.Equal(t, "11 1234-5678", c.Phone)
	assert.Len(t, out, 3)
	assert.Equal(t, "11 1234-5678", out[0].Phone)
	assert.Equal(t, "", list[0].Phone, "input slice must not change")
}

func TestResolveOrCreate_ExistingKeepsPhone(t *testing.T) {
	c, out, err := ResolveOrCreate(fixtures(), "Pedro Alves", "00 0000-0000", now)
	require.NoError(t, err)

	assert.Equal(t, "c2", c.ID)
	assert.Equal(t, "11 9999-0000", out[1].Phone)
}

func TestResolveOrCreate_CreatesNew(t *testing.T) {
	c, out, err := ResolveOrCreate(fixtures(), "Novo Cliente", "", now)
	require.NoError(t, err)

	assert.Equal(t, "new-client-1715331600000", c.ID)
	assert.Equal(t, "Novo Cliente", c.Name)
	assert.True(t, c.TotalSpent.IsZero())
	assert.Len(t, out, 4)
}

func TestResolveOrCreate_SkipsSoftDeleted(t *testing.T) {
	c, out, err := ResolveOrCreate(fixtures(), "carlos lima", "", now)
	require.NoError(t, err)

	assert.NotEqual(t, "c3", c.ID)
	assert.Len(t, out, 4)
}

func TestResolveOrCreate_BlankName(t *testing.T) {
	_, _, err := ResolveOrCreate(fixtures(), "   ", "", now)
	assert.True(t, httperr.IsBusiness(err, "invalid_client_name"))
}

func TestUpdatePhone_NotFound(t *testing.T) {
	_, err := UpdatePhone(fixtures(), "missing", "1")
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
}

func TestRenameAndSoftDelete(t *testing.T) {
	out, err := Rename(fixtures(), "c1", "João S.")
	require.NoError(t, err)
	assert.Equal(t, "João S.", out[0].Name)

	_, err = Rename(fixtures(), "c3", "X")
	assert.True(t, httperr.IsBusiness(err, "client_deleted"))

	out, err = SoftDelete(fixtures(), "c2", now)
	require.NoError(t, err)
	require.NotNil(t, out[1].DeletedAt)
	assert.Equal(t, now, *out[1].DeletedAt)

	_, err = SoftDelete(fixtures(), "c3", now)
	assert.True(t, httperr.IsBusiness(err, "client_deleted"))
}

func TestActive(t *testing.T) {
	active := Active(fixtures())
	require.Len(t, active, 2)
	assert.Equal(t, "c1", active[0].ID)
	assert.Equal(t, "c2", active[1].ID)
}

func TestSuggest(t *testing.T) {
	list := fixtures()

	assert.Empty(t, Suggest(list, "j", 4))

	got := Suggest(list, "SI", 4)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)

	assert.Empty(t, Suggest(list, "lim", 4), "soft deleted clients are not suggested")

	many := []Client{{ID: "1", Name: "Ana"}, {ID: "2", Name: "Ana B"}, {ID: "3", Name: "Ana C"}, {ID: "4", Name: "Ana D"}, {ID: "5", Name: "Ana E"}}
	assert.Len(t, Suggest(many, "an", 4), 4)
}
