// Unit tests for the registry: seeding, client visit bookkeeping, and the
// appointment completion flow.
package salon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shringar-studio/shringar/internal/memory"
	"github.com/shringar-studio/shringar/pkg/types"
)

func openRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := Open(memory.New())
	require.NoError(t, err)
	return reg
}

func TestOpenSeedsAllCollections(t *testing.T) {
	reg := openRegistry(t)

	assert.Equal(t, len(SeedServices()), reg.Services.Len())
	assert.Equal(t, len(SeedClients()), reg.Clients.Len())
	assert.Equal(t, len(SeedAppointments()), reg.Appointments.Len())
	assert.Equal(t, len(SeedStaff()), reg.Staff.Len())
	assert.Equal(t, len(SeedJewelry()), reg.Jewelry.Len())
}

func TestOpenPersistsSeedImmediately(t *testing.T) {
	store := memory.New()
	_, err := Open(store)
	require.NoError(t, err)

	for _, key := range []string{KeyServices, KeyClients, KeyAppointments, KeyStaff, KeyJewelry} {
		_, ok, err := store.Get(key)
		require.NoError(t, err)
		assert.True(t, ok, "slot %s should be written on first open", key)
	}
}

func TestSeededReferencesResolve(t *testing.T) {
	reg := openRegistry(t)

	for _, a := range reg.Appointments.Items() {
		_, err := reg.Clients.Get(a.ClientID)
		assert.NoError(t, err, "appointment %s client", a.ID)
		_, err = reg.Services.Get(a.ServiceID)
		assert.NoError(t, err, "appointment %s service", a.ID)
	}
}

func TestUpdateClientSplicesVisitBookkeeping(t *testing.T) {
	reg := openRegistry(t)

	prior, err := reg.Clients.Get("1")
	require.NoError(t, err)

	payload := prior
	payload.Phone = "+91 00000 00000"
	payload.TotalVisits = 999
	payload.LastVisit = "2099-12-31"

	require.NoError(t, reg.UpdateClient("1", payload))

	got, err := reg.Clients.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "+91 00000 00000", got.Phone)
	assert.Equal(t, prior.TotalVisits, got.TotalVisits)
	assert.Equal(t, prior.LastVisit, got.LastVisit)
}

func TestUpdateClientUnknownID(t *testing.T) {
	reg := openRegistry(t)

	err := reg.UpdateClient("zzz", types.Client{Name: "Nobody"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRecordVisit(t *testing.T) {
	reg := openRegistry(t)

	prior, err := reg.Clients.Get("2")
	require.NoError(t, err)

	require.NoError(t, reg.RecordVisit("2", "2024-03-01"))

	got, err := reg.Clients.Get("2")
	require.NoError(t, err)
	assert.Equal(t, prior.TotalVisits+1, got.TotalVisits)
	assert.Equal(t, "2024-03-01", got.LastVisit)
}

func TestCompleteAppointment(t *testing.T) {
	reg := openRegistry(t)

	appt, err := reg.Appointments.Get("1")
	require.NoError(t, err)
	priorClient, err := reg.Clients.Get(appt.ClientID)
	require.NoError(t, err)

	completed, err := reg.CompleteAppointment("1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, completed.Status)

	stored, err := reg.Appointments.Get("1")
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, stored.Status)

	client, err := reg.Clients.Get(appt.ClientID)
	require.NoError(t, err)
	assert.Equal(t, priorClient.TotalVisits+1, client.TotalVisits)
	assert.Equal(t, appt.Date, client.LastVisit)
}

func TestCompleteAppointmentDanglingClient(t *testing.T) {
	reg := openRegistry(t)

	id, err := reg.Appointments.Add(types.Appointment{
		ClientID:    "gone",
		ServiceID:   "1",
		Date:        "2024-04-01",
		Time:        "11:00",
		Status:      types.StatusConfirmed,
		TotalAmount: 500,
	})
	require.NoError(t, err)

	// Completion succeeds even though the client no longer exists; only
	// the visit bump is skipped.
	completed, err := reg.CompleteAppointment(id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, completed.Status)

	stored, err := reg.Appointments.Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, stored.Status)
}

func TestCompleteAppointmentUnknownID(t *testing.T) {
	reg := openRegistry(t)

	_, err := reg.CompleteAppointment("zzz")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestRegistrySurvivesReopen(t *testing.T) {
	store := memory.New()
	reg, err := Open(store)
	require.NoError(t, err)

	id, err := reg.Services.Add(types.Service{
		Name:        "Bridal Makeup",
		Description: "Full bridal package",
		Price:       5000,
		Duration:    180,
		Category:    types.CategoryBeauty,
		Available:   true,
	})
	require.NoError(t, err)
	require.NoError(t, reg.Clients.Delete("1"))

	reopened, err := Open(store)
	require.NoError(t, err)

	got, err := reopened.Services.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Bridal Makeup", got.Name)

	_, err = reopened.Clients.Get("1")
	assert.ErrorIs(t, err, types.ErrNotFound)
}
