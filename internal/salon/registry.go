// Package salon wires the generic CRUD engine to the salon domain: it
// opens the persisted collections over one store and carries the domain
// rules that do not belong in a generic collection, such as the client
// visit bookkeeping.
package salon

import (
	"errors"
	"fmt"

	"github.com/shringar-studio/shringar/pkg/collection"
	"github.com/shringar-studio/shringar/pkg/types"
)

// Durable slot keys, one per entity collection.
const (
	KeyServices     = "shringar_services"
	KeyClients      = "shringar_clients"
	KeyAppointments = "shringar_appointments"
	KeyStaff        = "shringar_staff"
	KeyJewelry      = "shringar_jewelry"
)

// Collection aliases keep the two-parameter generic type out of call
// sites.
type (
	ServiceCollection     = collection.Persisted[types.Service, *types.Service]
	ClientCollection      = collection.Persisted[types.Client, *types.Client]
	AppointmentCollection = collection.Persisted[types.Appointment, *types.Appointment]
	StaffCollection       = collection.Persisted[types.Staff, *types.Staff]
	JewelryCollection     = collection.Persisted[types.Jewelry, *types.Jewelry]
)

// Registry holds one persisted collection per entity type, all over the
// same store.
type Registry struct {
	Services     *ServiceCollection
	Clients      *ClientCollection
	Appointments *AppointmentCollection
	Staff        *StaffCollection
	Jewelry      *JewelryCollection
}

// Open opens every collection over store. A slot that has never been
// written is seeded with the built-in sample data and persisted
// immediately.
func Open(store types.Store) (*Registry, error) {
	services, err := collection.Open[types.Service, *types.Service](store, KeyServices, SeedServices())
	if err != nil {
		return nil, fmt.Errorf("open services: %w", err)
	}
	clients, err := collection.Open[types.Client, *types.Client](store, KeyClients, SeedClients())
	if err != nil {
		return nil, fmt.Errorf("open clients: %w", err)
	}
	appointments, err := collection.Open[types.Appointment, *types.Appointment](store, KeyAppointments, SeedAppointments())
	if err != nil {
		return nil, fmt.Errorf("open appointments: %w", err)
	}
	staff, err := collection.Open[types.Staff, *types.Staff](store, KeyStaff, SeedStaff())
	if err != nil {
		return nil, fmt.Errorf("open staff: %w", err)
	}
	jewelry, err := collection.Open[types.Jewelry, *types.Jewelry](store, KeyJewelry, SeedJewelry())
	if err != nil {
		return nil, fmt.Errorf("open jewelry: %w", err)
	}

	return &Registry{
		Services:     services,
		Clients:      clients,
		Appointments: appointments,
		Staff:        staff,
		Jewelry:      jewelry,
	}, nil
}

// UpdateClient applies an edit payload to the client with the given id.
// The visit bookkeeping is spliced from the stored record: TotalVisits and
// LastVisit never come from the payload.
func (r *Registry) UpdateClient(id string, payload types.Client) error {
	prior, err := r.Clients.Get(id)
	if err != nil {
		return err
	}
	payload.TotalVisits = prior.TotalVisits
	payload.LastVisit = prior.LastVisit
	return r.Clients.Update(id, payload)
}

// RecordVisit increments the visit counter of the client with the given id
// and stamps date as the last visit.
func (r *Registry) RecordVisit(id, date string) error {
	client, err := r.Clients.Get(id)
	if err != nil {
		return err
	}
	client.RecordVisit(date)
	return r.Clients.Update(id, client)
}

// CompleteAppointment marks the appointment completed and records the
// visit on the referenced client. A dangling client reference still
// completes the appointment; only the visit bump is skipped.
func (r *Registry) CompleteAppointment(id string) (types.Appointment, error) {
	appt, err := r.Appointments.Get(id)
	if err != nil {
		return types.Appointment{}, err
	}
	if err := appt.SetStatus(types.StatusCompleted); err != nil {
		return types.Appointment{}, err
	}
	if err := r.Appointments.Update(id, appt); err != nil {
		return types.Appointment{}, err
	}

	if err := r.RecordVisit(appt.ClientID, appt.Date); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return appt, nil
		}
		return types.Appointment{}, err
	}
	return appt, nil
}
