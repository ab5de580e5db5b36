// CLI integration tests for the generic CRUD command set, exercised
// through the service entity.
package integration

import (
	"strings"
	"testing"
)

func TestServiceCrudLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShringar("init")

	// Create.
	created := ParseJSON[Service](t, env.MustRunShringar(
		"service", "add", "--json",
		"--name", "Bridal Makeup",
		"--description", "Full bridal package",
		"--price", "5000",
		"--duration", "180",
		"--category", "beauty",
	).Stdout)

	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if len(created.ID) != 36 {
		t.Errorf("id %q is not a UUID", created.ID)
	}
	if created.Price != 5000 || created.Category != "beauty" {
		t.Errorf("unexpected created service: %+v", created)
	}
	if !created.Available {
		t.Error("available should default to true")
	}

	// Edit one field; the rest must ride along unchanged.
	updated := ParseJSON[Service](t, env.MustRunShringar(
		"service", "edit", created.ID, "--json", "--price", "5500",
	).Stdout)
	if updated.ID != created.ID {
		t.Errorf("id changed on edit: %q -> %q", created.ID, updated.ID)
	}
	if updated.Price != 5500 {
		t.Errorf("price = %v, want 5500", updated.Price)
	}
	if updated.Name != "Bridal Makeup" || updated.Duration != 180 {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	// Id prefix resolution on edit.
	prefix := created.ID[:8]
	byPrefix := ParseJSON[Service](t, env.MustRunShringar(
		"service", "edit", prefix, "--json", "--duration", "200",
	).Stdout)
	if byPrefix.ID != created.ID {
		t.Errorf("prefix %q resolved to %q, want %q", prefix, byPrefix.ID, created.ID)
	}

	// Delete with --yes; the remaining records keep their order.
	env.MustRunShringar("service", "delete", created.ID, "--yes")

	services := ParseJSON[[]Service](t, env.MustRunShringar("service", "list", "--json").Stdout)
	if len(services) != 4 {
		t.Errorf("services after delete = %d, want 4", len(services))
	}
	for _, s := range services {
		if s.ID == created.ID {
			t.Error("deleted service still listed")
		}
	}
}

func TestServiceAddRequiresFields(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShringar("init")

	result := env.RunShringar("service", "add", "--name", "No Description")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit without required flags")
	}
}

func TestServiceAddRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "non-numeric price",
			args: []string{"--name", "X", "--description", "x", "--price", "cheap"},
		},
		{
			name: "unknown category",
			args: []string{"--name", "X", "--description", "x", "--category", "grooming"},
		},
		{
			name: "non-boolean available",
			args: []string{"--name", "X", "--description", "x", "--available", "maybe"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewTestEnv(t)
			env.MustRunShringar("init")

			result := env.RunShringar(append([]string{"service", "add"}, tt.args...)...)
			if result.ExitCode == 0 {
				t.Errorf("expected rejection, got stdout: %s", result.Stdout)
			}

			// The rejected record must not be stored.
			services := ParseJSON[[]Service](t, env.MustRunShringar("service", "list", "--json").Stdout)
			if len(services) != 4 {
				t.Errorf("services = %d, want the 4 seeds only", len(services))
			}
		})
	}
}

func TestEditUnknownIDFails(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShringar("init")

	result := env.RunShringar("service", "edit", "zzz", "--price", "100")
	if result.ExitCode != 1 {
		t.Errorf("exit code = %d, want 1 for unknown id", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "not found") {
		t.Errorf("unexpected stderr: %q", result.Stderr)
	}
}

func TestAmbiguousPrefixFails(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShringar("init")

	// Two UUIDv7 ids minted back to back share a timestamp prefix. Probe
	// with the longest common prefix of the pair.
	a := ParseJSON[Service](t, env.MustRunShringar("service", "add", "--json", "--name", "A", "--description", "a").Stdout)
	b := ParseJSON[Service](t, env.MustRunShringar("service", "add", "--json", "--name", "B", "--description", "b").Stdout)

	common := 0
	for common < len(a.ID) && common < len(b.ID) && a.ID[common] == b.ID[common] {
		common++
	}
	if common == 0 {
		t.Skip("minted ids share no prefix")
	}

	result := env.RunShringar("service", "edit", a.ID[:common], "--price", "1")
	if result.ExitCode == 0 {
		t.Error("expected non-zero exit for ambiguous prefix")
	}
}

func TestDeleteAbortsWithoutConfirmation(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunShringar("init")

	// Stdin is empty, so the confirmation prompt reads EOF and declines.
	result := env.MustRunShringar("service", "delete", "1")
	if !strings.Contains(result.Stdout, "Aborted.") {
		t.Errorf("expected abort message, got: %q", result.Stdout)
	}

	services := ParseJSON[[]Service](t, env.MustRunShringar("service", "list", "--json").Stdout)
	if len(services) != 4 {
		t.Errorf("services = %d, want 4 (nothing deleted)", len(services))
	}
}
