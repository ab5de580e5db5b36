// Unit tests for the form controller: draft lifecycle, field merging,
// input coercion, and required-field enforcement.
package form

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	Name string `validate:"required"`
	Age  int    `validate:"min=1"`
	Bio  string
}

func profileFields() []Field[profile] {
	return []Field[profile]{
		{
			Name: "name", Label: "Name", Required: true,
			Set: func(d *profile, raw string) error { d.Name = raw; return nil },
			Get: func(d profile) string { return d.Name },
		},
		{
			Name: "age", Label: "Age",
			Set: func(d *profile, raw string) error {
				v, err := ParseInt(raw)
				if err != nil {
					return err
				}
				d.Age = v
				return nil
			},
			Get: func(d profile) string { return strconv.Itoa(d.Age) },
		},
		{
			Name: "bio", Label: "Bio",
			Set: func(d *profile, raw string) error { d.Bio = raw; return nil },
			Get: func(d profile) string { return d.Bio },
		},
	}
}

func TestNewStartsEditingWithInitialDraft(t *testing.T) {
	ctrl := New(profileFields(), profile{Name: "Priya", Age: 30, Bio: "stylist"})

	assert.Equal(t, StateEditing, ctrl.State())
	assert.Equal(t, profile{Name: "Priya", Age: 30, Bio: "stylist"}, ctrl.Draft())
	assert.True(t, ctrl.Has("age"))
	assert.False(t, ctrl.Has("salary"))
}

func TestApplyMergesSingleField(t *testing.T) {
	ctrl := New(profileFields(), profile{Name: "Priya", Age: 30, Bio: "stylist"})

	require.NoError(t, ctrl.Apply("age", "31"))

	// Only the touched field changes.
	assert.Equal(t, profile{Name: "Priya", Age: 31, Bio: "stylist"}, ctrl.Draft())
}

func TestApplyUnknownField(t *testing.T) {
	ctrl := New(profileFields(), profile{})

	err := ctrl.Apply("salary", "100")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestApplyCoercionFailureKeepsDraft(t *testing.T) {
	ctrl := New(profileFields(), profile{Age: 30})

	err := ctrl.Apply("age", "abc")
	assert.ErrorIs(t, err, ErrNotANumber)
	assert.Equal(t, 30, ctrl.Draft().Age)
	assert.Equal(t, StateEditing, ctrl.State())
}

func TestSubmitEmitsDraft(t *testing.T) {
	ctrl := New(profileFields(), profile{Age: 1})
	require.NoError(t, ctrl.Apply("name", "Anjali"))

	payload, err := ctrl.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Anjali", payload.Name)
	assert.Equal(t, StateSubmitted, ctrl.State())
}

func TestSubmitRequiredEmptyStaysEditing(t *testing.T) {
	ctrl := New(profileFields(), profile{Age: 1})

	_, err := ctrl.Submit()
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.Equal(t, StateEditing, ctrl.State())

	// Still editable: fill the field and submit again.
	require.NoError(t, ctrl.Apply("name", "Anjali"))
	_, err = ctrl.Submit()
	assert.NoError(t, err)
}

func TestSubmitTagValidationStaysEditing(t *testing.T) {
	ctrl := New(profileFields(), profile{Name: "Anjali", Age: 0})

	_, err := ctrl.Submit()
	require.Error(t, err)
	assert.Equal(t, StateEditing, ctrl.State())

	require.NoError(t, ctrl.Apply("age", "25"))
	_, err = ctrl.Submit()
	assert.NoError(t, err)
}

func TestTerminalStatesAreSticky(t *testing.T) {
	t.Run("after submit", func(t *testing.T) {
		ctrl := New(profileFields(), profile{Name: "Anjali", Age: 1})
		_, err := ctrl.Submit()
		require.NoError(t, err)

		assert.ErrorIs(t, ctrl.Apply("bio", "x"), ErrFormClosed)
		_, err = ctrl.Submit()
		assert.ErrorIs(t, err, ErrFormClosed)
		assert.ErrorIs(t, ctrl.Cancel(), ErrFormClosed)
		assert.Equal(t, StateSubmitted, ctrl.State())
	})

	t.Run("after cancel", func(t *testing.T) {
		ctrl := New(profileFields(), profile{Name: "Anjali", Age: 1})
		require.NoError(t, ctrl.Cancel())

		assert.ErrorIs(t, ctrl.Apply("bio", "x"), ErrFormClosed)
		_, err := ctrl.Submit()
		assert.ErrorIs(t, err, ErrFormClosed)
		assert.Equal(t, StateCancelled, ctrl.State())
	})
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "12.5", want: 12.5},
		{raw: " 500 ", want: 500},
		{raw: "-3", want: -3},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "12x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseFloat(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotANumber)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInt(t *testing.T) {
	got, err := ParseInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = ParseInt("4.2")
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestParseBool(t *testing.T) {
	got, err := ParseBool("true")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = ParseBool("0")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = ParseBool("maybe")
	assert.ErrorIs(t, err, ErrNotABool)
}
