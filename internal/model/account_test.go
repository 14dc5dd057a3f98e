package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.January, 1)

	body, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(body))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01"`), &parsed))
	assert.True(t, d.SameDay(parsed))
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"01/02/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240101`), &d))
}

func TestToday(t *testing.T) {
	assert.Equal(t, time.Now().Format(DateLayout), Today().String())
}

func TestAccount_Serialize(t *testing.T) {
	account := Account{
		ID:          7,
		Name:        "Joe",
		Email:       "joe@x.com",
		Address:     "1 Main St",
		PhoneNumber: nil,
		DateJoined:  NewDate(2024, time.January, 1),
	}

	body, err := json.Marshal(account)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Joe","email":"joe@x.com","address":"1 Main St","phone_number":null,"date_joined":"2024-01-01"}`, string(body))
}

func TestCreateAccountPayload_Deserialize(t *testing.T) {
	var payload CreateAccountPayload
	body := `{"name":"Joe","email":"joe@x.com","address":"1 Main St","phone_number":"555-1111","date_joined":"2024-01-01"}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.NoError(t, payload.Validate())

	account := payload.Account()
	assert.Equal(t, "Joe", account.Name)
	assert.Equal(t, "joe@x.com", account.Email)
	assert.Equal(t, "1 Main St", account.Address)
	assert.Equal(t, "555-1111", *account.PhoneNumber)
	assert.Equal(t, "2024-01-01", account.DateJoined.String())
}

func TestCreateAccountPayload_DefaultsDateJoined(t *testing.T) {
	payload := CreateAccountPayload{Name: "Joe", Email: "joe@x.com", Address: "1 Main St"}
	require.NoError(t, payload.Validate())

	assert.Equal(t, Today().String(), payload.Account().DateJoined.String())
	assert.Nil(t, payload.Account().PhoneNumber)
}

func TestCreateAccountPayload_MissingFields(t *testing.T) {
	payload := CreateAccountPayload{Name: "not enough data"}

	err := payload.Validate()
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"email", "address"}, fields)
}

func TestCreateAccountPayload_TooLong(t *testing.T) {
	payload := CreateAccountPayload{
		Name:        "Joe",
		Email:       "joe@x.com",
		Address:     "1 Main St",
		PhoneNumber: strPtr("0123456789012345678901234567890123456789"),
	}

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(payload.Validate(), &validationErrors))
	assert.Equal(t, "phone_number", validationErrors[0].Field())
	assert.Equal(t, "max", validationErrors[0].Tag())
}

func TestUpdateAccountPayload_ApplyReplacesFields(t *testing.T) {
	account := &Account{
		ID:         1,
		Name:       "Joe",
		Email:      "joe@x.com",
		Address:    "1 Main St",
		DateJoined: NewDate(2024, time.January, 1),
	}

	var payload UpdateAccountPayload
	body := `{"name":"Joseph","email":"other@x.com","address":"2 Side St","phone_number":"555-2222"}`
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	require.NoError(t, payload.Validate())

	payload.Apply(account)
	assert.Equal(t, "Joseph", account.Name)
	assert.Equal(t, "joe@x.com", account.Email)
	assert.Equal(t, "2 Side St", account.Address)
	assert.Equal(t, "555-2222", *account.PhoneNumber)
	assert.Equal(t, Today().String(), account.DateJoined.String())
}

func TestUpdateAccountPayload_IDNotFromBody(t *testing.T) {
	var payload UpdateAccountPayload
	require.NoError(t, json.Unmarshal([]byte(`{"id":99,"name":"Joe"}`), &payload))
	assert.Zero(t, payload.ID)
}
