package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSONAcceptsFreshRecord(t *testing.T) {
	rec := NewRecord()
	rec.Name = "Jane Doe"
	rec.Role = "Engineer"
	rec.Phone = "+1 (555) 123-4567"
	rec.Email = "jane@example.com"
	rec.Location = "Austin, TX"

	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.NoError(t, ValidateJSON(raw))
}

func TestValidateJSONRejectsMissingRequired(t *testing.T) {
	err := ValidateJSON([]byte(`{"role":"Engineer"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestValidateJSONRejectsUnknownFields(t *testing.T) {
	err := ValidateJSON([]byte(`{
		"name":"Jane","role":"x","phone":"x","email":"x","location":"x",
		"salary":"lots"
	}`))
	assert.Error(t, err)
}

func TestValidateJSONRejectsWrongTypes(t *testing.T) {
	err := ValidateJSON([]byte(`{
		"name":"Jane","role":"x","phone":"x","email":"x","location":"x",
		"skills":"Go"
	}`))
	assert.Error(t, err)
}
