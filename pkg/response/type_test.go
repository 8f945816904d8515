package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pr-notes/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	// Local() makes the exact value depend on the runner timezone; only check the shape.
	b, err := json.Marshal(response.Date(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)))
	require.NoError(t, err)

	str := string(b)
	assert.True(t, strings.HasPrefix(str, `"`) && strings.HasSuffix(str, `"`), str)
	assert.Len(t, str, len(response.DateFormat)+2)
}

func TestDateTimeMarshalJSON(t *testing.T) {
	b, err := json.Marshal(response.DateTime(time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Len(t, string(b), len(response.DateTimeFormat)+2)
}

func TestZeroTimesMarshalNull(t *testing.T) {
	b, err := json.Marshal(struct {
		D  response.Date     `json:"d"`
		DT response.DateTime `json:"dt"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":null,"dt":null}`, string(b))
}
