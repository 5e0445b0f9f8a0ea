package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecialtiesAcceptStringOrArray(t *testing.T) {
	var one TeacherRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"specialties":"Hip Hop"}`), &one))
	assert.Equal(t, StringList{"Hip Hop"}, one.Specialties)

	var many TeacherRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"specialties":["Jazz"," ",""]}`), &many))
	many.Normalize()
	assert.Equal(t, StringList{"Jazz"}, many.Specialties)

	var none TeacherRequest
	require.NoError(t, sonic.Unmarshal([]byte(`{"specialties":null}`), &none))
	assert.Nil(t, none.Specialties)

	var bad TeacherRequest
	assert.Error(t, sonic.Unmarshal([]byte(`{"specialties":42}`), &bad))
}
