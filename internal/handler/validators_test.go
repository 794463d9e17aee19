package handler

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayValidation(t *testing.T) {
	RegisterValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	type payload struct {
		Time string `binding:"timeofday"`
	}

	valid := []string{"08:00:00", "17:30:00", "08:00", "23:59:59"}
	for _, value := range valid {
		assert.NoError(t, v.Struct(payload{Time: value}), value)
	}

	invalid := []string{"", "8am", "25:00:00", "08:61", "noon"}
	for _, value := range invalid {
		assert.Error(t, v.Struct(payload{Time: value}), value)
	}
}
