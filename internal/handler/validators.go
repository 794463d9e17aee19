package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// timeOfDayLayouts are the accepted encodings for doctor availability times.
var timeOfDayLayouts = []string{"15:04:05", "15:04"}

// RegisterValidators installs custom binding rules on gin's validator engine.
// Must run once before the router starts serving.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, layout := range timeOfDayLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return true
			}
		}
		return false
	})
}
