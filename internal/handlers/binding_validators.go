package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/PlanSmiths/merch_planning_app/internal/core/domain"
)

// RegisterBindingValidators wires the domain enum checks into gin's request
// binding so malformed enums fail at bind time with a 400, before any
// service logic runs.
func RegisterBindingValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("spreadmode", func(fl validator.FieldLevel) bool {
		switch domain.SpreadMode(fl.Field().String()) {
		case domain.SpreadProportional, domain.SpreadEven, domain.SpreadWeighted:
			return true
		}
		return false
	})

	_ = v.RegisterValidation("aggpolicy", func(fl validator.FieldLevel) bool {
		switch domain.AggregationType(fl.Field().String()) {
		case domain.AggSum, domain.AggAvg, domain.AggWeightedAvg, domain.AggNone:
			return true
		}
		return false
	})
}
