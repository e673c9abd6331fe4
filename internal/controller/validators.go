package controller

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/examsched/config"
	"github.com/lshigami/examsched/internal/schedule"
)

// RegisterValidators adds the exam binding tags to gin's validator:
//
//	classtime  the slot names a known weekday pattern
//	examdate   YYYY-MM-DD or RFC 3339
//	notpast    the date is today or later in the school timezone
func RegisterValidators(cfg *config.Config) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	loc := cfg.Location()

	validators := map[string]validator.Func{
		"classtime": func(fl validator.FieldLevel) bool {
			_, err := schedule.Classify(fl.Field().String())
			return err == nil
		},
		"examdate": func(fl validator.FieldLevel) bool {
			_, err := schedule.ParseDate(fl.Field().String(), loc)
			return err == nil
		},
		"notpast": func(fl validator.FieldLevel) bool {
			d, err := schedule.ParseDate(fl.Field().String(), loc)
			if err != nil {
				return false
			}
			return !d.Before(schedule.Day(time.Now(), loc))
		},
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("registering %s validator: %w", tag, err)
		}
	}
	return nil
}
