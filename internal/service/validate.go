package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// validateStruct 校验输入结构体，返回 BadInput 错误
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe.Field(), fe.Tag(), fe.Param()))
		}
		return badInput("%s", strings.Join(msgs, " "))
	}
	return badInput("%s", err.Error())
}

// validateField 校验补丁中单个已提供的字段
func validateField(name, value, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return badInput("%s", fieldMessage(name, verrs[0].Tag(), verrs[0].Param()))
	}
	return badInput("%s", err.Error())
}

func fieldMessage(field, tag, param string) string {
	switch tag {
	case "required", "notblank":
		return "Field '" + field + "' is required."
	case "max":
		return "Field '" + field + "' exceeds max length " + param + "."
	default:
		return "Field '" + field + "' is invalid."
	}
}
