package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
	"github.com/darkkaiser/momo-server/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 에러 메시지에 Go 필드명 대신 JSON 키를 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"cors_origin": func(fl validator.FieldLevel) bool {
			return validation.ValidateCORSOrigin(fl.Field().String()) == nil
		},
		"cron_spec": func(fl validator.FieldLevel) bool {
			return validation.ValidateCronExpression(fl.Field().String()) == nil
		},
		"readable_file": func(fl validator.FieldLevel) bool {
			return validation.ValidateFile(fl.Field().String()) == nil
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("초기화 치명적 오류: '%s' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", tag, err))
		}
	}

	return v
}

// checkStruct 구조체의 유효성을 검사하고, 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	fe := validationErrors[0]
	key := configKey(fe.Namespace())

	switch fe.Tag() {
	case "required_if", "required_with":
		return apperrors.Newf(apperrors.InvalidInput, "'%s' 설정은 필수입니다", key)
	case "readable_file":
		return apperrors.Newf(apperrors.InvalidInput, "'%s'에 지정된 파일을 읽을 수 없습니다: '%v'", key, fe.Value())
	case "cors_origin":
		return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fe.Value())
	case "cron_spec":
		return apperrors.Newf(apperrors.InvalidInput, "'%s'의 Cron 표현식이 올바르지 않습니다: '%v' (6필드, 예: 0 */1 * * * *)", key, fe.Value())
	case "oneof":
		return apperrors.Newf(apperrors.InvalidInput, "'%s'에 알 수 없는 값이 포함되어 있습니다: '%v' (허용: %s)", key, fe.Value(), fe.Param())
	case "unique":
		return apperrors.Newf(apperrors.InvalidInput, "'%s'에 중복된 값이 존재합니다", key)
	default:
		return apperrors.Newf(apperrors.InvalidInput, "'%s' 설정이 올바르지 않습니다: '%v' (조건: %s)", key, fe.Value(), conditionOf(fe))
	}
}

// configKey validator의 Namespace("AppConfig.health.enabled_checks[0]")를 설정 키("health.enabled_checks[0]")로 변환합니다.
func configKey(namespace string) string {
	if _, after, found := strings.Cut(namespace, "."); found {
		return after
	}
	return namespace
}

func conditionOf(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
