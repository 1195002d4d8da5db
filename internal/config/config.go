package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/momo-server/internal/pkg/errors"
	"github.com/darkkaiser/momo-server/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "momo-server"

	// DefaultFilename 실행 인자로 설정 파일 경로가 주어지지 않았을 때 탐색하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자(.)로 변환됩니다.
	// 예: MOMO_HEALTH__READINESS_TIMEOUT=3s -> health.readiness_timeout
	EnvPrefix = "MOMO_"
)

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
// 기본 설정 파일이 없으면 기본값과 환경 변수만으로 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, false)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
// 명시적으로 지정된 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, true)
}

func load(filename string, fileRequired bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(Default(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
		if fileRequired {
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 (최우선 순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	// 정의되지 않은 키가 있으면 에러를 발생시켜 오타를 조기에 발견합니다.
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToTrimmedSliceHook(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			TagName:          "json",
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	appConfig.normalize()

	// 5. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// stringToTrimmedSliceHook 환경 변수의 콤마 구분 문자열을 공백과 빈 항목이 제거된 슬라이스로 변환합니다.
// 예: "cache, ,goroutines" -> ["cache", "goroutines"]
func stringToTrimmedSliceHook(sep string) mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}

		items := strutil.SplitAndTrim(data.(string), sep)
		if items == nil {
			return []string{}, nil
		}
		return items, nil
	}
}

// envKey MOMO_HEALTH__ENABLED_CHECKS -> health.enabled_checks
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// normalize 사용자 입력의 표기 차이를 정규화합니다.
// 헬스체크 항목명은 kebab-case로 통일합니다. (예: "PaymentBackend", "payment_backend" -> "payment-backend")
func (c *AppConfig) normalize() {
	checks := make([]string, 0, len(c.Health.EnabledChecks))
	for _, name := range c.Health.EnabledChecks {
		if name = strings.TrimSpace(name); name != "" {
			checks = append(checks, strcase.ToKebab(name))
		}
	}
	c.Health.EnabledChecks = checks

	for i, origin := range c.CORS.AllowOrigins {
		c.CORS.AllowOrigins[i] = strings.TrimSpace(origin)
	}
}

// validate 설정 로드 직후 각 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := checkStruct(newValidator(), c); err != nil {
		return err
	}

	// 와일드카드(*)는 단독으로만 사용할 수 있습니다.
	if len(c.CORS.AllowOrigins) > 1 {
		for _, origin := range c.CORS.AllowOrigins {
			if origin == "*" {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}
		}
	}

	// 활성화된 헬스체크 항목이 요구하는 연결 정보가 있는지 확인합니다.
	required := []struct {
		check string
		key   string
		value string
	}{
		{CheckPaymentBackend, "payment.base_url", c.Payment.BaseURL},
		{CheckDatastore, "datastore.dsn", c.Datastore.DSN},
		{CheckCache, "cache.addr", c.Cache.Addr},
	}
	for _, r := range required {
		if c.Health.IsEnabled(r.check) && strings.TrimSpace(r.value) == "" {
			return apperrors.Newf(apperrors.InvalidInput, "헬스체크 항목 '%s'을(를) 활성화하려면 '%s' 설정이 필요합니다", r.check, r.key)
		}
	}

	return nil
}
