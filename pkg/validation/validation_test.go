package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		wantErr bool
	}{
		{name: "와일드카드", origin: "*"},
		{name: "localhost + 포트", origin: "http://localhost:3000"},
		{name: "HTTPS 도메인", origin: "https://momo.example.com"},
		{name: "IPv4", origin: "http://192.168.0.1:8080"},
		{name: "IPv6", origin: "http://[::1]:8080"},
		{name: "빈 문자열", origin: " ", wantErr: true},
		{name: "후행 슬래시", origin: "http://localhost:3000/", wantErr: true},
		{name: "경로 포함", origin: "http://example.com/api", wantErr: true},
		{name: "쿼리 포함", origin: "http://example.com?a=1", wantErr: true},
		{name: "지원하지 않는 스키마", origin: "ftp://example.com", wantErr: true},
		{name: "사용자 정보 포함", origin: "http://user:pw@example.com", wantErr: true},
		{name: "포트 범위 초과", origin: "http://example.com:70000", wantErr: true},
		{name: "숫자 TLD", origin: "http://example.123", wantErr: true},
		{name: "하이픈 레이블", origin: "http://-bad.example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateCronExpression(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCronExpression("0 */1 * * * *"))
	assert.NoError(t, ValidateCronExpression("@every 1m"))

	err := ValidateCronExpression("* * * * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cron 표현식 파싱 실패")
}

func TestValidateFileAndDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "cert.pem")
	require.NoError(t, os.WriteFile(file, []byte("cert"), 0600))

	t.Run("성공: 파일", func(t *testing.T) {
		assert.NoError(t, ValidateFile(file))
	})
	t.Run("성공: 디렉터리", func(t *testing.T) {
		assert.NoError(t, ValidateDir(dir))
	})
	t.Run("실패: 빈 경로", func(t *testing.T) {
		assert.ErrorContains(t, ValidateFile(""), "비어 있습니다")
		assert.ErrorContains(t, ValidateDir(" "), "비어 있습니다")
	})
	t.Run("실패: 존재하지 않음", func(t *testing.T) {
		assert.ErrorContains(t, ValidateFile(filepath.Join(dir, "none")), "존재하지 않습니다")
		assert.ErrorContains(t, ValidateDir(filepath.Join(dir, "none")), "존재하지 않습니다")
	})
	t.Run("실패: 타입 불일치", func(t *testing.T) {
		assert.ErrorContains(t, ValidateFile(dir), "일반 파일")
		assert.ErrorContains(t, ValidateDir(file), "디렉터리가 아닙니다")
	})
}
