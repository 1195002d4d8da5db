package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Validate(t *testing.T) {
	tempFile := filepath.Join(t.TempDir(), "existing_file")
	require.NoError(t, os.WriteFile(tempFile, []byte("test"), 0644))

	tests := []struct {
		name        string
		opts        Options
		expectError string
	}{
		{name: "Name 누락", opts: Options{Dir: "logs"}, expectError: "애플리케이션 식별자(Name)"},
		{name: "Dir이 파일", opts: Options{Name: "momo", Dir: tempFile}, expectError: "이미 파일로 존재합니다"},
		{name: "음수 MaxAge", opts: Options{Name: "momo", MaxAge: -1}, expectError: "MaxAge"},
		{name: "음수 MaxSizeMB", opts: Options{Name: "momo", MaxSizeMB: -1}, expectError: "MaxSizeMB"},
		{name: "음수 MaxBackups", opts: Options{Name: "momo", MaxBackups: -1}, expectError: "MaxBackups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestSetup_CreatesLogFiles(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	dir := t.TempDir()
	opts := NewProductionOptions("momo-test")
	opts.Dir = dir
	opts.Level = TraceLevel

	c, err := Setup(opts)
	require.NoError(t, err)
	require.NotNil(t, c)

	WithComponent("test").Info("info message")
	WithComponent("test").Error("error message")
	WithComponent("test").Debug("debug message")

	require.NoError(t, c.Close())

	mainLog, err := os.ReadFile(filepath.Join(dir, "momo-test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "info message")
	assert.Contains(t, string(mainLog), "error message")
	assert.NotContains(t, string(mainLog), "debug message")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "momo-test.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "error message")
	assert.NotContains(t, string(criticalLog), "info message")

	verboseLog, err := os.ReadFile(filepath.Join(dir, "momo-test.verbose.log"))
	require.NoError(t, err)
	assert.Contains(t, string(verboseLog), "debug message")
	assert.NotContains(t, string(verboseLog), "info message")
}

func TestSetup_Once(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	dir := t.TempDir()

	c1, err := Setup(Options{Name: "first", Dir: dir})
	require.NoError(t, err)
	defer c1.Close()

	c2, err := Setup(Options{Name: "second", Dir: dir})
	require.NoError(t, err)

	assert.Same(t, c1, c2)
	assert.NoFileExists(t, filepath.Join(dir, "second.log"))
}

func TestSetup_InvalidOptionsErrorIsSticky(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	_, err1 := Setup(Options{})
	require.Error(t, err1)

	_, err2 := Setup(Options{Name: "valid", Dir: t.TempDir()})
	assert.Equal(t, err1, err2)
}

func TestSetup_DefaultLevel(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	c, err := Setup(Options{Name: "level", Dir: t.TempDir()})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestSetDebugMode(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())
}

func TestWithComponentAndFields(t *testing.T) {
	fields := Fields{"check": "datastore", "component": "overridden"}

	entry := WithComponentAndFields("health.aggregator", fields)

	assert.Equal(t, "health.aggregator", entry.Data["component"])
	assert.Equal(t, "datastore", entry.Data["check"])
	assert.Equal(t, "overridden", fields["component"], "원본 맵은 변경되지 않아야 합니다")
}

func TestNewTextFormatter_CallerPathPrefix(t *testing.T) {
	f := newTextFormatter("github.com/darkkaiser/momo-server")

	function, _ := f.CallerPrettyfier(&runtimeFrameForTest)
	assert.Equal(t, ".../internal/service/health.(*Aggregator).Run(line:42)", function)
}
