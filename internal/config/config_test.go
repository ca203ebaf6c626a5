package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")
}

func encodedKeyPair(t *testing.T) (string, string) {
	t.Helper()
	privateKey, publicKey, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	publicDER, err := x509.MarshalPKIXPublicKey(publicKey)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})
	return base64.StdEncoding.EncodeToString(privatePEM), base64.StdEncoding.EncodeToString(publicPEM)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	clearKeys(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsTesting())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Server.TrustProxy)
	assert.Equal(t, 4, cfg.Security.PinLength)
	assert.Equal(t, 12*time.Hour, cfg.JWT.SessionDuration)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Zero(t, cfg.Security.AuditRetention)
	assert.True(t, cfg.JWT.Ephemeral)
	require.NotNil(t, cfg.JWT.PrivateKey)
	assert.Equal(t, &cfg.JWT.PrivateKey.PublicKey, cfg.JWT.PublicKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("MAX_FAILED_ATTEMPTS", "3")
	t.Setenv("LOCKOUT_DURATION", "1m")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("TRUST_PROXY", "1")
	t.Setenv("AUDIT_RETENTION", "2160h")
	t.Setenv("IMPORT_MAX_UPLOAD_BYTES", "2048")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://hub.example.com, ,https://ops.example.com")
	clearKeys(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Server.TrustProxy)
	assert.Equal(t, 3, cfg.Security.MaxFailedAttempts)
	assert.Equal(t, time.Minute, cfg.Security.LockoutDuration)
	assert.Equal(t, 90*24*time.Hour, cfg.Security.AuditRetention)
	assert.Equal(t, int64(2048), cfg.Import.MaxUploadBytes)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"https://hub.example.com", "https://ops.example.com"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_KeysFromEnvironment(t *testing.T) {
	private, public := encodedKeyPair(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_PRIVATE_KEY", private)
	t.Setenv("JWT_PUBLIC_KEY", public)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.JWT.Ephemeral)
	assert.True(t, cfg.JWT.PrivateKey.PublicKey.Equal(cfg.JWT.PublicKey))
}

func TestLoad_KeyErrors(t *testing.T) {
	private, public := encodedKeyPair(t)
	_, otherPublic := encodedKeyPair(t)

	testCases := []struct {
		name    string
		env     string
		private string
		public  string
		wantErr string
	}{
		{"production without keys", "production", "", "", "must be set in production"},
		{"only one key", "development", private, "", "must be set together"},
		{"not base64", "development", "%%%", public, "failed to decode JWT_PRIVATE_KEY"},
		{"not PEM", "development", private, base64.StdEncoding.EncodeToString([]byte("hello")), "JWT_PUBLIC_KEY holds no PEM block"},
		{"mismatched pair", "development", private, otherPublic, "are not a pair"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tc.env)
			t.Setenv("JWT_PRIVATE_KEY", tc.private)
			t.Setenv("JWT_PUBLIC_KEY", tc.public)

			_, err := Load()
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWT:      JWTConfig{SessionDuration: time.Hour},
			Security: SecurityConfig{PinLength: 4, BCryptCost: 10},
			Import:   ImportConfig{MaxRows: 10, MaxUploadBytes: 10},
		}
	}
	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Security.PinLength = 12
	cfg.Security.BCryptCost = 2
	cfg.Security.AdminEmail = "owner@example.com"
	cfg.Security.AuditRetention = -time.Hour
	cfg.JWT.SessionDuration = 0
	cfg.Import.MaxRows = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{
		"PIN_LENGTH must be between 4 and 8, got 12",
		"BCRYPT_COST",
		"BOOTSTRAP_ADMIN_PIN is required",
		"AUDIT_RETENTION cannot be negative",
		"JWT_SESSION_DURATION must be positive",
		"IMPORT_MAX_ROWS",
	} {
		assert.ErrorContains(t, err, want)
	}
}

func TestEnvOr_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_INT", "12")

	assert.Equal(t, time.Second, envOr("X_DUR", time.Second, time.ParseDuration))
	assert.Equal(t, 12, envOr("X_INT", 7, func(s string) (int, error) { return len(s) * 6, nil }))
	assert.Equal(t, "fallback", envString("X_UNSET_FOR_TEST", "fallback"))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "eventhub", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=eventhub sslmode=disable", c.DSN())
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	body := "BOOTSTRAP_ADMIN_EMAIL=owner@example.com\nBOOTSTRAP_ADMIN_PIN=2468\nSERVER_PORT=7000\n"
	require.NoError(t, os.WriteFile(envFile, []byte(body), 0o600))

	t.Setenv("APP_ENV", "testing")
	t.Setenv("SERVER_PORT", "9100")
	clearKeys(t)
	for _, key := range []string{"BOOTSTRAP_ADMIN_EMAIL", "BOOTSTRAP_ADMIN_PIN"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	require.NoError(t, LoadEnvFiles(filepath.Join(dir, "missing.env"), envFile))
	t.Cleanup(func() {
		_ = os.Unsetenv("BOOTSTRAP_ADMIN_EMAIL")
		_ = os.Unsetenv("BOOTSTRAP_ADMIN_PIN")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", cfg.Security.AdminEmail)
	assert.Equal(t, "2468", cfg.Security.AdminPin)
	assert.Equal(t, "9100", cfg.Server.Port, "variables already set win over the file")
	assert.Equal(t, 1, cfg.Security.LoginRatePerSecond)
	assert.Equal(t, 5, cfg.Security.LoginRateBurst)
}
