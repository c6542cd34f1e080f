package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresDatabase(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestValidateAcceptsURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{URL: "postgres://localhost/werkorders"}}
	assert.NoError(t, cfg.Validate())
}

func TestValidateAcceptsDiscreteFields(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "localhost", Name: "werkorders"}}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Database: DatabaseConfig{Host: "localhost"}}
	assert.Error(t, cfg.Validate())
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 10*time.Second, parseDuration("10s", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("nonsense", time.Minute))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"https://a.nl", "https://b.nl"}, splitAndTrim(" https://a.nl , https://b.nl ,"))
}
