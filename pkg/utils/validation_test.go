package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Address string   `mapstructure:"server_address" validate:"required,hostname_port"`
	Level   string   `mapstructure:"log_level" validate:"oneof=debug info"`
	Limit   int64    `mapstructure:"max_body_bytes" validate:"gt=0"`
	Origins []string `validate:"min=1,dive,required"`
}

func TestValidateStruct(t *testing.T) {
	valid := sample{Address: ":8080", Level: "info", Limit: 1, Origins: []string{"*"}}
	require.NoError(t, ValidateStruct(valid))

	err := ValidateStruct(sample{Level: "trace", Origins: []string{""}})
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "server_address is required")
	assert.Contains(t, msg, "log_level must be one of: debug info")
	assert.Contains(t, msg, "max_body_bytes must be greater than 0")
	assert.Contains(t, msg, "Origins[0] is required")
}

func TestValidateStruct_HostPort(t *testing.T) {
	err := ValidateStruct(sample{Address: "no-port", Level: "info", Limit: 1, Origins: []string{"*"}})

	require.Error(t, err)
	assert.Equal(t, "server_address must be a host:port address", err.Error())
}
