package cmd

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-apfsck/internal/checker"
	"github.com/deploymenttheory/go-apfsck/internal/types"
)

// CheckConfig holds the checking parameters a run needs before any block can
// be validated. The surrounding bootstrap would normally read these from the
// container superblock; here they come from a config file, environment, or
// flags.
type CheckConfig struct {
	BlockSize       uint32 `mapstructure:"block_size"`
	CaseInsensitive bool   `mapstructure:"case_insensitive"`
	MaxXid          uint64 `mapstructure:"max_xid"`
	ContainerUUID   string `mapstructure:"container_uuid"`
}

// LoadCheckConfig loads checking parameters using Viper.
func LoadCheckConfig() (*CheckConfig, error) {
	v := viper.New()
	v.SetConfigName("apfsck-config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.apfsck")
	v.AddConfigPath("/etc/apfsck")

	v.SetDefault("block_size", types.MinBlockSize)
	v.SetDefault("case_insensitive", false)
	v.SetDefault("max_xid", uint64(math.MaxUint64))
	v.SetDefault("container_uuid", "")

	v.SetEnvPrefix("APFSCK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config CheckConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// Context builds the checker context described by the configuration.
func (c *CheckConfig) Context() (*checker.Context, error) {
	ctx, err := checker.NewContext(c.BlockSize, !c.CaseInsensitive, types.XidT(c.MaxXid))
	if err != nil {
		return nil, err
	}

	if c.ContainerUUID != "" {
		id, err := uuid.Parse(c.ContainerUUID)
		if err != nil {
			return nil, fmt.Errorf("invalid container UUID %q: %w", c.ContainerUUID, err)
		}
		ctx.ContainerUUID = id
	}

	return ctx, nil
}
