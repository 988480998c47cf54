package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw := `{
		"seed": 42,
		"data_dir": "testdata",
		"log_level": "debug",
		"output_format": "parquet",
		"output_destination": "s3",
		"output_path": "out",
		"output_folder": "plans",
		"cloud_storage": {"provider": "s3", "region": "eu-west-2", "bucket_name": "plans"},
		"kafka_enabled": true,
		"kafka_broker_list": "broker1:9092,broker2:9092"
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "testdata", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "parquet", cfg.OutputFormat)
	assert.Equal(t, "s3", cfg.OutputDestination)
	assert.Equal(t, "eu-west-2", cfg.CloudStorage.Region)
	assert.Equal(t, "plans", cfg.CloudStorage.BucketName)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, "broker1:9092,broker2:9092", cfg.KafkaBrokerList)

	// Unset keys fall back to defaults.
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "trip_plans", cfg.KafkaTopic)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
