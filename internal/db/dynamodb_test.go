package db

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/benx421/payment-gateway/e4/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBClient_LocalEndpoint(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	client, err := NewDynamoDBClient(context.Background(), &config.JournalConfig{
		AWSRegion:        "us-east-1",
		DynamoDBEndpoint: "http://localhost:8000",
	})

	require.NoError(t, err)
	opts := client.Options()
	assert.Equal(t, "http://localhost:8000", aws.ToString(opts.BaseEndpoint))
	assert.Equal(t, "us-east-1", opts.Region)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("E4_TEST_ENV_OR_DEFAULT", "")
	assert.Equal(t, "fallback", envOrDefault("E4_TEST_ENV_OR_DEFAULT", "fallback"))

	t.Setenv("E4_TEST_ENV_OR_DEFAULT", "set")
	assert.Equal(t, "set", envOrDefault("E4_TEST_ENV_OR_DEFAULT", "fallback"))
}
