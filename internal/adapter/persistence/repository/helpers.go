package repository

import (
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// tableNameOrEnv prefers the explicit name, then the env var, then def.
func tableNameOrEnv(name, envKey, def string) string {
	if name != "" {
		return name
	}
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}

func stringKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
