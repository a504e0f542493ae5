package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// LoadSSM copies every parameter under prefix into env, keyed by the last
// path segment. Keys already present in env are left alone.
func LoadSSM(ctx context.Context, env map[string]string, prefix string) (int, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return 0, fmt.Errorf("load aws config: %w", err)
	}
	return overlayParameters(ctx, ssm.NewFromConfig(cfg), env, prefix)
}

func overlayParameters(ctx context.Context, client ssm.GetParametersByPathAPIClient, env map[string]string, prefix string) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(prefix),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return loaded, fmt.Errorf("get parameters under %s: %w", prefix, err)
		}
		for _, p := range page.Parameters {
			key := strings.ToUpper(path.Base(aws.ToString(p.Name)))
			if key == "" || key == "." || key == "/" {
				continue
			}
			if _, set := env[key]; set {
				continue
			}
			env[key] = aws.ToString(p.Value)
			loaded++
		}
	}
	return loaded, nil
}
