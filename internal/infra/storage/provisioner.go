package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"folio/config"
	"folio/internal/domain/service"
	"folio/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// bucketAPI is the subset of the S3 client used to provision buckets.
type bucketAPI interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
	PutBucketPolicy(ctx context.Context, params *s3.PutBucketPolicyInput, optFns ...func(*s3.Options)) (*s3.PutBucketPolicyOutput, error)
}

// BucketResult reports what provisioning did for one bucket.
type BucketResult struct {
	Bucket  string
	Created bool
}

// Provisioner creates the configured buckets and makes their objects publicly readable.
type Provisioner struct {
	cfg    *config.StorageConfig
	logger *slog.Logger
	api    bucketAPI
}

// NewProvisioner builds a provisioner for the configured driver. The S3 client is only created for the s3 driver.
func NewProvisioner(ctx context.Context, cfg *config.StorageConfig, logger *slog.Logger) (*Provisioner, error) {
	p := &Provisioner{cfg: cfg, logger: logger}
	if cfg.Driver == config.StorageDriverS3 {
		client, err := NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		p.api = client
	}

	return p, nil
}

// EnsureBuckets creates missing buckets. Existing buckets are left untouched apart from the public read policy.
func (p *Provisioner) EnsureBuckets(ctx context.Context) ([]BucketResult, error) {
	names := BucketNames(p.cfg)
	ordered := []string{names[service.BucketGallery], names[service.BucketOG], names[service.BucketSite]}

	results := make([]BucketResult, 0, len(ordered))
	for _, name := range ordered {
		created, err := p.ensure(ctx, name)
		if err != nil {
			return results, errors.Wrapf(err, "provision bucket %s", name)
		}
		p.logger.Info("Bucket ready", slog.String("bucket", name), slog.Bool("created", created))
		results = append(results, BucketResult{Bucket: name, Created: created})
	}

	return results, nil
}

func (p *Provisioner) ensure(ctx context.Context, name string) (bool, error) {
	switch p.cfg.Driver {
	case config.StorageDriverS3:
		return p.ensureS3(ctx, name)
	case config.StorageDriverFile:
		dir := filepath.Join(p.cfg.LocalDir, name)
		if _, err := os.Stat(dir); err == nil {
			return false, nil
		}

		return true, errors.WithStack(os.MkdirAll(dir, 0o755))
	default:
		return false, nil
	}
}

func (p *Provisioner) ensureS3(ctx context.Context, name string) (bool, error) {
	created := false

	_, err := p.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(name)})
	var notFound *types.NotFound
	switch {
	case err == nil:
	case errors.As(err, &notFound):
		input := &s3.CreateBucketInput{Bucket: aws.String(name)}
		if p.cfg.Region != "" && p.cfg.Region != "us-east-1" {
			input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(p.cfg.Region),
			}
		}
		if _, err := p.api.CreateBucket(ctx, input); err != nil {
			var owned *types.BucketAlreadyOwnedByYou
			if !errors.As(err, &owned) {
				return false, errors.Wrap(err, "create bucket")
			}
		} else {
			created = true
		}
	default:
		return false, errors.Wrap(err, "head bucket")
	}

	policy, err := publicReadPolicy(name)
	if err != nil {
		return created, err
	}
	if _, err := p.api.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(name),
		Policy: aws.String(policy),
	}); err != nil {
		return created, errors.Wrap(err, "put bucket policy")
	}

	return created, nil
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Sid       string   `json:"Sid"`
	Effect    string   `json:"Effect"`
	Principal string   `json:"Principal"`
	Action    []string `json:"Action"`
	Resource  []string `json:"Resource"`
}

func publicReadPolicy(bucket string) (string, error) {
	doc := policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Sid:       "PublicRead",
			Effect:    "Allow",
			Principal: "*",
			Action:    []string{"s3:GetObject"},
			Resource:  []string{"arn:aws:s3:::" + bucket + "/*"},
		}},
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "marshal bucket policy")
	}

	return string(out), nil
}
