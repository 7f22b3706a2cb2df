package stats

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config configures access to an S3 compatible object store.
type S3Config struct {
	Region          string
	Endpoint        string // optional, e.g. a MinIO URL
	PathStyle       bool
	AccessKeyID     string // optional, falls back to the default credentials chain
	SecretAccessKey string
	HTTPClient      *http.Client // optional
}

// Environment variables:
//   WORLDPOP_S3_REGION=<region> (default us-east-1)
//   WORLDPOP_S3_ENDPOINT=<url> (optional)
//   WORLDPOP_S3_PATH_STYLE=true|false (default false)
//   AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (optional)

// S3ConfigFromEnv reads S3Config from the process environment.
func S3ConfigFromEnv() S3Config {
	return S3Config{
		Region:    os.Getenv("WORLDPOP_S3_REGION"),
		Endpoint:  os.Getenv("WORLDPOP_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("WORLDPOP_S3_PATH_STYLE"), "true"),
	}
}

// S3Source is a dataset stored as an S3 object.
type S3Source struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Source returns a source reading key from bucket.
func NewS3Source(ctx context.Context, bucket, key string, cfg S3Config) (*S3Source, error) {
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("stats: s3 bucket and key required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	})

	return &S3Source{client: client, bucket: bucket, key: key}, nil
}

// NewS3SourceFromURI parses an s3://bucket/key URI.
func NewS3SourceFromURI(ctx context.Context, uri string, cfg S3Config) (*S3Source, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "s3" {
		return nil, fmt.Errorf("stats: not an s3 uri: %q", uri)
	}
	return NewS3Source(ctx, u.Host, strings.TrimPrefix(u.Path, "/"), cfg)
}

func (s *S3Source) Name() string { return "s3://" + s.bucket + "/" + s.key }

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	log.Printf("Download: '%s'", s.Name())

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
