package persistent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andreyxaxa/Photo-Gallery/internal/entity"
	"github.com/andreyxaxa/Photo-Gallery/pkg/s3client"
	"github.com/andreyxaxa/Photo-Gallery/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type ObjectRepo struct {
	*s3client.S3Client
	bucket        string
	publicBaseURL string
}

// NewObjectRepo stores objects in bucket. publicBaseURL is the externally
// reachable prefix of the bucket; when empty, endpoint/bucket is used.
func NewObjectRepo(s3c *s3client.S3Client, bucket, endpoint, publicBaseURL string) *ObjectRepo {
	if publicBaseURL == "" {
		publicBaseURL = strings.TrimRight(endpoint, "/") + "/" + bucket
	}

	return &ObjectRepo{
		S3Client:      s3c,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (r *ObjectRepo) Upload(ctx context.Context, path string, data []byte, contentType string, opts entity.UploadOptions) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(path),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	}

	if opts.CacheControl != "" {
		input.CacheControl = aws.String("max-age=" + opts.CacheControl)
	}

	// without upsert an existing key must not be overwritten
	if !opts.Upsert {
		input.IfNoneMatch = aws.String("*")
	}

	_, err := r.Client.PutObject(ctx, input)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "PreconditionFailed" {
			return fmt.Errorf("ObjectRepo - Upload - key=%s: %w", path, errs.ErrObjectExists)
		}

		return fmt.Errorf("ObjectRepo - Upload - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *ObjectRepo) Download(ctx context.Context, path string) ([]byte, error) {
	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("ObjectRepo - Download - key=%s: %w", path, errs.ErrRecordNotFound)
		}

		return nil, fmt.Errorf("ObjectRepo - Download - r.Client.GetObject: %w", err)
	}
	defer result.Body.Close()

	b, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("ObjectRepo - Download - io.ReadAll: %w", err)
	}

	return b, nil
}

func (r *ObjectRepo) PublicURL(path string) string {
	return r.publicBaseURL + "/" + strings.TrimLeft(path, "/")
}

func (r *ObjectRepo) Remove(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	objects := make([]types.ObjectIdentifier, 0, len(paths))
	for _, p := range paths {
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(p)})
	}

	out, err := r.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(r.bucket),
		Delete: &types.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("ObjectRepo - Remove - r.Client.DeleteObjects: %w", err)
	}

	if len(out.Errors) > 0 {
		first := out.Errors[0]

		return fmt.Errorf("ObjectRepo - Remove - key=%s: %s (%d of %d failed)",
			aws.ToString(first.Key), aws.ToString(first.Message), len(out.Errors), len(paths))
	}

	return nil
}
