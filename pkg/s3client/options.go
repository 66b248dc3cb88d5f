package s3client

import "time"

// Option configures S3Client.
type Option func(c *S3Client)

func ConnAttempts(attempts int) Option {
	return func(c *S3Client) {
		c.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *S3Client) {
		c.connTimeout = timeout
	}
}

func Region(region string) Option {
	return func(c *S3Client) {
		c.region = region
	}
}

// UsePathStyle addresses buckets as endpoint/bucket. On by default, as MinIO
// and most self-hosted stores expect.
func UsePathStyle(use bool) Option {
	return func(c *S3Client) {
		c.usePathStyle = use
	}
}

// CreateBucket makes the client create a missing bucket on connect instead of
// failing.
func CreateBucket(create bool) Option {
	return func(c *S3Client) {
		c.createBucket = create
	}
}

// SkipBucketCheck builds the client without the HeadBucket round trip, so
// New does not touch the network. Calls that fail later report their own errors.
func SkipBucketCheck() Option {
	return func(c *S3Client) {
		c.checkBucket = false
	}
}
