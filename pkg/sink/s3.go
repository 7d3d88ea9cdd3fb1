package sink

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"heightfield/pkg/heightmap"
)

// S3Sink uploads the heightmap as a PNG object
type S3Sink struct {
	svc          s3iface.S3API
	Bucket       string
	Key          string
	CacheSeconds int
}

// NewS3Sink creates an S3 sink for the bucket and key
func NewS3Sink(sess *session.Session, bucket, key string, cacheSeconds int) *S3Sink {
	return &S3Sink{
		svc:          s3.New(sess),
		Bucket:       bucket,
		Key:          key,
		CacheSeconds: cacheSeconds,
	}
}

// NewRegionS3Sink creates a session for region and an S3 sink on top of it
func NewRegionS3Sink(region, bucket, key string, cacheSeconds int) (*S3Sink, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}
	return NewS3Sink(sess, bucket, key, cacheSeconds), nil
}

// Name implements Sink.Name
func (s *S3Sink) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.Bucket, s.Key)
}

// Write implements Sink.Write
func (s *S3Sink) Write(ctx context.Context, hm *heightmap.Heightmap) error {
	data, err := EncodePNG(hm)
	if err != nil {
		return err
	}

	_, err = s.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.Bucket),
		Key:          aws.String(s.Key),
		Body:         bytes.NewReader(data),
		CacheControl: aws.String(fmt.Sprintf("no-transform, public, max-age=%d", s.CacheSeconds)),
		ContentType:  aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.Name(), err)
	}
	return nil
}
