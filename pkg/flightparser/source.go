package flightparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dsnet/compress/bzip2"
)

const (
	S3_SCHEME = "s3://"
	BZIP2_EXT = ".bz2"
)

type S3Getter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// SourceOpener. resolves a data path to a reader. the s3 client is created on first use from the default aws config.
type SourceOpener struct {
	s3c    S3Getter
	s3Once sync.Once
	s3Err  error
}

func NewSourceOpener() *SourceOpener {
	return &SourceOpener{}
}

func NewSourceOpenerWithS3(s3c S3Getter) *SourceOpener {
	so := &SourceOpener{s3c: s3c}
	so.s3Once.Do(func() {})
	return so
}

// Open. local path or s3://bucket/key, bzip2 decompressed when the path ends in .bz2.
func (so *SourceOpener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if strings.HasPrefix(path, S3_SCHEME) {
		rc, err = so.openS3(ctx, path)
	} else {
		rc, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, BZIP2_EXT) {
		return rc, nil
	}

	bz, err := bzip2.NewReader(rc, nil)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("bzip2 reader for %s: %w", path, err)
	}
	return &stackedReadCloser{Reader: bz, closers: []io.Closer{bz, rc}}, nil
}

func (so *SourceOpener) openS3(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, err := SplitS3Uri(path)
	if err != nil {
		return nil, err
	}

	so.s3Once.Do(func() {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			so.s3Err = fmt.Errorf("failed to load AWS config: %w", err)
			return
		}
		so.s3c = s3.NewFromConfig(cfg)
	})
	if so.s3Err != nil {
		return nil, so.s3Err
	}

	resp, err := so.s3c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed GetObject for key %q: %w", key, err)
	}
	return resp.Body, nil
}

// SplitS3Uri. s3://bucket/some/key -> (bucket, some/key).
func SplitS3Uri(uri string) (string, string, error) {
	rest, ok := strings.CutPrefix(uri, S3_SCHEME)
	if !ok {
		return "", "", fmt.Errorf("not an s3 uri: %q", uri)
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 uri must be s3://bucket/key: %q", uri)
	}
	return bucket, key, nil
}

type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
