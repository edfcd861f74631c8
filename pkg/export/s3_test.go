package export

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type fakeS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("upload context has no deadline")
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.inputs = append(f.inputs, input)
	f.bodies = append(f.bodies, body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Uploader_Upload(t *testing.T) {
	client := &fakeS3{}
	u := NewS3UploaderWithClient(client, "renders", "run-1", nil)

	if err := u.Upload(context.Background(), "frame_00000.png", []byte("png-bytes")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if len(client.inputs) != 1 {
		t.Fatalf("Expected one PutObject call, got %d", len(client.inputs))
	}
	in := client.inputs[0]
	if aws.StringValue(in.Bucket) != "renders" {
		t.Errorf("Expected bucket renders, got %s", aws.StringValue(in.Bucket))
	}
	if aws.StringValue(in.Key) != "run-1/frame_00000.png" {
		t.Errorf("Expected prefixed key, got %s", aws.StringValue(in.Key))
	}
	if aws.StringValue(in.ContentType) != "image/png" {
		t.Errorf("Expected image/png content type, got %s", aws.StringValue(in.ContentType))
	}
	if aws.Int64Value(in.ContentLength) != 9 || string(client.bodies[0]) != "png-bytes" {
		t.Errorf("Unexpected body %q (length %d)", client.bodies[0], aws.Int64Value(in.ContentLength))
	}
}

func TestS3Uploader_Key(t *testing.T) {
	if got := NewS3UploaderWithClient(&fakeS3{}, "b", "", nil).Key("f.png"); got != "f.png" {
		t.Errorf("Expected unprefixed key, got %s", got)
	}
	if got := NewS3UploaderWithClient(&fakeS3{}, "b", "a/b/", nil).Key("f.png"); got != "a/b/f.png" {
		t.Errorf("Expected a/b/f.png, got %s", got)
	}
}

func TestS3Uploader_ErrorWrapped(t *testing.T) {
	putErr := errors.New("access denied")
	u := NewS3UploaderWithClient(&fakeS3{err: putErr}, "b", "", nil)
	if err := u.Upload(context.Background(), "f.png", nil); !errors.Is(err, putErr) {
		t.Errorf("Expected wrapped error, got %v", err)
	}
}

func TestNewS3Uploader(t *testing.T) {
	if _, err := NewS3Uploader(S3Config{}, nil); err == nil {
		t.Error("Expected error when bucket is missing")
	}

	u, err := NewS3Uploader(S3Config{
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  "http://localhost:9000",
		Region:    "us-east-1",
		Bucket:    "renders",
	}, nil)
	if err != nil {
		t.Fatalf("NewS3Uploader failed: %v", err)
	}
	if u.bucket != "renders" {
		t.Errorf("Expected bucket renders, got %s", u.bucket)
	}
}
