package store

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	bucket, key, ctype string
	body               []byte
	err                error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket, f.key, f.ctype = *in.Bucket, *in.Key, *in.ContentType
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestUploader_Put(t *testing.T) {
	fs := &fakeS3{}
	u := &Uploader{Client: fs, Bucket: "nfl-data", Prefix: "game_logs"}
	key := u.Key(2024, "Kansas_City_Chiefs_game_log_2024.csv")
	if key != "game_logs/season=2024/Kansas_City_Chiefs_game_log_2024.csv" {
		t.Fatalf("key = %q", key)
	}
	if err := u.Put(context.Background(), key, "text/csv", []byte("week,day\n")); err != nil {
		t.Fatal(err)
	}
	if fs.bucket != "nfl-data" || fs.key != key || fs.ctype != "text/csv" || string(fs.body) != "week,day\n" {
		t.Fatalf("unexpected put: %+v", fs)
	}
}

func TestUploader_KeyNoPrefix(t *testing.T) {
	u := &Uploader{}
	if k := u.Key(2023, "x.parquet"); k != "season=2023/x.parquet" {
		t.Fatalf("key = %q", k)
	}
}

func TestUploader_PutError(t *testing.T) {
	boom := errors.New("access denied")
	u := &Uploader{Client: &fakeS3{err: boom}, Bucket: "b"}
	if err := u.Put(context.Background(), "k", "text/csv", nil); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
