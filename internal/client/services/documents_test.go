package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/logging"
)

func stubAWS(t *testing.T) (putCalls *[]s3.PutObjectInput, presignCalls *[]s3.GetObjectInput) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	origPut := putObject
	origPresignClient := newS3PresignClient
	origPresignGet := presignGetObject
	origRead := readFile
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
		putObject = origPut
		newS3PresignClient = origPresignClient
		presignGetObject = origPresignGet
		readFile = origRead
	})

	var puts []s3.PutObjectInput
	var presigns []s3.GetObjectInput

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return &s3.Client{}
	}
	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		puts = append(puts, *in)
		return &s3.PutObjectOutput{}, nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return &s3.PresignClient{}
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		presigns = append(presigns, *in)
		return &v4.PresignedHTTPRequest{URL: "https://bucket.example/" + *in.Key}, nil
	}
	readFile = func(path string) ([]byte, error) {
		if path == "missing.jpg" {
			return nil, errors.New("no such file")
		}
		return []byte("image-bytes"), nil
	}

	return &puts, &presigns
}

func newDocuments(t *testing.T, loggedIn bool) *DocumentService {
	t.Helper()
	db := setupDB(t)
	sess := loggedOutSession(t)
	if loggedIn {
		sess = loggedInSession(t)
	}
	cfg := ObjectStoreConfig{Region: "ap-southeast-1", Bucket: "stall-documents"}
	return NewDocumentService(db, cfg, sess, logging.NewDefault(io.Discard))
}

func TestDocuments_ListStartsUnsubmitted(t *testing.T) {
	stubAWS(t)
	svc := newDocuments(t, true)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 6)
	for _, doc := range got {
		require.Nil(t, doc.SubmittedAt)
		require.Empty(t, doc.StorageKey)
	}
}

func TestDocuments_SubmitRecordsDateAndKey(t *testing.T) {
	puts, _ := stubAWS(t)
	svc := newDocuments(t, true)
	ctx := context.Background()

	doc, err := svc.Submit(ctx, "Business Permit", "permit.jpg")
	require.NoError(t, err)
	require.NotNil(t, doc.SubmittedAt)
	require.NotEmpty(t, doc.StorageKey)

	require.Len(t, *puts, 1)
	require.Equal(t, "stall-documents", *(*puts)[0].Bucket)
	require.Equal(t, doc.StorageKey, *(*puts)[0].Key)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	var found bool
	for _, d := range listed {
		if d.Name == "Business Permit" {
			found = true
			require.NotNil(t, d.SubmittedAt)
			require.Equal(t, doc.StorageKey, d.StorageKey)
		}
	}
	require.True(t, found)
}

func TestDocuments_SubmitUnknownName(t *testing.T) {
	stubAWS(t)
	svc := newDocuments(t, true)

	_, err := svc.Submit(context.Background(), "Fishing License", "x.jpg")
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestDocuments_SubmitUnreadableFile(t *testing.T) {
	puts, _ := stubAWS(t)
	svc := newDocuments(t, true)

	_, err := svc.Submit(context.Background(), "Business Permit", "missing.jpg")
	require.Error(t, err)
	require.Empty(t, *puts)
}

func TestDocuments_RequireSession(t *testing.T) {
	stubAWS(t)
	svc := newDocuments(t, false)
	ctx := context.Background()

	_, err := svc.List(ctx)
	require.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = svc.Submit(ctx, "Business Permit", "permit.jpg")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = svc.Link(ctx, "Business Permit")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestDocuments_LinkForSubmittedDocument(t *testing.T) {
	_, presigns := stubAWS(t)
	svc := newDocuments(t, true)
	ctx := context.Background()

	doc, err := svc.Submit(ctx, "Sanitary Permit", "permit.jpg")
	require.NoError(t, err)

	url, err := svc.Link(ctx, "Sanitary Permit")
	require.NoError(t, err)
	require.Equal(t, "https://bucket.example/"+doc.StorageKey, url)
	require.Len(t, *presigns, 1)
}

func TestDocuments_LinkUnsubmittedIsNotFound(t *testing.T) {
	stubAWS(t)
	svc := newDocuments(t, true)

	_, err := svc.Link(context.Background(), "Business Permit")
	require.ErrorIs(t, err, common.ErrNotFound)
}
