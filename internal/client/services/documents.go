package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/mepo/stallkeeper/internal/client/kvstore"
	"github.com/mepo/stallkeeper/internal/client/models"
	"github.com/mepo/stallkeeper/internal/client/session"
	"github.com/mepo/stallkeeper/internal/common"
	"github.com/mepo/stallkeeper/internal/logging"
)

// Test seams for the AWS clients and file reads.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}

	readFile = os.ReadFile
)

// requiredDocuments is the permit checklist every stallholder must complete.
var requiredDocuments = []string{
	"Barangay Clearance",
	"Business Permit",
	"BIR Registration",
	"Social Security System (SSS)",
	"Occupancy Permit",
	"Sanitary Permit",
}

// ObjectStoreConfig holds the S3-compatible endpoint document images are
// submitted to.
type ObjectStoreConfig struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
}

// DocumentService backs the documents screen: the permit checklist, image
// submission to the object store, and presigned links for viewing. Submission
// state (date + storage key) is kept per stallholder in the local key-value
// store; the image bytes live in the bucket.
type DocumentService struct {
	db   *sql.DB
	cfg  ObjectStoreConfig
	sess *session.Manager
	log  logging.Logger
}

func NewDocumentService(db *sql.DB, cfg ObjectStoreConfig, sess *session.Manager, log logging.Logger) *DocumentService {
	return &DocumentService{db: db, cfg: cfg, sess: sess, log: log}
}

func (d *DocumentService) store() kvstore.Store {
	return kvstore.NewSQLiteStore(d.db)
}

func documentsKey(registrationID string) string {
	return "documents_" + registrationID
}

func (d *DocumentService) s3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(d.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			d.cfg.AccessKey,
			d.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if d.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(d.cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func storageKey(registrationID string) string {
	d := time.Now()
	return fmt.Sprintf("documents/%s/%d/%d/%d/%v", registrationID, d.Year(), d.Month(), d.Day(), uuid.New())
}

// submissions loads the persisted submission state keyed by document name.
func (d *DocumentService) submissions(ctx context.Context, registrationID string) (map[string]models.Document, error) {
	raw, err := d.store().Get(ctx, documentsKey(registrationID))
	if errors.Is(err, common.ErrNotFound) {
		return map[string]models.Document{}, nil
	}
	if err != nil {
		return nil, err
	}

	var subs map[string]models.Document
	if err := json.Unmarshal([]byte(raw), &subs); err != nil {
		return nil, fmt.Errorf("corrupt document state: %w", err)
	}
	return subs, nil
}

// List merges the checklist with the stallholder's submission state, in
// checklist order.
func (d *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	id, ok := d.sess.Current()
	if !ok || id.RegistrationID == "" {
		return nil, common.ErrNotAuthenticated
	}

	subs, err := d.submissions(ctx, id.RegistrationID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Document, 0, len(requiredDocuments))
	for _, name := range requiredDocuments {
		doc := models.Document{Name: name}
		if sub, ok := subs[name]; ok {
			doc = sub
		}
		out = append(out, doc)
	}
	return out, nil
}

// Submit uploads the image at path to the object store and records the
// submission date and storage key locally. Re-submitting replaces the
// previous record; the old object is left to bucket lifecycle rules.
func (d *DocumentService) Submit(ctx context.Context, name, path string) (models.Document, error) {
	id, ok := d.sess.Current()
	if !ok || id.RegistrationID == "" {
		return models.Document{}, common.ErrNotAuthenticated
	}

	known := false
	for _, required := range requiredDocuments {
		if required == name {
			known = true
			break
		}
	}
	if !known {
		return models.Document{}, fmt.Errorf("%w: unknown document %q", common.ErrValidation, name)
	}

	data, err := readFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	client, err := d.s3Client()
	if err != nil {
		return models.Document{}, err
	}

	key := storageKey(id.RegistrationID)
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: aws.String(d.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		d.log.Error(ctx, "document upload failed", "document", name, "error", err)
		return models.Document{}, fmt.Errorf("object store error: %w", err)
	}

	now := time.Now()
	doc := models.Document{Name: name, SubmittedAt: &now, StorageKey: key}

	subs, err := d.submissions(ctx, id.RegistrationID)
	if err != nil {
		return models.Document{}, err
	}
	subs[name] = doc

	encoded, err := json.Marshal(subs)
	if err != nil {
		return models.Document{}, err
	}
	if err := d.store().Set(ctx, documentsKey(id.RegistrationID), string(encoded)); err != nil {
		return models.Document{}, err
	}

	d.log.Info(ctx, "document submitted", "document", name, "key", key)
	return doc, nil
}

// Link returns a time-limited URL for viewing a submitted document.
func (d *DocumentService) Link(ctx context.Context, name string) (string, error) {
	id, ok := d.sess.Current()
	if !ok || id.RegistrationID == "" {
		return "", common.ErrNotAuthenticated
	}

	subs, err := d.submissions(ctx, id.RegistrationID)
	if err != nil {
		return "", err
	}
	sub, ok := subs[name]
	if !ok || sub.StorageKey == "" {
		return "", common.ErrNotFound
	}

	client, err := d.s3Client()
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.cfg.Bucket),
		Key:    aws.String(sub.StorageKey),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("object store error: %w", err)
	}
	return req.URL, nil
}
