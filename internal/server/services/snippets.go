package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/snipvault/snipvault/internal/common"
	"github.com/snipvault/snipvault/internal/dbx"
	"github.com/snipvault/snipvault/internal/server/models"
	"github.com/snipvault/snipvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// seams for testing the AWS SDK calls.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Hinter is the broadcast relay contract as seen from this service: a
// publish that never fails and never blocks meaningfully.
type Hinter interface {
	Publish(ctx context.Context, event string, payload []byte)
}

// S3Settings carries the object storage configuration for snippet bodies.
type S3Settings struct {
	RootUser     string
	RootPassword string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// SnippetService is the canonical store behind the sharing endpoint. Rows
// hold envelope metadata and small title ciphertext; bodies are uploaded by
// the client to object storage via presigned URLs so ciphertext never
// streams through the server process. After a snippet is created the
// broadcast relay hints other devices to refetch.
type SnippetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	relay       Hinter
	s3cfg       S3Settings
}

// NewSnippetService constructs a SnippetService. The relay handle is passed
// in explicitly; its lifecycle is scoped to service startup, not ambient
// global state.
func NewSnippetService(db *sql.DB, m repomanager.RepositoryManager, relay Hinter, s3cfg S3Settings) *SnippetService {
	return &SnippetService{db: db, repomanager: m, relay: relay, s3cfg: s3cfg}
}

// GetRandomStorageKey builds a date-partitioned object key for one snippet body.
func GetRandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("snippets/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *SnippetService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.s3cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.s3cfg.RootUser,
			s.s3cfg.RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.s3cfg.BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

func (s *SnippetService) presignedPutURL(ctx context.Context) (string, string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.s3cfg.Bucket
	key := GetRandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

func (s *SnippetService) presignedGetURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.s3cfg.Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// Create stores the envelope and wrapped keys transactionally, returns a
// presigned PUT URL for the body upload, and fires the snippet:created hint.
// The hint is fire-and-forget: its failure never reaches the caller.
func (s *SnippetService) Create(ctx context.Context, snippet *models.Snippet, wrappedKeys []*models.WrappedKey) (*models.Snippet, string, error) {
	storageKey, uploadURL, err := s.presignedPutURL(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("error presigning upload: %w", err)
	}

	snippet.ID = uuid.NewString()
	snippet.BodyObjectKey = storageKey

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Snippets(tx).Create(ctx, snippet, wrappedKeys)
	}); err != nil {
		return nil, "", fmt.Errorf("error creating snippet: %w", err)
	}

	hint, _ := json.Marshal(map[string]string{"id": snippet.ID})
	s.relay.Publish(ctx, "snippet:created", hint)

	return snippet, uploadURL, nil
}

// Get returns the snippet envelope plus a presigned download URL for the
// body. Callers that are neither owner nor a wrapped-key recipient fail
// Unauthorized; the recipient's wrapped key rides along when one exists.
func (s *SnippetService) Get(ctx context.Context, snippetID, callerID, deviceID string) (*models.Snippet, *models.WrappedKey, string, error) {
	repo := s.repomanager.Snippets(s.db)

	snippet, err := repo.Get(ctx, snippetID)
	if err != nil {
		return nil, nil, "", err
	}

	var wrapped *models.WrappedKey
	if snippet.OwnerID != callerID {
		wrapped, err = repo.WrappedKeyFor(ctx, snippetID, callerID, deviceID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, nil, "", common.ErrorUnauthorized
			}
			return nil, nil, "", err
		}
	} else if deviceID != "" {
		// Owners may still fetch their own device's wrapped key.
		wrapped, _ = repo.WrappedKeyFor(ctx, snippetID, callerID, deviceID)
	}

	downloadURL, err := s.presignedGetURL(ctx, snippet.BodyObjectKey)
	if err != nil {
		return nil, nil, "", fmt.Errorf("error presigning download: %w", err)
	}
	return snippet, wrapped, downloadURL, nil
}

// List returns the snippets visible to the caller, newest first.
func (s *SnippetService) List(ctx context.Context, callerID string) ([]*models.Snippet, error) {
	repo := s.repomanager.Snippets(s.db)

	var result []*models.Snippet
	if err := dbx.WithStoreRetry(ctx, func(ctx context.Context) error {
		var err error
		result, err = repo.ListForUser(ctx, callerID)
		return err
	}); err != nil {
		return nil, fmt.Errorf("error listing snippets: %w", err)
	}
	return result, nil
}
