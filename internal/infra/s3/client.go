package infra_s3

import (
	"context"
	"log"

	"github.com/adithyagarapati/movie-analyzer/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type ClientType string

const (
	ClientTypeRealS3 ClientType = "real"
	ClientTypeMock   ClientType = "mock"
)

func MustEstablishConn(cfg config.S3) *s3.Client {
	switch ClientType(cfg.ClientType) {
	case ClientTypeMock:
		return createMockClient(cfg.MockEndpoint)
	case ClientTypeRealS3:
		fallthrough
	default:
		return createRealClient()
	}
}

func createRealClient() *s3.Client {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatal(err)
	}

	log.Println("[s3] using REAL S3 client in region:", cfg.Region)
	return s3.NewFromConfig(cfg)
}

func createMockClient(endpoint string) *s3.Client {
	log.Println("[s3] using MOCK S3 client with endpoint:", endpoint)

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("mock", "mock", "")),
		awsconfig.WithRegion("mock-region"),
	)
	if err != nil {
		log.Fatal("failed to create mock S3 config:", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
}
