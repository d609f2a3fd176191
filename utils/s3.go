package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Printf("Unable to load AWS config, meal photo archive disabled: %v", err)
		return
	}

	s3Client = s3.NewFromConfig(cfg)
}

// ArchiveMealPhoto stores an analyzed meal photo under meal-photos/<user>-<ts>.
// Callers treat failure as non-fatal; analysis results never depend on it.
func ArchiveMealPhoto(username, contentType string, imageData []byte) (string, error) {
	if s3Client == nil {
		return "", fmt.Errorf("s3 client not initialized")
	}

	ext := ".jpg"
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 && parts[1] != "jpeg" {
		ext = "." + parts[1]
	}

	key := fmt.Sprintf("meal-photos/%s-%d%s", username, time.Now().UnixNano(), ext)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	return key, nil
}

// DecodeImageDataURI splits a "data:<mime>;base64,<data>" URI into its
// content type and raw bytes.
func DecodeImageDataURI(uri string) (contentType string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:image") {
		return "", nil, fmt.Errorf("invalid data URI")
	}
	parts := strings.Split(uri, ",")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid data URI")
	}

	mediaType := strings.SplitN(parts[0], ":", 2)[1]        // "image/jpeg;base64"
	contentType = strings.SplitN(mediaType, ";", 2)[0]      // "image/jpeg"

	data, err = base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return contentType, data, nil
}
