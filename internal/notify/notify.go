// Package notify delivers human-readable alerts.
package notify

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// maxSubjectLength is the SNS limit for email subjects.
const maxSubjectLength = 100

type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}

type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsNotifier struct {
	api      SNSAPI
	topicARN string
}

func NewSNS(api SNSAPI, topicARN string) Notifier {
	return &snsNotifier{api: api, topicARN: topicARN}
}

func (n *snsNotifier) Publish(ctx context.Context, subject, message string) error {
	_, err := n.api.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(truncate(subject, maxSubjectLength)),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("publishing to %s: %w", n.topicARN, err)
	}
	return nil
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-3]) + "..."
}
