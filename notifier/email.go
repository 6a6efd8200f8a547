package notifier

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/Priyans1727C/backend/configs"
)

// SESMailer sends transactional mail through AWS SES. It satisfies
// services.Mailer.
type SESMailer struct {
	cfg *configs.Config
}

func NewSESMailer(cfg *configs.Config) *SESMailer {
	return &SESMailer{cfg: cfg}
}

func (m *SESMailer) SendPasswordReset(to, resetURL string) error {
	if m.cfg.SenderEmail == "" {
		return fmt.Errorf("sender email address is not configured")
	}
	if to == "" {
		return fmt.Errorf("recipient email address is empty")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(m.cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(m.cfg.AWSAccessKeyID, m.cfg.AWSSecretAccessKey, ""),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := ses.NewFromConfig(awsCfg)

	subject := "Reset Your Password"
	bodyText := fmt.Sprintf("Click the link below to reset your password:\n%s", resetURL)
	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Click the link below to reset your password:</p>
            <p><a href="%s">%s</a></p>
            <p>If you did not request this, you can ignore this email.</p>
        </body>
        </html>`, resetURL, resetURL)

	input := &ses.SendEmailInput{
		Source: aws.String(m.cfg.SenderEmail),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	if _, err := client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("password reset email sent to %s", to)
	return nil
}
