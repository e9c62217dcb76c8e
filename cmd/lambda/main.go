// Lambda entry shell. It translates API Gateway proxy events to and from the
// shared HTTP handler and does nothing else; all behavior lives in the
// pipeline packages.
package main

import (
	"context"
	"encoding/base64"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/spacesoft/enquiry/internal"
	"github.com/spacesoft/enquiry/internal/handler"
	"github.com/spacesoft/enquiry/internal/mail"
	"github.com/spacesoft/enquiry/internal/mail/mock"
	"github.com/spacesoft/enquiry/internal/service"
)

func main() {
	cfg, err := internal.NewConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	if !cfg.MailConfigured() {
		logger.Warn("mail credentials missing; submissions will fail until GMAIL_USER and GMAIL_APP_PASSWORD are set")
	}

	var sender mail.Sender
	switch cfg.MailProvider {
	case "mock":
		sender = mock.New(logger)
	default:
		sender = mail.NewGmailSender(mail.Config{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.GmailUser,
			Password: cfg.GmailAppPassword,
		}, logger)
	}

	enquiryService := service.NewEnquiryService(sender, service.EnquiryConfig{
		User:      cfg.GmailUser,
		Password:  cfg.GmailAppPassword,
		LeadInbox: cfg.ContactToEmail,
	}, logger)
	router := handler.NewRouter(handler.NewEnquiryHandler(enquiryService, logger), cfg.AllowedOrigins)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		httpReq, err := toHTTPRequest(ctx, req)
		if err != nil {
			logger.Error("failed to translate event", "error", err)
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusInternalServerError,
				Headers:    map[string]string{"Content-Type": "application/json"},
				Body:       `{"success":false,"message":"An internal error occurred. Please try again later."}`,
			}, nil
		}

		w := newProxyWriter()
		router.ServeHTTP(w, httpReq)
		return w.response(), nil
	})
}

// toHTTPRequest rebuilds a plain HTTP request from the proxy event.
func toHTTPRequest(ctx context.Context, req events.APIGatewayProxyRequest) (*http.Request, error) {
	path := req.Path
	if path == "" {
		path = "/api/contact"
	}

	body := req.Body
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, err
		}
		body = string(decoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.HTTPMethod, path, strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return httpReq, nil
}

// proxyWriter implements http.ResponseWriter over an API Gateway proxy
// response.
type proxyWriter struct {
	header http.Header
	status int
	body   strings.Builder
}

func newProxyWriter() *proxyWriter {
	return &proxyWriter{
		header: http.Header{},
		status: http.StatusOK,
	}
}

func (w *proxyWriter) Header() http.Header { return w.header }

func (w *proxyWriter) Write(b []byte) (int, error) { return w.body.Write(b) }

func (w *proxyWriter) WriteHeader(code int) { w.status = code }

func (w *proxyWriter) response() events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(w.header))
	for k := range w.header {
		headers[k] = w.header.Get(k)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: w.status,
		Headers:    headers,
		Body:       w.body.String(),
	}
}
