package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"unichip/internal/config"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
)

// DirectMailClient sends notifications through Alibaba Cloud DirectMail
type DirectMailClient struct {
	cfg     *config.DirectMailConfig
	timeout time.Duration
	client  *dm.Client
	initErr error
}

// NewDirectMailClient creates a DirectMail client. Endpoint may be a bare
// host or a URL; a URL's scheme selects the protocol.
func NewDirectMailClient(cfg *config.DirectMailConfig, timeout time.Duration) *DirectMailClient {
	c := &DirectMailClient{cfg: cfg, timeout: timeout}
	if cfg.AccessKeyID == "" || cfg.AccessKeySecret == "" || cfg.AccountName == "" {
		c.initErr = fmt.Errorf("directmail not properly configured")
		return c
	}

	host, protocol := splitEndpoint(cfg.Endpoint)
	c.client, c.initErr = dm.NewClient(&openapi.Config{
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
		Endpoint:        tea.String(host),
		Protocol:        tea.String(protocol),
	})
	if c.initErr != nil {
		c.initErr = fmt.Errorf("failed to create directmail client: %w", c.initErr)
	}
	return c
}

// SingleSendMail sends one text message to every address in to
func (c *DirectMailClient) SingleSendMail(ctx context.Context, to []string, subject, body string) error {
	if c.initErr != nil {
		return c.initErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	req := &dm.SingleSendMailRequest{
		AccountName:    tea.String(c.cfg.AccountName),
		AddressType:    tea.Int32(1),
		ReplyToAddress: tea.Bool(false),
		ToAddress:      tea.String(strings.Join(to, ",")),
		Subject:        tea.String(subject),
		TextBody:       tea.String(body),
	}
	if c.cfg.FromAlias != "" {
		req.FromAlias = tea.String(c.cfg.FromAlias)
	}

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}
	runtime := &util.RuntimeOptions{Autoretry: tea.Bool(false)}
	if timeout > 0 {
		ms := int(timeout.Milliseconds())
		if ms < 1 {
			ms = 1
		}
		runtime.ReadTimeout = tea.Int(ms)
		runtime.ConnectTimeout = tea.Int(ms)
	}

	// The SDK takes no context; a cancelled caller stops waiting and the
	// call ends on its own timeout.
	done := make(chan error, 1)
	go func() {
		_, err := c.client.SingleSendMailWithOptions(req, runtime)
		done <- err
	}()

	select {
	case err := <-done:
		return directMailError(err)
	case <-ctx.Done():
		return fmt.Errorf("directmail request abandoned: %w", ctx.Err())
	}
}

func directMailError(err error) error {
	if err == nil {
		return nil
	}
	var sdkErr *tea.SDKError
	if errors.As(err, &sdkErr) {
		return fmt.Errorf("directmail error %s: %s", tea.StringValue(sdkErr.Code), tea.StringValue(sdkErr.Message))
	}
	return fmt.Errorf("directmail request failed: %w", err)
}

// splitEndpoint returns the host and protocol the SDK expects
func splitEndpoint(endpoint string) (string, string) {
	if !strings.Contains(endpoint, "://") {
		return strings.TrimSuffix(endpoint, "/"), "HTTPS"
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint, "HTTPS"
	}
	return u.Host, strings.ToUpper(u.Scheme)
}
