package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"unichip/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectMailConfig(endpoint string) *config.DirectMailConfig {
	return &config.DirectMailConfig{
		Endpoint:        endpoint,
		AccessKeyID:     "testid",
		AccessKeySecret: "testsecret",
		AccountName:     "noreply@mail.unichip.hk",
		FromAlias:       "Unichip",
	}
}

// noProxy keeps the SDK from routing test traffic through an environment proxy
func noProxy(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_PROXY", "http_proxy", "HTTPS_PROXY", "https_proxy"} {
		t.Setenv(key, "")
	}
}

func TestSplitEndpoint(t *testing.T) {
	host, protocol := splitEndpoint("https://dm.aliyuncs.com/")
	assert.Equal(t, "dm.aliyuncs.com", host)
	assert.Equal(t, "HTTPS", protocol)

	host, protocol = splitEndpoint("http://127.0.0.1:8080")
	assert.Equal(t, "127.0.0.1:8080", host)
	assert.Equal(t, "HTTP", protocol)

	host, protocol = splitEndpoint("dm.ap-southeast-1.aliyuncs.com")
	assert.Equal(t, "dm.ap-southeast-1.aliyuncs.com", host)
	assert.Equal(t, "HTTPS", protocol)
}

func TestSingleSendMail(t *testing.T) {
	noProxy(t)
	var (
		query  url.Values
		header http.Header
		method string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.Query()
		header = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"RequestId":"abc","EnvId":"1"}`))
	}))
	defer srv.Close()

	c := NewDirectMailClient(testDirectMailConfig(srv.URL), 5*time.Second)

	err := c.SingleSendMail(context.Background(), []string{"sales@unichip.hk", "ops@unichip.hk"}, "Chip inquiry", "body")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "SingleSendMail", header.Get("x-acs-action"))
	assert.Equal(t, "2015-11-23", header.Get("x-acs-version"))
	assert.True(t, strings.HasPrefix(header.Get("Authorization"), "ACS3-HMAC-SHA256 Credential=testid"), header.Get("Authorization"))
	assert.Equal(t, "sales@unichip.hk,ops@unichip.hk", query.Get("ToAddress"))
	assert.Equal(t, "noreply@mail.unichip.hk", query.Get("AccountName"))
	assert.Equal(t, "Unichip", query.Get("FromAlias"))
	assert.Equal(t, "1", query.Get("AddressType"))
	assert.Equal(t, "false", query.Get("ReplyToAddress"))
	assert.Equal(t, "Chip inquiry", query.Get("Subject"))
	assert.Equal(t, "body", query.Get("TextBody"))
}

func TestSingleSendMailReportsAPIError(t *testing.T) {
	noProxy(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"RequestId":"req-9","Code":"InvalidMailAddress.NotFound","Message":"The specified mail address is not found."}`))
	}))
	defer srv.Close()

	c := NewDirectMailClient(testDirectMailConfig(srv.URL), 5*time.Second)

	err := c.SingleSendMail(context.Background(), []string{"sales@unichip.hk"}, "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InvalidMailAddress.NotFound")
	assert.Contains(t, err.Error(), "req-9")
}

func TestSingleSendMailStopsWaitingOnCancel(t *testing.T) {
	noProxy(t)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	c := NewDirectMailClient(testDirectMailConfig(srv.URL), 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	err := c.SingleSendMail(ctx, []string{"sales@unichip.hk"}, "s", "b")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestSingleSendMailRequiresCredentials(t *testing.T) {
	c := NewDirectMailClient(&config.DirectMailConfig{Endpoint: "http://127.0.0.1:1"}, time.Second)
	assert.Error(t, c.SingleSendMail(context.Background(), []string{"a@b.c"}, "s", "b"))
}
