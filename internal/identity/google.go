package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultTokenInfoURL = "https://www.googleapis.com/oauth2/v3/tokeninfo"

// Outcome is the result class of a token introspection attempt. The
// distinction between Rejected and Unavailable matters: an explicit
// rejection blocks the caller's operation, an unreachable verifier does not.
type Outcome int

const (
	OutcomeVerified Outcome = iota
	OutcomeRejected
	OutcomeUnavailable
)

type Result struct {
	Outcome Outcome
	Email   string // set only when Outcome is OutcomeVerified
}

//go:generate mockgen -destination=mock/verifier_mock.go -package=mock . Verifier
type Verifier interface {
	Verify(ctx context.Context, accessToken string) Result
}

// GoogleVerifier introspects access tokens against Google's tokeninfo
// endpoint with a bounded timeout.
type GoogleVerifier struct {
	client   *http.Client
	endpoint string
	logger   *zap.Logger
}

type tokenInfoResponse struct {
	Email string `json:"email"`
}

func NewGoogleVerifier(logger ...*zap.Logger) *GoogleVerifier {
	l := zap.L().Named("identity.google")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("identity.google")
	}
	return &GoogleVerifier{
		client:   &http.Client{Timeout: 5 * time.Second},
		endpoint: defaultTokenInfoURL,
		logger:   l,
	}
}

// NewGoogleVerifierWithEndpoint is used by tests to point the verifier at a
// local server.
func NewGoogleVerifierWithEndpoint(endpoint string, client *http.Client) *GoogleVerifier {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &GoogleVerifier{
		client:   client,
		endpoint: endpoint,
		logger:   zap.L().Named("identity.google"),
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, accessToken string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint, nil)
	if err != nil {
		return Result{Outcome: OutcomeUnavailable}
	}

	q := url.Values{}
	q.Set("access_token", accessToken)
	req.URL.RawQuery = q.Encode()

	resp, err := v.client.Do(req)
	if err != nil {
		// Connectivity problems never block the caller.
		v.logger.Warn("tokeninfo request failed", zap.Error(err))
		return Result{Outcome: OutcomeUnavailable}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{Outcome: OutcomeRejected}
	}

	var body tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		v.logger.Warn("tokeninfo payload unreadable", zap.Error(err))
		return Result{Outcome: OutcomeUnavailable}
	}

	return Result{Outcome: OutcomeVerified, Email: body.Email}
}
