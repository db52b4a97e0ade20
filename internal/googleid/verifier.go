package googleid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const tokeninfoURL = "https://oauth2.googleapis.com/tokeninfo"

// Verifier validates Google ID tokens against the tokeninfo endpoint.
// When clientID is set, the token audience must match it.
type Verifier struct {
	client   *http.Client
	endpoint string
	clientID string
	logger   logger.Logger
}

func NewVerifier(clientID string, log logger.Logger) *Verifier {
	if clientID == "" {
		log.Warn("google client id is empty, audience check disabled")
	}

	return &Verifier{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: tokeninfoURL,
		clientID: clientID,
		logger:   log,
	}
}

type tokeninfoResponse struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Audience      string `json:"aud"`
}

func (v *Verifier) Verify(ctx context.Context, idToken string) (*domain.GoogleIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		v.endpoint+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, fmt.Errorf("build tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo status %d", resp.StatusCode)
	}

	var info tokeninfoResponse
	if err = json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode tokeninfo: %w", err)
	}

	if info.Sub == "" {
		return nil, fmt.Errorf("tokeninfo has no subject")
	}
	if v.clientID != "" && info.Audience != v.clientID {
		v.logger.Warn("google token audience mismatch",
			logger.String("aud", info.Audience),
		)
		return nil, fmt.Errorf("token audience mismatch")
	}

	return &domain.GoogleIdentity{
		Sub:   info.Sub,
		Email: info.Email,
		Name:  info.Name,
	}, nil
}
