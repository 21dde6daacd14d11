package adsclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/mcc-manager-api/internal/config"
	"golang.org/x/oauth2"
)

// newHTTPClient monta um http.Client que renova o access token
// automaticamente a partir do refresh token configurado.
func newHTTPClient(cfg *config.Config) *http.Client {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleAds.ClientID,
		ClientSecret: cfg.GoogleAds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: cfg.GoogleAds.TokenURL,
		},
	}

	token := &oauth2.Token{
		RefreshToken: cfg.GoogleAds.RefreshToken,
		// Expirado desde o início força a primeira renovação
		Expiry: time.Now().Add(-time.Hour),
	}

	client := oauthConfig.Client(context.Background(), token)
	client.Timeout = 60 * time.Second

	return client
}
