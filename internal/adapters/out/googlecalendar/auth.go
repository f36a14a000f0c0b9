package googlecalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// newOAuthClient собирает HTTP-клиент из OAuth-конфига (credentials.json)
// и заранее выписанного токена (token.json). Токен обновляется
// автоматически через refresh token.
func newOAuthClient(ctx context.Context, credentialsFile, tokenFile string) (*http.Client, error) {
	credentials, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(credentials,
		calendar.CalendarScope,
		calendar.CalendarEventsScope,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	token, err := readToken(tokenFile)
	if err != nil {
		return nil, err
	}

	return oauthConfig.Client(ctx, token), nil
}

func readToken(tokenFile string) (*oauth2.Token, error) {
	f, err := os.Open(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open token file: %w", err)
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	return token, nil
}
