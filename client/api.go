package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrUnauthorized marks a 401 from any authorized call; the data context
// reacts to it by dropping the stored credential.
var ErrUnauthorized = errors.New("unauthorized")

type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

// API is a thin typed client for the portfolio REST surface.
type API struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPI(baseURL string, httpClient *http.Client) *API {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

type envelope[T any] struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Count   int    `json:"count"`
	Data    T      `json:"data"`
	Token   string `json:"token"`
}

func doJSON[T any](ctx context.Context, api *API, method, path, token string, body any) (envelope[T], error) {
	var out envelope[T]

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return out, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, api.baseURL+path, reqBody)
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return out, fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apiError{Status: resp.StatusCode}
		var failure struct {
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(raw, &failure); jsonErr == nil {
			apiErr.Message = failure.Message
		}
		return out, apiErr
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

func fetchOne[T any](ctx context.Context, api *API, path string) (T, error) {
	env, err := doJSON[T](ctx, api, http.MethodGet, path, "", nil)
	return env.Data, err
}

func fetchList[T any](ctx context.Context, api *API, path string) ([]T, error) {
	env, err := doJSON[[]T](ctx, api, http.MethodGet, path, "", nil)
	return env.Data, err
}

func createRemote[T any](ctx context.Context, api *API, path, token string, item T) (T, error) {
	env, err := doJSON[T](ctx, api, http.MethodPost, path, token, item)
	return env.Data, err
}

func updateRemote[T any](ctx context.Context, api *API, path, id, token string, item T) (T, error) {
	env, err := doJSON[T](ctx, api, http.MethodPut, path+"/"+id, token, item)
	return env.Data, err
}

func deleteRemote(ctx context.Context, api *API, path, id, token string) error {
	_, err := doJSON[struct{}](ctx, api, http.MethodDelete, path+"/"+id, token, nil)
	return err
}

func (api *API) login(ctx context.Context, password string) (string, error) {
	env, err := doJSON[struct{}](ctx, api, http.MethodPost, "/auth/login", "", map[string]string{"password": password})
	if err != nil {
		return "", err
	}
	if env.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return env.Token, nil
}
