package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	admins     StaticAdmins
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService.
// Пользователи из admins считаются администраторами без запроса в сервис.
// При пустом baseURL роль проверяется только по admins.
func NewClient(baseURL string, timeout time.Duration, admins StaticAdmins, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		admins: admins,
		log:    log,
	}
}

// GetUser получает пользователя по telegram ID
func (c *Client) GetUser(ctx context.Context, tgUserID int64) (*User, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, tgUserID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &user, nil
}

// IsAdmin проверяет, может ли пользователь изменять расписание.
// Неизвестный UserService пользователь администратором не считается.
func (c *Client) IsAdmin(ctx context.Context, tgUserID int64) (bool, error) {
	if c.admins != nil && c.admins.IsAdmin(tgUserID) {
		return true, nil
	}

	if c.baseURL == "" {
		return false, nil
	}

	user, err := c.GetUser(ctx, tgUserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.log.Info("User tg_user_id=%d not found in UserService", tgUserID)
			return false, nil
		}
		c.log.Error("UserService unavailable, cannot check role for tg_user_id=%d: %v", tgUserID, err)
		return false, err
	}

	c.log.Info("Fetched user tg_user_id=%d, role=%s", tgUserID, user.Role)
	return user.IsAdmin(), nil
}
