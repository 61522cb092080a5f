package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StaffService (реестр преподавателей и курсов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetTeacher получает преподавателя по ID.
// Бронировать комнаты могут только зарегистрированные преподаватели.
func (c *Client) GetTeacher(ctx context.Context, teacherID int64) (*Teacher, error) {
	reqURL := fmt.Sprintf("%s/internal/teachers/%d", c.baseURL, teacherID)

	body, err := c.get(ctx, reqURL, ErrTeacherNotFound)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var teacher Teacher
	if err := json.NewDecoder(body).Decode(&teacher); err != nil {
		return nil, fmt.Errorf("%w: failed to decode teacher: %v", ErrInvalidResponse, err)
	}

	return &teacher, nil
}

// GetCourse получает курс по коду.
// Вместимость курса служит требованием к вместимости по умолчанию для лекций.
func (c *Client) GetCourse(ctx context.Context, code string) (*Course, error) {
	reqURL := fmt.Sprintf("%s/internal/courses/%s", c.baseURL, url.PathEscape(code))

	body, err := c.get(ctx, reqURL, ErrCourseNotFound)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var course Course
	if err := json.NewDecoder(body).Decode(&course); err != nil {
		return nil, fmt.Errorf("%w: failed to decode course: %v", ErrInvalidResponse, err)
	}

	return &course, nil
}

// get выполняет GET запрос и обрабатывает общие статус-коды
func (c *Client) get(ctx context.Context, reqURL string, notFound error) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		resp.Body.Close()
		return nil, notFound
	default:
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(data))
	}
}
