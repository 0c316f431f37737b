package login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	c "storemap/internal/core/domain/common"
	ratelimiter "storemap/internal/core/domain/rate_limiter"
	"storemap/internal/core/domain/user"
	service "storemap/internal/core/services/log_in"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const SESSION_TOKEN = "test-session-token"

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Token = user.SessionToken(SESSION_TOKEN)
	return result, nil
}

func TestLogInHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "success",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Email:    c.Email("test@test.test"),
				Password: user.RawPassword("test-password"),
			},
		},
		{
			id:             "email normalized",
			body:           `{"email": "TEST@Test.Test", "password": "test-password"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Email:    c.Email("test@test.test"),
				Password: user.RawPassword("test-password"),
			},
		},
		{
			id:             "invalid json",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "email missing",
			body:           `{"password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password missing",
			body:           `{"email": "test@test.test"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid credentials",
			body:           `{"email": "test@test.test", "password": "wrong"}`,
			serviceErr:     user.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			serviceErr:     ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub)
			request := httptest.NewRequest(
				http.MethodPost,
				"/auth/login",
				strings.NewReader(testcase.body),
			)
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			require.Equal(t, testcase.expectedStatus, recorder.Code)
			assert.Equal(t, testcase.expectedInput, stub.input)
			if testcase.expectedStatus == http.StatusOK {
				assert.Contains(t, recorder.Body.String(), SESSION_TOKEN)
			}
		})
	}
}
