package resetpassword

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	c "storemap/internal/core/domain/common"
	"storemap/internal/core/domain/user"
	service "storemap/internal/core/services/reset_password"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	RESET_TOKEN   = "test-reset-token"
	SESSION_TOKEN = "test-session-token"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.User = user.User{
		ID:        user.ID(1),
		Email:     c.Email("test@test.test"),
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	result.Token = user.SessionToken(SESSION_TOKEN)
	return result, nil
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "success",
			body:           `{"token": "test-reset-token", "password": "new-password", "password_confirmation": "new-password"}`,
			expectedStatus: http.StatusOK,
			expectedInput: &service.Input{
				Token:                   user.PasswordResetToken(RESET_TOKEN),
				NewPassword:             user.RawPassword("new-password"),
				NewPasswordConfirmation: user.RawPassword("new-password"),
			},
		},
		{
			id:             "invalid json",
			body:           `{"token":`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "token missing",
			body:           `{"password": "new-password", "password_confirmation": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password too short",
			body:           `{"token": "test-reset-token", "password": "short", "password_confirmation": "short"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "confirmation mismatch",
			body:           `{"token": "test-reset-token", "password": "new-password", "password_confirmation": "other-password"}`,
			serviceErr:     user.ErrPasswordConfirmationMismatch,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			id:             "token invalid or expired",
			body:           `{"token": "test-reset-token", "password": "new-password", "password_confirmation": "new-password"}`,
			serviceErr:     user.ErrResetTokenInvalidOrExpired,
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub)
			request := httptest.NewRequest(
				http.MethodPost,
				"/auth/password_reset",
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
