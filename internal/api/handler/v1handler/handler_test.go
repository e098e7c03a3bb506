package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"countervalidator/internal/api/handler/v1handler"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestNewError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	cases := map[string]struct {
		err     error
		status  int
		code    serrors.Kind
		message string
	}{
		"plain error is internal": {
			err: errors.New("pq: relation does not exist"), status: http.StatusInternalServerError,
			code: serrors.ErrInternal, message: "internal error",
		},
		"wrapped internal hides its message": {
			err:    serrors.Wrap(serrors.ErrInternal, errors.New("disk"), "could not store file /var/media/x.json"),
			status: http.StatusInternalServerError, code: serrors.ErrInternal, message: "internal error",
		},
		"bare kind uses default message": {
			err: serrors.ErrNotFound, status: http.StatusNotFound,
			code: serrors.ErrNotFound, message: "resource not found",
		},
		"message is shown, cause is not": {
			err:    serrors.Wrap(serrors.ErrUnauthorized, errors.New("token is expired"), "Invalid token."),
			status: http.StatusUnauthorized, code: serrors.ErrUnauthorized, message: "Invalid token.",
		},
		"kind survives fmt wrapping": {
			err:    fmt.Errorf("creating key: %w", serrors.With(serrors.ErrConflict, "API key name already used")),
			status: http.StatusConflict, code: serrors.ErrConflict, message: "API key name already used",
		},
		"throttled": {
			err: serrors.KindOnly(serrors.ErrRateLimited), status: http.StatusTooManyRequests,
			code: serrors.ErrRateLimited, message: "too many requests",
		},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			res := h.NewError(context.Background(), c.err)
			require.Equal(t, c.status, res.StatusCode)
			require.Equal(t, c.code.Error(), res.Response.Code)
			require.Equal(t, c.message, res.Response.Message)
			require.Nil(t, res.Response.Fields)
		})
	}
}

func TestNewError_Fields(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.NewFieldError().
		Add("cop_version", "\"6\" is not a valid choice.").
		Add("url", "Enter a valid URL.").
		Err()
	res := h.NewError(context.Background(), err)

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	require.Equal(t, "BAD_REQUEST", res.Response.Code)
	require.Equal(t, []string{"Enter a valid URL."}, res.Response.Fields["url"])
	require.Len(t, res.Response.Fields, 2)
}
