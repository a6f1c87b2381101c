package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrtools/noticedesk/internal/api"
	"github.com/hrtools/noticedesk/internal/contract"
	"github.com/hrtools/noticedesk/internal/service"
)

// userFacing maps client errors to operator-readable text.
func userFacing(err error) string {
	return api.UserMessage(err)
}

// createNotice runs the create use case and flattens errors into
// operator-readable ones.
func createNotice(ctx context.Context, app *App, req contract.CreateRequest) (*contract.CreateResult, error) {
	res, err := service.CreateNotice(ctx, app.API, app.Observer, req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return nil, errors.New(vErr.Msg)
		}
		return nil, fmt.Errorf("%s", userFacing(err))
	}
	return res, nil
}
