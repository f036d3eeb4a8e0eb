package cli

import (
	"context"
	"io"
	"time"

	"github.com/heartmarshall/kaizen-backend/internal/app"
	"github.com/heartmarshall/kaizen-backend/internal/config"
)

const closeTimeout = 5 * time.Second

// RuntimeOpener loads the configuration through config.LoadFrom and opens
// the database-backed runtime. Logs go to logOut, keeping stdout for command
// output.
func RuntimeOpener(logOut io.Writer) Opener {
	return func(ctx context.Context, configPath string) (*Backend, func(), error) {
		cfg, err := config.LoadFrom(configPath)
		if err != nil {
			return nil, nil, err
		}

		rt, err := app.Open(ctx, cfg, logOut)
		if err != nil {
			return nil, nil, err
		}

		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			rt.Close(ctx)
		}

		s := rt.Services
		return &Backend{
			Review:        s.Review,
			Query:         s.Query,
			Notifications: s.Notifications,
			Employees:     s.Employees,
		}, closeFn, nil
	}
}
