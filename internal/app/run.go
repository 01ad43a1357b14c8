package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/uaschema/internal/ctxlog"
)

// Run loads every declaration and then serves lookups until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	res, err := a.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load declarations: %w", err)
	}
	a.logger.Info("Registry ready.", "enumerations", res.Enumerations, "structures", res.Structures)

	if err := a.Serve(ctx); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
