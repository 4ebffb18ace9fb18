package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/mdelacruz/volunteerhub/internal/config"
	"github.com/mdelacruz/volunteerhub/pkg/db"
	"github.com/mdelacruz/volunteerhub/pkg/store"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Store    store.KV
	Database *db.DB
	Logger   *zap.Logger
	Ctx      context.Context
}
