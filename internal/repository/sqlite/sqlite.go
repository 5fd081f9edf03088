package sqlite

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/underdog-devs/mentorship-api/internal/db"
	"github.com/underdog-devs/mentorship-api/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.ProfileRepo = (*SQLiteRepo)(nil)
var _ repository.AssignmentRepo = (*SQLiteRepo)(nil)
var _ repository.ActionRepo = (*SQLiteRepo)(nil)
var _ repository.ApplicationRepo = (*SQLiteRepo)(nil)
var _ repository.IntakeRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().Unix()
}

// buildSet assembles a SET clause from the supplied changes, in the fixed
// order of the allowed column list. Unknown keys are dropped.
func buildSet(changes map[string]any, allowed []string) (string, []any) {
	cols := make([]string, 0, len(changes))
	args := make([]any, 0, len(changes))
	for _, col := range allowed {
		if v, ok := changes[col]; ok {
			cols = append(cols, col+" = ?")
			args = append(args, v)
		}
	}
	return strings.Join(cols, ", "), args
}
